package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argos-cli/argos/internal/classify"
	"github.com/argos-cli/argos/internal/registry"
	"github.com/argos-cli/argos/platform"
)

func newFrozenRegistry(t *testing.T, shorts ...string) *registry.Registry {
	t.Helper()

	reg := registry.New(registry.DefaultSettings())

	for _, sw := range shorts {
		require.NoError(t, reg.RegisterOption(&registry.OptionSpec{
			Owner: sw, Switches: []string{sw}, ValueKind: registry.KindSingle, Arity: 1, RequiresValue: true,
		}))
	}

	require.NoError(t, reg.Freeze())

	return reg
}

func TestClassify(t *testing.T) {
	t.Parallel()

	reg := newFrozenRegistry(t, "-v")

	tcs := map[string]struct {
		tok      string
		wantKind classify.Kind
	}{
		"double dash":            {tok: "--", wantKind: classify.KindDoubleDash},
		"long option":            {tok: "--verbose", wantKind: classify.KindOption},
		"short option":           {tok: "-v", wantKind: classify.KindOption},
		"bare word":              {tok: "file.txt", wantKind: classify.KindBare},
		"negative number passes": {tok: "-5", wantKind: classify.KindBare},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := classify.Classify(tc.tok, reg)
			assert.Equal(t, tc.wantKind, res.Kind)
		})
	}
}

func TestClassifyNegativeNumberYieldsToRegisteredShort(t *testing.T) {
	t.Parallel()

	reg := newFrozenRegistry(t, "-5")

	res := classify.Classify("-5", reg)
	assert.Equal(t, classify.KindOption, res.Kind)
}

func TestClassifyLongAttachedValue(t *testing.T) {
	t.Parallel()

	reg := newFrozenRegistry(t)

	res := classify.Classify("--name=alice", reg)
	require.Equal(t, classify.KindOption, res.Kind)
	assert.True(t, res.HasAttached)
	assert.Equal(t, "--name", res.AttachedName)
	assert.Equal(t, "alice", res.AttachedValue)
}

func TestClassifyShortAttachedValue(t *testing.T) {
	t.Parallel()

	reg := newFrozenRegistry(t, "-o")

	res := classify.Classify("-ovalue", reg)
	require.Equal(t, classify.KindOption, res.Kind)
	assert.True(t, res.HasAttached)
	assert.Equal(t, "-o", res.AttachedName)
	assert.Equal(t, "value", res.AttachedValue)
}

func TestIsCluster(t *testing.T) {
	t.Parallel()

	reg := newFrozenRegistry(t, "-v")

	assert.True(t, classify.IsCluster("-vt3", reg))
	assert.False(t, classify.IsCluster("-v", reg))
	assert.False(t, classify.IsCluster("--verbose", reg))
}

func TestExpandArgFiles(t *testing.T) {
	t.Parallel()

	reg := registry.New(registry.DefaultSettings())
	require.NoError(t, reg.Freeze())

	plat := platform.NewFake()
	plat.Files["/tmp/args.txt"] = "--name alice\n# a comment\n--tries 3\n"

	expanded, err := classify.ExpandArgFiles([]string{"@/tmp/args.txt", "--verbose"}, reg, plat)
	require.NoError(t, err)
	assert.Equal(t, []string{"--name", "alice", "--tries", "3", "--verbose"}, expanded)
}

func TestExpandArgFilesMissingFile(t *testing.T) {
	t.Parallel()

	reg := registry.New(registry.DefaultSettings())
	require.NoError(t, reg.Freeze())

	plat := platform.NewFake()

	_, err := classify.ExpandArgFiles([]string{"@/tmp/ghost.txt"}, reg, plat)
	require.Error(t, err)
}

func TestExpandArgFilesDisabled(t *testing.T) {
	t.Parallel()

	reg := registry.New(registry.DefaultSettings())
	reg.Settings.ArgumentFileEnabled = false
	require.NoError(t, reg.Freeze())

	plat := platform.NewFake()

	expanded, err := classify.ExpandArgFiles([]string{"@/tmp/whatever.txt"}, reg, plat)
	require.NoError(t, err)
	assert.Equal(t, []string{"@/tmp/whatever.txt"}, expanded)
}
