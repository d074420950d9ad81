package configfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argos-cli/argos/configfile"
	"github.com/argos-cli/argos/internal/convert"
	"github.com/argos-cli/argos/internal/registry"
	"github.com/argos-cli/argos/platform"
)

func TestApply(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		content    string
		existing   map[string]any
		wantValue  any
		wantIssues int
	}{
		"fills an unset option": {
			content:   "name: alice\n",
			wantValue: "alice",
		},
		"does not override an existing value": {
			content:   "name: alice\n",
			existing:  map[string]any{"name": "bob"},
			wantValue: "bob",
		},
		"reports an invalid value as a parse issue": {
			content:    "tries: not-a-number\n",
			wantIssues: 1,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			reg := registry.New(registry.DefaultSettings())
			require.NoError(t, reg.RegisterOption(&registry.OptionSpec{
				Owner: "name", ValueKind: registry.KindSingle, Arity: 1,
				RequiresValue: true, Converter: convert.StringConverter("", false),
			}))
			require.NoError(t, reg.RegisterOption(&registry.OptionSpec{
				Owner: "tries", ValueKind: registry.KindSingle, Arity: 1,
				RequiresValue: true, Converter: convert.IntConverter(0, false),
			}))

			store := convert.NewStore()
			for owner, v := range tc.existing {
				store.Values[owner] = v
			}

			plat := platform.NewFake()
			plat.Files["/tmp/argos.yaml"] = tc.content

			issues, err := configfile.Apply("/tmp/argos.yaml", plat, store, reg)
			require.NoError(t, err)
			assert.Len(t, issues, tc.wantIssues)

			if tc.wantIssues > 0 {
				return
			}

			if tc.wantValue != nil {
				assert.Equal(t, tc.wantValue, store.Values["name"])
			}
		})
	}
}

func TestApplyMissingFile(t *testing.T) {
	t.Parallel()

	reg := registry.New(registry.DefaultSettings())
	store := convert.NewStore()
	plat := platform.NewFake()

	issues, err := configfile.Apply("/does/not/exist.yaml", plat, store, reg)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
