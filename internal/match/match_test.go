package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argos-cli/argos/internal/convert"
	"github.com/argos-cli/argos/internal/match"
	"github.com/argos-cli/argos/internal/registry"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	return registry.New(registry.DefaultSettings())
}

func mustRegister(t *testing.T, reg *registry.Registry, spec *registry.OptionSpec) *registry.OptionSpec {
	t.Helper()
	require.NoError(t, reg.RegisterOption(spec))

	return spec
}

func stringOpt(owner string, switches ...string) *registry.OptionSpec {
	return &registry.OptionSpec{
		Owner:         owner,
		Switches:      switches,
		ValueKind:     registry.KindSingle,
		Arity:         1,
		RequiresValue: true,
		Converter:     convert.StringConverter("", false),
	}
}

func intGroupOpt(owner string, arity int, switches ...string) *registry.OptionSpec {
	conv := convert.IntConverter(0, false)

	return &registry.OptionSpec{
		Owner:         owner,
		Switches:      switches,
		ValueKind:     registry.KindSingle,
		Arity:         arity,
		RequiresValue: true,
		Converter:     conv,
		GroupParser:   convert.DefaultGroupParser(conv, arity, nil),
	}
}

func boolOpt(owner string, switches ...string) *registry.OptionSpec {
	return &registry.OptionSpec{
		Owner:       owner,
		Switches:    switches,
		ValueKind:   registry.KindSingle,
		Arity:       1,
		BooleanFlag: true,
		Converter:   convert.BoolConverter(false, true),
	}
}

func TestRunExactSwitchWithValue(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	mustRegister(t, reg, stringOpt("name", "--name"))
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"--name", "alice"}, reg)
	require.Empty(t, out.Issues)
	assert.Equal(t, "alice", out.Store.Values["name"])
}

func TestRunAttachedValue(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	mustRegister(t, reg, stringOpt("name", "--name"))
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"--name=alice"}, reg)
	require.Empty(t, out.Issues)
	assert.Equal(t, "alice", out.Store.Values["name"])
}

func TestRunUnknownOptionEmitsIssue(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"--ghost"}, reg)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, "Unknown option \"--ghost\"", out.Issues[0].Message)
}

func TestRunNegationSwitch(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	spec := boolOpt("verbose", "--verbose", "--no-verbose")
	spec.NegationSwitches = map[string]bool{"--no-verbose": true}
	mustRegister(t, reg, spec)
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"--no-verbose"}, reg)
	require.Empty(t, out.Issues)
	assert.Equal(t, false, out.Store.Values["verbose"])
}

func TestRunClusterBooleansThenValueConsumer(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	mustRegister(t, reg, boolOpt("verbose", "-v"))
	tries := stringOpt("tries", "-t")
	mustRegister(t, reg, tries)
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"-vt3"}, reg)
	require.Empty(t, out.Issues)
	assert.Equal(t, true, out.Store.Values["verbose"])
	assert.Equal(t, "3", out.Store.Values["tries"])
}

func TestRunClusterValueFromNextToken(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	mustRegister(t, reg, boolOpt("verbose", "-v"))
	mustRegister(t, reg, stringOpt("tries", "-t"))
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"-vt", "3"}, reg)
	require.Empty(t, out.Issues)
	assert.Equal(t, "3", out.Store.Values["tries"])
}

func TestRunDomainSelectionOnFirstBareToken(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	require.NoError(t, reg.RegisterDomain(&registry.Domain{ID: "alpha", Aliases: []string{"a"}}))
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"alpha"}, reg)
	assert.Equal(t, "alpha", out.SelectedDomain)
}

func TestRunUnmatchedBareTokenBecomesPositional(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	require.NoError(t, reg.RegisterDomain(&registry.Domain{ID: "alpha"}))

	pos := stringOpt("file")
	pos.Switches = nil
	pos.PositionalKind = registry.PositionalSingle
	mustRegister(t, reg, pos)
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"notadomain"}, reg)
	require.Empty(t, out.Issues)
	assert.Equal(t, "notadomain", out.Store.Values["file"])
}

func TestRunEagerStopsFurtherMatching(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	eager := boolOpt("show-version", "--version")
	eager.Eager = true
	mustRegister(t, reg, eager)
	mustRegister(t, reg, stringOpt("name", "--name"))
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"--version", "--ghost-unknown"}, reg)
	assert.True(t, out.EagerTriggered)
	assert.Empty(t, out.Issues)
}

func TestRunUnexpectedPositionalWithNoSlot(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"extra"}, reg)
	require.Len(t, out.Issues, 1)
	assert.Contains(t, out.Issues[0].Message, "Unexpected positional argument")
}

func TestRunArityGroupConsumesNValues(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	mustRegister(t, reg, intGroupOpt("point", 2, "--point"))
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"--point", "3", "4"}, reg)
	require.Empty(t, out.Issues)
	assert.Equal(t, []any{3, 4}, out.Store.Values["point"])
}

func TestRunArityGroupMissingValueEmitsIssue(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	mustRegister(t, reg, intGroupOpt("point", 2, "--point"))
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"--point", "3"}, reg)
	require.Len(t, out.Issues, 1)
	assert.Contains(t, out.Issues[0].Message, "requires 2 values")
}

func TestRunDoubleDashEndsOptionParsing(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t)
	pos := stringOpt("file")
	pos.Switches = nil
	pos.PositionalKind = registry.PositionalSingle
	mustRegister(t, reg, pos)
	require.NoError(t, reg.Freeze())

	out := match.Run([]string{"--", "--not-an-option"}, reg)
	require.Empty(t, out.Issues)
	assert.Equal(t, "--not-an-option", out.Store.Values["file"])
}
