package errs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/argos-cli/argos/internal/errs"
	"github.com/argos-cli/argos/stringtest"
)

func TestAggregatorAddNonAggregateStopsImmediately(t *testing.T) {
	t.Parallel()

	agg := errs.NewAggregator(false, 0)

	assert.True(t, agg.Add(errs.ParseIssue{Kind: errs.ParseRequired, Owner: "name", Message: "first"}))
	assert.True(t, agg.Add(errs.ParseIssue{Kind: errs.ParseRequired, Owner: "tries", Message: "second"}))
	assert.Len(t, agg.Issues(), 2)
}

func TestAggregatorAddAggregateNeverStops(t *testing.T) {
	t.Parallel()

	agg := errs.NewAggregator(true, 0)

	assert.False(t, agg.Add(errs.ParseIssue{Kind: errs.ParseRequired, Owner: "name", Message: "first"}))
	assert.False(t, agg.Add(errs.ParseIssue{Kind: errs.ParseRequired, Owner: "tries", Message: "second"}))
}

func TestAggregatorRenderJoinsAllUnderLimit(t *testing.T) {
	t.Parallel()

	agg := errs.NewAggregator(true, 0)
	agg.Add(errs.ParseIssue{Message: "line1"})
	agg.Add(errs.ParseIssue{Message: "line2"})
	agg.Add(errs.ParseIssue{Message: "line3"})

	want := stringtest.JoinLF("line1", "line2", "line3")
	assert.Equal(t, want, agg.Render())
}

func TestAggregatorRenderTruncatesWithSummary(t *testing.T) {
	t.Parallel()

	agg := errs.NewAggregator(true, 2)
	agg.Add(errs.ParseIssue{Message: "line1"})
	agg.Add(errs.ParseIssue{Message: "line2"})
	agg.Add(errs.ParseIssue{Message: "line3"})
	agg.Add(errs.ParseIssue{Message: "line4"})

	want := stringtest.JoinLF("line1", "line2", "... (+2 more)")
	assert.Equal(t, want, agg.Render())
}

func TestAggregatorRenderEmpty(t *testing.T) {
	t.Parallel()

	agg := errs.NewAggregator(true, 0)
	assert.Empty(t, agg.Render())
}
