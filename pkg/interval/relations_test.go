// SPDX-License-Identifier: AGPL-3.0-only

package interval

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relationFunc func(Interval, Interval) (bool, error)

var baseRelations = []struct {
	name string
	fn   relationFunc
}{
	{"before", Before},
	{"after", After},
	{"meets", Meets},
	{"met_by", MetBy},
	{"overlaps", Overlaps},
	{"overlapped_by", OverlappedBy},
	{"starts", Starts},
	{"started_by", StartedBy},
	{"during", During},
	{"contains", Contains},
	{"finishes", Finishes},
	{"finished_by", FinishedBy},
	{"equals", Equals},
}

func mustParse(t *testing.T, start, end string) Interval {
	t.Helper()
	i, err := Parse(start, end)
	require.NoError(t, err)
	return i
}

func TestRelationScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		relation string
		first    Interval
		second   Interval
		expected bool
	}{
		// Touching intervals meet, they are not before one another.
		{"before", mustParse(t, "2011-09-01", "2011-10-01"), mustParse(t, "2011-10-01", "2011-11-01"), false},
		{"meets", mustParse(t, "2011-09-01", "2011-10-01"), mustParse(t, "2011-10-01", "2011-11-01"), true},
		{"before", mustParse(t, "2011-09-01", "2011-10-01"), mustParse(t, "2011-10-15", "2011-11-01"), true},
		{"after", mustParse(t, "2011-10-15", "2011-11-01"), mustParse(t, "2011-09-01", "2011-10-01"), true},
		{"met_by", mustParse(t, "2011-10-01", "2011-11-01"), mustParse(t, "2011-09-01", "2011-10-01"), true},
		{"overlaps", mustParse(t, "2011-09-01", "2011-10-01"), mustParse(t, "2011-09-15", "2011-11-01"), true},
		{"overlapped_by", mustParse(t, "2011-09-15", "2011-11-01"), mustParse(t, "2011-09-01", "2011-10-01"), true},
		{"starts", mustParse(t, "2011-08-01", "2011-09-01"), mustParse(t, "2011-08-01", "2011-09-15"), true},
		{"started_by", mustParse(t, "2011-08-01", "2011-09-15"), mustParse(t, "2011-08-01", "2011-09-01"), true},
		{"during", mustParse(t, "2011-08-15", "2011-08-29"), mustParse(t, "2011-08-01", "2011-09-15"), true},
		{"contains", mustParse(t, "2011-08-01", "2011-09-15"), mustParse(t, "2011-08-15", "2011-08-29"), true},
		{"finishes", mustParse(t, "2011-08-15", "2011-09-15"), mustParse(t, "2011-08-01", "2011-09-15"), true},
		{"finished_by", mustParse(t, "2011-08-01", "2011-09-15"), mustParse(t, "2011-08-15", "2011-09-15"), true},
		{"equals", mustParse(t, "2011-10-01", "2011-11-01"), mustParse(t, "2011-10-01", "2011-11-01"), true},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s %s %s", tc.relation, tc.first, tc.second), func(t *testing.T) {
			t.Parallel()
			e := NewEvaluator(Config{})
			actual, err := e.Eval(tc.relation, tc.first, tc.second)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestEqualIntervalsMatchOnlyEquals(t *testing.T) {
	t.Parallel()

	first := mustParse(t, "2011-10-01", "2011-11-01")
	second := mustParse(t, "2011-10-01", "2011-11-01")

	for _, rel := range baseRelations {
		actual, err := rel.fn(first, second)
		require.NoError(t, err)
		assert.Equal(t, rel.name == "equals", actual, "relation %s", rel.name)
	}
}

func TestEqualsIsReflexive(t *testing.T) {
	t.Parallel()

	for _, i := range []Interval{
		mustParse(t, "2011-01-01", "2011-02-01"),
		mustParse(t, "2011-01-01", "2011-01-01"),
		mustParse(t, "2011-01-01T06:00:00Z", "2011-01-01T18:00:00Z"),
	} {
		ok, err := Equals(i, i)
		require.NoError(t, err)
		assert.True(t, ok, "equals(%s, %s)", i, i)
	}
}

// gridIntervals returns every interval of positive duration over a small
// grid of dates, giving full coverage of the boundary configurations the
// thirteen relations distinguish.
func gridIntervals(t *testing.T) []Interval {
	t.Helper()

	dates := []string{"2011-01-01", "2011-02-01", "2011-03-01", "2011-04-01", "2011-05-01"}
	var intervals []Interval
	for a := 0; a < len(dates); a++ {
		for b := a + 1; b < len(dates); b++ {
			intervals = append(intervals, mustParse(t, dates[a], dates[b]))
		}
	}
	return intervals
}

func TestExactlyOneBaseRelationHolds(t *testing.T) {
	t.Parallel()

	intervals := gridIntervals(t)
	for _, first := range intervals {
		for _, second := range intervals {
			matched := []string{}
			for _, rel := range baseRelations {
				ok, err := rel.fn(first, second)
				require.NoError(t, err)
				if ok {
					matched = append(matched, rel.name)
				}
			}
			require.Len(t, matched, 1, "expected exactly one relation for %s vs %s, got %v", first, second, matched)

			classified, err := Classify(first, second)
			require.NoError(t, err)
			assert.Equal(t, matched[0], classified.String(), "%s vs %s", first, second)
		}
	}
}

func TestSymmetricCounterparts(t *testing.T) {
	t.Parallel()

	counterparts := map[string]string{
		"before":        "after",
		"after":         "before",
		"meets":         "met_by",
		"met_by":        "meets",
		"overlaps":      "overlapped_by",
		"overlapped_by": "overlaps",
		"starts":        "started_by",
		"started_by":    "starts",
		"during":        "contains",
		"contains":      "during",
		"finishes":      "finished_by",
		"finished_by":   "finishes",
		"equals":        "equals",
	}

	byName := map[string]relationFunc{}
	for _, rel := range baseRelations {
		byName[rel.name] = rel.fn
	}

	intervals := gridIntervals(t)
	for _, first := range intervals {
		for _, second := range intervals {
			for name, counterpart := range counterparts {
				direct, err := byName[name](first, second)
				require.NoError(t, err)
				mirrored, err := byName[counterpart](second, first)
				require.NoError(t, err)
				assert.Equal(t, direct, mirrored, "%s(%s, %s) != %s(%s, %s)", name, first, second, counterpart, second, first)
			}
		}
	}
}

func TestDerivedRelations(t *testing.T) {
	t.Parallel()

	intervals := gridIntervals(t)
	for _, first := range intervals {
		for _, second := range intervals {
			duringOK, err := During(first, second)
			require.NoError(t, err)
			startsOK, err := Starts(first, second)
			require.NoError(t, err)
			finishesOK, err := Finishes(first, second)
			require.NoError(t, err)
			inOK, err := In(first, second)
			require.NoError(t, err)
			assert.Equal(t, duringOK || startsOK || finishesOK, inOK, "in(%s, %s)", first, second)

			meetsOK, err := Meets(first, second)
			require.NoError(t, err)
			beforeOK, err := Before(first, second)
			require.NoError(t, err)
			followsOK, err := Follows(first, second)
			require.NoError(t, err)
			assert.Equal(t, meetsOK || beforeOK, followsOK, "follows(%s, %s)", first, second)

			metByOK, err := MetBy(first, second)
			require.NoError(t, err)
			afterOK, err := After(first, second)
			require.NoError(t, err)
			precedesOK, err := Precedes(first, second)
			require.NoError(t, err)
			assert.Equal(t, metByOK || afterOK, precedesOK, "precedes(%s, %s)", first, second)
		}
	}
}

// Relations re-normalize each argument's own bounds, so intervals built
// with reversed bounds outside the constructors give the same answers.
func TestRelationsNormalizeArguments(t *testing.T) {
	t.Parallel()

	first := mustParse(t, "2011-08-15", "2011-08-29")
	second := mustParse(t, "2011-08-01", "2011-09-15")
	swappedFirst := Interval{start: first.end, end: first.start}
	swappedSecond := Interval{start: second.end, end: second.start}

	for _, rel := range baseRelations {
		expected, err := rel.fn(first, second)
		require.NoError(t, err)

		actual, err := rel.fn(swappedFirst, second)
		require.NoError(t, err)
		assert.Equal(t, expected, actual, "relation %s with swapped first", rel.name)

		actual, err = rel.fn(first, swappedSecond)
		require.NoError(t, err)
		assert.Equal(t, expected, actual, "relation %s with swapped second", rel.name)

		actual, err = rel.fn(swappedFirst, swappedSecond)
		require.NoError(t, err)
		assert.Equal(t, expected, actual, "relation %s with both swapped", rel.name)
	}
}

func TestRelationsRejectMalformedIntervals(t *testing.T) {
	t.Parallel()

	valid := mustParse(t, "2011-09-01", "2011-10-01")

	for _, rel := range baseRelations {
		_, err := rel.fn(Interval{}, valid)
		require.ErrorIs(t, err, ErrInvalidInterval, "relation %s", rel.name)
		assert.ErrorContains(t, err, "first interval")

		_, err = rel.fn(valid, Interval{})
		require.ErrorIs(t, err, ErrInvalidInterval, "relation %s", rel.name)
		assert.ErrorContains(t, err, "second interval")
	}

	for _, fn := range []relationFunc{In, Follows, Precedes, Intersects} {
		_, err := fn(Interval{}, valid)
		require.ErrorIs(t, err, ErrInvalidInterval)
	}

	_, err := Classify(Interval{}, valid)
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestIntersects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		first    Interval
		second   Interval
		expected bool
	}{
		{mustParse(t, "2011-09-01", "2011-10-01"), mustParse(t, "2011-09-15", "2011-11-01"), true},
		{mustParse(t, "2011-09-01", "2011-10-01"), mustParse(t, "2011-10-01", "2011-11-01"), true},
		{mustParse(t, "2011-09-01", "2011-10-01"), mustParse(t, "2011-10-02", "2011-11-01"), false},
		{mustParse(t, "2011-10-02", "2011-11-01"), mustParse(t, "2011-09-01", "2011-10-01"), false},
	}

	for _, tc := range tests {
		actual, err := Intersects(tc.first, tc.second)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, actual, "intersects(%s, %s)", tc.first, tc.second)
	}
}

// The historical after comparison (end of first after start of second) is
// pinned here so a change in either semantics surfaces as a test failure.
func TestAfterSemantics(t *testing.T) {
	t.Parallel()

	overlapping := mustParse(t, "2011-09-15", "2011-11-01")
	earlier := mustParse(t, "2011-09-01", "2011-10-01")
	disjoint := mustParse(t, "2011-11-15", "2011-12-01")

	t.Run("canonical", func(t *testing.T) {
		t.Parallel()
		e := NewEvaluator(Config{LegacyAfter: false})

		// Overlapping intervals are not after one another.
		ok, err := e.After(overlapping, earlier)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = e.After(disjoint, earlier)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("legacy", func(t *testing.T) {
		t.Parallel()
		e := NewEvaluator(Config{LegacyAfter: true})

		// The historical comparison also matches overlapping intervals.
		ok, err := e.After(overlapping, earlier)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = e.After(disjoint, earlier)
		require.NoError(t, err)
		assert.True(t, ok)

		// Precedes inherits the configured after semantics.
		ok, err = e.Precedes(overlapping, earlier)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("package level functions", func(t *testing.T) {
		t.Parallel()

		ok, err := After(overlapping, earlier)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = LegacyAfter(overlapping, earlier)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestEvaluatorEval(t *testing.T) {
	t.Parallel()

	e := NewEvaluator(Config{})
	first := mustParse(t, "2011-08-15", "2011-08-29")
	second := mustParse(t, "2011-08-01", "2011-09-15")

	for _, name := range append(BaseRelationNames(), DerivedRelationNames()...) {
		_, err := e.Eval(name, first, second)
		require.NoError(t, err, "relation %s", name)
	}

	ok, err := e.Eval("in", first, second)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = e.Eval("sometime", first, second)
	require.ErrorIs(t, err, ErrUnknownRelation)
}
