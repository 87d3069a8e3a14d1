// SPDX-License-Identifier: AGPL-3.0-only

package interval

import (
	"flag"

	"github.com/pkg/errors"
)

// ErrUnknownRelation is returned by Evaluator.Eval for a relation name
// outside the basic and derived sets.
var ErrUnknownRelation = errors.New("unknown relation")

// Config holds the tunable semantics of the relation evaluator.
type Config struct {
	// LegacyAfter switches the after relation (and the precedes relation
	// built on it) to the historical comparison. The historical comparison
	// breaks mutual exclusivity of the basic relations, so it is off by
	// default.
	LegacyAfter bool `yaml:"legacy_after"`
}

func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	f.BoolVar(&cfg.LegacyAfter, "relations.legacy-after", false, "Evaluate the after relation with the historical comparison (end of first after start of second) instead of the canonical Allen definition (start of first after end of second).")
}

// Evaluator evaluates relations by name, carrying the configured after
// semantics. The zero value uses the canonical definitions.
type Evaluator struct {
	cfg Config
}

func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// After evaluates the after relation under the configured semantics.
func (e *Evaluator) After(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return e.after(first, second), nil
}

// Precedes evaluates the precedes relation (met-by or after) under the
// configured semantics.
func (e *Evaluator) Precedes(first, second Interval) (bool, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return false, err
	}
	return metBy(first, second) || e.after(first, second), nil
}

func (e *Evaluator) after(i, j Interval) bool {
	if e.cfg.LegacyAfter {
		return legacyAfter(i, j)
	}
	return after(i, j)
}

// Eval evaluates the basic or derived relation identified by name.
func (e *Evaluator) Eval(name string, first, second Interval) (bool, error) {
	switch name {
	case "before":
		return Before(first, second)
	case "after":
		return e.After(first, second)
	case "meets":
		return Meets(first, second)
	case "met_by":
		return MetBy(first, second)
	case "overlaps":
		return Overlaps(first, second)
	case "overlapped_by":
		return OverlappedBy(first, second)
	case "starts":
		return Starts(first, second)
	case "started_by":
		return StartedBy(first, second)
	case "during":
		return During(first, second)
	case "contains":
		return Contains(first, second)
	case "finishes":
		return Finishes(first, second)
	case "finished_by":
		return FinishedBy(first, second)
	case "equals":
		return Equals(first, second)
	case "in":
		return In(first, second)
	case "follows":
		return Follows(first, second)
	case "precedes":
		return e.Precedes(first, second)
	}
	return false, errors.Wrapf(ErrUnknownRelation, "%q", name)
}
