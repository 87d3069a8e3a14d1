// SPDX-License-Identifier: AGPL-3.0-only

package interval

// Relation identifies one of the thirteen basic Allen relations.
type Relation int

const (
	RelationNone Relation = iota
	RelationBefore
	RelationAfter
	RelationMeets
	RelationMetBy
	RelationOverlaps
	RelationOverlappedBy
	RelationStarts
	RelationStartedBy
	RelationDuring
	RelationContains
	RelationFinishes
	RelationFinishedBy
	RelationEquals
)

var relationNames = map[Relation]string{
	RelationNone:         "none",
	RelationBefore:       "before",
	RelationAfter:        "after",
	RelationMeets:        "meets",
	RelationMetBy:        "met_by",
	RelationOverlaps:     "overlaps",
	RelationOverlappedBy: "overlapped_by",
	RelationStarts:       "starts",
	RelationStartedBy:    "started_by",
	RelationDuring:       "during",
	RelationContains:     "contains",
	RelationFinishes:     "finishes",
	RelationFinishedBy:   "finished_by",
	RelationEquals:       "equals",
}

func (r Relation) String() string {
	if name, ok := relationNames[r]; ok {
		return name
	}
	return "unknown"
}

// BaseRelationNames returns the names of the thirteen basic relations, in
// a fixed order.
func BaseRelationNames() []string {
	return []string{
		"before", "after", "meets", "met_by",
		"overlaps", "overlapped_by", "starts", "started_by",
		"during", "contains", "finishes", "finished_by",
		"equals",
	}
}

// DerivedRelationNames returns the names of the derived relations.
func DerivedRelationNames() []string {
	return []string{"in", "follows", "precedes"}
}

// Classify returns the single basic relation holding between the two
// intervals. For intervals of positive duration exactly one relation
// matches; for degenerate point intervals, where the algebra's exclusivity
// does not apply, the first match in the order below wins.
func Classify(first, second Interval) (Relation, error) {
	first, second, err := normalizePair(first, second)
	if err != nil {
		return RelationNone, err
	}

	switch {
	case equals(first, second):
		return RelationEquals, nil
	case starts(first, second):
		return RelationStarts, nil
	case startedBy(first, second):
		return RelationStartedBy, nil
	case finishes(first, second):
		return RelationFinishes, nil
	case finishedBy(first, second):
		return RelationFinishedBy, nil
	case meets(first, second):
		return RelationMeets, nil
	case metBy(first, second):
		return RelationMetBy, nil
	case before(first, second):
		return RelationBefore, nil
	case after(first, second):
		return RelationAfter, nil
	case during(first, second):
		return RelationDuring, nil
	case contains(first, second):
		return RelationContains, nil
	case overlaps(first, second):
		return RelationOverlaps, nil
	case overlappedBy(first, second):
		return RelationOverlappedBy, nil
	}
	return RelationNone, nil
}
