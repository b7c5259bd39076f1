package plan

import (
	"fmt"
	"time"
)

// ConflictKind classifies how a candidate time range collides with a sibling.
type ConflictKind string

const (
	ConflictStart   ConflictKind = "start"   // candidate start falls inside a sibling
	ConflictEnd     ConflictKind = "end"     // candidate end falls inside a sibling
	ConflictOverlap ConflictKind = "overlap" // candidate fully contains a sibling
)

// Message returns the remediation hint for a conflict kind.
func (k ConflictKind) Message() string {
	switch k {
	case ConflictStart:
		return "start time conflicts with the previous activity; move the activity or adjust the previous activity's end time"
	case ConflictEnd:
		return "end time conflicts with the next activity; move the activity or adjust the next activity's start time"
	case ConflictOverlap:
		return "this time range overlaps another activity; move one of them or shorten the duration"
	default:
		return "time conflict detected; move the activity to a free slot"
	}
}

// Conflict is the result of checking a candidate range against siblings.
type Conflict struct {
	HasConflict bool
	Kind        ConflictKind
	With        *ScheduledActivity
}

// ConflictError is returned when a manual edit collides with a sibling
// placement. The edit is rejected, never partially applied.
type ConflictError struct {
	Kind ConflictKind
	With *ScheduledActivity
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Kind, e.Kind.Message())
}

// Is makes ConflictError match ErrTimeConflict via errors.Is.
func (e *ConflictError) Is(target error) bool {
	return target == ErrTimeConflict
}

// CheckConflict tests a candidate [candStart, candEnd) against every sibling
// except the one being edited and classifies the first collision found.
// The classification order matters for messaging: start, then end, then
// full containment.
//
// This check guards explicit manual time edits only. Drag reorder recomputes
// times through the cascade engine and cannot produce conflicts by
// construction.
func CheckConflict(siblings []*ScheduledActivity, excludeID string, candStart, candEnd time.Time) Conflict {
	for _, sib := range siblings {
		if sib.ID == excludeID {
			continue
		}

		// Candidate start inside [sib.Start, sib.End).
		if !candStart.Before(sib.Start) && candStart.Before(sib.End) {
			return Conflict{HasConflict: true, Kind: ConflictStart, With: sib}
		}

		// Candidate end inside (sib.Start, sib.End].
		if candEnd.After(sib.Start) && !candEnd.After(sib.End) {
			return Conflict{HasConflict: true, Kind: ConflictEnd, With: sib}
		}

		// Candidate fully contains the sibling.
		if candStart.Before(sib.Start) && candEnd.After(sib.End) {
			return Conflict{HasConflict: true, Kind: ConflictOverlap, With: sib}
		}
	}

	return Conflict{HasConflict: false, Kind: ConflictStart}
}
