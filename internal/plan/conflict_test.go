package plan

import (
	"errors"
	"testing"
)

func TestCheckConflict(t *testing.T) {
	siblings := []*ScheduledActivity{
		{ID: "a", Start: satTime(9, 0), End: satTime(10, 0)},
		{ID: "b", Start: satTime(13, 0), End: satTime(14, 0)},
	}

	tests := []struct {
		name     string
		start    int // minutes from 9:00 for readability
		end      int
		wantKind ConflictKind
		wantHit  bool
		wantWith string
	}{
		{"start inside sibling", 30, 90, ConflictStart, true, "a"},
		{"end inside sibling", -30, 30, ConflictEnd, true, "a"},
		{"candidate contains sibling", -30, 90, ConflictOverlap, true, "a"},
		{"identical range counts as start", 0, 60, ConflictStart, true, "a"},
		{"touching end is free", -60, 0, "", false, ""},
		{"touching start is free", 60, 120, "", false, ""},
		{"fits in gap", 90, 180, "", false, ""},
		{"second sibling hit", 255, 315, ConflictStart, true, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := satTime(9, tt.start)
			end := satTime(9, tt.end)
			got := CheckConflict(siblings, "", start, end)
			if got.HasConflict != tt.wantHit {
				t.Fatalf("HasConflict = %v, want %v", got.HasConflict, tt.wantHit)
			}
			if !tt.wantHit {
				return
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.With.ID != tt.wantWith {
				t.Errorf("With = %q, want %q", got.With.ID, tt.wantWith)
			}
		})
	}
}

func TestCheckConflictExcludesSelf(t *testing.T) {
	siblings := []*ScheduledActivity{
		{ID: "a", Start: satTime(9, 0), End: satTime(10, 0)},
	}

	got := CheckConflict(siblings, "a", satTime(9, 30), satTime(10, 30))
	if got.HasConflict {
		t.Errorf("edit colliding only with itself should not conflict, got %q", got.Kind)
	}
}

func TestConflictErrorMatchesSentinel(t *testing.T) {
	err := &ConflictError{Kind: ConflictStart, With: &ScheduledActivity{ID: "a"}}
	if !errors.Is(err, ErrTimeConflict) {
		t.Error("ConflictError should match ErrTimeConflict")
	}
}
