package plan

import (
	"testing"
	"time"
)

func satTime(hour, min int) time.Time {
	return time.Date(2026, time.January, 10, hour, min, 0, 0, time.Local)
}

func interval(startHour, startMin, endHour, endMin int) Interval {
	return Interval{Start: satTime(startHour, startMin), End: satTime(endHour, endMin)}
}

func TestFindSlot(t *testing.T) {
	b := Bounds{StartHour: 9, EndHour: 17}

	tests := []struct {
		name        string
		existing    []Interval
		durationMin int
		want        time.Time
		wantOK      bool
	}{
		{
			name:        "empty day starts at day start",
			existing:    nil,
			durationMin: 60,
			want:        satTime(9, 0),
			wantOK:      true,
		},
		{
			name:        "tail fit after single activity",
			existing:    []Interval{interval(9, 0, 10, 0)},
			durationMin: 30,
			want:        satTime(10, 0),
			wantOK:      true,
		},
		{
			name:        "head fit before late activity",
			existing:    []Interval{interval(11, 0, 12, 0)},
			durationMin: 60,
			want:        satTime(9, 0),
			wantOK:      true,
		},
		{
			name: "first sufficient gap",
			existing: []Interval{
				interval(9, 0, 10, 0),
				interval(10, 15, 12, 0),
				interval(13, 0, 14, 0),
			},
			durationMin: 45,
			want:        satTime(12, 0),
			wantOK:      true,
		},
		{
			name:        "fully booked day has no slot",
			existing:    []Interval{interval(9, 0, 17, 0)},
			durationMin: 30,
			wantOK:      false,
		},
		{
			name:        "duration longer than empty window",
			existing:    nil,
			durationMin: 600,
			wantOK:      false,
		},
		{
			name: "unsorted input still finds earliest",
			existing: []Interval{
				interval(12, 0, 13, 0),
				interval(9, 0, 10, 0),
			},
			durationMin: 90,
			want:        satTime(10, 0),
			wantOK:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindSlot(tt.existing, tt.durationMin, Saturday, b, testNow)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("slot = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckCapacity(t *testing.T) {
	b := Bounds{StartHour: 9, EndHour: 17}

	tests := []struct {
		name          string
		existing      []Interval
		wantUsed      int
		wantAvailable int
		wantCanFit    bool
	}{
		{"empty day", nil, 0, 480, true},
		{"one 90 minute activity", []Interval{interval(9, 0, 10, 30)}, 90, 390, true},
		{"fully booked", []Interval{interval(9, 0, 17, 0)}, 480, 0, false},
		{
			name: "fragmented but available",
			existing: []Interval{
				interval(9, 0, 11, 0),
				interval(12, 0, 16, 0),
			},
			wantUsed:      360,
			wantAvailable: 120,
			wantCanFit:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckCapacity(tt.existing, Saturday, b, testNow)
			if got.UsedMinutes != tt.wantUsed {
				t.Errorf("UsedMinutes = %d, want %d", got.UsedMinutes, tt.wantUsed)
			}
			if got.AvailableMinutes != tt.wantAvailable {
				t.Errorf("AvailableMinutes = %d, want %d", got.AvailableMinutes, tt.wantAvailable)
			}
			if got.CanFit != tt.wantCanFit {
				t.Errorf("CanFit = %v, want %v", got.CanFit, tt.wantCanFit)
			}
		})
	}
}

func TestFreeSlots(t *testing.T) {
	dayStart := satTime(9, 0)
	dayEnd := satTime(17, 0)

	tests := []struct {
		name     string
		existing []Interval
		want     []Interval
	}{
		{
			name: "empty day yields whole window",
			want: []Interval{{Start: dayStart, End: dayEnd}},
		},
		{
			name:     "single activity splits window",
			existing: []Interval{interval(11, 0, 12, 0)},
			want: []Interval{
				interval(9, 0, 11, 0),
				interval(12, 0, 17, 0),
			},
		},
		{
			name: "back to back leaves only tail",
			existing: []Interval{
				interval(9, 0, 10, 0),
				interval(10, 0, 12, 0),
			},
			want: []Interval{interval(12, 0, 17, 0)},
		},
		{
			name:     "fully booked has no gaps",
			existing: []Interval{interval(9, 0, 17, 0)},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := freeSlots(tt.existing, dayStart, dayEnd)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d slots, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if !got[i].Start.Equal(tt.want[i].Start) || !got[i].End.Equal(tt.want[i].End) {
					t.Errorf("slot %d = %v-%v, want %v-%v",
						i, got[i].Start, got[i].End, tt.want[i].Start, tt.want[i].End)
				}
			}
		})
	}
}
