package plan

import (
	"testing"
	"time"
)

// Wednesday, so the coming weekend is Jan 10-11.
var testNow = time.Date(2026, time.January, 7, 12, 0, 0, 0, time.Local)

func TestResolveDay(t *testing.T) {
	b := Bounds{StartHour: 9, EndHour: 17}

	tests := []struct {
		name      string
		day       Day
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "saturday from midweek",
			day:       Saturday,
			now:       testNow,
			wantStart: time.Date(2026, time.January, 10, 9, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, time.January, 10, 17, 0, 0, 0, time.Local),
		},
		{
			name:      "sunday from midweek",
			day:       Sunday,
			now:       testNow,
			wantStart: time.Date(2026, time.January, 11, 9, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, time.January, 11, 17, 0, 0, 0, time.Local),
		},
		{
			name:      "saturday resolves to today on a saturday",
			day:       Saturday,
			now:       time.Date(2026, time.January, 10, 8, 0, 0, 0, time.Local),
			wantStart: time.Date(2026, time.January, 10, 9, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, time.January, 10, 17, 0, 0, 0, time.Local),
		},
		{
			name:      "sunday resolves to tomorrow on a saturday",
			day:       Sunday,
			now:       time.Date(2026, time.January, 10, 8, 0, 0, 0, time.Local),
			wantStart: time.Date(2026, time.January, 11, 9, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2026, time.January, 11, 17, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolveDay(tt.day, b, tt.now)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestBoundsValidate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  Bounds
		wantErr bool
	}{
		{"default window", Bounds{9, 21}, false},
		{"full day", Bounds{0, 23}, false},
		{"start equals end", Bounds{9, 9}, true},
		{"inverted", Bounds{17, 9}, true},
		{"negative start", Bounds{-1, 10}, true},
		{"end past 23", Bounds{9, 24}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bounds.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
