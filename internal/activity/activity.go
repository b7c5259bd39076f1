// Package activity defines the catalog reference types for weekendly.
package activity

import "errors"

// Validation errors.
var (
	ErrEmptyName       = errors.New("activity name cannot be empty")
	ErrInvalidDuration = errors.New("activity duration must be positive")
	ErrUnknownActivity = errors.New("activity not found in catalog")
)

// Category classifies a catalog activity. Catalog entries use the lowercase
// values; place-derived activities use the capitalized values produced by the
// places conversion table.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryOutdoor       Category = "outdoor"
	CategoryEntertainment Category = "entertainment"
	CategoryWellness      Category = "wellness"
	CategorySocial        Category = "social"
	CategoryCreative      Category = "creative"
	CategoryLearning      Category = "learning"
	CategoryHome          Category = "home"

	// Place-derived categories.
	CategoryDining    Category = "Food & Dining"
	CategoryCulture   Category = "Culture"
	CategoryFitness   Category = "Fitness"
	CategoryShopping  Category = "Shopping"
	CategoryAdventure Category = "Adventure"
	CategoryOutdoors  Category = "Outdoor"
	CategoryShows     Category = "Entertainment"
)

// Mood tags an activity with the vibe it serves.
type Mood string

const (
	MoodEnergetic   Mood = "energetic"
	MoodRelaxed     Mood = "relaxed"
	MoodHappy       Mood = "happy"
	MoodAdventurous Mood = "adventurous"
	MoodCozy        Mood = "cozy"
	MoodProductive  Mood = "productive"
	MoodSocial      Mood = "social"
)

// Theme is an optional flavor for a whole weekend plan.
type Theme string

const (
	ThemeLazy        Theme = "lazy"
	ThemeAdventurous Theme = "adventurous"
	ThemeFamily      Theme = "family"
	ThemeRomantic    Theme = "romantic"
	ThemeProductive  Theme = "productive"
	ThemeSocial      Theme = "social"
	ThemeWellness    Theme = "wellness"
	ThemeCultural    Theme = "cultural"
)

// Valid returns true if the theme is a known value.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLazy, ThemeAdventurous, ThemeFamily, ThemeRomantic,
		ThemeProductive, ThemeSocial, ThemeWellness, ThemeCultural:
		return true
	default:
		return false
	}
}

// Location describes where a place-derived activity happens.
type Location struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Activity is an immutable catalog entry. Entries are loaded once from the
// built-in catalog or synthesized from a place lookup; they are never mutated.
type Activity struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      Category  `json:"category"`
	Description   string    `json:"description"`
	DurationMin   int       `json:"duration"` // nominal duration in minutes
	Icon          string    `json:"icon"`
	Moods         []Mood    `json:"moods,omitempty"`
	Flexible      bool      `json:"flexible,omitempty"` // duration adjustable
	Tags          []string  `json:"tags,omitempty"`
	Color         string    `json:"color,omitempty"`
	LocationBased bool      `json:"locationBased,omitempty"`
	Location      *Location `json:"location,omitempty"`
}

// Validate checks the invariants every activity must hold.
func (a Activity) Validate() error {
	if a.Name == "" {
		return ErrEmptyName
	}
	if a.DurationMin <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// HasMood returns true if the activity carries the given mood tag.
func (a Activity) HasMood(m Mood) bool {
	for _, mood := range a.Moods {
		if mood == m {
			return true
		}
	}
	return false
}

// Unresolved returns the placeholder used when a scheduled activity's id can
// no longer be resolved against the catalog or an inline snapshot. The
// degraded state is deliberately visible: a fixed name, a 60 minute duration,
// and the outdoor category.
func Unresolved(id string) Activity {
	return Activity{
		ID:          id,
		Name:        "Unknown Activity",
		Category:    CategoryOutdoor,
		Description: "Activity no longer present in the catalog",
		DurationMin: 60,
		Icon:        "📍",
		Moods:       []Mood{MoodHappy},
		Flexible:    true,
		Color:       "#3B82F6",
	}
}
