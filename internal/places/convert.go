package places

import (
	"strings"

	"github.com/lmoreno/weekendly/internal/activity"
)

// Kind is a coarse activity type used to filter nearby searches.
type Kind string

const (
	KindRestaurant    Kind = "restaurant"
	KindCafe          Kind = "cafe"
	KindPark          Kind = "park"
	KindMuseum        Kind = "museum"
	KindFitness       Kind = "fitness"
	KindShopping      Kind = "shopping"
	KindEntertainment Kind = "entertainment"
	KindAttraction    Kind = "attraction"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{
	KindRestaurant, KindCafe, KindPark, KindMuseum,
	KindFitness, KindShopping, KindEntertainment, KindAttraction,
}

// ParseKind parses a kind tag.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(s))
	for _, known := range Kinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// kindMapping drives both the Geoapify category filter and the activity
// synthesized from a matching place.
type kindMapping struct {
	geoapify    []string
	category    activity.Category
	icon        string
	durationMin int
	moods       []activity.Mood
	fallback    string // description when the place offers nothing better
}

var kindMappings = map[Kind]kindMapping{
	KindRestaurant: {
		geoapify:    []string{"catering.restaurant", "catering.fast_food", "catering.food_court"},
		category:    activity.CategoryDining,
		icon:        "🍽️",
		durationMin: 90,
		moods:       []activity.Mood{activity.MoodHappy, activity.MoodSocial},
		fallback:    "Enjoy a delicious meal at this local restaurant",
	},
	KindCafe: {
		geoapify:    []string{"catering.cafe", "catering.ice_cream"},
		category:    activity.CategoryDining,
		icon:        "☕",
		durationMin: 60,
		moods:       []activity.Mood{activity.MoodRelaxed, activity.MoodCozy},
		fallback:    "Relax with coffee and treats at this cozy spot",
	},
	KindPark: {
		geoapify:    []string{"leisure.park", "natural.water", "natural.forest"},
		category:    activity.CategoryOutdoors,
		icon:        "🌳",
		durationMin: 120,
		moods:       []activity.Mood{activity.MoodRelaxed, activity.MoodEnergetic},
		fallback:    "Spend time outdoors in this beautiful park",
	},
	KindMuseum: {
		geoapify:    []string{"entertainment.museum", "entertainment.culture", "tourism.attraction"},
		category:    activity.CategoryCulture,
		icon:        "🏛️",
		durationMin: 180,
		moods:       []activity.Mood{activity.MoodProductive, activity.MoodHappy},
		fallback:    "Explore culture and history at this museum",
	},
	KindFitness: {
		geoapify:    []string{"sport.fitness", "sport.swimming_pool", "sport.sports_centre"},
		category:    activity.CategoryFitness,
		icon:        "💪",
		durationMin: 90,
		moods:       []activity.Mood{activity.MoodEnergetic, activity.MoodProductive},
		fallback:    "Stay active with a workout session",
	},
	KindShopping: {
		geoapify:    []string{"commercial.shopping_mall", "commercial.marketplace", "commercial.department_store"},
		category:    activity.CategoryShopping,
		icon:        "🛍️",
		durationMin: 120,
		moods:       []activity.Mood{activity.MoodHappy, activity.MoodSocial},
		fallback:    "Browse shops and discover new finds",
	},
	KindEntertainment: {
		geoapify:    []string{"entertainment.cinema", "entertainment", "entertainment.activity_park"},
		category:    activity.CategoryShows,
		icon:        "🎬",
		durationMin: 150,
		moods:       []activity.Mood{activity.MoodRelaxed, activity.MoodHappy},
		fallback:    "Enjoy entertainment and activities",
	},
	KindAttraction: {
		geoapify:    []string{"tourism.attraction", "tourism.sights", "entertainment.zoo"},
		category:    activity.CategoryAdventure,
		icon:        "🎢",
		durationMin: 240,
		moods:       []activity.Mood{activity.MoodAdventurous, activity.MoodEnergetic},
		fallback:    "Experience this popular local attraction",
	},
}

// categoriesFor flattens the kinds into a Geoapify category filter value.
// Unknown kinds are ignored; an empty kind list yields the broad default set.
func categoriesFor(kinds []Kind) string {
	var cats []string
	for _, k := range kinds {
		if m, ok := kindMappings[k]; ok {
			cats = append(cats, m.geoapify...)
		}
	}
	if len(cats) == 0 {
		cats = []string{
			"catering.restaurant", "catering.cafe", "leisure.park",
			"entertainment.museum", "sport.fitness", "commercial.shopping_mall",
			"entertainment.cinema", "tourism.attraction",
		}
	}
	return strings.Join(cats, ",")
}

// classify maps a place's Geoapify categories back to a kind, in mapping
// order, defaulting to restaurant.
func classify(categories []string) Kind {
	for _, k := range Kinds {
		m := kindMappings[k]
		for _, want := range m.geoapify {
			for _, got := range categories {
				if got == want {
					return k
				}
			}
		}
	}
	return KindRestaurant
}

// ToActivity synthesizes a schedulable activity from a place. The result is
// marked location-based so scheduling snapshots it onto the placement.
func ToActivity(p Place) activity.Activity {
	kind := classify(p.Categories)
	m := kindMappings[kind]

	return activity.Activity{
		ID:            "loc-" + p.ID,
		Name:          p.Name,
		Category:      m.category,
		Description:   describe(p, m),
		DurationMin:   m.durationMin,
		Icon:          m.icon,
		Moods:         append([]activity.Mood(nil), m.moods...),
		Flexible:      true,
		Tags:          []string{"nearby"},
		Color:         "#3B82F6",
		LocationBased: true,
		Location: &activity.Location{
			Name:    p.Name,
			Address: p.Address,
			Lat:     p.Lat,
			Lng:     p.Lng,
		},
	}
}

// describe builds a short description from the place's own data, falling
// back to the kind's stock text.
func describe(p Place, m kindMapping) string {
	var parts []string

	var cats []string
	for _, c := range p.Categories {
		if i := strings.LastIndex(c, "."); i >= 0 {
			c = c[i+1:]
		}
		cats = append(cats, strings.ReplaceAll(c, "_", " "))
		if len(cats) == 2 {
			break
		}
	}
	if len(cats) > 0 {
		parts = append(parts, strings.Join(cats, ", "))
	}

	var contact []string
	if p.Phone != "" {
		contact = append(contact, "📞")
	}
	if p.Website != "" {
		contact = append(contact, "🌐")
	}
	if len(contact) > 0 {
		parts = append(parts, strings.Join(contact, " "))
	}

	if strings.Contains(strings.ToLower(p.OpenHours), "24") {
		parts = append(parts, "24h")
	}

	if len(parts) == 0 {
		return m.fallback
	}
	return strings.Join(parts, " • ")
}
