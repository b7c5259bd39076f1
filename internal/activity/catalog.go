package activity

// Catalog holds the set of known activities, indexed by id.
type Catalog struct {
	activities []Activity
	byID       map[string]Activity
}

// NewCatalog builds a catalog from a slice of activities.
func NewCatalog(activities []Activity) *Catalog {
	byID := make(map[string]Activity, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
	}
	return &Catalog{activities: activities, byID: byID}
}

// Default returns the built-in activity catalog.
func Default() *Catalog {
	return NewCatalog(builtin)
}

// ByID looks up an activity by id.
func (c *Catalog) ByID(id string) (Activity, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// All returns a copy of every catalog entry.
func (c *Catalog) All() []Activity {
	out := make([]Activity, len(c.activities))
	copy(out, c.activities)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.activities)
}

// Filter returns activities matching the given category and mood.
// Empty values match everything.
func (c *Catalog) Filter(category Category, mood Mood) []Activity {
	var out []Activity
	for _, a := range c.activities {
		if category != "" && a.Category != category {
			continue
		}
		if mood != "" && !a.HasMood(mood) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Template is a curated weekend starting point: a theme plus suggested
// activity ids, split across the two days in listed order.
type Template struct {
	ID          string
	Name        string
	Description string
	Theme       Theme
	Icon        string
	Suggested   []string // activity ids, first half Saturday, rest Sunday
}

// Templates returns the built-in weekend templates.
func Templates() []Template {
	return []Template{
		{
			ID:          "lazy-weekend",
			Name:        "Lazy Weekend",
			Description: "Slow mornings, comfort food, and zero obligations",
			Theme:       ThemeLazy,
			Icon:        "😴",
			Suggested:   []string{"brunch-cafe", "movie-night", "reading-session", "park-picnic", "spa-afternoon", "cooking-experiment"},
		},
		{
			ID:          "adventure-weekend",
			Name:        "Adventure Weekend",
			Description: "Get outside and push a little further than usual",
			Theme:       ThemeAdventurous,
			Icon:        "⛰️",
			Suggested:   []string{"hiking-trail", "farmers-market", "bike-ride", "beach-day", "live-music", "board-games"},
		},
		{
			ID:          "productive-weekend",
			Name:        "Productive Weekend",
			Description: "Tidy the house, learn something, still leave room to breathe",
			Theme:       ThemeProductive,
			Icon:        "✅",
			Suggested:   []string{"home-organizing", "online-course", "cooking-experiment", "morning-yoga", "reading-session", "journaling"},
		},
		{
			ID:          "social-weekend",
			Name:        "Social Weekend",
			Description: "Fill the weekend with people you like",
			Theme:       ThemeSocial,
			Icon:        "🎉",
			Suggested:   []string{"brunch-cafe", "board-games", "live-music", "dinner-party", "park-picnic", "museum-visit"},
		},
	}
}

// TemplateByID looks up a built-in template by id.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates() {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// builtin is the static activity catalog. Durations are nominal minutes.
var builtin = []Activity{
	{
		ID: "brunch-cafe", Name: "Brunch at Local Café", Category: CategoryFood,
		Description: "Enjoy a leisurely brunch with friends at your favorite local spot",
		DurationMin: 120, Icon: "🥐", Moods: []Mood{MoodHappy, MoodRelaxed, MoodSocial},
		Flexible: true, Tags: []string{"social", "outdoor seating", "coffee"}, Color: "#F59E0B",
	},
	{
		ID: "cooking-experiment", Name: "Try New Recipe", Category: CategoryFood,
		Description: "Experiment with a new cuisine or cooking technique",
		DurationMin: 90, Icon: "👨‍🍳", Moods: []Mood{MoodProductive, MoodCozy},
		Flexible: true, Tags: []string{"home", "creative", "learning"}, Color: "#F59E0B",
	},
	{
		ID: "farmers-market", Name: "Visit Farmers Market", Category: CategoryFood,
		Description: "Browse fresh produce and local goods",
		DurationMin: 60, Icon: "🧺", Moods: []Mood{MoodHappy, MoodEnergetic},
		Flexible: true, Tags: []string{"outdoor", "social", "healthy"}, Color: "#F59E0B",
	},
	{
		ID: "dinner-party", Name: "Host Dinner Party", Category: CategorySocial,
		Description: "Cook for friends and catch up over a long meal",
		DurationMin: 180, Icon: "🍽️", Moods: []Mood{MoodSocial, MoodHappy},
		Flexible: true, Tags: []string{"home", "food", "friends"}, Color: "#EC4899",
	},
	{
		ID: "hiking-trail", Name: "Nature Hike", Category: CategoryOutdoor,
		Description: "Explore scenic trails and connect with nature",
		DurationMin: 180, Icon: "🥾", Moods: []Mood{MoodEnergetic, MoodAdventurous},
		Flexible: true, Tags: []string{"exercise", "nature", "fresh air"}, Color: "#10B981",
	},
	{
		ID: "park-picnic", Name: "Park Picnic", Category: CategoryOutdoor,
		Description: "Relax in the park with homemade treats",
		DurationMin: 120, Icon: "🧺", Moods: []Mood{MoodRelaxed, MoodHappy},
		Flexible: true, Tags: []string{"food", "nature", "social"}, Color: "#10B981",
	},
	{
		ID: "bike-ride", Name: "Bike Ride", Category: CategoryOutdoor,
		Description: "Cycle through the city or countryside",
		DurationMin: 90, Icon: "🚴", Moods: []Mood{MoodEnergetic, MoodAdventurous},
		Flexible: true, Tags: []string{"exercise", "exploration"}, Color: "#10B981",
	},
	{
		ID: "beach-day", Name: "Beach Day", Category: CategoryOutdoor,
		Description: "Soak up the sun and enjoy the waves",
		DurationMin: 240, Icon: "🏖️", Moods: []Mood{MoodRelaxed, MoodHappy},
		Flexible: true, Tags: []string{"water", "sun", "relaxation"}, Color: "#10B981",
	},
	{
		ID: "movie-night", Name: "Movie Marathon", Category: CategoryEntertainment,
		Description: "Binge-watch your favorite series or discover new films",
		DurationMin: 180, Icon: "🍿", Moods: []Mood{MoodCozy, MoodRelaxed},
		Flexible: true, Tags: []string{"home", "comfort", "snacks"}, Color: "#8B5CF6",
	},
	{
		ID: "live-music", Name: "Live Music Event", Category: CategoryEntertainment,
		Description: "Experience live performances at a local venue",
		DurationMin: 150, Icon: "🎵", Moods: []Mood{MoodEnergetic, MoodHappy},
		Flexible: false, Tags: []string{"social", "culture", "music"}, Color: "#8B5CF6",
	},
	{
		ID: "museum-visit", Name: "Museum Visit", Category: CategoryEntertainment,
		Description: "Explore art, history, or science exhibitions",
		DurationMin: 120, Icon: "🏛️", Moods: []Mood{MoodProductive, MoodHappy},
		Flexible: true, Tags: []string{"culture", "learning", "indoor"}, Color: "#8B5CF6",
	},
	{
		ID: "board-games", Name: "Board Game Session", Category: CategorySocial,
		Description: "Gather friends for an afternoon of games",
		DurationMin: 150, Icon: "🎲", Moods: []Mood{MoodSocial, MoodHappy, MoodCozy},
		Flexible: true, Tags: []string{"home", "friends", "competitive"}, Color: "#EC4899",
	},
	{
		ID: "morning-yoga", Name: "Morning Yoga", Category: CategoryWellness,
		Description: "Start the day with stretching and mindfulness",
		DurationMin: 60, Icon: "🧘", Moods: []Mood{MoodRelaxed, MoodProductive},
		Flexible: true, Tags: []string{"exercise", "mindfulness", "morning"}, Color: "#06B6D4",
	},
	{
		ID: "spa-afternoon", Name: "Spa Afternoon", Category: CategoryWellness,
		Description: "Unwind with a massage or a long soak",
		DurationMin: 120, Icon: "💆", Moods: []Mood{MoodRelaxed, MoodCozy},
		Flexible: true, Tags: []string{"self-care", "relaxation"}, Color: "#06B6D4",
	},
	{
		ID: "painting-session", Name: "Painting Session", Category: CategoryCreative,
		Description: "Get out the brushes and make something",
		DurationMin: 90, Icon: "🎨", Moods: []Mood{MoodProductive, MoodCozy},
		Flexible: true, Tags: []string{"home", "art", "creative"}, Color: "#F97316",
	},
	{
		ID: "journaling", Name: "Journaling & Planning", Category: CategoryCreative,
		Description: "Reflect on the week and sketch out the next one",
		DurationMin: 45, Icon: "📓", Moods: []Mood{MoodProductive, MoodRelaxed},
		Flexible: true, Tags: []string{"home", "reflection"}, Color: "#F97316",
	},
	{
		ID: "online-course", Name: "Online Course Session", Category: CategoryLearning,
		Description: "Make progress on that course you keep postponing",
		DurationMin: 90, Icon: "💻", Moods: []Mood{MoodProductive},
		Flexible: true, Tags: []string{"home", "learning", "skills"}, Color: "#3B82F6",
	},
	{
		ID: "reading-session", Name: "Reading Session", Category: CategoryLearning,
		Description: "Curl up with a good book and a hot drink",
		DurationMin: 90, Icon: "📚", Moods: []Mood{MoodCozy, MoodRelaxed},
		Flexible: true, Tags: []string{"home", "quiet"}, Color: "#3B82F6",
	},
	{
		ID: "home-organizing", Name: "Home Organizing", Category: CategoryHome,
		Description: "Declutter one room and enjoy the result all week",
		DurationMin: 120, Icon: "🧹", Moods: []Mood{MoodProductive},
		Flexible: true, Tags: []string{"home", "chores"}, Color: "#6B7280",
	},
	{
		ID: "garden-work", Name: "Gardening", Category: CategoryHome,
		Description: "Tend the plants, pot something new",
		DurationMin: 90, Icon: "🪴", Moods: []Mood{MoodProductive, MoodRelaxed},
		Flexible: true, Tags: []string{"home", "outdoor", "plants"}, Color: "#6B7280",
	},
}
