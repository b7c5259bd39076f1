package activity

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Len() == 0 {
		t.Fatal("expected non-empty catalog")
	}

	for _, a := range c.All() {
		if err := a.Validate(); err != nil {
			t.Errorf("catalog entry %q invalid: %v", a.ID, err)
		}
	}

	t.Run("lookup by id", func(t *testing.T) {
		a, ok := c.ByID("hiking-trail")
		if !ok {
			t.Fatal("expected hiking-trail in catalog")
		}
		if a.DurationMin != 180 {
			t.Errorf("expected 180 minute duration, got %d", a.DurationMin)
		}
		if a.Category != CategoryOutdoor {
			t.Errorf("expected outdoor category, got %s", a.Category)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, ok := c.ByID("does-not-exist"); ok {
			t.Error("expected lookup miss")
		}
	})
}

func TestCatalog_Filter(t *testing.T) {
	c := Default()

	t.Run("by category", func(t *testing.T) {
		food := c.Filter(CategoryFood, "")
		if len(food) == 0 {
			t.Fatal("expected food activities")
		}
		for _, a := range food {
			if a.Category != CategoryFood {
				t.Errorf("expected food category, got %s for %s", a.Category, a.ID)
			}
		}
	})

	t.Run("by mood", func(t *testing.T) {
		cozy := c.Filter("", MoodCozy)
		if len(cozy) == 0 {
			t.Fatal("expected cozy activities")
		}
		for _, a := range cozy {
			if !a.HasMood(MoodCozy) {
				t.Errorf("activity %s does not carry cozy mood", a.ID)
			}
		}
	})

	t.Run("category and mood", func(t *testing.T) {
		for _, a := range c.Filter(CategoryOutdoor, MoodRelaxed) {
			if a.Category != CategoryOutdoor || !a.HasMood(MoodRelaxed) {
				t.Errorf("activity %s does not match filter", a.ID)
			}
		}
	})

	t.Run("no match", func(t *testing.T) {
		if got := c.Filter(CategoryDining, MoodCozy); len(got) != 0 {
			t.Errorf("expected no matches, got %d", len(got))
		}
	})
}

func TestActivity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		a       Activity
		wantErr error
	}{
		{name: "valid", a: Activity{ID: "x", Name: "X", DurationMin: 30}, wantErr: nil},
		{name: "empty name", a: Activity{ID: "x", DurationMin: 30}, wantErr: ErrEmptyName},
		{name: "zero duration", a: Activity{ID: "x", Name: "X"}, wantErr: ErrInvalidDuration},
		{name: "negative duration", a: Activity{ID: "x", Name: "X", DurationMin: -5}, wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.a.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTemplates(t *testing.T) {
	c := Default()

	for _, tpl := range Templates() {
		t.Run(tpl.ID, func(t *testing.T) {
			if !tpl.Theme.Valid() {
				t.Errorf("template %s has invalid theme %q", tpl.ID, tpl.Theme)
			}
			for _, id := range tpl.Suggested {
				if _, ok := c.ByID(id); !ok {
					t.Errorf("template %s suggests unknown activity %q", tpl.ID, id)
				}
			}
		})
	}

	t.Run("lookup", func(t *testing.T) {
		if _, ok := TemplateByID("lazy-weekend"); !ok {
			t.Error("expected lazy-weekend template")
		}
		if _, ok := TemplateByID("nope"); ok {
			t.Error("expected lookup miss")
		}
	})
}

func TestUnresolved(t *testing.T) {
	a := Unresolved("loc-gone")
	if a.ID != "loc-gone" {
		t.Errorf("expected id to carry through, got %q", a.ID)
	}
	if a.Name != "Unknown Activity" {
		t.Errorf("expected placeholder name, got %q", a.Name)
	}
	if a.DurationMin != 60 {
		t.Errorf("expected 60 minute default, got %d", a.DurationMin)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("placeholder must validate: %v", err)
	}
}
