package scheduling

// ShiftTemplate is a named, fixed daily window that concrete shifts are
// instantiated from. Hours are on the 24h clock; a template covers
// [StartHour, EndHour).
type ShiftTemplate struct {
	Name      string
	StartHour int
	EndHour   int
	// Length is the nominal shift length in hours. Usually EndHour-StartHour,
	// but kept separate so a template can advertise a shorter paid window.
	Length   int
	Category string
}

// Tables holds the static configuration the engine is parameterized by.
// These are injected per run and never mutated, so deployments can customize
// templates, aliases and preferences without code changes.
type Tables struct {
	// Templates by name
	Templates map[string]ShiftTemplate

	// WindowOrder is the deterministic order in which the meal windows are
	// considered when decomposing a day's demand into shift patterns.
	WindowOrder []string

	// RoleOrder fixes the scan order for alias resolution so that a position
	// title can never land in two role buckets.
	RoleOrder []string

	// RoleAliases maps a generic role to the concrete position titles that
	// can fill it, in priority order.
	RoleAliases map[string][]string

	// RolePreferences maps a role to the template names it should be
	// provisioned under. Roles preferring only non-window templates (e.g.
	// managers) get those instantiated instead of the meal windows.
	RolePreferences map[string][]string
}

// DefaultTables returns the built-in restaurant configuration
func DefaultTables() Tables {
	return Tables{
		Templates: map[string]ShiftTemplate{
			"breakfast":   {Name: "breakfast", StartHour: 9, EndHour: 13, Length: 4, Category: "opening"},
			"lunch":       {Name: "lunch", StartHour: 11, EndHour: 15, Length: 4, Category: "midday"},
			"dinner":      {Name: "dinner", StartHour: 17, EndHour: 21, Length: 4, Category: "evening"},
			"late_dinner": {Name: "late_dinner", StartHour: 18, EndHour: 23, Length: 5, Category: "closing"},
			"extended":    {Name: "extended", StartHour: 12, EndHour: 21, Length: 9, Category: "double"},
			"management":  {Name: "management", StartHour: 10, EndHour: 18, Length: 8, Category: "office"},
		},
		WindowOrder: []string{"breakfast", "lunch", "dinner", "late_dinner"},
		RoleOrder:   []string{"Manager", "Server", "Cook", "Bartender", "Host", "Busser", "Dishwasher"},
		RoleAliases: map[string][]string{
			"Manager":    {"Manager", "General Manager", "Assistant Manager", "Shift Manager"},
			"Server":     {"Server", "Head Server", "Waiter", "Waitress"},
			"Cook":       {"Cook", "Line Cook", "Sous Chef", "Chef", "Prep Cook"},
			"Bartender":  {"Bartender", "Barback"},
			"Host":       {"Host", "Hostess", "Maitre D"},
			"Busser":     {"Busser", "Food Runner"},
			"Dishwasher": {"Dishwasher"},
		},
		RolePreferences: map[string][]string{
			"Manager":    {"management", "extended"},
			"Server":     {"breakfast", "lunch", "dinner", "late_dinner"},
			"Cook":       {"breakfast", "lunch", "dinner", "late_dinner"},
			"Bartender":  {"lunch", "dinner", "late_dinner"},
			"Host":       {"lunch", "dinner", "late_dinner"},
			"Busser":     {"lunch", "dinner", "late_dinner"},
			"Dishwasher": {"lunch", "dinner", "late_dinner"},
		},
	}
}

// RoleForPosition resolves a concrete position title to its role bucket.
// Roles are scanned in RoleOrder and the first alias match wins, so a title
// appearing in two alias lists deterministically lands in the earlier role.
// Returns "" if no role claims the position.
func (t Tables) RoleForPosition(position string) string {
	for _, role := range t.RoleOrder {
		for _, alias := range t.RoleAliases[role] {
			if alias == position {
				return role
			}
		}
	}
	return ""
}

// prefersTemplate reports whether the role should be provisioned under the
// named template. Roles with no preference list accept any meal window.
func (t Tables) prefersTemplate(role, template string) bool {
	prefs, ok := t.RolePreferences[role]
	if !ok {
		return true
	}
	for _, p := range prefs {
		if p == template {
			return true
		}
	}
	return false
}

// windowTemplate reports whether the named template is one of the meal
// windows used for demand bucketing.
func (t Tables) windowTemplate(name string) bool {
	for _, w := range t.WindowOrder {
		if w == name {
			return true
		}
	}
	return false
}
