package scheduling

import (
	"math"
	"sort"
)

// ShiftRequirement is one (template, role) slot demand for a single day
type ShiftRequirement struct {
	Template ShiftTemplate
	Role     string
	Count    int
}

// DeterminePatterns decomposes one day's per-role hourly demand into
// concrete shift requirements.
//
// The meal windows overlap on purpose (lunch 11-15 vs breakfast 9-13,
// dinner 17-21 vs late 18-23): a role that is busy across a boundary gets
// slots in both instantiated templates, and that double-provisioning is
// preserved rather than deduplicated. It is a separate effect from the
// per-hour floor applied in HourlyRoleDemand.
//
// Each (window, role) with any demand inside the window yields
// max(1, round(average demand over the window)) slots. Roles whose
// preferences name none of the meal windows (managers) instead get their
// first preferred template whenever they have demand that day.
//
// Output order is deterministic: windows in WindowOrder, roles sorted
// within each window, off-window roles last.
func DeterminePatterns(demand map[string]map[int]int, tables Tables) []ShiftRequirement {
	roles := make([]string, 0, len(demand))
	for role := range demand {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	var requirements []ShiftRequirement

	for _, name := range tables.WindowOrder {
		tpl, ok := tables.Templates[name]
		if !ok {
			continue
		}
		for _, role := range roles {
			if !tables.prefersTemplate(role, name) {
				continue
			}
			count := windowSlots(demand[role], tpl)
			if count == 0 {
				continue
			}
			requirements = append(requirements, ShiftRequirement{
				Template: tpl,
				Role:     role,
				Count:    count,
			})
		}
	}

	// Roles provisioned outside the meal windows
	for _, role := range roles {
		name := offWindowTemplate(tables, role)
		if name == "" {
			continue
		}
		tpl, ok := tables.Templates[name]
		if !ok {
			continue
		}
		count := windowSlots(demand[role], tpl)
		if count == 0 {
			// Demand exists for the role but falls outside the template
			// window; still provision the floor of one.
			count = 1
		}
		requirements = append(requirements, ShiftRequirement{
			Template: tpl,
			Role:     role,
			Count:    count,
		})
	}

	return requirements
}

// windowSlots returns max(1, round(average demand across the window)) when
// the role has any demand inside the window, 0 otherwise.
func windowSlots(roleDemand map[int]int, tpl ShiftTemplate) int {
	windowLen := tpl.EndHour - tpl.StartHour
	if windowLen <= 0 {
		return 0
	}

	total := 0
	seen := false
	for hour := tpl.StartHour; hour < tpl.EndHour; hour++ {
		if n, ok := roleDemand[hour]; ok && n > 0 {
			total += n
			seen = true
		}
	}
	if !seen {
		return 0
	}

	avg := float64(total) / float64(windowLen)
	return int(math.Max(1, math.Round(avg)))
}

// offWindowTemplate returns the first preferred template for a role whose
// preference list contains no meal window, or "" if the role is served by
// the window decomposition.
func offWindowTemplate(tables Tables, role string) string {
	prefs, ok := tables.RolePreferences[role]
	if !ok {
		return ""
	}
	for _, p := range prefs {
		if tables.windowTemplate(p) {
			return ""
		}
	}
	if len(prefs) == 0 {
		return ""
	}
	return prefs[0]
}
