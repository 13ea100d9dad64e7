package scheduling

import (
	"math"
	"sort"
)

// CoversPerServerHour is the fixed number of covers one floor staff member
// is assumed to handle per hour when translating guest volume to headcount.
const CoversPerServerHour = 4

// HourlyRoleDemand translates one day's covers curve into per-role headcount
// by hour. For every hour with covers > 0:
//
//	totalStaff = max(1, round(covers / CoversPerServerHour))
//	roleNeeded = max(1, round(totalStaff * ratio))
//
// The floor of one is intentional over-provisioning: any role with a
// non-zero ratio gets at least one slot whenever there is demand at all,
// even when the ratio alone would round to zero. With many configured roles
// this compounds, which is why the ratio table is kept small by default.
func HourlyRoleDemand(hours map[int]float64, ratios map[string]float64) map[string]map[int]int {
	demand := make(map[string]map[int]int)

	roles := make([]string, 0, len(ratios))
	for role := range ratios {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	for hour, covers := range hours {
		if covers <= 0 {
			continue
		}
		totalStaff := math.Max(1, math.Round(covers/CoversPerServerHour))

		for _, role := range roles {
			ratio := ratios[role]
			if ratio <= 0 {
				continue
			}
			needed := int(math.Max(1, math.Round(totalStaff*ratio)))
			if demand[role] == nil {
				demand[role] = make(map[int]int)
			}
			demand[role][hour] = needed
		}
	}

	return demand
}
