// Package pickup maps an ordering role and the current weather to the number
// of minutes until the order is due for pickup.
package pickup

import "campus-food-api/models"

const (
	// DefaultMinutes applies to any role without its own slot, admins included
	DefaultMinutes = 45
	// BadWeatherExtension is added on top of the role slot when the weather is bad
	BadWeatherExtension = 15
)

var roleMinutes = map[models.UserRole]int{
	models.RoleHOD:     15,
	models.RoleFaculty: 30,
	models.RoleStudent: 45,
}

// Minutes returns the pickup slot length for role, extended when isBad
func Minutes(role models.UserRole, isBad bool) int {
	minutes, ok := roleMinutes[role]
	if !ok {
		minutes = DefaultMinutes
	}
	if isBad {
		minutes += BadWeatherExtension
	}
	return minutes
}
