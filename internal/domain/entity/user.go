package entity

// User is an account known to the backend.
type User struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         Role    `json:"role"`
	AssignedCity *string `json:"assignedCity,omitempty"`
}

// City returns the assigned city, or empty when the user is unscoped.
func (u User) City() string {
	if u.AssignedCity == nil {
		return ""
	}

	return *u.AssignedCity
}

// Cities returns the distinct cities of the given locations in first-seen order.
func Cities(locations []Location) []string {
	seen := make(map[string]struct{}, len(locations))
	cities := make([]string, 0)

	for _, l := range locations {
		if l.City == "" {
			continue
		}

		if _, ok := seen[l.City]; ok {
			continue
		}

		seen[l.City] = struct{}{}
		cities = append(cities, l.City)
	}

	return cities
}
