package activities

import "codeberg.org/zenfocus/server/zenfocus/activities"

// LogActivityResponse returned after logging an activity
type LogActivityResponse struct {
	Message  string               `json:"message"`
	Activity *activities.Activity `json:"activity"`
}

// ActivitiesResponse wraps a list of activities
type ActivitiesResponse struct {
	Activities []activities.Activity `json:"activities"`
}
