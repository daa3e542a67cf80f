package models

// DashboardStats are the admin landing-page counters. Cached and
// invalidated on project/media mutations.
type DashboardStats struct {
	Projects          int `json:"projects"`
	Media             int `json:"media"`
	NewContacts       int `json:"new_contacts"`
	PendingBookings   int `json:"pending_bookings"`
	ActiveSubscribers int `json:"active_subscribers"`
}
