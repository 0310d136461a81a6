package domain

import "time"

// Subscriber identifies one alert subscription.
type Subscriber struct {
	RoomID string `json:"room_id"`
	UserID string `json:"user_id"`
}

// AlertNotification announces an upcoming activity window.
type AlertNotification struct {
	RoomID      string         `json:"room_id"`
	UserID      string         `json:"user_id"`
	DisplayName string         `json:"display_name"`
	Activity    Activity       `json:"activity"`
	Window      ActivityWindow `json:"window"`
	StartsAt    time.Time      `json:"starts_at"`
	LeadMinutes int            `json:"lead_minutes"`
}
