package model

// Snapshot is the full-store export/import shape. The same document feeds
// the seeding bootstrapper.
type Snapshot struct {
	Rooms    []Room    `json:"rooms"`
	Assets   []Asset   `json:"assets"`
	Bookings []Booking `json:"bookings"`
}
