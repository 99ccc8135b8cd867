package models

// Event is a campus event card.
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Attendees   int    `json:"attendees"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
}

// Announcement is a notice pinned above the events.
type Announcement struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Type  string `json:"type"`
}
