package models

// EventType classifies an event record.
type EventType string

const (
	TypeFestival   EventType = "festival"
	TypeConcert    EventType = "concert"
	TypeShowcase   EventType = "showcase"
	TypeRitual     EventType = "ritual"
	TypeConference EventType = "conference"
)

// Status tracks the publication state of an event.
type Status string

const (
	StatusAnnounced Status = "announced"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusArchived  Status = "archived"
)

// ParseEventType coerces a raw cell value to a known event type.
// Unrecognized values fall back to "concert".
func ParseEventType(raw string) EventType {
	switch EventType(raw) {
	case TypeFestival, TypeConcert, TypeShowcase, TypeRitual, TypeConference:
		return EventType(raw)
	}
	return TypeConcert
}

// ParseStatus coerces a raw cell value to a known status.
// Unrecognized values fall back to "announced".
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusAnnounced, StatusConfirmed, StatusCancelled, StatusArchived:
		return Status(raw)
	}
	return StatusAnnounced
}

// Event is the canonical normalized record. Dates are ISO YYYY-MM-DD
// strings; the fixed-width zero-padded format is what makes lexicographic
// comparison valid throughout the catalog. Optional fields are pointers so
// they serialize as JSON null rather than empty strings.
type Event struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Slug                 string    `json:"slug"`
	EventType            EventType `json:"event_type"`
	StartDate            string    `json:"start_date"`
	EndDate              *string   `json:"end_date"`
	City                 string    `json:"city"`
	CitySlug             string    `json:"city_slug"`
	Region               string    `json:"region"`
	RegionSlug           string    `json:"region_slug"`
	Venue                *string   `json:"venue"`
	Genres               []string  `json:"genres"`
	Artists              []string  `json:"artists"`
	Organizer            *string   `json:"organizer"`
	OfficialWebsite      *string   `json:"official_website"`
	TicketURL            *string   `json:"ticket_url"`
	Status               Status    `json:"status"`
	IsVerified           bool      `json:"is_verified"`
	IsPinned             bool      `json:"is_pinned"`
	CulturalSignificance float64   `json:"cultural_significance"`
	Description          *string   `json:"description"`
	ImageURL             *string   `json:"image_url"`
}

// CityCount is a distinct-city aggregate with the number of events held
// there. Region rides along for city listing pages.
type CityCount struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// GenreCount is a distinct-genre aggregate.
type GenreCount struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// RegionCount is a distinct-region aggregate.
type RegionCount struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}
