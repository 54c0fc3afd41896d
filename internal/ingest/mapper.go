package ingest

import (
	"fmt"

	"example.com/festivals-morocco/services/events/internal/models"
	"example.com/festivals-morocco/services/events/internal/normalize"
)

// Column positions in the Events tab. The sheet is positional: rows are
// arrays of string cells and this ordering is the contract with the
// spreadsheet maintainers.
const (
	colID = iota
	colName
	colEventType
	colStartDate
	colEndDate
	colCity
	colRegion
	colVenue
	colGenres
	colArtists
	colOrganizer
	colOfficialWebsite
	colTicketURL
	colStatus
	colIsVerified
	colIsPinned
	colCulturalSignificance
	colDescription
	colImageURL
)

// SeedEvent is the loosely-typed shape of an embedded seed entry. Slugs are
// deliberately absent: they are always recomputed during mapping so seed and
// sheet records go through the exact same normalization path.
type SeedEvent struct {
	ID                   string
	Name                 string
	EventType            string
	StartDate            string
	EndDate              string
	City                 string
	Region               string
	Venue                string
	Genres               []string
	Artists              []string
	Organizer            string
	OfficialWebsite      string
	TicketURL            string
	Status               string
	IsVerified           bool
	IsPinned             bool
	CulturalSignificance float64
	Description          string
	ImageURL             string
}

// fields is the common funnel both adapters feed into, so validation,
// defaulting and slug derivation happen in exactly one place.
type fields struct {
	id, name, eventType, startDate, endDate string
	city, region, venue                     string
	genres, artists                         []string
	organizer, website, ticketURL           string
	status                                  string
	isVerified, isPinned                    bool
	significance                            float64
	description, imageURL                   string
}

// cell reads a column defensively: short rows behave as if the missing
// cells were empty, matching how the spreadsheet API omits trailing blanks.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// build produces the canonical record, or ok=false when the row is missing
// a mandatory field (name or start date) and must be dropped. Slugs are
// always derived from the display strings, never taken from upstream.
func build(f fields) (models.Event, bool) {
	if f.name == "" || f.startDate == "" {
		return models.Event{}, false
	}

	return models.Event{
		ID:                   f.id,
		Name:                 f.name,
		Slug:                 normalize.Slugify(f.name),
		EventType:            models.ParseEventType(f.eventType),
		StartDate:            f.startDate,
		EndDate:              optional(f.endDate),
		City:                 f.city,
		CitySlug:             normalize.Slugify(f.city),
		Region:               f.region,
		RegionSlug:           normalize.Slugify(f.region),
		Venue:                optional(f.venue),
		Genres:               f.genres,
		Artists:              f.artists,
		Organizer:            optional(f.organizer),
		OfficialWebsite:      optional(f.website),
		TicketURL:            optional(f.ticketURL),
		Status:               models.ParseStatus(f.status),
		IsVerified:           f.isVerified,
		IsPinned:             f.isPinned,
		CulturalSignificance: f.significance,
		Description:          optional(f.description),
		ImageURL:             optional(f.imageURL),
	}, true
}

// EventFromRow maps one positional data row. rowIndex is the 1-based
// position of the row within the data rows and seeds the synthesized id
// ("event-{n}") when the id cell is blank.
func EventFromRow(row []string, rowIndex int) (models.Event, bool) {
	id := cell(row, colID)
	if id == "" {
		id = fmt.Sprintf("event-%d", rowIndex)
	}

	return build(fields{
		id:           id,
		name:         cell(row, colName),
		eventType:    cell(row, colEventType),
		startDate:    cell(row, colStartDate),
		endDate:      cell(row, colEndDate),
		city:         cell(row, colCity),
		region:       cell(row, colRegion),
		venue:        cell(row, colVenue),
		genres:       normalize.ParseList(cell(row, colGenres)),
		artists:      normalize.ParseList(cell(row, colArtists)),
		organizer:    cell(row, colOrganizer),
		website:      cell(row, colOfficialWebsite),
		ticketURL:    cell(row, colTicketURL),
		status:       cell(row, colStatus),
		isVerified:   normalize.ParseBool(cell(row, colIsVerified)),
		isPinned:     normalize.ParseBool(cell(row, colIsPinned)),
		significance: normalize.ParseNumber(cell(row, colCulturalSignificance), 0),
		description:  cell(row, colDescription),
		imageURL:     cell(row, colImageURL),
	})
}

// EventsFromRows maps a whole tab. The first row is always the header and
// is skipped; rows failing the mandatory-field check are dropped silently.
func EventsFromRows(rows [][]string) []models.Event {
	if len(rows) <= 1 {
		return []models.Event{}
	}

	events := make([]models.Event, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if event, ok := EventFromRow(row, i+1); ok {
			events = append(events, event)
		}
	}
	return events
}

// EventFromSeed maps one embedded seed entry through the same funnel as
// sheet rows.
func EventFromSeed(seed SeedEvent) (models.Event, bool) {
	genres := seed.Genres
	if genres == nil {
		genres = []string{}
	}
	artists := seed.Artists
	if artists == nil {
		artists = []string{}
	}

	return build(fields{
		id:           seed.ID,
		name:         seed.Name,
		eventType:    seed.EventType,
		startDate:    seed.StartDate,
		endDate:      seed.EndDate,
		city:         seed.City,
		region:       seed.Region,
		venue:        seed.Venue,
		genres:       genres,
		artists:      artists,
		organizer:    seed.Organizer,
		website:      seed.OfficialWebsite,
		ticketURL:    seed.TicketURL,
		status:       seed.Status,
		isVerified:   seed.IsVerified,
		isPinned:     seed.IsPinned,
		significance: seed.CulturalSignificance,
		description:  seed.Description,
		imageURL:     seed.ImageURL,
	})
}

// EventsFromSeeds maps the embedded dataset, applying the same drop rule.
func EventsFromSeeds(seeds []SeedEvent) []models.Event {
	events := make([]models.Event, 0, len(seeds))
	for _, seed := range seeds {
		if event, ok := EventFromSeed(seed); ok {
			events = append(events, event)
		}
	}
	return events
}
