package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/festivals-morocco/services/events/internal/models"
)

func fullRow() []string {
	return []string{
		"gnaoua-2025",
		"Festival Gnaoua et Musiques du Monde",
		"festival",
		"2025-06-26",
		"2025-06-29",
		"Essaouira",
		"Marrakech-Safi",
		"Place Moulay Hassan",
		"Gnawa, World Music, Jazz",
		"Maalem Hamid El Kasri, Hindi Zahra",
		"Association Yerma Gnaoua",
		"https://festival-gnaoua.net",
		"https://festival-gnaoua.net/billetterie",
		"confirmed",
		"TRUE",
		"yes",
		"10",
		"Annual celebration of Gnawa music and culture.",
		"",
	}
}

func TestEventFromRow(t *testing.T) {
	event, ok := EventFromRow(fullRow(), 1)
	require.True(t, ok)

	assert.Equal(t, "gnaoua-2025", event.ID)
	assert.Equal(t, "festival-gnaoua-et-musiques-du-monde", event.Slug)
	assert.Equal(t, models.TypeFestival, event.EventType)
	assert.Equal(t, "essaouira", event.CitySlug)
	assert.Equal(t, "marrakech-safi", event.RegionSlug)
	assert.Equal(t, []string{"Gnawa", "World Music", "Jazz"}, event.Genres)
	assert.Equal(t, []string{"Maalem Hamid El Kasri", "Hindi Zahra"}, event.Artists)
	assert.Equal(t, models.StatusConfirmed, event.Status)
	assert.True(t, event.IsVerified)
	assert.True(t, event.IsPinned)
	assert.Equal(t, 10.0, event.CulturalSignificance)

	require.NotNil(t, event.Venue)
	assert.Equal(t, "Place Moulay Hassan", *event.Venue)
	assert.Nil(t, event.ImageURL, "empty cells normalize to nil, not empty string")
}

func TestEventFromRowSynthesizesID(t *testing.T) {
	row := fullRow()
	row[colID] = ""

	event, ok := EventFromRow(row, 7)
	require.True(t, ok)
	assert.Equal(t, "event-7", event.ID)
}

func TestEventFromRowDropsMandatoryBlanks(t *testing.T) {
	noName := fullRow()
	noName[colName] = ""
	_, ok := EventFromRow(noName, 1)
	assert.False(t, ok, "blank name must drop the row")

	noDate := fullRow()
	noDate[colStartDate] = ""
	_, ok = EventFromRow(noDate, 1)
	assert.False(t, ok, "blank start date must drop the row")
}

func TestEventFromRowEnumFallbacks(t *testing.T) {
	row := fullRow()
	row[colEventType] = "rave"
	row[colStatus] = "tentative"

	event, ok := EventFromRow(row, 1)
	require.True(t, ok)
	assert.Equal(t, models.TypeConcert, event.EventType)
	assert.Equal(t, models.StatusAnnounced, event.Status)
}

func TestEventFromRowShortRow(t *testing.T) {
	// Trailing blank cells are omitted by the sheets API; a row holding only
	// the mandatory columns must still map.
	row := []string{"", "Jazz au Chefchaouen", "", "2025-08-07"}

	event, ok := EventFromRow(row, 3)
	require.True(t, ok)
	assert.Equal(t, "event-3", event.ID)
	assert.Equal(t, models.TypeConcert, event.EventType)
	assert.Empty(t, event.Genres)
	assert.Nil(t, event.EndDate)
	assert.Equal(t, "", event.CitySlug)
}

func TestEventsFromRowsSkipsHeader(t *testing.T) {
	rows := [][]string{
		{"id", "name", "event_type", "start_date"},
		fullRow(),
		{"", "", "", "2025-01-01"}, // dropped: no name
	}

	events := EventsFromRows(rows)
	require.Len(t, events, 1)
	assert.Equal(t, "gnaoua-2025", events[0].ID)

	assert.Empty(t, EventsFromRows(nil))
	assert.Empty(t, EventsFromRows([][]string{{"id", "name"}}))
}

func TestEventFromSeedRecomputesSlugs(t *testing.T) {
	event, ok := EventFromSeed(SeedEvent{
		ID:        "jardin-des-arts-2025",
		Name:      "Festival du Jardin des Arts",
		EventType: "festival",
		StartDate: "2025-05-15",
		City:      "Tétouan",
		Region:    "Tanger-Tétouan-Al Hoceïma",
		Genres:    []string{"Andalusian", "Classical"},
	})
	require.True(t, ok)

	assert.Equal(t, "festival-du-jardin-des-arts", event.Slug)
	assert.Equal(t, "tetouan", event.CitySlug)
	assert.Equal(t, "tanger-tetouan-al-hoceima", event.RegionSlug)
	assert.Nil(t, event.Organizer)
	assert.Equal(t, []string{}, event.Artists, "nil artist list normalizes to empty")
}
