package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/festivals-morocco/services/events/internal/models"
	"example.com/festivals-morocco/services/events/internal/normalize"
)

func testEvent(id, name, city, region, date string, status models.Status, genres ...string) models.Event {
	return models.Event{
		ID:         id,
		Name:       name,
		Slug:       normalize.Slugify(name),
		EventType:  models.TypeFestival,
		StartDate:  date,
		City:       city,
		CitySlug:   normalize.Slugify(city),
		Region:     region,
		RegionSlug: normalize.Slugify(region),
		Genres:     genres,
		Artists:    []string{},
		Status:     status,
	}
}

func testStore() *Store {
	return NewStore([]models.Event{
		testEvent("gnaoua-2025", "Festival Gnaoua", "Essaouira", "Marrakech-Safi", "2025-06-26", models.StatusConfirmed, "Gnawa", "World Music", "Jazz"),
		testEvent("mawazine-2025", "Mawazine", "Rabat", "Rabat-Sale-Kenitra", "2025-06-20", models.StatusAnnounced, "Pop", "Hip Hop"),
		testEvent("tanjazz-2025", "Tanjazz", "Tangier", "Tanger-Tetouan-Al Hoceima", "2025-09-18", models.StatusAnnounced, "Jazz", "Blues"),
		testEvent("oldie-2025", "Printemps Musical", "Rabat", "Rabat-Sale-Kenitra", "2025-05-01", models.StatusConfirmed, "Classical"),
		testEvent("cancelled-2025", "Ghost Fest", "Rabat", "Rabat-Sale-Kenitra", "2025-07-01", models.StatusCancelled, "Rock"),
	})
}

func TestByCity(t *testing.T) {
	s := testStore()

	essaouira := s.ByCity("essaouira")
	require.Len(t, essaouira, 1)
	assert.Equal(t, "gnaoua-2025", essaouira[0].ID)

	assert.Len(t, s.ByCity("rabat"), 3)
	assert.Empty(t, s.ByCity("agadir"))
	assert.Empty(t, NewStore(nil).ByCity("rabat"), "empty store yields empty sequence")
}

func TestByGenre(t *testing.T) {
	s := testStore()

	assert.Len(t, s.ByGenre("jazz"), 2)
	assert.Len(t, s.ByGenre("JAZZ"), 2, "genre matching is case-insensitive")

	// Slug form matches too
	hipHop := s.ByGenre("hip-hop")
	require.Len(t, hipHop, 1)
	assert.Equal(t, "mawazine-2025", hipHop[0].ID)

	assert.Empty(t, s.ByGenre("metal"))
}

func TestByMonth(t *testing.T) {
	s := testStore()

	june := s.ByMonth(2025, 6)
	assert.Len(t, june, 2)

	may := s.ByMonth(2025, 5)
	require.Len(t, may, 1)
	assert.Equal(t, "oldie-2025", may[0].ID)

	assert.Empty(t, s.ByMonth(2024, 6))
}

func TestUpcoming(t *testing.T) {
	s := testStore()

	upcoming := s.Upcoming("2025-06-01")
	ids := make([]string, 0, len(upcoming))
	for _, e := range upcoming {
		ids = append(ids, e.ID)
	}

	assert.Contains(t, ids, "gnaoua-2025", "confirmed event after the reference date is included")
	assert.Contains(t, ids, "mawazine-2025")
	assert.Contains(t, ids, "tanjazz-2025")
	assert.NotContains(t, ids, "oldie-2025", "event before the reference date is excluded")
	assert.NotContains(t, ids, "cancelled-2025", "cancelled events are never upcoming")

	// Start date equal to the reference date counts as upcoming.
	sameDay := s.Upcoming("2025-06-26")
	assert.Contains(t, collectIDs(sameDay), "gnaoua-2025")
}

func collectIDs(events []models.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestBySlugOrID(t *testing.T) {
	s := testStore()

	bySlug, ok := s.BySlugOrID("festival-gnaoua")
	require.True(t, ok)
	assert.Equal(t, "gnaoua-2025", bySlug.ID)

	byID, ok := s.BySlugOrID("tanjazz-2025")
	require.True(t, ok)
	assert.Equal(t, "Tanjazz", byID.Name)

	_, ok = s.BySlugOrID("nonexistent-event")
	assert.False(t, ok)
}

func TestBySlugOrIDCollisionFirstWins(t *testing.T) {
	a := testEvent("first", "Same Name", "Rabat", "R", "2025-01-01", models.StatusAnnounced)
	b := testEvent("second", "Same Name", "Rabat", "R", "2025-02-01", models.StatusAnnounced)
	s := NewStore([]models.Event{a, b})

	got, ok := s.BySlugOrID("same-name")
	require.True(t, ok)
	assert.Equal(t, "first", got.ID)
}

func TestDistinctCities(t *testing.T) {
	cities := testStore().DistinctCities()
	require.Len(t, cities, 3)

	assert.Equal(t, "rabat", cities[0].Slug)
	assert.Equal(t, 3, cities[0].Count)
	assert.Equal(t, "Rabat-Sale-Kenitra", cities[0].Region)

	// Ties keep first-seen order.
	assert.Equal(t, "essaouira", cities[1].Slug)
	assert.Equal(t, "tangier", cities[2].Slug)
}

func TestDistinctGenres(t *testing.T) {
	genres := testStore().DistinctGenres()
	require.NotEmpty(t, genres)

	assert.Equal(t, "jazz", genres[0].Slug)
	assert.Equal(t, 2, genres[0].Count)

	for _, g := range genres[1:] {
		assert.LessOrEqual(t, g.Count, genres[0].Count)
	}
}

func TestDistinctRegions(t *testing.T) {
	regions := testStore().DistinctRegions()
	require.Len(t, regions, 3)
	assert.Equal(t, "rabat-sale-kenitra", regions[0].Slug)
	assert.Equal(t, 3, regions[0].Count)
}
