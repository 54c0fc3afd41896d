// Package catalog holds the normalized event snapshot and answers filtered,
// sorted queries against it.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"example.com/festivals-morocco/services/events/internal/models"
	"example.com/festivals-morocco/services/events/internal/normalize"
)

// DateLayout is the fixed-width ISO day format every date field uses.
// Zero-padding is what makes plain string comparison of dates correct.
const DateLayout = "2006-01-02"

// Store is one immutable snapshot of normalized events. It is rebuilt
// wholesale on refresh and never patched in place.
type Store struct {
	events []models.Event
}

// NewStore wraps a normalized event list. The store takes ownership of the
// slice; callers must not mutate it afterwards.
func NewStore(events []models.Event) *Store {
	if events == nil {
		events = []models.Event{}
	}
	return &Store{events: events}
}

// Events returns the full snapshot in source order.
func (s *Store) Events() []models.Event {
	return s.events
}

// Len returns the number of events held.
func (s *Store) Len() int {
	return len(s.events)
}

func (s *Store) filter(keep func(models.Event) bool) []models.Event {
	out := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// ByCity returns events whose city slug matches exactly.
func (s *Store) ByCity(citySlug string) []models.Event {
	return s.filter(func(e models.Event) bool { return e.CitySlug == citySlug })
}

// ByGenre returns events carrying the genre, matching case-insensitively
// against either the raw genre name or its slug form, so "Hip Hop",
// "hip hop" and "hip-hop" all select the same events.
func (s *Store) ByGenre(genre string) []models.Event {
	wanted := strings.ToLower(genre)
	return s.filter(func(e models.Event) bool {
		for _, g := range e.Genres {
			if strings.ToLower(g) == wanted || normalize.Slugify(g) == wanted {
				return true
			}
		}
		return false
	})
}

// ByMonth returns events starting within the given month (1-12).
func (s *Store) ByMonth(year, month int) []models.Event {
	prefix := monthPrefix(year, month)
	return s.filter(func(e models.Event) bool {
		return strings.HasPrefix(e.StartDate, prefix)
	})
}

func monthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// Upcoming returns events starting on or after referenceDate (ISO day
// string) that are still live (announced or confirmed). The reference date
// is injected so callers control "today".
func (s *Store) Upcoming(referenceDate string) []models.Event {
	return s.filter(func(e models.Event) bool {
		if e.StartDate < referenceDate {
			return false
		}
		return e.Status == models.StatusAnnounced || e.Status == models.StatusConfirmed
	})
}

// BySlugOrID looks up a single event, matching slug first and falling back
// to id. Slugs are not enforced unique; on a collision the first record in
// snapshot order wins, deterministically.
func (s *Store) BySlugOrID(key string) (models.Event, bool) {
	for _, e := range s.events {
		if e.Slug == key {
			return e, true
		}
	}
	for _, e := range s.events {
		if e.ID == key {
			return e, true
		}
	}
	return models.Event{}, false
}

// DistinctCities returns the cities present in the snapshot with event
// counts, most events first. Ties keep first-seen order.
func (s *Store) DistinctCities() []models.CityCount {
	index := make(map[string]int, len(s.events))
	cities := make([]models.CityCount, 0)

	for _, e := range s.events {
		if i, ok := index[e.CitySlug]; ok {
			cities[i].Count++
			continue
		}
		index[e.CitySlug] = len(cities)
		cities = append(cities, models.CityCount{
			Name:   e.City,
			Slug:   e.CitySlug,
			Region: e.Region,
			Count:  1,
		})
	}

	sort.SliceStable(cities, func(i, j int) bool { return cities[i].Count > cities[j].Count })
	return cities
}

// DistinctGenres returns the genres present in the snapshot with counts,
// most events first. Genre identity is the slug form, so casing variants of
// the same genre aggregate together under the first spelling seen.
func (s *Store) DistinctGenres() []models.GenreCount {
	index := make(map[string]int, len(s.events))
	genres := make([]models.GenreCount, 0)

	for _, e := range s.events {
		for _, g := range e.Genres {
			slug := normalize.Slugify(g)
			if i, ok := index[slug]; ok {
				genres[i].Count++
				continue
			}
			index[slug] = len(genres)
			genres = append(genres, models.GenreCount{Name: g, Slug: slug, Count: 1})
		}
	}

	sort.SliceStable(genres, func(i, j int) bool { return genres[i].Count > genres[j].Count })
	return genres
}

// DistinctRegions returns the regions present in the snapshot with counts,
// most events first.
func (s *Store) DistinctRegions() []models.RegionCount {
	index := make(map[string]int, len(s.events))
	regions := make([]models.RegionCount, 0)

	for _, e := range s.events {
		if i, ok := index[e.RegionSlug]; ok {
			regions[i].Count++
			continue
		}
		index[e.RegionSlug] = len(regions)
		regions = append(regions, models.RegionCount{
			Name:  e.Region,
			Slug:  e.RegionSlug,
			Count: 1,
		})
	}

	sort.SliceStable(regions, func(i, j int) bool { return regions[i].Count > regions[j].Count })
	return regions
}
