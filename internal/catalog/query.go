package catalog

import (
	"sort"
	"strings"
	"time"

	"example.com/festivals-morocco/services/events/internal/models"
	"example.com/festivals-morocco/services/events/internal/normalize"
)

// Criteria is the set of optional filters a query can carry. Zero values
// mean "not filtered". All filters are pure predicates over a single record
// and are applied as a strict intersection, so order never matters.
type Criteria struct {
	City     string
	Genre    string
	Year     int
	Month    int
	Status   string
	Type     string
	Upcoming bool

	// Reference is the ISO day used as "today" by the Upcoming filter.
	// Empty means the current UTC date at query time; tests inject a fixed
	// date here.
	Reference string
}

// Query filters the snapshot by the criteria and returns the result in
// canonical order: pinned events first, then ascending start date.
func (s *Store) Query(c Criteria) []models.Event {
	predicates := c.predicates()

	matched := s.filter(func(e models.Event) bool {
		for _, keep := range predicates {
			if !keep(e) {
				return false
			}
		}
		return true
	})

	SortEvents(matched)
	return matched
}

func (c Criteria) predicates() []func(models.Event) bool {
	var preds []func(models.Event) bool

	if c.City != "" {
		city := c.City
		preds = append(preds, func(e models.Event) bool { return e.CitySlug == city })
	}
	if c.Genre != "" {
		wanted := strings.ToLower(c.Genre)
		preds = append(preds, func(e models.Event) bool {
			for _, g := range e.Genres {
				if strings.ToLower(g) == wanted || normalize.Slugify(g) == wanted {
					return true
				}
			}
			return false
		})
	}
	if c.Year != 0 && c.Month != 0 {
		prefix := monthPrefix(c.Year, c.Month)
		preds = append(preds, func(e models.Event) bool { return strings.HasPrefix(e.StartDate, prefix) })
	}
	if c.Status != "" {
		status := models.Status(c.Status)
		preds = append(preds, func(e models.Event) bool { return e.Status == status })
	}
	if c.Type != "" {
		eventType := models.EventType(c.Type)
		preds = append(preds, func(e models.Event) bool { return e.EventType == eventType })
	}
	if c.Upcoming {
		ref := c.Reference
		if ref == "" {
			ref = time.Now().UTC().Format(DateLayout)
		}
		preds = append(preds, func(e models.Event) bool {
			if e.StartDate < ref {
				return false
			}
			return e.Status == models.StatusAnnounced || e.Status == models.StatusConfirmed
		})
	}

	return preds
}

// SortEvents orders events in place: pinned before unpinned, ascending
// start date within each group. The sort is stable, so records with equal
// keys keep their snapshot order.
func SortEvents(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].IsPinned != events[j].IsPinned {
			return events[i].IsPinned
		}
		return events[i].StartDate < events[j].StartDate
	})
}
