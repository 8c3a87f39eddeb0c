package live

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"flixhub/internal/session"
	"flixhub/internal/workid"
	"flixhub/internal/works"
)

// Dispatch applies one client message to the session and returns the
// direct replies. Result sets are delivered by the session itself.
func Dispatch(s *session.Session, m Message) []Event {
	value := strings.TrimSpace(m.Value.String())

	switch m.Type {
	case "search":
		s.SetSearch(m.Value.String())
	case "clear_search":
		s.ClearSearch()

	case "toggle_country":
		for _, code := range items(value, m.Values) {
			s.ToggleCountry(code)
		}
	case "select_all_countries":
		s.SelectAllCountries()
	case "clear_countries":
		s.ClearCountries()
	case "select_group":
		if err := s.SelectCountryGroup(value); err != nil {
			return reply(errorEvent(err))
		}

	case "toggle_category":
		for _, name := range items(value, m.Values) {
			s.ToggleCategory(name)
		}
	case "select_all_categories":
		s.SelectAllCategories()
	case "clear_categories":
		s.ClearCategories()

	case "start_year", "end_year":
		year, err := strconv.Atoi(value)
		if err != nil || year <= 0 {
			return reply(Event{Type: EventError, Error: "invalid year: " + value})
		}
		if m.Type == "start_year" {
			s.SetYearStart(year)
		} else {
			s.SetYearEnd(year)
		}

	case "special":
		if err := s.SetSpecial(value); err != nil {
			return reply(errorEvent(err))
		}

	case "select":
		sel, err := s.Select(value)
		if errors.Is(err, works.ErrRecordNotFound) {
			return reply(Event{Type: EventNotFound, Error: err.Error()})
		}
		if err != nil {
			return reply(errorEvent(err))
		}
		return reply(Event{Type: EventSelect, Selection: &sel})

	case "resolve":
		res, err := s.Resolve(value)
		if err != nil {
			return reply(notFoundOrError(err, value))
		}
		return reply(Event{Type: EventResolved, Resolution: &res})

	case "load":
		loaded, err := s.Load(value)
		if err != nil {
			return reply(notFoundOrError(err, loaded.Work))
		}
		if loaded.Resolution != nil {
			return reply(Event{Type: EventResolved, Resolution: loaded.Resolution})
		}

	default:
		return reply(Event{Type: EventError, Error: "unknown message type: " + m.Type})
	}
	return nil
}

func items(value string, values []string) []string {
	if len(values) > 0 {
		return values
	}
	if value == "" {
		return nil
	}
	return []string{value}
}

func notFoundOrError(err error, work string) Event {
	if errors.Is(err, workid.ErrWorkNotFound) {
		return Event{Type: EventNotFound, Work: work, Error: "not found"}
	}
	return errorEvent(err)
}

func errorEvent(err error) Event {
	return Event{Type: EventError, Error: err.Error()}
}

func reply(ev Event) []Event {
	ev.At = time.Now().UTC()
	return []Event{ev}
}
