// Package search implements the query layer over room collections: fuzzy
// text ranking, feature-set filtering and the final stable ordering.
//
// Composition order is rank, then filter, then sort. Each stage is
// independent; an empty query or empty filter passes records through.
package search

import (
	"sort"
	"strings"

	"roomly/pkg/model"
)

// Match tiers, highest first. A record matches when any of its target
// fields (name, id, location) scores above zero.
const (
	scoreExact      = 5
	scorePrefix     = 4
	scoreWordPrefix = 3
	scoreContains   = 2
	scoreSubseq     = 1
)

// Rooms applies the full query pipeline: rank by free-text query, keep
// rooms carrying every requested feature, order by name.
func Rooms(rooms []model.Room, query string, features []string) []model.Room {
	rooms = RankByQuery(rooms, query)
	rooms = FilterByFeatures(rooms, features)
	return SortRoomsByName(rooms)
}

// RankByQuery drops rooms that do not match the query and orders the rest
// by relevance, best first. An empty query passes everything through
// unranked.
func RankByQuery(rooms []model.Room, query string) []model.Room {
	query = strings.TrimSpace(query)
	if query == "" {
		return rooms
	}

	type ranked struct {
		room  model.Room
		score int
	}

	matches := make([]ranked, 0, len(rooms))
	for _, room := range rooms {
		if s := roomScore(room, query); s > 0 {
			matches = append(matches, ranked{room: room, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]model.Room, len(matches))
	for i, m := range matches {
		out[i] = m.room
	}
	return out
}

// FilterByFeatures keeps rooms whose feature set is a superset of the
// requested tags. AND semantics: every requested tag must be present.
func FilterByFeatures(rooms []model.Room, features []string) []model.Room {
	if len(features) == 0 {
		return rooms
	}

	out := make([]model.Room, 0, len(rooms))
	for _, room := range rooms {
		if hasAllFeatures(room, features) {
			out = append(out, room)
		}
	}
	return out
}

// FilterByMinCapacity keeps rooms seating at least min people. Zero or
// negative min passes everything through.
func FilterByMinCapacity(rooms []model.Room, min int) []model.Room {
	if min <= 0 {
		return rooms
	}

	out := make([]model.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Capacity >= min {
			out = append(out, room)
		}
	}
	return out
}

// SortRoomsByName imposes the final deterministic order so rendering and
// pagination are reproducible regardless of storage insertion order.
func SortRoomsByName(rooms []model.Room) []model.Room {
	sorted := make([]model.Room, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// SortBookingsByStart orders bookings chronologically, earliest first.
func SortBookingsByStart(bookings []model.Booking) []model.Booking {
	sorted := make([]model.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}

func roomScore(room model.Room, query string) int {
	best := 0
	for _, field := range []string{room.Name, room.ID, room.Location} {
		if s := fieldScore(field, query); s > best {
			best = s
		}
	}
	return best
}

func fieldScore(field, query string) int {
	field = strings.ToLower(field)
	query = strings.ToLower(query)

	switch {
	case field == "":
		return 0
	case field == query:
		return scoreExact
	case strings.HasPrefix(field, query):
		return scorePrefix
	case wordPrefix(field, query):
		return scoreWordPrefix
	case strings.Contains(field, query):
		return scoreContains
	case subsequence(field, query):
		return scoreSubseq
	}
	return 0
}

func wordPrefix(field, query string) bool {
	for _, word := range strings.FieldsFunc(field, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '.'
	}) {
		if strings.HasPrefix(word, query) {
			return true
		}
	}
	return false
}

// subsequence reports whether every rune of query appears in field in
// order, not necessarily adjacent. This is the permissive fuzzy tier.
func subsequence(field, query string) bool {
	runes := []rune(field)
	i := 0
	for _, q := range query {
		found := false
		for ; i < len(runes); i++ {
			if runes[i] == q {
				found = true
				i++
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func hasAllFeatures(room model.Room, features []string) bool {
	have := make(map[string]bool, len(room.Features))
	for _, f := range room.Features {
		have[f] = true
	}
	for _, f := range features {
		if !have[f] {
			return false
		}
	}
	return true
}
