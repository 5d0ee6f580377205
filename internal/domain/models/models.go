package models

import "strings"

type Movie struct {
	ID       string   `json:"id"`       // Server generated identifier, never supplied by clients
	Title    string   `json:"title"`    // Movie title
	Year     int      `json:"year"`     // Movie release year
	Duration int      `json:"duration"` // Movie duration (in minutes)
	Rate     float64  `json:"rate"`     // Movie rate from 0 to 10
	Poster   string   `json:"poster"`   // Poster URL
	Genre    []string `json:"genre"`    // Movie genres (i.e. drama, action, terror)
}

// Clone returns a copy of m that shares no memory with it.
func (m Movie) Clone() Movie {
	if m.Genre != nil {
		m.Genre = append([]string(nil), m.Genre...)
	}
	return m
}

// HasGenre reports whether genre matches any of the movie genres, ignoring case.
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genre {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}
