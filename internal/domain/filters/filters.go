package filters

import "moviesapi/proj/internal/domain/models"

// MovieFilters holds the query parameters accepted by the movies listing.
type MovieFilters struct {
	Genre string `schema:"genre"`
}

// Match reports whether movie passes every non-empty filter.
func (f MovieFilters) Match(movie models.Movie) bool {
	if f.Genre != "" && !movie.HasGenre(f.Genre) {
		return false
	}
	return true
}
