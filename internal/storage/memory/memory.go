package memory

import (
	"context"
	"sync"

	"moviesapi/proj/internal/domain/models"
	"moviesapi/proj/internal/storage"
)

// MovieStore keeps movies in insertion order for the process lifetime.
// Every find-then-mutate sequence runs under a single lock.
type MovieStore struct {
	mu     sync.Mutex
	movies []models.Movie
}

func New(movies []models.Movie) *MovieStore {
	s := &MovieStore{movies: make([]models.Movie, 0, len(movies))}
	for _, m := range movies {
		s.movies = append(s.movies, m.Clone())
	}
	return s
}

func (s *MovieStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movies)
}

func (s *MovieStore) List(ctx context.Context) ([]models.Movie, error) {
	return s.Filter(ctx, func(models.Movie) bool { return true })
}

func (s *MovieStore) Filter(_ context.Context, pred func(models.Movie) bool) ([]models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	movies := make([]models.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if pred(m) {
			movies = append(movies, m.Clone())
		}
	}
	return movies, nil
}

func (s *MovieStore) Get(_ context.Context, id string) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx == -1 {
		return nil, storage.ErrNotFound
	}
	movie := s.movies[idx].Clone()
	return &movie, nil
}

func (s *MovieStore) Insert(_ context.Context, movie models.Movie) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(movie.ID) != -1 {
		return nil, storage.ErrConflict
	}
	s.movies = append(s.movies, movie.Clone())
	inserted := movie.Clone()
	return &inserted, nil
}

// Update applies fn to a copy of the stored movie and writes it back in place.
// The id can not be changed by fn.
func (s *MovieStore) Update(_ context.Context, id string, fn func(*models.Movie)) (*models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx == -1 {
		return nil, storage.ErrNotFound
	}
	movie := s.movies[idx].Clone()
	fn(&movie)
	movie.ID = id
	s.replaceAt(idx, movie)
	updated := movie.Clone()
	return &updated, nil
}

func (s *MovieStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx == -1 {
		return storage.ErrNotFound
	}
	s.removeAt(idx)
	return nil
}

// indexOf, replaceAt and removeAt expect s.mu to be held.

func (s *MovieStore) indexOf(id string) int {
	for i, m := range s.movies {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (s *MovieStore) replaceAt(idx int, movie models.Movie) {
	s.movies[idx] = movie.Clone()
}

func (s *MovieStore) removeAt(idx int) {
	copy(s.movies[idx:], s.movies[idx+1:])
	s.movies[len(s.movies)-1] = models.Movie{}
	s.movies = s.movies[:len(s.movies)-1]
}
