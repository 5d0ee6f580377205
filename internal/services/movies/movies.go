package movies

import (
	"context"
	"errors"
	"log/slog"

	"moviesapi/proj/internal/domain/filters"
	"moviesapi/proj/internal/domain/models"
	"moviesapi/proj/internal/storage"

	"github.com/google/uuid"
)

type MoviesStorage interface {
	List(ctx context.Context) ([]models.Movie, error)
	Filter(ctx context.Context, pred func(models.Movie) bool) ([]models.Movie, error)
	Get(ctx context.Context, id string) (*models.Movie, error)
	Insert(ctx context.Context, movie models.Movie) (*models.Movie, error)
	Update(ctx context.Context, id string, fn func(*models.Movie)) (*models.Movie, error)
	Delete(ctx context.Context, id string) error
}

type MovieService struct {
	log     *slog.Logger
	storage MoviesStorage
	newID   func() string
}

func New(log *slog.Logger, storage MoviesStorage) *MovieService {
	return &MovieService{
		log:     log,
		storage: storage,
		newID:   uuid.NewString,
	}
}

func (s *MovieService) List(ctx context.Context, f filters.MovieFilters) ([]models.Movie, error) {
	const op = "movies.MovieService.List"
	log := s.log.With("op", op, "genre", f.Genre)
	var (
		movies []models.Movie
		err    error
	)
	if f.Genre == "" {
		movies, err = s.storage.List(ctx)
	} else {
		movies, err = s.storage.Filter(ctx, f.Match)
	}
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	log.Debug("movies listed", "count", len(movies))
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id string) (*models.Movie, error) {
	const op = "movies.MovieService.Get"
	log := s.log.With("op", op, "id", id)
	movie, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return movie, nil
}

// Create stores a new movie built from a fully validated input.
func (s *MovieService) Create(ctx context.Context, input MovieInput) (*models.Movie, error) {
	const op = "movies.MovieService.Create"
	movie := models.Movie{ID: s.newID()}
	applyInput(&movie, input)
	log := s.log.With("op", op, "id", movie.ID, "title", movie.Title, "year", movie.Year)
	created, err := s.storage.Insert(ctx, movie)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Warn("movie already exists")
			return nil, ErrMovieAlreadyExists
		}
		log.Error(err.Error())
		return nil, err
	}
	log.Info("movie created")
	return created, nil
}

// Update merges the supplied fields of input onto the stored movie.
func (s *MovieService) Update(ctx context.Context, id string, input MovieInput) (*models.Movie, error) {
	const op = "movies.MovieService.Update"
	log := s.log.With("op", op, "id", id)
	updated, err := s.storage.Update(ctx, id, func(m *models.Movie) {
		applyInput(m, input)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return nil, ErrMovieNotFound
		}
		log.Error("Error updating movie: " + err.Error())
		return nil, err
	}
	log.Info("movie updated")
	return updated, nil
}

func (s *MovieService) Delete(ctx context.Context, id string) error {
	const op = "movies.MovieService.Delete"
	log := s.log.With("op", op, "id", id)
	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("movie not found")
			return ErrMovieNotFound
		}
		log.Error("Error deleting movie: " + err.Error())
		return err
	}
	log.Info("movie deleted")
	return nil
}

func applyInput(movie *models.Movie, input MovieInput) {
	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.Year != nil {
		movie.Year = *input.Year
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.Rate != nil {
		movie.Rate = *input.Rate
	}
	if input.Poster != nil {
		movie.Poster = *input.Poster
	}
	if input.Genre != nil {
		movie.Genre = append([]string(nil), input.Genre...)
	}
}
