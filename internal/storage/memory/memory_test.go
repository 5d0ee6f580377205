package memory

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"moviesapi/proj/internal/domain/models"
	"moviesapi/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMovies() []models.Movie {
	return []models.Movie{
		{ID: "1", Title: "A", Year: 2000, Duration: 100, Rate: 7, Poster: "http://x/p.png", Genre: []string{"action"}},
		{ID: "2", Title: "B", Year: 2001, Duration: 90, Rate: 5, Poster: "http://x/b.png", Genre: []string{"Drama"}},
		{ID: "3", Title: "C", Year: 2002, Duration: 80, Rate: 6, Poster: "http://x/c.png", Genre: []string{"terror", "drama"}},
	}
}

func ids(movies []models.Movie) []string {
	res := make([]string, 0, len(movies))
	for _, m := range movies {
		res = append(res, m.ID)
	}
	return res
}

func TestList(t *testing.T) {
	s := New(testMovies())
	movies, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(movies))

	movies[0].Genre[0] = "mutated"
	stored, err := s.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"action"}, stored.Genre)
}

func TestFilter(t *testing.T) {
	s := New(testMovies())
	movies, err := s.Filter(context.Background(), func(m models.Movie) bool { return m.HasGenre("drama") })
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, ids(movies))

	movies, err = s.Filter(context.Background(), func(models.Movie) bool { return false })
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestGet(t *testing.T) {
	s := New(testMovies())
	t.Run("found", func(t *testing.T) {
		movie, err := s.Get(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, testMovies()[0], *movie)
	})
	t.Run("not found", func(t *testing.T) {
		_, err := s.Get(context.Background(), "404")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestInsert(t *testing.T) {
	s := New(testMovies())
	movie := models.Movie{ID: "4", Title: "D", Genre: []string{"action"}}
	inserted, err := s.Insert(context.Background(), movie)
	require.NoError(t, err)
	assert.Equal(t, movie, *inserted)
	assert.Equal(t, 4, s.Len())

	movies, _ := s.List(context.Background())
	assert.Equal(t, "4", movies[len(movies)-1].ID)

	_, err = s.Insert(context.Background(), movie)
	assert.ErrorIs(t, err, storage.ErrConflict)
	assert.Equal(t, 4, s.Len())
}

func TestUpdate(t *testing.T) {
	s := New(testMovies())
	t.Run("updates in place", func(t *testing.T) {
		updated, err := s.Update(context.Background(), "2", func(m *models.Movie) {
			m.Title = "B2"
			m.ID = "hijacked"
		})
		require.NoError(t, err)
		assert.Equal(t, "2", updated.ID)
		assert.Equal(t, "B2", updated.Title)
		assert.Equal(t, 2001, updated.Year)

		movies, _ := s.List(context.Background())
		assert.Equal(t, []string{"1", "2", "3"}, ids(movies))
		assert.Equal(t, "B2", movies[1].Title)
	})
	t.Run("not found", func(t *testing.T) {
		called := false
		_, err := s.Update(context.Background(), "404", func(*models.Movie) { called = true })
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.False(t, called)
	})
}

func TestDelete(t *testing.T) {
	s := New(testMovies())
	require.NoError(t, s.Delete(context.Background(), "2"))
	movies, _ := s.List(context.Background())
	assert.Equal(t, []string{"1", "3"}, ids(movies))

	assert.ErrorIs(t, s.Delete(context.Background(), "2"), storage.ErrNotFound)
	assert.Equal(t, 2, s.Len())
}

func TestConcurrentUpdates(t *testing.T) {
	s := New(testMovies())
	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Update(context.Background(), "1", func(m *models.Movie) { m.Duration++ })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	movie, err := s.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 100+workers, movie.Duration)
}

func TestLoadSeed(t *testing.T) {
	t.Run("bundled", func(t *testing.T) {
		movies, err := LoadSeed("")
		require.NoError(t, err)
		assert.NotEmpty(t, movies)
		for _, m := range movies {
			assert.NotEmpty(t, m.ID)
			assert.NotEmpty(t, m.Genre)
		}
	})
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "movies.json")
		data := `[{"id":"1","title":"A","year":2000,"duration":100,"rate":7,"poster":"http://x/p.png","genre":["action"]}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
		movies, err := LoadSeed(path)
		require.NoError(t, err)
		assert.Equal(t, testMovies()[:1], movies)
	})
	t.Run("duplicate ids", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "movies.json")
		data := `[{"id":"1","title":"A"},{"id":"1","title":"B"}]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
		_, err := LoadSeed(path)
		assert.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
