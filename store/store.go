// Package store persists the movie list and derives each movie's ranking from
// the current rating order.
package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"entgo.io/ent/dialect/sql"
	"github.com/ddevcap/movielist/ent"
	entmovie "github.com/ddevcap/movielist/ent/movie"
)

const (
	// MaxTextLen bounds title, description and review, in runes.
	MaxTextLen = 250

	MinRating = 0.0
	MaxRating = 10.0
)

// Store is the movie repository. One Store is built at startup and handed to
// every handler that needs it.
type Store struct {
	db *ent.Client
}

func New(db *ent.Client) *Store {
	return &Store{db: db}
}

// RankedMovie is a movie together with its 1-based position in the list
// ordered by rating descending. The ranking is never persisted.
type RankedMovie struct {
	*ent.Movie
	Ranking int
}

// NewMovie holds the fields a movie is created with. Rating and review are
// set later through UpdateRating.
type NewMovie struct {
	Title       string
	Year        *int
	Description string
	ImgURL      string
}

// List returns every movie ordered by rating descending. Unrated movies sort
// last and ties keep insertion order.
func (s *Store) List(ctx context.Context) ([]RankedMovie, error) {
	movies, err := s.db.Movie.Query().
		Order(
			entmovie.ByRating(sql.OrderDesc(), sql.OrderNullsLast()),
			entmovie.ByID(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: listing movies: %w", err)
	}

	ranked := make([]RankedMovie, len(movies))
	for i, m := range movies {
		ranked[i] = RankedMovie{Movie: m, Ranking: i + 1}
	}
	return ranked, nil
}

// Get returns the movie with the given id.
func (s *Store) Get(ctx context.Context, id int) (*ent.Movie, error) {
	m, err := s.db.Movie.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("store: getting movie %d: %w", id, err)
	}
	return m, nil
}

// Create inserts a new, unrated movie. The description is truncated to
// MaxTextLen runes.
func (s *Store) Create(ctx context.Context, nm NewMovie) (*ent.Movie, error) {
	title := strings.TrimSpace(nm.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "is required"}
	}
	if utf8.RuneCountInString(title) > MaxTextLen {
		return nil, &ValidationError{Field: "title", Message: fmt.Sprintf("must be at most %d characters", MaxTextLen)}
	}
	if nm.Year != nil && (*nm.Year < 1000 || *nm.Year > 9999) {
		return nil, &ValidationError{Field: "year", Message: "must be a 4-digit year"}
	}

	q := s.db.Movie.Create().
		SetTitle(title).
		SetNillableYear(nm.Year).
		SetDescription(Truncate(strings.TrimSpace(nm.Description), MaxTextLen))
	if nm.ImgURL != "" {
		q = q.SetImgURL(nm.ImgURL)
	}

	m, err := q.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("movie %q: %w", title, ErrConflict)
		}
		return nil, mapEntError("creating movie", err)
	}
	return m, nil
}

// UpdateRating records the user's rating and review for a movie. The rating
// must lie within [MinRating, MaxRating].
func (s *Store) UpdateRating(ctx context.Context, id int, rating float64, review string) (*ent.Movie, error) {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return nil, &ValidationError{Field: "rating", Message: fmt.Sprintf("must be between %g and %g", MinRating, MaxRating)}
	}
	review = strings.TrimSpace(review)
	if review == "" {
		return nil, &ValidationError{Field: "review", Message: "is required"}
	}
	if utf8.RuneCountInString(review) > MaxTextLen {
		return nil, &ValidationError{Field: "review", Message: fmt.Sprintf("must be at most %d characters", MaxTextLen)}
	}

	m, err := s.db.Movie.UpdateOneID(id).
		SetRating(rating).
		SetReview(review).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("movie %d: %w", id, ErrNotFound)
		}
		return nil, mapEntError(fmt.Sprintf("updating movie %d", id), err)
	}
	return m, nil
}

// Delete permanently removes a movie.
func (s *Store) Delete(ctx context.Context, id int) error {
	if err := s.db.Movie.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("movie %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("store: deleting movie %d: %w", id, err)
	}
	return nil
}

// Ping reports whether the database answers a query.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.db.Movie.Query().Exist(ctx); err != nil {
		return fmt.Errorf("store: ping: %w", err)
	}
	return nil
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// mapEntError converts ent field validator failures into *ValidationError so
// callers only deal with one validation type.
func mapEntError(op string, err error) error {
	var ve *ent.ValidationError
	if errors.As(err, &ve) {
		return &ValidationError{Field: ve.Name, Message: "has an invalid value"}
	}
	return fmt.Errorf("store: %s: %w", op, err)
}
