package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ddevcap/movielist/config"
	"github.com/ddevcap/movielist/ent"
	"github.com/ddevcap/movielist/form"
	"github.com/ddevcap/movielist/store"
	"github.com/ddevcap/movielist/tmdb"
	"github.com/gin-gonic/gin"
)

// MovieHandler serves the list, add, select, edit and delete pages.
type MovieHandler struct {
	store     *store.Store
	searcher  tmdb.Searcher
	imageBase string
}

func NewMovieHandler(st *store.Store, searcher tmdb.Searcher, cfg config.Config) *MovieHandler {
	return &MovieHandler{store: st, searcher: searcher, imageBase: cfg.TMDBImageBaseURL}
}

// ── List ──────────────────────────────────────────────────────────────────────

// List handles GET /.
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.store.List(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	renderPage(c, http.StatusOK, "index.html", gin.H{"Movies": movies})
}

// ── Edit ──────────────────────────────────────────────────────────────────────

// Edit handles GET /edit?id=<id> and shows the rating form pre-filled with
// the stored rating and review.
func (h *MovieHandler) Edit(c *gin.Context) {
	m, ok := h.movieFromQuery(c)
	if !ok {
		return
	}
	renderPage(c, http.StatusOK, "edit.html", gin.H{
		"Movie":  m,
		"Form":   form.NewRateMovieForm(m.Rating, m.Review),
		"Errors": form.Errors(nil),
	})
}

// UpdateRating handles POST /edit?id=<id>.
func (h *MovieHandler) UpdateRating(c *gin.Context) {
	m, ok := h.movieFromQuery(c)
	if !ok {
		return
	}

	var f form.RateMovieForm
	if err := c.ShouldBind(&f); err != nil {
		renderError(c, fmt.Errorf("binding rating form: %w", err))
		return
	}
	if errs := f.Validate(); errs != nil {
		renderPage(c, http.StatusUnprocessableEntity, "edit.html", gin.H{"Movie": m, "Form": f, "Errors": errs})
		return
	}

	if _, err := h.store.UpdateRating(c.Request.Context(), m.ID, f.Value(), f.Review); err != nil {
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			renderPage(c, http.StatusUnprocessableEntity, "edit.html", gin.H{
				"Movie":  m,
				"Form":   f,
				"Errors": form.Errors{ve.Field: ve.Message},
			})
			return
		}
		renderError(c, err)
		return
	}
	redirect(c, "/")
}

// ── Delete ────────────────────────────────────────────────────────────────────

// Delete handles GET /delete?id=<id>.
func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Query("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	redirect(c, "/")
}

// ── Add ───────────────────────────────────────────────────────────────────────

// AddMovieForm handles GET /add_movie.
func (h *MovieHandler) AddMovieForm(c *gin.Context) {
	renderPage(c, http.StatusOK, "add.html", gin.H{
		"Form":   form.AddMovieForm{},
		"Errors": form.Errors(nil),
	})
}

// AddMovie handles POST /add_movie and forwards the title to the search page.
func (h *MovieHandler) AddMovie(c *gin.Context) {
	var f form.AddMovieForm
	if err := c.ShouldBind(&f); err != nil {
		renderError(c, fmt.Errorf("binding add form: %w", err))
		return
	}
	if errs := f.Validate(); errs != nil {
		renderPage(c, http.StatusUnprocessableEntity, "add.html", gin.H{"Form": f, "Errors": errs})
		return
	}
	redirect(c, "/select?"+url.Values{"movie_name": {f.Title}}.Encode())
}

// candidateView is a search result with the link that adds it.
type candidateView struct {
	tmdb.Candidate
	SelectURL string
}

// Select handles GET /select?movie_name=<text> and lists search candidates.
func (h *MovieHandler) Select(c *gin.Context) {
	query := strings.TrimSpace(c.Query("movie_name"))
	if query == "" {
		redirect(c, "/add_movie")
		return
	}

	candidates, err := h.searcher.SearchMovie(c.Request.Context(), query)
	if err != nil {
		renderError(c, err)
		return
	}

	views := make([]candidateView, len(candidates))
	for i, cand := range candidates {
		views[i] = candidateView{Candidate: cand, SelectURL: selectURL(cand)}
	}
	renderPage(c, http.StatusOK, "select.html", gin.H{"Query": query, "Candidates": views})
}

func selectURL(cand tmdb.Candidate) string {
	v := url.Values{}
	v.Set("title", cand.Title)
	if y := cand.Year(); y != 0 {
		v.Set("year", strconv.Itoa(y))
	}
	v.Set("description", cand.Overview)
	v.Set("image_url", cand.PosterPath)
	return "/movie_selected?" + v.Encode()
}

// MovieSelected handles GET /movie_selected, creating the chosen candidate as
// an unrated movie and sending the user on to rate it.
func (h *MovieHandler) MovieSelected(c *gin.Context) {
	img, err := tmdb.ImageURL(h.imageBase, c.Query("image_url"))
	if err != nil {
		renderError(c, err)
		return
	}

	m, err := h.store.Create(c.Request.Context(), store.NewMovie{
		Title:       c.Query("title"),
		Year:        parseYear(c.Query("year")),
		Description: c.Query("description"),
		ImgURL:      img,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	redirect(c, "/edit?id="+strconv.Itoa(m.ID))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// movieFromQuery loads the movie named by the id query parameter, rendering
// the error page and returning false when it cannot.
func (h *MovieHandler) movieFromQuery(c *gin.Context) (*ent.Movie, bool) {
	id, err := parseID(c.Query("id"))
	if err != nil {
		renderError(c, err)
		return nil, false
	}
	m, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return nil, false
	}
	return m, true
}

// parseID treats a missing or malformed id like an unknown one.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("movie id %q: %w", raw, store.ErrNotFound)
	}
	return id, nil
}

// parseYear reads the year from the first four characters, so both "2010"
// and a full release date such as "2010-07-15" yield 2010. Anything else is nil.
func parseYear(raw string) *int {
	raw = strings.TrimSpace(raw)
	if len(raw) < 4 {
		return nil
	}
	y, err := strconv.Atoi(raw[:4])
	if err != nil || y < 1000 {
		return nil
	}
	return &y
}
