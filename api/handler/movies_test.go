package handler_test

import (
	"context"
	"errors"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	entmovie "github.com/ddevcap/movielist/ent/movie"
	"github.com/ddevcap/movielist/tmdb"
)

var _ = Describe("MovieHandler", func() {
	var (
		ctx      context.Context
		searcher *stubSearcher
		b        *browser
	)

	BeforeEach(func() {
		ctx = context.Background()
		cleanDB()
		searcher = &stubSearcher{}
		b = newBrowser(newTestRouter(searcher))
	})

	editPath := func(id int) string { return "/edit?id=" + strconv.Itoa(id) }

	// ── List ──────────────────────────────────────────────────────────────────

	Describe("GET /", func() {
		It("renders an empty list", func() {
			w := b.get("/")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("No movies yet."))
		})

		It("lists movies by rating with rank 1 first and unrated movies last", func() {
			createMovie("Dune", ptr(8.0), "Spice")
			createMovie("Cats", nil, "")
			createMovie("Alien", ptr(9.1), "Tense")

			w := b.get("/")
			Expect(w.Code).To(Equal(http.StatusOK))
			body := w.Body.String()

			alien := strings.Index(body, "Alien")
			dune := strings.Index(body, "Dune")
			cats := strings.Index(body, "Cats")
			Expect(alien).To(BeNumerically(">", 0))
			Expect(alien).To(BeNumerically("<", dune))
			Expect(dune).To(BeNumerically("<", cats))

			Expect(body).To(MatchRegexp(`class="large">1</p>\s*</div>\s*<div class="back">\s*<div>\s*<div class="title">Alien`))
			Expect(body).To(ContainSubstring("9.1"))
			Expect(body).To(ContainSubstring("8.0"))
			Expect(body).To(ContainSubstring("N/A"))
			Expect(body).To(ContainSubstring("Not reviewed yet"))
		})
	})

	// ── Edit ──────────────────────────────────────────────────────────────────

	Describe("GET /edit", func() {
		It("pre-fills the stored rating and review", func() {
			m := createMovie("Dune", ptr(8.0), "Spice")

			w := b.get(editPath(m.ID))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`value="8.0"`))
			Expect(w.Body.String()).To(ContainSubstring(`value="Spice"`))
			Expect(w.Body.String()).To(ContainSubstring("Your Rating Out of 10 e.g. 7.5"))
		})

		It("returns 404 for an unknown id", func() {
			w := b.get("/edit?id=999999")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring("That movie is not in your list."))
		})

		It("returns 404 for a malformed id", func() {
			Expect(b.get("/edit?id=abc").Code).To(Equal(http.StatusNotFound))
			Expect(b.get("/edit").Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("POST /edit", func() {
		It("stores the rating and review and redirects to the list", func() {
			m := createMovie("Dune", nil, "")
			b.get(editPath(m.ID))

			w := b.post(editPath(m.ID), url.Values{"rating": {"7.5"}, "review": {"Great"}})
			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(w.Header().Get("Location")).To(Equal("/"))

			got := db.Movie.GetX(ctx, m.ID)
			Expect(*got.Rating).To(Equal(7.5))
			Expect(*got.Review).To(Equal("Great"))
		})

		It("rounds the rating to one decimal place", func() {
			m := createMovie("Dune", nil, "")
			b.get(editPath(m.ID))

			w := b.post(editPath(m.ID), url.Values{"rating": {"7.46"}, "review": {"Great"}})
			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(*db.Movie.GetX(ctx, m.ID).Rating).To(Equal(7.5))
		})

		DescribeTable("re-renders the form with 422 and leaves the movie unchanged",
			func(rating, review, message string) {
				m := createMovie("Dune", ptr(6.0), "Fine")
				b.get(editPath(m.ID))

				w := b.post(editPath(m.ID), url.Values{"rating": {rating}, "review": {review}})
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(w.Body.String()).To(ContainSubstring(message))
				Expect(w.Body.String()).To(ContainSubstring("is-invalid"))

				got := db.Movie.GetX(ctx, m.ID)
				Expect(*got.Rating).To(Equal(6.0))
				Expect(*got.Review).To(Equal("Fine"))
			},
			Entry("non-numeric rating", "eleven", "Great", "Not a valid decimal value."),
			Entry("rating above 10", "11", "Great", "Number must be between 0 and 10."),
			Entry("negative rating", "-0.5", "Great", "Number must be between 0 and 10."),
			Entry("missing rating", "", "Great", "This field is required."),
			Entry("missing review", "7", "  ", "This field is required."),
			Entry("review too long", "7", strings.Repeat("x", 251), "Field cannot be longer than 250 characters."),
		)

		It("rejects a submission without a valid anti-forgery token", func() {
			m := createMovie("Dune", ptr(6.0), "Fine")
			b.get(editPath(m.ID))

			w := b.post(editPath(m.ID), url.Values{"rating": {"9"}, "review": {"Hacked"}, "csrf_token": {"bogus"}})
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(*db.Movie.GetX(ctx, m.ID).Rating).To(Equal(6.0))
		})

		It("returns 404 for an unknown id", func() {
			b.get("/add_movie")
			w := b.post("/edit?id=424242", url.Values{"rating": {"5"}, "review": {"ok"}})
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	// ── Delete ────────────────────────────────────────────────────────────────

	Describe("GET /delete", func() {
		It("removes the movie and redirects to the list", func() {
			m := createMovie("Dune", ptr(8.0), "Spice")

			w := b.get("/delete?id=" + strconv.Itoa(m.ID))
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/"))
			Expect(db.Movie.Query().Where(entmovie.ID(m.ID)).ExistX(ctx)).To(BeFalse())
		})

		It("returns 404 for an unknown id", func() {
			w := b.get("/delete?id=31337")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	// ── Add / select ──────────────────────────────────────────────────────────

	Describe("GET /add_movie", func() {
		It("renders the form with an anti-forgery field", func() {
			w := b.get("/add_movie")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`name="csrf_token"`))
			Expect(w.Body.String()).To(ContainSubstring("Add Movie"))
			Expect(b.token).NotTo(BeEmpty())
		})
	})

	Describe("POST /add_movie", func() {
		It("redirects to the search page with the trimmed title", func() {
			b.get("/add_movie")

			w := b.post("/add_movie", url.Values{"title": {"  Blade Runner  "}})
			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(w.Header().Get("Location")).To(Equal("/select?movie_name=Blade+Runner"))
		})

		It("re-renders with 422 when the title is blank", func() {
			b.get("/add_movie")

			w := b.post("/add_movie", url.Values{"title": {"   "}})
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(w.Body.String()).To(ContainSubstring("This field is required."))
		})

		It("returns 403 without a token", func() {
			req, _ := http.NewRequest(http.MethodPost, "/add_movie", strings.NewReader("title=Dune"))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := b.do(req)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("GET /select", func() {
		It("redirects back to the add form when the query is blank", func() {
			w := b.get("/select?movie_name=%20")
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(w.Header().Get("Location")).To(Equal("/add_movie"))
			Expect(searcher.Queries()).To(BeEmpty())
		})

		It("lists candidates linking to the selection endpoint", func() {
			searcher.results = []tmdb.Candidate{
				{ID: 27205, Title: "Inception", ReleaseDate: "2010-07-15", Overview: "Dreams.", PosterPath: "/inception.jpg"},
				{ID: 64956, Title: "Inception: The Cobol Job", ReleaseDate: "", Overview: "Prequel.", PosterPath: ""},
			}

			w := b.get("/select?movie_name=Inception")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(searcher.Queries()).To(Equal([]string{"Inception"}))

			links := selectLinks(w.Body.String())
			Expect(links).To(HaveLen(2))

			first, err := url.Parse(links[0])
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Path).To(Equal("/movie_selected"))
			Expect(first.Query().Get("title")).To(Equal("Inception"))
			Expect(first.Query().Get("year")).To(Equal("2010"))
			Expect(first.Query().Get("description")).To(Equal("Dreams."))
			Expect(first.Query().Get("image_url")).To(Equal("/inception.jpg"))

			second, err := url.Parse(links[1])
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Query().Has("year")).To(BeFalse())
		})

		It("shows an empty-result message", func() {
			w := b.get("/select?movie_name=zzzz")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("No movies found."))
		})

		It("returns 502 when the search provider fails", func() {
			searcher.err = &tmdb.UpstreamError{Op: "search", Status: http.StatusUnauthorized, Err: errors.New("invalid token")}

			w := b.get("/select?movie_name=Inception")
			Expect(w.Code).To(Equal(http.StatusBadGateway))
			Expect(w.Body.String()).To(ContainSubstring("could not be reached"))
		})
	})

	Describe("GET /movie_selected", func() {
		It("creates an unrated movie and redirects to its edit page", func() {
			w := b.get("/movie_selected?title=Inception&year=2010&description=Dreams.&image_url=%2Finception.jpg")
			Expect(w.Code).To(Equal(http.StatusFound))

			m := db.Movie.Query().Where(entmovie.Title("Inception")).OnlyX(ctx)
			Expect(w.Header().Get("Location")).To(Equal(editPath(m.ID)))
			Expect(*m.Year).To(Equal(2010))
			Expect(m.Description).To(Equal("Dreams."))
			Expect(*m.ImgURL).To(Equal(imageBase + "/inception.jpg"))
			Expect(m.Rating).To(BeNil())
			Expect(m.Review).To(BeNil())
		})

		It("stores no image or year when they are absent", func() {
			w := b.get("/movie_selected?title=Primer&year=&image_url=")
			Expect(w.Code).To(Equal(http.StatusFound))

			m := db.Movie.Query().Where(entmovie.Title("Primer")).OnlyX(ctx)
			Expect(m.ImgURL).To(BeNil())
			Expect(m.Year).To(BeNil())
		})

		It("takes the year from a full release date", func() {
			w := b.get("/movie_selected?title=Inception&year=2010-07-15")
			Expect(w.Code).To(Equal(http.StatusFound))

			m := db.Movie.Query().Where(entmovie.Title("Inception")).OnlyX(ctx)
			Expect(*m.Year).To(Equal(2010))
		})

		It("ignores a year that does not start with four digits", func() {
			w := b.get("/movie_selected?title=Primer&year=20x4-01-01")
			Expect(w.Code).To(Equal(http.StatusFound))
			Expect(db.Movie.Query().Where(entmovie.Title("Primer")).OnlyX(ctx).Year).To(BeNil())
		})

		It("returns 409 when the title is already listed", func() {
			createMovie("Inception", nil, "")

			w := b.get("/movie_selected?title=Inception&year=2010")
			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(db.Movie.Query().CountX(ctx)).To(Equal(1))
		})

		It("returns 400 for a poster path that is not a single segment", func() {
			w := b.get("/movie_selected?title=Inception&image_url=..%2Fsecret")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(db.Movie.Query().CountX(ctx)).To(BeZero())
		})

		It("returns 400 for a blank title", func() {
			w := b.get("/movie_selected?title=%20&year=2010")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(db.Movie.Query().CountX(ctx)).To(BeZero())
		})
	})

	Describe("non-ASCII text at the 250 character limit", func() {
		accented := func(n int) string { return strings.Repeat("é", n) }
		overview := func(n int) string {
			prefix := "A thief who steals secrets through dream’s sharing technology. "
			return prefix + strings.Repeat("ü", n-len([]rune(prefix)))
		}
		selected := func(title, description string) string {
			return "/movie_selected?" + url.Values{
				"title":       {title},
				"year":        {"2010"},
				"description": {description},
			}.Encode()
		}

		DescribeTable("creating from /movie_selected",
			func(title, description string, status int, wantDescription string) {
				w := b.get(selected(title, description))
				Expect(w.Code).To(Equal(status))
				if status != http.StatusFound {
					Expect(w.Body.String()).NotTo(ContainSubstring("ent:"))
					Expect(db.Movie.Query().CountX(ctx)).To(BeZero())
					return
				}
				m := db.Movie.Query().OnlyX(ctx)
				Expect(m.Title).To(Equal(title))
				Expect(m.Description).To(Equal(wantDescription))
			},
			Entry("a long overview with a curly apostrophe is truncated",
				"Inception", overview(400), http.StatusFound, overview(250)),
			Entry("an overview of exactly 250 accented characters is kept",
				"Amélie", accented(250), http.StatusFound, accented(250)),
			Entry("an overview of 251 accented characters is truncated",
				"Amélie", accented(251), http.StatusFound, accented(250)),
			Entry("a title of exactly 250 accented characters is accepted",
				accented(250), "", http.StatusFound, ""),
			Entry("a title of 251 accented characters is rejected",
				accented(251), "", http.StatusBadRequest, ""),
		)

		DescribeTable("saving a review through POST /edit",
			func(review string, status int) {
				m := createMovie("Amélie", ptr(6.0), "Fine")
				b.get(editPath(m.ID))

				w := b.post(editPath(m.ID), url.Values{"rating": {"8.5"}, "review": {review}})
				Expect(w.Code).To(Equal(status))
				Expect(w.Body.String()).NotTo(ContainSubstring("ent:"))

				got := db.Movie.GetX(ctx, m.ID)
				if status == http.StatusSeeOther {
					Expect(*got.Review).To(Equal(review))
					Expect(*got.Rating).To(Equal(8.5))
				} else {
					Expect(w.Body.String()).To(ContainSubstring("Field cannot be longer than 250 characters."))
					Expect(*got.Review).To(Equal("Fine"))
				}
			},
			Entry("200 accented characters", accented(200), http.StatusSeeOther),
			Entry("exactly 250 accented characters", accented(250), http.StatusSeeOther),
			Entry("251 accented characters", accented(251), http.StatusUnprocessableEntity),
		)
	})

	Describe("unknown routes", func() {
		It("render the 404 page", func() {
			w := b.get("/nope")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring("Page not found."))
		})
	})
})

var selectLink = regexp.MustCompile(`href="(/movie_selected\?[^"]+)"`)

func selectLinks(body string) []string {
	var out []string
	for _, m := range selectLink.FindAllStringSubmatch(body, -1) {
		out = append(out, html.UnescapeString(m[1]))
	}
	return out
}
