package store_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/movielist/ent"
	"github.com/ddevcap/movielist/store"
)

var _ = Describe("Store", func() {
	var (
		ctx context.Context
		s   *store.Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		cleanDB()
		s = store.New(db)
	})

	year := func(y int) *int { return &y }

	create := func(title string) *ent.Movie {
		m, err := s.Create(ctx, store.NewMovie{Title: title, Year: year(2000)})
		Expect(err).NotTo(HaveOccurred())
		return m
	}

	rate := func(m *ent.Movie, rating float64) {
		_, err := s.UpdateRating(ctx, m.ID, rating, "fine")
		Expect(err).NotTo(HaveOccurred())
	}

	Describe("List", func() {
		It("returns an empty slice when there are no movies", func() {
			movies, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(movies).To(BeEmpty())
		})

		It("orders distinct ratings strictly decreasing", func() {
			for i, r := range []float64{3.5, 9.1, 0, 7.2, 10, 5.5} {
				rate(create("Movie "+string(rune('A'+i))), r)
			}

			movies, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(movies).To(HaveLen(6))
			for i := 1; i < len(movies); i++ {
				Expect(*movies[i-1].Rating).To(BeNumerically(">", *movies[i].Rating))
			}
		})

		It("ranks the highest rating 1 and the lowest len(movies)", func() {
			low := create("Low")
			high := create("High")
			mid := create("Mid")
			rate(low, 1.2)
			rate(high, 9.9)
			rate(mid, 5)

			movies, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(movies).To(HaveLen(3))

			Expect(movies[0].ID).To(Equal(high.ID))
			Expect(movies[0].Ranking).To(Equal(1))
			Expect(movies[2].ID).To(Equal(low.ID))
			Expect(movies[2].Ranking).To(Equal(3))
			for i, m := range movies {
				Expect(m.Ranking).To(Equal(i + 1))
			}
		})

		It("places unrated movies after rated ones", func() {
			unrated := create("Unrated")
			rated := create("Rated")
			rate(rated, 0.5)

			movies, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(movies[0].ID).To(Equal(rated.ID))
			Expect(movies[1].ID).To(Equal(unrated.ID))
			Expect(movies[1].Rating).To(BeNil())
			Expect(movies[1].Ranking).To(Equal(2))
		})

		It("breaks rating ties by insertion order", func() {
			first := create("First")
			second := create("Second")
			rate(second, 7)
			rate(first, 7)

			movies, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(movies[0].ID).To(Equal(first.ID))
			Expect(movies[1].ID).To(Equal(second.ID))
		})

		It("recomputes rankings after a rating changes", func() {
			a := create("A")
			b := create("B")
			rate(a, 8)
			rate(b, 6)

			rate(b, 9)

			movies, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(movies[0].ID).To(Equal(b.ID))
			Expect(movies[0].Ranking).To(Equal(1))
			Expect(movies[1].ID).To(Equal(a.ID))
			Expect(movies[1].Ranking).To(Equal(2))
		})
	})

	Describe("Create", func() {
		It("creates an unrated movie retrievable by id", func() {
			m, err := s.Create(ctx, store.NewMovie{
				Title:       "Arrival",
				Year:        year(2016),
				Description: "Linguist meets heptapods.",
				ImgURL:      "https://img.example/arrival.jpg",
			})
			Expect(err).NotTo(HaveOccurred())

			got, err := s.Get(ctx, m.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Title).To(Equal("Arrival"))
			Expect(*got.Year).To(Equal(2016))
			Expect(got.Description).To(Equal("Linguist meets heptapods."))
			Expect(*got.ImgURL).To(Equal("https://img.example/arrival.jpg"))
			Expect(got.Rating).To(BeNil())
			Expect(got.Review).To(BeNil())
		})

		It("fails with ErrConflict for a duplicate title", func() {
			create("Heat")

			_, err := s.Create(ctx, store.NewMovie{Title: "Heat"})
			Expect(errors.Is(err, store.ErrConflict)).To(BeTrue())

			Expect(db.Movie.Query().CountX(ctx)).To(Equal(1))
		})

		It("rejects an empty title", func() {
			_, err := s.Create(ctx, store.NewMovie{Title: "   "})
			Expect(store.IsValidation(err)).To(BeTrue())
		})

		It("rejects a year that is not 4 digits", func() {
			_, err := s.Create(ctx, store.NewMovie{Title: "Odd", Year: year(99)})
			Expect(store.IsValidation(err)).To(BeTrue())
		})

		It("leaves year and image unset when not supplied", func() {
			m, err := s.Create(ctx, store.NewMovie{Title: "Bare"})
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Year).To(BeNil())
			Expect(m.ImgURL).To(BeNil())
		})

		It("truncates long descriptions", func() {
			m, err := s.Create(ctx, store.NewMovie{
				Title:       "Long",
				Description: strings.Repeat("é", store.MaxTextLen+40),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect([]rune(m.Description)).To(HaveLen(store.MaxTextLen))
		})
	})

	Describe("UpdateRating", func() {
		It("stores the rating and review", func() {
			m := create("Alien")

			updated, err := s.UpdateRating(ctx, m.ID, 8.5, "Great")
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.Rating).To(Equal(8.5))
			Expect(*updated.Review).To(Equal("Great"))
		})

		It("accepts both bounds", func() {
			m := create("Bounds")

			_, err := s.UpdateRating(ctx, m.ID, 0, "zero")
			Expect(err).NotTo(HaveOccurred())
			_, err = s.UpdateRating(ctx, m.ID, 10, "ten")
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("rejects an out-of-range rating and leaves the stored rating unchanged",
			func(bad float64) {
				m := create("Range")
				rate(m, 6.5)

				_, err := s.UpdateRating(ctx, m.ID, bad, "nope")
				Expect(store.IsValidation(err)).To(BeTrue())

				got, err := s.Get(ctx, m.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(*got.Rating).To(Equal(6.5))
				Expect(*got.Review).To(Equal("fine"))
			},
			Entry("below zero", -0.1),
			Entry("above ten", 10.1),
		)

		It("rejects an empty review", func() {
			m := create("Quiet")

			_, err := s.UpdateRating(ctx, m.ID, 5, " ")
			Expect(store.IsValidation(err)).To(BeTrue())
		})

		It("fails with ErrNotFound for an unknown id", func() {
			_, err := s.UpdateRating(ctx, 424242, 5, "ghost")
			Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
		})
	})

	Describe("text limits", func() {
		// Every rune here is two or three bytes in UTF-8.
		accented := func(n int) string { return strings.Repeat("é", n) }
		curly := func(n int) string { return "dream’s " + strings.Repeat("ü", n-len([]rune("dream’s "))) }

		DescribeTable("titles count characters, not bytes",
			func(title string, ok bool) {
				_, err := s.Create(ctx, store.NewMovie{Title: title})
				if ok {
					Expect(err).NotTo(HaveOccurred())
				} else {
					Expect(store.IsValidation(err)).To(BeTrue())
				}
			},
			Entry("250 accented characters", accented(store.MaxTextLen), true),
			Entry("251 accented characters", accented(store.MaxTextLen+1), false),
			Entry("250 characters with a curly apostrophe", curly(store.MaxTextLen), true),
		)

		DescribeTable("descriptions are truncated to 250 characters",
			func(description string, want string) {
				m, err := s.Create(ctx, store.NewMovie{Title: "Overview", Description: description})
				Expect(err).NotTo(HaveOccurred())
				Expect(m.Description).To(Equal(want))
				Expect(s.Get(ctx, m.ID)).To(HaveField("Description", want))
			},
			Entry("250 accented characters", accented(store.MaxTextLen), accented(store.MaxTextLen)),
			Entry("251 accented characters", accented(store.MaxTextLen+1), accented(store.MaxTextLen)),
			Entry("a long overview with a curly apostrophe", curly(store.MaxTextLen+60), curly(store.MaxTextLen)),
		)

		DescribeTable("reviews count characters, not bytes",
			func(review string, ok bool) {
				m := create("Reviewed")
				_, err := s.UpdateRating(ctx, m.ID, 8, review)
				if ok {
					Expect(err).NotTo(HaveOccurred())
					Expect(*db.Movie.GetX(ctx, m.ID).Review).To(Equal(review))
				} else {
					Expect(store.IsValidation(err)).To(BeTrue())
					Expect(db.Movie.GetX(ctx, m.ID).Review).To(BeNil())
				}
			},
			Entry("200 accented characters", accented(200), true),
			Entry("250 accented characters", accented(store.MaxTextLen), true),
			Entry("251 accented characters", accented(store.MaxTextLen+1), false),
		)
	})

	Describe("Delete", func() {
		It("fails with ErrNotFound for an unknown id", func() {
			Expect(errors.Is(s.Delete(ctx, 424242), store.ErrNotFound)).To(BeTrue())
		})

		It("removes the movie from subsequent lists", func() {
			keep := create("Keep")
			gone := create("Gone")

			Expect(s.Delete(ctx, gone.ID)).To(Succeed())

			movies, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(movies).To(HaveLen(1))
			Expect(movies[0].ID).To(Equal(keep.ID))
		})
	})

	It("supports the full create, rate, delete lifecycle", func() {
		m, err := s.Create(ctx, store.NewMovie{
			Title:       "Dune",
			Year:        year(2021),
			Description: "...",
			ImgURL:      "...",
		})
		Expect(err).NotTo(HaveOccurred())

		all, err := s.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(1))
		Expect(all[0].Title).To(Equal("Dune"))
		Expect(all[0].Rating).To(BeNil())

		_, err = s.UpdateRating(ctx, m.ID, 8.5, "Great")
		Expect(err).NotTo(HaveOccurred())

		got, err := s.Get(ctx, m.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(*got.Rating).To(Equal(8.5))
		Expect(*got.Review).To(Equal("Great"))

		Expect(s.Delete(ctx, m.ID)).To(Succeed())

		_, err = s.Get(ctx, m.ID)
		Expect(errors.Is(err, store.ErrNotFound)).To(BeTrue())
	})
})

var _ = Describe("Truncate", func() {
	It("keeps short strings intact", func() {
		Expect(store.Truncate("abc", 5)).To(Equal("abc"))
	})

	It("cuts on rune boundaries", func() {
		Expect(store.Truncate("héllo", 2)).To(Equal("hé"))
	})
})

var _ = Describe("Ping", func() {
	It("succeeds against a reachable database", func() {
		Expect(store.New(db).Ping(context.Background())).To(Succeed())
	})

	It("fails once the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		Expect(store.New(db).Ping(ctx)).To(HaveOccurred())
	})
})
