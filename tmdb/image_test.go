package tmdb_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/movielist/tmdb"
)

var _ = Describe("ImageURL", func() {
	const base = "https://media.themoviedb.org/t/p/w600_and_h900_face"

	It("concatenates the CDN prefix and the poster path", func() {
		u, err := tmdb.ImageURL(base, "/qJ2tW6WMUDux911r6m7haRef0WH.jpg")
		Expect(err).NotTo(HaveOccurred())
		Expect(u).To(Equal(base + "/qJ2tW6WMUDux911r6m7haRef0WH.jpg"))
	})

	It("tolerates a trailing slash on the base", func() {
		u, err := tmdb.ImageURL(base+"/", "/a.jpg")
		Expect(err).NotTo(HaveOccurred())
		Expect(u).To(Equal(base + "/a.jpg"))
	})

	It("returns an empty URL for an empty path", func() {
		u, err := tmdb.ImageURL(base, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(u).To(BeEmpty())
	})

	DescribeTable("rejects paths that are not a single absolute segment",
		func(path string) {
			_, err := tmdb.ImageURL(base, path)
			Expect(errors.Is(err, tmdb.ErrInvalidImagePath)).To(BeTrue())
		},
		Entry("relative", "a.jpg"),
		Entry("nested", "/x/a.jpg"),
		Entry("absolute url", "https://evil.example/a.jpg"),
		Entry("protocol relative", "//evil.example/a.jpg"),
		Entry("query", "/a.jpg?x=1"),
		Entry("parent", "/.."),
		Entry("bare slash", "/"),
	)

	It("rejects a base that is not an absolute http url", func() {
		_, err := tmdb.ImageURL("media.themoviedb.org", "/a.jpg")
		Expect(err).To(HaveOccurred())
	})
})
