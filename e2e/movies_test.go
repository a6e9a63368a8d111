//go:build e2e

package e2e

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Movie list lifecycle", Ordered, func() {
	const title = "Inception"

	var (
		s  *session
		id int
	)

	BeforeAll(func() {
		s = newSession()
		deleteIfListed(s, title)
	})

	AfterAll(func() {
		deleteIfListed(s, title)
	})

	It("searches the provider for a submitted title", func() {
		status, _, _ := s.get("/add_movie")
		Expect(status).To(Equal(http.StatusOK))
		Expect(s.token).NotTo(BeEmpty())

		status, location, _ := s.post("/add_movie", url.Values{"title": {title}})
		Expect(status).To(Equal(http.StatusSeeOther))
		Expect(location).To(Equal("/select?movie_name=" + title))

		status, _, body := s.get(location)
		Expect(status).To(Equal(http.StatusOK))
		Expect(selectLinks(body)).NotTo(BeEmpty())
	})

	It("creates the selected candidate and sends the user to rate it", func() {
		_, _, body := s.get("/select?movie_name=" + title)
		var chosen string
		for _, link := range selectLinks(body) {
			u, err := url.Parse(link)
			Expect(err).NotTo(HaveOccurred())
			if u.Query().Get("title") == title {
				chosen = link
				break
			}
		}
		Expect(chosen).NotTo(BeEmpty(), "no exact %q candidate in search results", title)

		status, location, _ := s.get(chosen)
		Expect(status).To(Equal(http.StatusFound))
		Expect(location).To(HavePrefix("/edit?id="))

		var err error
		id, err = strconv.Atoi(strings.TrimPrefix(location, "/edit?id="))
		Expect(err).NotTo(HaveOccurred())

		status, _, body = s.get(location)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring("Your Rating Out of 10 e.g. 7.5"))
	})

	It("refuses to add the same title twice", func() {
		status, _, _ := s.get("/movie_selected?title=" + title)
		Expect(status).To(Equal(http.StatusConflict))
	})

	It("stores a rating and shows it on the list", func() {
		editPath := "/edit?id=" + strconv.Itoa(id)
		s.get(editPath)

		status, location, _ := s.post(editPath, url.Values{"rating": {"8.8"}, "review": {"Layered"}})
		Expect(status).To(Equal(http.StatusSeeOther))
		Expect(location).To(Equal("/"))

		_, body := getList(s)
		Expect(body).To(ContainSubstring("8.8"))
		Expect(body).To(ContainSubstring("Layered"))
	})

	It("deletes the movie", func() {
		status, location, _ := s.get("/delete?id=" + strconv.Itoa(id))
		Expect(status).To(Equal(http.StatusFound))
		Expect(location).To(Equal("/"))

		_, ids := movieIDs(s)
		Expect(ids).NotTo(HaveKey(title))
	})
})

func getList(s *session) (int, string) {
	status, _, body := s.get("/")
	return status, body
}
