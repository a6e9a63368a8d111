package tmdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/movielist/tmdb"
)

var _ = Describe("New", func() {
	It("requires a token", func() {
		_, err := tmdb.New("  ", "https://example.com")
		Expect(err).To(HaveOccurred())
	})

	It("requires a base url", func() {
		_, err := tmdb.New("tok", "")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Client.SearchMovie", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	newClient := func(srv *httptest.Server, token string) *tmdb.Client {
		c, err := tmdb.New(token, srv.URL)
		Expect(err).NotTo(HaveOccurred())
		return c
	}

	It("sends the query and bearer token and returns the results verbatim", func() {
		var gotPath, gotQuery, gotAuth, gotAccept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query().Get("query")
			gotAuth = r.Header.Get("Authorization")
			gotAccept = r.Header.Get("Accept")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"page":1,"results":[
				{"id":27205,"title":"Inception","release_date":"2010-07-15","overview":"Dreams.","poster_path":"/inception.jpg"},
				{"id":64956,"title":"Inception: The Cobol Job","release_date":"","overview":"","poster_path":null}
			],"total_pages":1,"total_results":2}`))
		}))
		defer srv.Close()

		results, err := newClient(srv, "tok").SearchMovie(ctx, "Inception")
		Expect(err).NotTo(HaveOccurred())

		Expect(gotPath).To(Equal("/search/movie"))
		Expect(gotQuery).To(Equal("Inception"))
		Expect(gotAuth).To(Equal("Bearer tok"))
		Expect(gotAccept).To(Equal("application/json"))

		Expect(results).To(HaveLen(2))
		Expect(results[0]).To(Equal(tmdb.Candidate{
			ID:          27205,
			Title:       "Inception",
			ReleaseDate: "2010-07-15",
			Overview:    "Dreams.",
			PosterPath:  "/inception.jpg",
		}))
		Expect(results[1].PosterPath).To(BeEmpty())
	})

	It("does not double the Bearer prefix", func() {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"results":[]}`))
		}))
		defer srv.Close()

		_, err := newClient(srv, "Bearer tok").SearchMovie(ctx, "x")
		Expect(err).NotTo(HaveOccurred())
		Expect(gotAuth).To(Equal("Bearer tok"))
	})

	It("returns an empty slice for an empty results list", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results":[]}`))
		}))
		defer srv.Close()

		results, err := newClient(srv, "tok").SearchMovie(ctx, "nothing")
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(BeEmpty())
	})

	It("rejects an empty query without calling the provider", func() {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		_, err := newClient(srv, "tok").SearchMovie(ctx, "   ")
		Expect(err).To(HaveOccurred())
		Expect(called).To(BeFalse())
	})

	It("fails with an UpstreamError when results is missing", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status_message":"weird"}`))
		}))
		defer srv.Close()

		_, err := newClient(srv, "tok").SearchMovie(ctx, "x")
		Expect(errors.Is(err, tmdb.ErrUpstream)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("no results field"))
	})

	It("fails with an UpstreamError on a non-JSON body", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>oops</html>`))
		}))
		defer srv.Close()

		_, err := newClient(srv, "tok").SearchMovie(ctx, "x")
		Expect(errors.Is(err, tmdb.ErrUpstream)).To(BeTrue())
	})

	It("reports the status for a rejected credential", func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key"}`))
		}))
		defer srv.Close()

		_, err := newClient(srv, "bad").SearchMovie(ctx, "x")
		var ue *tmdb.UpstreamError
		Expect(errors.As(err, &ue)).To(BeTrue())
		Expect(ue.Status).To(Equal(http.StatusUnauthorized))
		Expect(ue.Error()).To(ContainSubstring("Invalid API key"))
	})

	It("fails with an UpstreamError when the provider is unreachable", func() {
		c, err := tmdb.New("tok", "http://127.0.0.1:1")
		Expect(err).NotTo(HaveOccurred())

		_, err = c.SearchMovie(ctx, "x")
		Expect(errors.Is(err, tmdb.ErrUpstream)).To(BeTrue())
	})

	It("honours the configured timeout", func() {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		c, err := tmdb.New("tok", srv.URL, tmdb.WithTimeout(50*time.Millisecond))
		Expect(err).NotTo(HaveOccurred())

		_, err = c.SearchMovie(ctx, "slow")
		Expect(errors.Is(err, tmdb.ErrUpstream)).To(BeTrue())
	})
})

var _ = Describe("Options", func() {
	var srv *httptest.Server

	BeforeEach(func() {
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results":[]}`))
		}))
		DeferCleanup(srv.Close)
	})

	It("does not change a caller-supplied client when WithTimeout comes first", func() {
		hc := &http.Client{Timeout: 5 * time.Second}
		c, err := tmdb.New("tok", srv.URL, tmdb.WithTimeout(time.Millisecond), tmdb.WithHTTPClient(hc))
		Expect(err).NotTo(HaveOccurred())
		Expect(hc.Timeout).To(Equal(5 * time.Second))

		_, err = c.SearchMovie(context.Background(), "x")
		Expect(err).NotTo(HaveOccurred())
	})

	It("does not change a caller-supplied client when WithTimeout comes last", func() {
		hc := &http.Client{Timeout: 5 * time.Second}
		_, err := tmdb.New("tok", srv.URL, tmdb.WithHTTPClient(hc), tmdb.WithTimeout(time.Millisecond))
		Expect(err).NotTo(HaveOccurred())
		Expect(hc.Timeout).To(Equal(5 * time.Second))
	})
})

var _ = Describe("Candidate.Year", func() {
	DescribeTable("extracts the year from release_date",
		func(date string, want int) {
			Expect(tmdb.Candidate{ReleaseDate: date}.Year()).To(Equal(want))
		},
		Entry("full date", "2021-10-22", 2021),
		Entry("year only", "1999", 1999),
		Entry("empty", "", 0),
		Entry("too short", "99", 0),
		Entry("garbage", "soon", 0),
	)
})
