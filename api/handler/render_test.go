package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing/fstest"

	"github.com/gin-gonic/gin"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/movielist/api/handler"
	"github.com/ddevcap/movielist/static"
)

var _ = Describe("LoadPages", func() {
	It("loads every page except the layout", func() {
		pages, err := handler.LoadPages(static.Templates, "templates")
		Expect(err).NotTo(HaveOccurred())
		Expect(pages).To(HaveKey("index.html"))
		Expect(pages).To(HaveKey("add.html"))
		Expect(pages).To(HaveKey("edit.html"))
		Expect(pages).To(HaveKey("select.html"))
		Expect(pages).To(HaveKey("error.html"))
		Expect(pages).NotTo(HaveKey("base.html"))
	})

	It("fails on a malformed template", func() {
		fsys := fstest.MapFS{
			"t/base.html":   {Data: []byte(`{{define "base"}}{{block "content" .}}{{end}}{{end}}`)},
			"t/broken.html": {Data: []byte(`{{define "content"}}{{.Foo`)},
		}
		_, err := handler.LoadPages(fsys, "t")
		Expect(err).To(MatchError(ContainSubstring("broken.html")))
	})
})

var _ = Describe("Pages.Instance", func() {
	It("answers 500 instead of panicking for a page that was never loaded", func() {
		pages, err := handler.LoadPages(static.Templates, "templates")
		Expect(err).NotTo(HaveOccurred())

		r := gin.New()
		r.HTMLRender = pages
		r.GET("/", func(c *gin.Context) { c.HTML(http.StatusOK, "missing.html", nil) })

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		Expect(func() { r.ServeHTTP(w, req) }).NotTo(Panic())
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
