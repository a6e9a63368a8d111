package handler

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/ddevcap/movielist/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// layout is the template every page is executed through.
const layout = "base"

// Pages renders each page template inside the shared layout. It implements
// gin's render.HTMLRender so handlers can call c.HTML with a page file name.
type Pages map[string]*template.Template

var _ render.HTMLRender = Pages(nil)

var funcs = template.FuncMap{
	"formatRating": func(r *float64) string {
		if r == nil {
			return "N/A"
		}
		return strconv.FormatFloat(*r, 'f', 1, 64)
	},
}

// LoadPages parses every template in dir except the layout, each one paired
// with the layout.
func LoadPages(fsys fs.FS, dir string) (Pages, error) {
	names, err := fs.Glob(fsys, dir+"/*.html")
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	base := dir + "/" + layout + ".html"
	pages := make(Pages, len(names))
	for _, name := range names {
		if name == base {
			continue
		}
		tmpl, err := template.New(layout).Funcs(funcs).ParseFS(fsys, base, name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		pages[name[len(dir)+1:]] = tmpl
	}
	return pages, nil
}

func (p Pages) Instance(name string, data any) render.Render {
	tmpl, ok := p[name]
	if !ok {
		return missingPage(name)
	}
	return render.HTML{Template: tmpl, Name: layout, Data: data}
}

// missingPage answers 500 for a page name that was never loaded.
type missingPage string

func (m missingPage) Render(w http.ResponseWriter) error {
	m.WriteContentType(w)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
	return fmt.Errorf("render: unknown page %q", string(m))
}

func (m missingPage) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
}

// renderPage renders page with the anti-forgery token added to data.
func renderPage(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CSRFField"] = middleware.CSRFField
	data["CSRFToken"] = middleware.CSRFToken(c)
	c.HTML(status, page, data)
}

// redirect issues 303 after a POST so the browser follows with GET, and 302
// otherwise.
func redirect(c *gin.Context, location string) {
	status := http.StatusFound
	if c.Request.Method == http.MethodPost {
		status = http.StatusSeeOther
	}
	c.Redirect(status, location)
}
