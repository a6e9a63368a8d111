package api

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/ddevcap/movielist/api/handler"
	"github.com/ddevcap/movielist/api/middleware"
	"github.com/ddevcap/movielist/config"
	"github.com/ddevcap/movielist/static"
	"github.com/ddevcap/movielist/store"
	"github.com/ddevcap/movielist/tmdb"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// NewRouter builds and returns the application's http.Handler.
func NewRouter(st *store.Store, searcher tmdb.Searcher, cfg config.Config, sessionStore sessions.Store) (http.Handler, error) {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	pages, err := handler.LoadPages(static.Templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	assets, err := fs.Sub(static.Assets, "assets")
	if err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}

	r := gin.New()
	r.HTMLRender = pages
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	systemH := handler.NewSystemHandler(st)
	movieH := handler.NewMovieHandler(st, searcher, cfg)

	// Health probes and assets sit outside the session so they never set a
	// cookie.
	r.GET("/health", systemH.HealthLive)
	r.GET("/ready", systemH.HealthReady)
	r.StaticFS("/static", http.FS(assets))

	pagesGroup := r.Group("/")
	pagesGroup.Use(middleware.CSRF(sessionStore))
	{
		pagesGroup.GET("/", movieH.List)

		pagesGroup.GET("/edit", movieH.Edit)
		pagesGroup.POST("/edit", movieH.UpdateRating)
		pagesGroup.GET("/delete", movieH.Delete)

		pagesGroup.GET("/add_movie", movieH.AddMovieForm)
		pagesGroup.POST("/add_movie", movieH.AddMovie)
		pagesGroup.GET("/select", movieH.Select)
		pagesGroup.GET("/movie_selected", movieH.MovieSelected)
	}

	r.NoRoute(handler.NotFound)

	return r, nil
}
