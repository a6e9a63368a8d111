package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/movielist/api/handler"
	"github.com/ddevcap/movielist/store"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var _ = Describe("SystemHandler", func() {
	// serve wires up a single-route router and returns the recorded response.
	serve := func(path string, fn gin.HandlerFunc) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET(path, fn)
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	status := func(w *httptest.ResponseRecorder) string {
		var body map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(Succeed())
		return body["status"].(string)
	}

	Describe("HealthLive", func() {
		It("returns 200 ok", func() {
			h := handler.NewSystemHandler(nil)
			w := serve("/health", h.HealthLive)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(status(w)).To(Equal("ok"))
		})
	})

	Describe("HealthReady", func() {
		It("returns 200 when the database answers", func() {
			h := handler.NewSystemHandler(store.New(db))
			w := serve("/ready", h.HealthReady)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(status(w)).To(Equal("ready"))
		})

		It("returns 503 when the database is unreachable", func() {
			h := handler.NewSystemHandler(pingFunc(func(context.Context) error {
				return errors.New("connection refused")
			}))
			w := serve("/ready", h.HealthReady)
			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			Expect(status(w)).To(Equal("not ready"))
		})
	})
})
