package server_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jogos-org/jogos/internal/config"
	"github.com/jogos-org/jogos/internal/server"
)

var _ = Describe("Server", func() {
	newServer := func(mode string) (*server.Server, error) {
		cfg := config.NewConfigurationWithOptionsAndDefaults(
			config.WithServer(*config.NewServerWithOptionsAndDefaults(config.WithMode(mode))),
		)
		return server.NewServer(cfg, func(router *gin.RouterGroup) {
			router.GET("/ping", func(c *gin.Context) {
				c.String(http.StatusOK, "pong")
			})
			router.GET("/panic", func(c *gin.Context) {
				panic("boom")
			})
		})
	}

	serve := func(s *server.Server, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	It("should mount handlers under /api/v1", func() {
		s, err := newServer(server.ModeProd)
		Expect(err).NotTo(HaveOccurred())

		w := serve(s, "/api/v1/ping")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("pong"))
	})

	It("should answer unknown routes with a JSON 404", func() {
		s, err := newServer(server.ModeProd)
		Expect(err).NotTo(HaveOccurred())

		w := serve(s, "/nope")
		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("route not found"))
	})

	It("should recover from handler panics", func() {
		s, err := newServer(server.ModeProd)
		Expect(err).NotTo(HaveOccurred())

		Expect(serve(s, "/api/v1/panic").Code).To(Equal(http.StatusInternalServerError))
	})

	It("should reject unknown modes", func() {
		_, err := newServer("staging")
		Expect(err).To(HaveOccurred())
	})
})
