package config_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ddevcap/movielist/config"
)

var _ = Describe("Load", func() {
	// Keys managed by these tests, saved and restored around each test.
	var envKeys = []string{
		"SECRET_KEY", "API_TOKEN", "DATABASE_DIALECT", "DATABASE_URL", "LISTEN_ADDR",
		"TMDB_BASE_URL", "TMDB_IMAGE_BASE_URL", "SEARCH_TIMEOUT", "SECURE_COOKIES",
		"DEBUG", "SHUTDOWN_TIMEOUT",
	}

	var saved map[string]string

	BeforeEach(func() {
		saved = make(map[string]string, len(envKeys))
		for _, k := range envKeys {
			saved[k] = os.Getenv(k)
			Expect(os.Unsetenv(k)).To(Succeed())
		}
		Expect(os.Setenv("SECRET_KEY", "s3cret")).To(Succeed())
		Expect(os.Setenv("API_TOKEN", "tmdb-token")).To(Succeed())
	})

	AfterEach(func() {
		for k, v := range saved {
			if v == "" {
				Expect(os.Unsetenv(k)).To(Succeed())
			} else {
				Expect(os.Setenv(k, v)).To(Succeed())
			}
		}
	})

	It("returns defaults when only the required vars are set", func() {
		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.SecretKey).To(Equal("s3cret"))
		Expect(cfg.APIToken).To(Equal("tmdb-token"))
		Expect(cfg.DatabaseDialect).To(Equal("sqlite3"))
		Expect(cfg.DatabaseURL).To(Equal("file:movielist.db?_pragma=foreign_keys(1)"))
		Expect(cfg.ListenAddr).To(Equal(":5000"))
		Expect(cfg.TMDBBaseURL).To(Equal("https://api.themoviedb.org/3"))
		Expect(cfg.TMDBImageBaseURL).To(Equal("https://media.themoviedb.org/t/p/w600_and_h900_face"))
		Expect(cfg.SearchTimeout).To(Equal(10 * time.Second))
		Expect(cfg.SecureCookies).To(BeFalse())
		Expect(cfg.Debug).To(BeFalse())
		Expect(cfg.ShutdownTimeout).To(Equal(15 * time.Second))
	})

	It("fails when SECRET_KEY is missing", func() {
		Expect(os.Unsetenv("SECRET_KEY")).To(Succeed())

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("SECRET_KEY"))
	})

	It("fails when API_TOKEN is empty", func() {
		Expect(os.Setenv("API_TOKEN", "")).To(Succeed())

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("API_TOKEN"))
	})

	It("reads string values from env vars", func() {
		Expect(os.Setenv("DATABASE_DIALECT", "postgres")).To(Succeed())
		Expect(os.Setenv("DATABASE_URL", "postgres://movies:movies@db:5432/movies?sslmode=disable")).To(Succeed())
		Expect(os.Setenv("LISTEN_ADDR", ":9090")).To(Succeed())
		Expect(os.Setenv("TMDB_BASE_URL", "http://tmdb.local/3")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.DatabaseDialect).To(Equal("postgres"))
		Expect(cfg.DatabaseURL).To(Equal("postgres://movies:movies@db:5432/movies?sslmode=disable"))
		Expect(cfg.ListenAddr).To(Equal(":9090"))
		Expect(cfg.TMDBBaseURL).To(Equal("http://tmdb.local/3"))
	})

	It("rejects an unknown database dialect", func() {
		Expect(os.Setenv("DATABASE_DIALECT", "mysql")).To(Succeed())

		_, err := config.Load()
		Expect(err).To(MatchError(ContainSubstring("unsupported DATABASE_DIALECT")))
	})

	It("reads duration values from env vars", func() {
		Expect(os.Setenv("SEARCH_TIMEOUT", "3s")).To(Succeed())
		Expect(os.Setenv("SHUTDOWN_TIMEOUT", "1m")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.SearchTimeout).To(Equal(3 * time.Second))
		Expect(cfg.ShutdownTimeout).To(Equal(time.Minute))
	})

	It("returns an error for an invalid duration", func() {
		Expect(os.Setenv("SEARCH_TIMEOUT", "not-a-duration")).To(Succeed())

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})

	It("reads bool values from env vars", func() {
		Expect(os.Setenv("SECURE_COOKIES", "true")).To(Succeed())
		Expect(os.Setenv("DEBUG", "true")).To(Succeed())

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.SecureCookies).To(BeTrue())
		Expect(cfg.Debug).To(BeTrue())
	})

	It("returns an error for an invalid bool", func() {
		Expect(os.Setenv("SECURE_COOKIES", "not-a-bool")).To(Succeed())

		_, err := config.Load()
		Expect(err).To(HaveOccurred())
	})
})
