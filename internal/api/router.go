package api

import (
	"net/http"
	"pauta_voting_system/configs"
	"pauta_voting_system/internal/services"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Services struct {
	Users    services.UserService
	Sections services.SectionService
	Votes    services.VoteService
}

func NewRouter(config configs.HTTP, svc Services, logger *zap.SugaredLogger) http.Handler {
	userHandler := NewUserHandler(svc.Users, logger)
	sectionHandler := NewSectionHandler(svc.Sections, logger)
	voteHandler := NewVoteHandler(svc.Votes, logger)

	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(AccessLog(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("I'm alive"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/section", sectionHandler.List)

	r.Group(func(r chi.Router) {
		if config.WriteRateLimit > 0 {
			r.Use(httprate.LimitByIP(config.WriteRateLimit, time.Minute))
		}

		r.Post("/section", sectionHandler.Create)
		r.Post("/votes", voteHandler.SubmitVote)
		r.Post("/user", userHandler.Register)
		r.Post("/auth", userHandler.Authenticate)
	})

	return r
}
