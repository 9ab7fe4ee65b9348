package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/fitverse/internal/session"
	"github.com/claude/fitverse/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db       *storage.DB
	sessions *session.Manager
	log      *slog.Logger
	apiKey   string
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, sessions *session.Manager, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:       db,
		sessions: sessions,
		log:      log,
		apiKey:   apiKey,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Use(Identity)

		// Active session operations
		r.Route("/session", func(r chi.Router) {
			r.Get("/", s.handleActiveWorkout)
			r.Post("/start", s.handleStart)
			r.Post("/start-template", s.handleStartFromTemplate)
			r.Post("/exercises", s.handleAddExercise)
			r.Post("/exercises/{exercise}/sets", s.handleAddSet)
			r.Patch("/exercises/{exercise}/sets/{set}", s.handleUpdateSet)
			r.Delete("/exercises/{exercise}/sets/{set}", s.handleRemoveSet)
			r.Post("/timer/pause", s.handlePauseTimer)
			r.Post("/timer/resume", s.handleResumeTimer)
			r.Post("/photo", s.handleSetPhoto)
			r.Post("/finish", s.handleFinish)
			r.Post("/discard", s.handleDiscard)
		})

		// Finished workout history
		r.Get("/workouts", s.handleQueryWorkouts)
		r.Get("/workouts/{id}", s.handleGetWorkout)

		// Personal records, aggregates, catalogs
		r.Get("/records", s.handleListRecords)
		r.Get("/stats", s.handleUserStats)
		r.Get("/templates", s.handleListTemplates)
		r.Get("/exercises", s.handleListExercises)

		// Profile and nutrition targets
		r.Get("/profile", s.handleGetProfile)
		r.Put("/profile", s.handlePutProfile)
	})
}
