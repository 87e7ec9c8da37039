package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vncsmyrnk/voteverse/internal/core/domain"
)

func NewHandler(
	auth *Authenticator,
	sessionHandler *SessionHandler,
	candidateHandler *CandidateHandler,
	votingHandler *VotingHandler,
	ballotHandler *BallotHandler,
	resultsHandler *ResultsHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", sessionHandler.Login)
			r.Post("/logout", sessionHandler.Logout)
			r.Get("/me", sessionHandler.Me)
		})

		r.Route("/candidates", func(r chi.Router) {
			r.Get("/", candidateHandler.List)
			r.With(auth.Authenticate, RequireRole(domain.RoleCandidate, domain.RoleAdmin)).
				Post("/", candidateHandler.Register)
			r.With(auth.Authenticate, RequireRole(domain.RoleAdmin)).
				Post("/{id}/approve", candidateHandler.Approve)
		})

		r.Route("/voting", func(r chi.Router) {
			r.Get("/", votingHandler.Status)
			r.With(auth.Authenticate, RequireRole(domain.RoleAdmin)).
				Put("/", votingHandler.SetOpen)
		})

		r.With(auth.Authenticate).Post("/ballots", ballotHandler.Submit)

		r.Route("/results", func(r chi.Router) {
			r.Get("/", resultsHandler.Results)
			r.With(auth.Authenticate, RequireRole(domain.RoleAdmin, domain.RoleLecturer)).
				Get("/export", resultsHandler.Export)
		})
	})

	return r
}
