package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kirikanjuguna/FPL-genius/controller"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, timeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(timeout))

	r.NotFound(notFoundHandler(render))

	r.Get("/", rootHandler(ctrl, render))
	r.Get("/about", aboutHandler(render))
	r.Get("/health", healthHandler)

	r.Route("/players", func(r chi.Router) {
		r.Get("/", playersHandler(ctrl, render))
		r.Get("/{playerID:\\d+}", getPlayerHandler(ctrl, render))
	})

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", teamsHandler(ctrl, render))
		r.Get("/{teamID:\\d+}", getTeamHandler(ctrl, render))
	})

	r.Get("/fixtures", fixturesHandler(ctrl, render))
	r.Get("/gameweeks", gameweeksHandler(ctrl, render))

	r.Route("/api/fpl", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodHead},
		}).Handler)

		r.Get("/fixtures", apiFixturesHandler(ctrl, render))
		r.Get("/live", apiLiveHandler(ctrl, render))
	})

	return r
}

// requestLogger writes one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("took", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("remote", r.RemoteAddr).
				Msg("request")
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
