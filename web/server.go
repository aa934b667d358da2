package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/kirikanjuguna/FPL-genius/controller"
	"github.com/kirikanjuguna/FPL-genius/model"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

// Options tune the web server. Zero values fall back to defaults.
type Options struct {
	RequestTimeout time.Duration
	// Location is the time zone deadlines are shown in.
	Location *time.Location
}

type Server struct {
	server *http.Server
}

func NewServer(port int, ctrl controller.C, opts Options) (*Server, error) {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	render := newRender(opts.Location)
	router := getRouter(ctrl, render, opts.RequestTimeout)

	s := &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatal().Err(err).Msg("fatal error shutting down server")
		}
	}()

	log.Info().Str("addr", s.server.Addr).Msg("web server is listening")
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("fatal error with server")
	}
}

func newRender(loc *time.Location) *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"deadline": func(e *model.Event) string {
					return e.DeadlineDisplay(loc)
				},
				"position": positionFormatter,
				"status":   statusFormatter,
			},
		},
	})
}

func positionFormatter(p model.Position) string {
	if p == model.POS_UNKNOWN {
		return "All positions"
	}
	return p.String()
}

// statusFormatter is the short completion label shown under a gameweek deadline.
func statusFormatter(e *model.Event) string {
	if e.Finished {
		return "Completed"
	}
	return "Ongoing or Upcoming"
}
