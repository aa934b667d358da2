package testutils

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/kirikanjuguna/FPL-genius/model"
)

//go:embed fpldata
var fpldata embed.FS

// EmptyFixturesEvent is answered with an empty list on /fixtures/?event=N even
// though the season list has fixtures for it, which happens upstream for a
// short while after fixtures are rescheduled.
const EmptyFixturesEvent = 3

type FakeFPLServer struct {
	s *httptest.Server

	requests atomic.Int64
	failing  atomic.Bool
}

func NewFakeFPLServer() *FakeFPLServer {
	f := &FakeFPLServer{}

	r := chi.NewRouter()
	r.Use(f.count)
	r.Get("/bootstrap-static/", bootstrapHandler)
	r.Get("/fixtures/", fixturesHandler)
	r.Get("/event/{event}/live/", liveHandler)
	r.Get("/broken/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"events": [`))
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeFPLServer) Close() {
	f.s.Close()
}

func (f *FakeFPLServer) URL() string {
	return f.s.URL
}

// Requests returns how many requests the server has received.
func (f *FakeFPLServer) Requests() int64 {
	return f.requests.Load()
}

// SetFailing makes every route answer 503 until it is called with false.
func (f *FakeFPLServer) SetFailing(failing bool) {
	f.failing.Store(failing)
}

func (f *FakeFPLServer) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		if f.failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bootstrapHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "bootstrap-static.json")
}

func fixturesHandler(w http.ResponseWriter, r *http.Request) {
	e := r.URL.Query().Get("event")
	if e == "" {
		serveFile(w, "fixtures.json")
		return
	}

	event, err := strconv.Atoi(e)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if event == EmptyFixturesEvent {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}

	b, err := fpldata.ReadFile("fpldata/fixtures.json")
	if err != nil {
		log.Printf("error reading fpldata/fixtures.json: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	var all []model.Fixture
	if err := json.Unmarshal(b, &all); err != nil {
		log.Printf("error parsing fpldata/fixtures.json: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	res := make([]model.Fixture, 0)
	for _, f := range all {
		if id, ok := f.EventID(); ok && id == event {
			res = append(res, f)
		}
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(res)
}

func liveHandler(w http.ResponseWriter, r *http.Request) {
	event := chi.URLParam(r, "event")
	name := fmt.Sprintf("event_%s_live.json", event)
	if _, err := fpldata.Open("fpldata/" + name); err != nil {
		// The real API answers unknown gameweeks with a 404 page.
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("The game is being updated."))
		return
	}
	serveFile(w, name)
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := fpldata.ReadFile(fmt.Sprintf("fpldata/%s", name))
	if err != nil {
		log.Printf("error reading fpldata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
