package web

import (
	"net/http"
	"strconv"

	"github.com/kirikanjuguna/FPL-genius/controller"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

type apiError struct {
	Error string `json:"error"`
}

// parseEvent reads the required, positive ?event= parameter.
func parseEvent(r *http.Request) (int, bool) {
	event, err := strconv.Atoi(r.URL.Query().Get("event"))
	if err != nil || event < 1 {
		return 0, false
	}
	return event, true
}

func apiFixturesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, ok := parseEvent(r)
		if !ok {
			render.JSON(w, http.StatusBadRequest, apiError{Error: "invalid event"})
			return
		}

		b, err := ctrl.EventFixtures(r.Context(), event)
		if err != nil {
			log.Error().Err(err).Int("event", event).Msg("fixtures api error")
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "Failed to load fixtures"})
			return
		}
		writeRawJSON(w, b)
	}
}

func apiLiveHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, ok := parseEvent(r)
		if !ok {
			render.JSON(w, http.StatusBadRequest, apiError{Error: "invalid event"})
			return
		}

		b, err := ctrl.EventLive(r.Context(), event)
		if err != nil {
			log.Error().Err(err).Int("event", event).Msg("live api error")
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "Failed to load live data"})
			return
		}
		writeRawJSON(w, b)
	}
}

// writeRawJSON sends an upstream document as is.
func writeRawJSON(w http.ResponseWriter, b []byte) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
