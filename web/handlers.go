package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kirikanjuguna/FPL-genius/controller"
	"github.com/kirikanjuguna/FPL-genius/model"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

// Navigation sections, used to highlight the active link.
const (
	NAV_HOME      = "home"
	NAV_PLAYERS   = "players"
	NAV_TEAMS     = "teams"
	NAV_FIXTURES  = "fixtures"
	NAV_GAMEWEEKS = "gameweeks"
	NAV_ABOUT     = "about"
)

// pageData is the binding every template is rendered with, so the layout can
// always rely on Nav and Title being present.
func pageData(nav, title string, data any) map[string]any {
	return map[string]any{
		"Nav":   nav,
		"Title": title,
		"Data":  data,
	}
}

func renderError(render *render.Render, w http.ResponseWriter, status int, nav, msg string) {
	tmpl := "500"
	title := "Error"
	if status == http.StatusNotFound {
		tmpl = "404"
		title = "Not found"
	}
	render.HTML(w, status, tmpl, pageData(nav, title, msg))
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "home", pageData(NAV_HOME, "MyFPL-Genius", nil))
	}
}

func aboutHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "about", pageData(NAV_ABOUT, "About", nil))
	}
}

func notFoundHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderError(render, w, http.StatusNotFound, "", "Page not found.")
	}
}

func playersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		q := model.PlayerQuery{
			Search:   params.Get("q"),
			Team:     atoi(params.Get("team")),
			Position: model.ParsePosition(params.Get("pos")),
			Sort:     model.ParseSortMode(params.Get("sort")),
			Limit:    atoi(params.Get("limit")),
		}

		page, err := ctrl.ListPlayers(r.Context(), q)
		if err != nil {
			log.Error().Err(err).Msg("error listing players")
			renderError(render, w, http.StatusInternalServerError, NAV_PLAYERS, "Failed to load players.")
			return
		}

		data := map[string]any{
			"Page":      page,
			"Positions": model.Positions,
			"Sorts":     []model.SortMode{model.SORT_POINTS, model.SORT_COST, model.SORT_NAME},
			"MoreURL":   loadMoreURL(page.Query, page.NextLimit),
		}
		render.HTML(w, http.StatusOK, "players", pageData(NAV_PLAYERS, "Players", data))
	}
}

// loadMoreURL keeps the current filters and asks for the next page.
func loadMoreURL(q model.PlayerQuery, limit int) string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Team != 0 {
		v.Set("team", strconv.Itoa(q.Team))
	}
	if p := q.Position.Param(); p != "" {
		v.Set("pos", p)
	}
	if q.Sort != "" && q.Sort != model.SORT_POINTS {
		v.Set("sort", string(q.Sort))
	}
	v.Set("limit", strconv.Itoa(limit))
	return "/players?" + v.Encode()
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "playerID"))
		if err != nil {
			renderError(render, w, http.StatusNotFound, NAV_PLAYERS, "Player not found.")
			return
		}

		p, err := ctrl.GetPlayer(r.Context(), id)
		if err != nil {
			if errors.Is(err, controller.ErrPlayerNotFound) {
				renderError(render, w, http.StatusNotFound, NAV_PLAYERS, "Player not found.")
			} else {
				log.Error().Err(err).Int("player", id).Msg("error loading player")
				renderError(render, w, http.StatusInternalServerError, NAV_PLAYERS, "Failed to load player.")
			}
			return
		}

		render.HTML(w, http.StatusOK, "player", pageData(NAV_PLAYERS, p.Player.WebName, p))
	}
}

func teamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("q")

		teams, err := ctrl.ListTeams(r.Context(), search)
		if err != nil {
			log.Error().Err(err).Msg("error listing teams")
			renderError(render, w, http.StatusInternalServerError, NAV_TEAMS, "Failed to load teams.")
			return
		}

		data := map[string]any{
			"Search": search,
			"Teams":  teams,
		}
		render.HTML(w, http.StatusOK, "teams", pageData(NAV_TEAMS, "Premier League Teams", data))
	}
}

func getTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "teamID"))
		if err != nil {
			renderError(render, w, http.StatusNotFound, NAV_TEAMS, "Team not found.")
			return
		}

		d, err := ctrl.GetTeam(r.Context(), id)
		if err != nil {
			if errors.Is(err, controller.ErrTeamNotFound) {
				renderError(render, w, http.StatusNotFound, NAV_TEAMS, "Team not found.")
			} else {
				log.Error().Err(err).Int("team", id).Msg("error loading team")
				renderError(render, w, http.StatusInternalServerError, NAV_TEAMS, "Failed to load team.")
			}
			return
		}

		render.HTML(w, http.StatusOK, "team", pageData(NAV_TEAMS, d.Team.Name, d))
	}
}

func fixturesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := model.ParseFixtureFilter(r.URL.Query().Get("filter"))

		l, err := ctrl.ListFixtures(r.Context(), filter)
		if err != nil {
			log.Error().Err(err).Msg("error listing fixtures")
			renderError(render, w, http.StatusInternalServerError, NAV_FIXTURES, "Failed to load fixtures.")
			return
		}

		data := map[string]any{
			"List":    l,
			"Filters": model.FixtureFilters,
		}
		render.HTML(w, http.StatusOK, "fixtures", pageData(NAV_FIXTURES, "Fixtures", data))
	}
}

func gameweeksHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event := atoi(r.URL.Query().Get("event"))

		s, err := ctrl.GameweekSummary(r.Context(), event)
		if err != nil {
			log.Error().Err(err).Int("event", event).Msg("error loading gameweeks")
			renderError(render, w, http.StatusInternalServerError, NAV_GAMEWEEKS, "Failed to load gameweeks.")
			return
		}

		render.HTML(w, http.StatusOK, "gameweeks", pageData(NAV_GAMEWEEKS, "Gameweeks", s))
	}
}

// atoi returns 0 for anything that is not a number.
func atoi(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}
