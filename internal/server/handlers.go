package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/katalvlaran/indoornav/navigator"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type nearbyResponse struct {
	From  string             `json:"from"`
	Max   float64            `json:"max"`
	Count int                `json:"count"`
	POIs  []navigator.Nearby `json:"pois"`
}

type reachableResponse struct {
	From  string              `json:"from"`
	Hops  int                 `json:"hops,omitempty"`
	Count int                 `json:"count"`
	Nodes []navigator.Reached `json:"nodes"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: requestID(r.Context())})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "query parameters 'from' and 'to' are required")
		return
	}

	route, ok, err := s.nav.Load().Navigate(from, to)
	switch {
	case errors.Is(err, navigator.ErrUnresolved):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, err.Error())
	case !ok:
		writeError(w, r, http.StatusNotFound, "no route between "+from+" and "+to)
	default:
		writeJSON(w, http.StatusOK, route)
	}
}

func (s *Server) handleNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := q.Get("from")
	if from == "" {
		writeError(w, r, http.StatusBadRequest, "query parameter 'from' is required")
		return
	}
	radius := s.nearby.Radius
	if raw := q.Get("max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid 'max': "+err.Error())
			return
		}
		radius = v
	}

	pois, err := s.nav.Load().NearbyPOIs(from, radius)
	switch {
	case errors.Is(err, navigator.ErrBadRadius):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, navigator.ErrUnresolved):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, nearbyResponse{From: from, Max: radius, Count: len(pois), POIs: pois})
	}
}

func (s *Server) handleReachable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := q.Get("from")
	if from == "" {
		writeError(w, r, http.StatusBadRequest, "query parameter 'from' is required")
		return
	}
	hops := 0
	if raw := q.Get("hops"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			writeError(w, r, http.StatusBadRequest, "invalid 'hops': "+raw)
			return
		}
		hops = v
	}

	nodes, err := s.nav.Load().Reachable(r.Context(), from, hops)
	switch {
	case errors.Is(err, navigator.ErrUnresolved):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, reachableResponse{From: from, Hops: hops, Count: len(nodes), Nodes: nodes})
	}
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.nav.Load().Info())
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
