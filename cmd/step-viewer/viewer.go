package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/mohamedthameursassi/transit-astar/routing"
)

type nodePosition struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type stepResponse struct {
	Start string `json:"start"`
	Goal  string `json:"goal"`
	routing.Snapshot[string]
}

// viewer replays one search at a time, one expansion per /next call.
type viewer struct {
	graph  *routing.Network[string]
	finder *routing.PathFinder[string]

	mu          sync.Mutex
	stepper     *routing.Stepper[string]
	start, goal string
}

func newViewer(graph *routing.Network[string], finder *routing.PathFinder[string]) *viewer {
	return &viewer{graph: graph, finder: finder}
}

func (v *viewer) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/init", v.handleInit).Methods("POST")
	r.HandleFunc("/next", v.handleNext).Methods("GET")
	r.HandleFunc("/graph", v.handleGraph).Methods("GET")
	return r
}

func (v *viewer) handleInit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	stepper, err := routing.NewStepper(v.finder, from, to)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, routing.ErrUnknownNode) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	v.mu.Lock()
	v.stepper, v.start, v.goal = stepper, from, to
	v.mu.Unlock()

	log.Printf("Stepping search %s -> %s", from, to)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "from": from, "to": to})
}

func (v *viewer) handleNext(w http.ResponseWriter, r *http.Request) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.stepper == nil {
		writeError(w, http.StatusBadRequest, "search not initialized")
		return
	}
	snap, err := v.stepper.Step()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stepResponse{Start: v.start, Goal: v.goal, Snapshot: snap})
}

func (v *viewer) handleGraph(w http.ResponseWriter, r *http.Request) {
	nodes := make([]nodePosition, 0, v.graph.NodeCount())
	for _, id := range v.graph.IDs() {
		coord, _ := v.graph.Coordinate(id)
		nodes = append(nodes, nodePosition{ID: id, Latitude: coord.Lat, Longitude: coord.Lon})
	}
	writeJSON(w, http.StatusOK, map[string]any{"nodes": nodes, "edges": v.graph.EdgeCount()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
