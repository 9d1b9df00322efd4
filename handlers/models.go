package handlers

import "github.com/mohamedthameursassi/transit-astar/routing"

type RouteRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type BatchRouteRequest struct {
	Queries []RouteRequest `json:"queries" binding:"required,min=1,dive"`
}

// RouteResponse is returned for every route query. Found is false, with no
// path, when the destination cannot be reached.
type RouteResponse struct {
	RequestID   string               `json:"requestId,omitempty"`
	From        string               `json:"from"`
	To          string               `json:"to"`
	Found       bool                 `json:"found"`
	Path        []string             `json:"path,omitempty"`
	Cost        float64              `json:"cost"`
	Expanded    int                  `json:"expanded"`
	Coordinates []routing.Coordinate `json:"coordinates,omitempty"`
	Polyline    string               `json:"polyline,omitempty"` // encoded polyline, precision 5
	Error       string               `json:"error,omitempty"`
}

type BatchRouteResponse struct {
	RequestID string          `json:"requestId"`
	Routes    []RouteResponse `json:"routes"`
	Count     int             `json:"count"`
}

type NodeResponse struct {
	ID         string                 `json:"id"`
	Coordinate routing.Coordinate     `json:"coordinate"`
	Edges      []routing.Edge[string] `json:"edges"`
}

type GraphResponse struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}
