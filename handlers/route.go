package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/twpayne/go-polyline"

	"github.com/mohamedthameursassi/transit-astar/routing"
)

// Settings bounds the work a single HTTP request may cause.
type Settings struct {
	SearchTimeout time.Duration
	BatchWorkers  int
	MaxBatchSize  int
}

// RouteHandler serves shortest-time routes over one loaded graph.
type RouteHandler struct {
	graph    *routing.Network[string]
	finder   *routing.PathFinder[string]
	settings Settings
}

func NewRouteHandler(graph *routing.Network[string], finder *routing.PathFinder[string], settings Settings) *RouteHandler {
	return &RouteHandler{
		graph:    graph,
		finder:   finder,
		settings: settings,
	}
}

func (h *RouteHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.Health)

	api := router.Group("/api")
	api.GET("/graph", h.GetGraph)
	api.GET("/nodes/:id", h.GetNode)
	api.POST("/route", h.CalculateRoute)
	api.POST("/route/batch", h.CalculateBatch)
}

func (h *RouteHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "nodes": h.graph.NodeCount()})
}

func (h *RouteHandler) GetGraph(c *gin.Context) {
	c.JSON(http.StatusOK, GraphResponse{Nodes: h.graph.NodeCount(), Edges: h.graph.EdgeCount()})
}

func (h *RouteHandler) GetNode(c *gin.Context) {
	id := c.Param("id")
	node, ok := h.graph.Node(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "node " + id + " not found"})
		return
	}
	edges := node.Edges
	if edges == nil {
		edges = []routing.Edge[string]{}
	}
	c.JSON(http.StatusOK, NodeResponse{ID: node.ID, Coordinate: node.Coord, Edges: edges})
}

func (h *RouteHandler) CalculateRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("ERROR: Failed to parse request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.searchContext(c)
	defer cancel()

	route, found, err := h.finder.SearchContext(ctx, req.From, req.To)
	if err != nil {
		log.Printf("Route %s -> %s failed: %v", req.From, req.To, err)
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "requestId": requestID(c)})
		return
	}

	resp := h.buildResponse(req, route, found)
	resp.RequestID = requestID(c)
	if found {
		log.Printf("Route %s -> %s: %d nodes, cost %.1f, %d expansions", req.From, req.To, len(route.Path), route.Cost, route.Expanded)
	} else {
		log.Printf("No path found from %s to %s after %d expansions", req.From, req.To, route.Expanded)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RouteHandler) CalculateBatch(c *gin.Context) {
	var req BatchRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.settings.MaxBatchSize > 0 && len(req.Queries) > h.settings.MaxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many queries in batch"})
		return
	}

	queries := make([]routing.Query[string], len(req.Queries))
	for i, q := range req.Queries {
		queries[i] = routing.Query[string]{From: q.From, To: q.To}
	}

	ctx, cancel := h.searchContext(c)
	defer cancel()

	results := h.finder.SearchMany(ctx, queries, h.settings.BatchWorkers)
	routes := make([]RouteResponse, len(results))
	for i, r := range results {
		if r.Err != nil {
			routes[i] = RouteResponse{From: r.Query.From, To: r.Query.To, Error: r.Err.Error()}
			continue
		}
		routes[i] = h.buildResponse(req.Queries[i], r.Route, r.Found)
	}

	log.Printf("Batch of %d queries completed", len(routes))
	c.JSON(http.StatusOK, BatchRouteResponse{RequestID: requestID(c), Routes: routes, Count: len(routes)})
}

func (h *RouteHandler) searchContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.settings.SearchTimeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.settings.SearchTimeout)
	}
	return context.WithCancel(c.Request.Context())
}

func (h *RouteHandler) buildResponse(req RouteRequest, route routing.Route[string], found bool) RouteResponse {
	resp := RouteResponse{
		From:     req.From,
		To:       req.To,
		Found:    found,
		Expanded: route.Expanded,
	}
	if !found {
		return resp
	}

	resp.Path = route.Path
	resp.Cost = route.Cost
	resp.Coordinates = make([]routing.Coordinate, 0, len(route.Path))
	coords := make([][]float64, 0, len(route.Path))
	for _, id := range route.Path {
		coord, _ := h.graph.Coordinate(id)
		resp.Coordinates = append(resp.Coordinates, coord)
		coords = append(coords, []float64{coord.Lat, coord.Lon})
	}
	resp.Polyline = string(polyline.EncodeCoords(coords))
	return resp
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, routing.ErrUnknownNode):
		return http.StatusNotFound
	case errors.Is(err, routing.ErrExpansionLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
