package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sync"
)

// RouteRequest asks for a walkable route on one floor. Either Goal or
// Destination (a named end location from the floor's destination list) must
// be set.
type RouteRequest struct {
	Floor       string   `json:"floor"`
	Start       PointIn  `json:"start"`
	Goal        *PointIn `json:"goal,omitempty"`
	Destination string   `json:"destination,omitempty"`

	// Policy selects the cost model: "shortest" (proximity-weighted
	// distance, the default) or "smooth" (turn-penalized distance).
	Policy             string   `json:"policy,omitempty"`
	ShortestPathFactor *float64 `json:"shortestPathFactor,omitempty"`
}

// RouteResponse carries the ordered waypoints of a computed route. An empty
// path with Success false means no route exists; that is not an error.
type RouteResponse struct {
	Path    []Point `json:"path"`
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Length  float64 `json:"length,omitempty"`
}

var (
	globalConfig *Config
	floorsByName map[string]*Floor
	floorsMutex  sync.RWMutex
)

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func routeHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Route request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	floorsMutex.RLock()
	floor := floorsByName[req.Floor]
	floorsMutex.RUnlock()

	if floor == nil {
		log.Printf("❌ Unknown floor %q\n", req.Floor)
		http.Error(w, "Unknown floor", http.StatusNotFound)
		log.Println("========================================")
		return
	}

	start := NewPoint(req.Start.X, req.Start.Y)
	goal, message := resolveGoal(floor, &req)
	if message != "" {
		log.Printf("❌ %s\n", message)
		writeJSON(w, RouteResponse{Success: false, Message: message})
		log.Println("========================================")
		return
	}

	log.Printf("   Floor: %q\n", req.Floor)
	log.Printf("   Start: (%.2f, %.2f)\n", start.X, start.Y)
	log.Printf("   Goal:  (%.2f, %.2f)\n", goal.X, goal.Y)

	cost := costForRequest(floor.Grid, &req)

	log.Println("🔍 Running A* on floor grid...")
	path, found := FindPath(start, goal, floor.Grid.Neighbors, cost, EuclideanHeuristic)

	response := RouteResponse{
		Path:    annotateHeadings(path),
		Success: found,
		Length:  PathLength(path),
	}

	if !found {
		log.Println("❌ No path found")
		response.Message = "No walkable path between start and goal"
		response.Path = []Point{}
	} else {
		log.Printf("✅ Path found with %d waypoints\n", len(path))
		log.Printf("   Length: %.2f units\n", response.Length)
	}

	writeJSON(w, response)
	log.Println("========================================")
}

// resolveGoal picks the goal point from the request: an explicit coordinate
// or a named destination on the floor. Returns a message on failure.
func resolveGoal(floor *Floor, req *RouteRequest) (Point, string) {
	if req.Goal != nil {
		return NewPoint(req.Goal.X, req.Goal.Y), ""
	}
	if req.Destination == "" {
		return Point{}, "Request must set either goal or destination"
	}
	goal, ok := floor.DestinationByName(req.Destination)
	if !ok {
		return Point{}, "Unknown destination " + req.Destination
	}
	return goal, ""
}

// costForRequest builds the cost policy the request asks for.
func costForRequest(grid *GridMap, req *RouteRequest) CostFunc {
	if req.Policy == "smooth" {
		return TurnPenaltyCost()
	}
	factor := globalConfig.Engine.ShortestPathFactor
	if req.ShortestPathFactor != nil {
		factor = *req.ShortestPathFactor
	}
	return grid.ProximityCost(factor)
}

// annotateHeadings sets each waypoint's heading toward its successor; the
// final waypoint keeps the heading of the approach.
func annotateHeadings(path []Point) []Point {
	for i := 0; i < len(path)-1; i++ {
		path[i].Heading = path[i].HeadingTo(path[i+1])
	}
	if len(path) > 1 {
		path[len(path)-1].Heading = path[len(path)-2].Heading
	}
	return path
}

// FloorView is the read-only rendering contract for one floor.
type FloorView struct {
	Floor        string               `json:"floor"`
	Width        float64              `json:"width"`
	Height       float64              `json:"height"`
	Obstacles    []ObstacleDescriptor `json:"obstacles"`
	Destinations []Point              `json:"destinations"`
}

// GET /floors - Loaded floors with obstacle shapes and destinations
func floorsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	floorsMutex.RLock()
	defer floorsMutex.RUnlock()

	views := make([]FloorView, 0, len(floorsByName))
	for name, floor := range floorsByName {
		view := FloorView{
			Floor:        name,
			Width:        floor.Grid.Width,
			Height:       floor.Grid.Height,
			Obstacles:    make([]ObstacleDescriptor, 0, len(floor.Grid.Obstacles)),
			Destinations: floor.Destinations,
		}
		for _, obstacle := range floor.Grid.Obstacles {
			view.Obstacles = append(view.Obstacles, describeObstacle(obstacle))
		}
		views = append(views, view)
	}

	writeJSON(w, map[string]interface{}{
		"floors": views,
	})
}

// describeObstacle converts a shape back to its document descriptor for
// rendering clients.
func describeObstacle(obstacle Obstacle) ObstacleDescriptor {
	switch shape := obstacle.(type) {
	case *RectangleObstacle:
		return ObstacleDescriptor{
			Type:        KindRectangle,
			TopLeft:     &PointIn{X: shape.TopLeft.X, Y: shape.TopLeft.Y},
			BottomRight: &PointIn{X: shape.BottomRight.X, Y: shape.BottomRight.Y},
		}
	case *CircleObstacle:
		return ObstacleDescriptor{
			Type:   KindCircle,
			Center: &PointIn{X: shape.Center.X, Y: shape.Center.Y},
			Radius: shape.Radius,
		}
	default:
		return ObstacleDescriptor{Type: obstacle.Kind()}
	}
}

// POST /reload - Re-read floor plans and destinations from disk
func reloadHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("🔄 Reload request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	floors, err := loadFloorData(globalConfig)
	if err != nil {
		log.Printf("❌ Reload failed: %v\n", err)
		http.Error(w, "Reload failed: "+err.Error(), http.StatusInternalServerError)
		log.Println("========================================")
		return
	}

	// Swap the registry; in-flight searches keep their old grids.
	floorsMutex.Lock()
	floorsByName = floors
	floorsMutex.Unlock()

	log.Printf("✅ Reloaded %d floors\n", len(floors))
	log.Println("========================================")

	writeJSON(w, map[string]interface{}{
		"success":   true,
		"numFloors": len(floors),
	})
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	floorsMutex.RLock()
	numFloors := len(floorsByName)
	floorsMutex.RUnlock()

	status := "ready"
	if numFloors == 0 {
		status = "no floors loaded"
	}

	writeJSON(w, map[string]interface{}{
		"status":    status,
		"numFloors": numFloors,
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// loadFloorData loads the floor plans and attaches destinations.
func loadFloorData(cfg *Config) (map[string]*Floor, error) {
	floors, err := loadFloorPlans(cfg.Data.PlansDir, cfg.Engine.Step)
	if err != nil {
		return nil, err
	}
	if cfg.Data.DestinationsCSV != "" {
		if err := loadDestinations(cfg.Data.DestinationsCSV, floors); err != nil {
			return nil, err
		}
	}
	return floors, nil
}

func main() {
	configPath := flag.String("config", "", "path to YAML config overriding embedded defaults")
	flag.Parse()

	log.Println("========================================")
	log.Println("🚀 Indoor Wayfinding Route Server")
	log.Println("========================================")

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	globalConfig = cfg

	floors, err := loadFloorData(cfg)
	if err != nil {
		log.Printf("⚠️  Failed to load floor data: %v\n", err)
		log.Println("   Starting with no floors; POST /reload after fixing the data")
		floors = make(map[string]*Floor)
	}

	floorsMutex.Lock()
	floorsByName = floors
	floorsMutex.Unlock()

	http.HandleFunc("/route", corsMiddleware(routeHandler))
	http.HandleFunc("/floors", corsMiddleware(floorsHandler))
	http.HandleFunc("/reload", corsMiddleware(reloadHandler))
	http.HandleFunc("/health", corsMiddleware(healthHandler))

	log.Printf("Server starting on %s\n", cfg.Server.Addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /route   - Compute a walkable route on a floor")
	log.Println("  GET  /floors  - Loaded floors, obstacles and destinations")
	log.Println("  POST /reload  - Re-read floor plans and destinations")
	log.Println("  GET  /health  - Check server status")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")
	log.Println("")

	if err := http.ListenAndServe(cfg.Server.Addr, nil); err != nil {
		log.Fatal(err)
	}
}
