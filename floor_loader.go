package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// FloorPlanDoc is the persisted floor plan document format.
type FloorPlanDoc struct {
	Floor     string               `json:"floor"`
	Width     float64              `json:"width"`
	Height    float64              `json:"height"`
	Obstacles []ObstacleDescriptor `json:"obstacles"`
}

// ObstacleDescriptor is a tagged obstacle variant as it appears in floor
// plan documents. Type selects the variant; only that variant's geometry
// fields are read.
type ObstacleDescriptor struct {
	Type        string   `json:"type"`
	TopLeft     *PointIn `json:"topLeft,omitempty"`
	BottomRight *PointIn `json:"bottomRight,omitempty"`
	Center      *PointIn `json:"center,omitempty"`
	Radius      float64  `json:"radius,omitempty"`
}

// PointIn is a raw coordinate pair from a document.
type PointIn struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Build constructs the obstacle the descriptor describes, validating the
// discriminator and geometry.
func (d ObstacleDescriptor) Build() (Obstacle, error) {
	switch d.Type {
	case KindRectangle:
		if d.TopLeft == nil || d.BottomRight == nil {
			return nil, fmt.Errorf("%s descriptor missing topLeft/bottomRight", KindRectangle)
		}
		return NewRectangleObstacle(NewPoint(d.TopLeft.X, d.TopLeft.Y), NewPoint(d.BottomRight.X, d.BottomRight.Y))
	case KindCircle:
		if d.Center == nil {
			return nil, fmt.Errorf("%s descriptor missing center", KindCircle)
		}
		return NewCircleObstacle(NewPoint(d.Center.X, d.Center.Y), d.Radius)
	default:
		return nil, fmt.Errorf("unknown obstacle type %q", d.Type)
	}
}

// Floor is a loaded floor: its navigable grid plus named destinations.
type Floor struct {
	Name         string
	Grid         *GridMap
	Destinations []Point
}

// DestinationByName resolves a named end location on the floor.
func (f *Floor) DestinationByName(name string) (Point, bool) {
	for _, d := range f.Destinations {
		if d.Name == name {
			return d, true
		}
	}
	return Point{}, false
}

// destinationRecord is one row of the destinations CSV.
type destinationRecord struct {
	Name    string  `csv:"name"`
	Floor   string  `csv:"floor"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	Heading float64 `csv:"heading"`
}

// loadFloorPlans loads every floor plan JSON document from plansDir and
// builds a grid for each at the given step.
func loadFloorPlans(plansDir string, step float64) (map[string]*Floor, error) {
	files, err := filepath.Glob(filepath.Join(plansDir, "*.json"))
	if err != nil {
		return nil, err
	}

	log.Printf("Loading floor plans from %d JSON files...\n", len(files))

	floors := make(map[string]*Floor)
	for _, file := range files {
		floor, err := loadFloorPlan(file, step)
		if err != nil {
			return nil, fmt.Errorf("floor plan %s: %w", filepath.Base(file), err)
		}
		floors[floor.Name] = floor
		log.Printf("   ✅ Floor %q: %.1fx%.1f, %d obstacles, %d cells\n",
			floor.Name, floor.Grid.Width, floor.Grid.Height,
			len(floor.Grid.Obstacles), len(floor.Grid.Cells)*len(floor.Grid.Cells[0]))
	}

	log.Printf("Total floors loaded: %d\n", len(floors))
	return floors, nil
}

// loadFloorPlan parses one floor plan document and builds its grid.
func loadFloorPlan(file string, step float64) (*Floor, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc FloorPlanDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	obstacles := make([]Obstacle, 0, len(doc.Obstacles))
	for i, descriptor := range doc.Obstacles {
		obstacle, err := descriptor.Build()
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		obstacles = append(obstacles, obstacle)
	}

	grid, err := NewGridMap(doc.Width, doc.Height, obstacles, step)
	if err != nil {
		return nil, err
	}

	return &Floor{Name: doc.Floor, Grid: grid}, nil
}

// loadDestinations reads the destinations CSV and attaches each named end
// location to its floor. Rows naming an unknown floor are skipped with a
// warning so one stale row cannot take down a reload.
func loadDestinations(csvPath string, floors map[string]*Floor) error {
	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open destinations file: %w", err)
	}
	defer file.Close()

	var records []destinationRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return fmt.Errorf("failed to parse destinations file: %w", err)
	}

	loaded := 0
	for _, record := range records {
		floor, ok := floors[record.Floor]
		if !ok {
			log.Printf("   ⚠️  Destination %q names unknown floor %q, skipping\n", record.Name, record.Floor)
			continue
		}
		destination := NewPoint(record.X, record.Y)
		destination.Name = record.Name
		destination.Heading = record.Heading
		floor.Destinations = append(floor.Destinations, destination)
		loaded++
	}

	log.Printf("Total destinations loaded: %d\n", loaded)
	return nil
}
