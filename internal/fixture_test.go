package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs boundaries. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a point list, with the SVG x and y
// landing on X and Z. If anything goes wrong, it bails.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointStrings := strings.Fields(polygonEl.Attributes["points"])
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 32)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		z, err := strconv.ParseFloat(coords[1], 32)
		if err != nil {
			log.Fatalf("Invalid z value %q: %v", coords[1], err)
		}
		points = append(points, Point{X: float32(x), Z: float32(z)})
	}
	return points
}

// Some ad hoc fixtures

func SimpleStar() []Point {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: float32(radius * math.Cos(angle)), Z: float32(radius * math.Sin(angle))})
	}
	return points
}

// A road that follows the terrain. Heights vary wildly, which must not matter.
func HillyRoad() []Point {
	return []Point{
		{X: 0, Y: 100, Z: 0},
		{X: 20, Y: -40, Z: 0},
		{X: 20, Y: 7, Z: 5},
		{X: 0, Y: 3000, Z: 5},
	}
}

// Quick constructor for tests
func pts(coords ...float32) []Point {
	if len(coords)%2 != 0 {
		panic("odd number of coordinates")
	}
	points := make([]Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		points = append(points, Point{X: coords[i], Z: coords[i+1]})
	}
	return points
}

func xz(x, z float32) Point {
	return Point{X: x, Z: z}
}
