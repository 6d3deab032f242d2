package boundary

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Boundaries can be read from a handful of formats. Only YAML keeps everything;
// the others are 2D, and their coordinates land on X and Z with a height of zero
// unless the format has a third coordinate to offer.

var ErrUnknownFormat = errors.New("unknown boundary format")

// Read a boundary, picking the format from the file extension. The result is
// not validated.
func ReadFile(path string) (*Boundary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open boundary")
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var b *Boundary
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err = ReadYAML(f)
	case ".geojson", ".json":
		b, err = ReadGeoJSON(f)
	case ".svg":
		b, err = ReadSVG(f)
	case ".txt", "":
		b, err = ReadText(f)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if b.Name == "" {
		b.Name = name
	}
	return b, nil
}

func ReadYAML(r io.Reader) (*Boundary, error) {
	b := new(Boundary)
	if err := yaml.NewDecoder(r).Decode(b); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	kind, err := ParseKind(string(b.Kind))
	if err != nil {
		return nil, err
	}
	b.Kind = kind
	return b, nil
}

func WriteYAML(w io.Writer, b *Boundary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return enc.Close()
}

// Write a boundary to a file, picking the format from the extension. Only YAML
// and GeoJSON can be written.
func WriteFile(path string, b *Boundary) error {
	var encode func(io.Writer, *Boundary) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		encode = WriteGeoJSON
	case ".yaml", ".yml":
		encode = WriteYAML
	default:
		return errors.Wrapf(ErrUnknownFormat, "%s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create boundary")
	}
	err = encode(f, b)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Accepts a bare Polygon or LineString geometry, a Feature holding one, or a
// FeatureCollection, in which case the first feature is used. For polygons only
// the outer ring is read, and the closing point that GeoJSON repeats is dropped.
// Feature properties "name" and "kind" are picked up when present.
func ReadGeoJSON(r io.Reader) (*Boundary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read geojson")
	}
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, errors.Wrap(err, "parse geojson")
	}

	b := &Boundary{Kind: Region}
	var geometry *geojson.Geometry
	var properties map[string]interface{}
	switch header.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrap(err, "parse geojson")
		}
		if len(fc.Features) == 0 {
			return nil, errors.New("feature collection is empty")
		}
		geometry, properties = fc.Features[0].Geometry, fc.Features[0].Properties
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrap(err, "parse geojson")
		}
		geometry, properties = f.Geometry, f.Properties
	default:
		geometry, err = geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrap(err, "parse geojson")
		}
	}

	if name, ok := properties["name"].(string); ok {
		b.Name = name
	}
	if kind, ok := properties["kind"].(string); ok {
		if b.Kind, err = ParseKind(kind); err != nil {
			return nil, err
		}
	}

	var coords [][]float64
	switch {
	case geometry == nil:
		return nil, errors.New("feature has no geometry")
	case geometry.IsPolygon():
		if len(geometry.Polygon) == 0 {
			return nil, errors.New("polygon has no rings")
		}
		coords = geometry.Polygon[0]
		if n := len(coords); n > 1 && sameCoords(coords[0], coords[n-1]) {
			coords = coords[:n-1]
		}
	case geometry.IsLineString():
		coords = geometry.LineString
		if _, ok := properties["kind"]; !ok {
			b.Kind = Road
		}
	default:
		return nil, errors.Errorf("unsupported geometry %q", geometry.Type)
	}

	for i, c := range coords {
		if len(c) < 2 {
			return nil, errors.Errorf("position %d has %d coordinates", i, len(c))
		}
		p := Point{X: float32(c[0]), Z: float32(c[1])}
		if len(c) > 2 {
			p.Y = float32(c[2])
		}
		b.Points = append(b.Points, p)
	}
	return b, nil
}

func WriteGeoJSON(w io.Writer, b *Boundary) error {
	ring := make([][]float64, 0, len(b.Points)+1)
	for _, p := range b.Points {
		ring = append(ring, []float64{float64(p.X), float64(p.Z), float64(p.Y)})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	feature := geojson.NewFeature(geojson.NewPolygonGeometry([][][]float64{ring}))
	feature.SetProperty("name", b.Name)
	feature.SetProperty("kind", string(b.Kind))
	data, err := feature.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encode geojson")
	}
	_, err = w.Write(data)
	return err
}

func sameCoords(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// This is not a full (or even correct) svg reader. It finds the first polygon
// or polyline and reads its points attribute, which must be "x,y" pairs
// separated by whitespace.
func ReadSVG(r io.Reader) (*Boundary, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	b := &Boundary{Kind: Region}
	shapes := rootEl.FindAll("polygon")
	if len(shapes) == 0 {
		shapes = rootEl.FindAll("polyline")
		b.Kind = Road
	}
	if len(shapes) == 0 {
		return nil, errors.New("no polygon or polyline found in svg")
	}
	shape := shapes[0]
	b.Name = shape.Attributes["id"]

	for _, pointString := range strings.Fields(shape.Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		z, err := strconv.ParseFloat(coords[1], 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		b.Points = append(b.Points, Point{X: float32(x), Z: float32(z)})
	}
	return b, nil
}

// Newline separated points in the form "x z" or "x y z". Blank lines and lines
// starting with # are skipped.
func ReadText(r io.Reader) (*Boundary, error) {
	b := &Boundary{Kind: Region}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		b.Points = append(b.Points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read text")
	}
	return b, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	values := make([]float32, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return Point{}, errors.Wrapf(err, "coordinate %d", i)
		}
		values[i] = float32(v)
	}
	switch len(values) {
	case 2:
		return Point{X: values[0], Z: values[1]}, nil
	case 3:
		return Point{X: values[0], Y: values[1], Z: values[2]}, nil
	}
	return Point{}, errors.Errorf("expected 2 or 3 coordinates, got %d", len(values))
}
