// Package render draws boundaries to PNG, with crossing edges picked out in
// red. It's a debugging aid for boundaries that fail validation.
package render

import (
	"io"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/boundguard"
	"github.com/osuushi/boundguard/boundary"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels
const padding = 40

// Draw the boundary at the given scale (pixels per world unit). The image is
// laid out on the X/Z plane with Z pointing up.
func Draw(b *boundary.Boundary, scale float64) *gg.Context {
	min, max := b.Bounds()
	width := int(scale*float64(max.X-min.X)) + padding*2
	height := int(scale*float64(max.Z-min.Z)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	if len(b.Points) == 0 {
		return c
	}

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(padding, padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-float64(min.X), -float64(min.Z))

	crossing := make(map[boundguard.Edge]bool)
	for _, pair := range b.Crossings() {
		crossing[pair.A] = true
		crossing[pair.B] = true
	}

	// Fill first, so edges draw on top
	c.MoveTo(float64(b.Points[0].X), float64(b.Points[0].Z))
	for _, p := range b.Points[1:] {
		c.LineTo(float64(p.X), float64(p.Z))
	}
	c.ClosePath()
	c.SetFillRuleEvenOdd()
	c.SetRGB(0, 0.3, 0)
	c.Fill()

	c.SetLineWidth(2 / scale)
	n := len(b.Points)
	for i := range b.Points {
		edge := boundguard.Edge{Start: i, End: (i + 1) % n}
		start, end := b.Points[edge.Start], b.Points[edge.End]
		c.DrawLine(float64(start.X), float64(start.Z), float64(end.X), float64(end.Z))
		if crossing[edge] {
			c.SetRGB(1, 0, 0)
		} else {
			c.SetRGB(0, 1, 1)
		}
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range b.Points {
		c.DrawCircle(float64(p.X), float64(p.Z), 3/scale)
		c.Fill()
	}
	return c
}

// Draw the boundary and save it as a PNG.
func PNG(path string, b *boundary.Boundary, scale float64) error {
	if scale <= 0 {
		return errors.Errorf("scale must be positive, got %g", scale)
	}
	if err := Draw(b, scale).SavePNG(path); err != nil {
		return errors.Wrap(err, "save png")
	}
	return nil
}

// Print an image file to the terminal (iTerm only).
func Cat(path string, w io.Writer) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "cat image")
	}
	imgcat.CatFile(path, w)
	return nil
}
