package geometry

import (
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/intgeom/dbg"
)

// This is for debugging purposes only

// Padding around the scene so unbounded shapes (lines, rays) visibly run off
// the data bounds instead of stopping at them.
const dbgDrawPadding = 100

var inverseMatrixForContext map[*gg.Context]gg.Matrix

func init() {
	inverseMatrixForContext = make(map[*gg.Context]gg.Matrix)
}

// DrawShapes renders the shapes to a temp PNG and cats it to the terminal
// (iTerm only). Nothing in the library calls this; it exists to eyeball a
// scene while debugging, and the demo command exposes it behind a flag.
func DrawShapes(shapes []Shape, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, shape := range shapes {
		for _, p := range anchorPoints(shape) {
			minX = math.Min(minX, float64(p.X))
			minY = math.Min(minY, float64(p.Y))
			maxX = math.Max(maxX, float64(p.X))
			maxY = math.Max(maxY, float64(p.Y))
		}
	}
	// A scene of nothing but lines has no finite anchors; give it a window
	// around the origin so there is still something to draw into.
	if minX > maxX {
		minX, minY, maxX, maxY = -10, -10, 10, 10
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Reverse the above operations to get the inverse matrix. The gg library
	// has no matrix inverse, or even a way to get at the context matrix, so it
	// comes to this. Whatever, it's debugging code. The inverse is what lets
	// us find the canvas edges in world coordinates, which is where unbounded
	// shapes get clipped.
	inverseMatrix := gg.Identity().
		Translate(minX, minY).
		Scale(1/scale, 1/scale).
		Translate(-dbgDrawPadding, -dbgDrawPadding).
		Scale(1, -1).
		Translate(0, -float64(height))
	inverseMatrixForContext[c] = inverseMatrix

	c.SetLineWidth(2)
	for _, shape := range shapes {
		drawShape(c, shape, scale)
	}
	// Labels go in a second pass so no shape paints over them
	for _, shape := range shapes {
		labelShape(c, shape)
	}

	c.SavePNG("/tmp/intgeom.png")
	imgcat.CatFile("/tmp/intgeom.png", os.Stdout)
}

// DbgName gives the shape's readable debug name, colored by class: cyan for
// unbounded shapes, red for degenerate ones, green for everything else.
func DbgName(shape Shape) string {
	name := dbg.Name(shape)
	switch s := shape.(type) {
	case *Line:
		if s.A == 0 && s.B == 0 {
			return aurora.Red(name).String()
		}
		return aurora.Cyan(name).String()
	case *Ray:
		if s.Direction.IsZero() {
			return aurora.Red(name).String()
		}
		return aurora.Cyan(name).String()
	case *Segment:
		if s.Begin.Equal(s.End) {
			return aurora.Red(name).String()
		}
	case *Circle:
		if s.Radius == 0 {
			return aurora.Red(name).String()
		}
	case *Polygon:
		if len(s.Points) < 3 {
			return aurora.Red(name).String()
		}
	}
	return aurora.Green(name).String()
}

// anchorPoints lists the finite points that pin down a shape's extent, used
// for sizing the canvas. Lines contribute nothing; they span whatever canvas
// the other shapes produce.
func anchorPoints(shape Shape) []Point {
	switch s := shape.(type) {
	case *Point:
		return []Point{*s}
	case *Segment:
		return []Point{s.Begin, s.End}
	case *Ray:
		return []Point{s.Begin, s.Begin.Translate(s.Direction)}
	case *Circle:
		r := s.Radius
		return []Point{
			{X: s.Center.X - r, Y: s.Center.Y - r},
			{X: s.Center.X + r, Y: s.Center.Y + r},
		}
	case *Polygon:
		return s.Points
	}
	return nil
}

func drawShape(c *gg.Context, shape Shape, scale float64) {
	bounds := getCanvasBounds(c)
	dotRadius := 4 / scale
	switch s := shape.(type) {
	case *Point:
		c.SetRGB(1, 1, 1)
		c.DrawCircle(float64(s.X), float64(s.Y), dotRadius)
		c.Fill()
	case *Segment:
		c.SetRGB(1, 1, 0)
		c.MoveTo(float64(s.Begin.X), float64(s.Begin.Y))
		c.LineTo(float64(s.End.X), float64(s.End.Y))
		c.Stroke()
	case *Ray:
		c.SetRGB(1, 0, 1)
		if s.Direction.IsZero() {
			c.DrawCircle(float64(s.Begin.X), float64(s.Begin.Y), dotRadius)
			c.Fill()
			return
		}
		// Extend far enough that the end always lands off canvas
		span := float64(bounds.Dx() + bounds.Dy())
		mag := math.Max(math.Abs(float64(s.Direction.X)), math.Abs(float64(s.Direction.Y)))
		k := span/mag + 1
		c.MoveTo(float64(s.Begin.X), float64(s.Begin.Y))
		c.LineTo(float64(s.Begin.X)+k*float64(s.Direction.X), float64(s.Begin.Y)+k*float64(s.Direction.Y))
		c.Stroke()
	case *Line:
		x1, y1, x2, y2, ok := lineAcrossBounds(s, bounds)
		if !ok {
			return
		}
		c.SetRGB(0, 1, 1)
		c.MoveTo(x1, y1)
		c.LineTo(x2, y2)
		c.Stroke()
	case *Circle:
		c.SetRGB(1, 1, 1)
		if s.Radius == 0 {
			c.DrawCircle(float64(s.Center.X), float64(s.Center.Y), dotRadius)
			c.Fill()
			return
		}
		c.DrawCircle(float64(s.Center.X), float64(s.Center.Y), float64(s.Radius))
		c.Stroke()
	case *Polygon:
		if len(s.Points) == 0 {
			return
		}
		c.MoveTo(float64(s.Points[0].X), float64(s.Points[0].Y))
		for _, p := range s.Points[1:] {
			c.LineTo(float64(p.X), float64(p.Y))
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}
}

func labelShape(c *gg.Context, shape Shape) {
	bounds := getCanvasBounds(c)
	x, y, ok := labelAnchor(shape, bounds)
	if !ok {
		return
	}
	c.SetRGB(1, 1, 1)
	// We have to go back to identity to draw the text, so get the point in
	// native coordinates
	x, y = c.TransformPoint(x, y)
	c.Push()
	c.Identity()
	// Undo scaling we're about to do
	x, y = gg.Identity().Scale(.5, .5).TransformPoint(x, y)
	c.Scale(2, 2)
	c.DrawStringAnchored(dbg.Name(shape), x, y, 0.5, 0.5)
	c.Pop()
}

func labelAnchor(shape Shape, bounds image.Rectangle) (float64, float64, bool) {
	switch s := shape.(type) {
	case *Point:
		return float64(s.X), float64(s.Y), true
	case *Segment:
		return float64(s.Begin.X+s.End.X) / 2, float64(s.Begin.Y+s.End.Y) / 2, true
	case *Ray:
		return float64(s.Begin.X), float64(s.Begin.Y), true
	case *Circle:
		return float64(s.Center.X), float64(s.Center.Y), true
	case *Polygon:
		if len(s.Points) == 0 {
			return 0, 0, false
		}
		var sumX, sumY float64
		for _, p := range s.Points {
			sumX += float64(p.X)
			sumY += float64(p.Y)
		}
		n := float64(len(s.Points))
		return sumX / n, sumY / n, true
	case *Line:
		// Label where the line passes the middle of the canvas
		x1, y1, x2, y2, ok := lineAcrossBounds(s, bounds)
		if !ok {
			return 0, 0, false
		}
		return (x1 + x2) / 2, (y1 + y2) / 2, true
	}
	return 0, 0, false
}

// lineAcrossBounds finds where the line enters and leaves the canvas,
// sweeping along whichever axis the equation is better conditioned on. The
// all-zero equation has nothing to draw.
func lineAcrossBounds(line *Line, bounds image.Rectangle) (x1, y1, x2, y2 float64, ok bool) {
	a := float64(line.A)
	b := float64(line.B)
	cc := float64(line.C)
	switch {
	case b != 0 && math.Abs(b) >= math.Abs(a):
		x1 = float64(bounds.Min.X)
		y1 = -(a*x1 + cc) / b
		x2 = float64(bounds.Max.X)
		y2 = -(a*x2 + cc) / b
	case a != 0:
		y1 = float64(bounds.Min.Y)
		x1 = -(b*y1 + cc) / a
		y2 = float64(bounds.Max.Y)
		x2 = -(b*y2 + cc) / a
	default:
		return 0, 0, 0, 0, false
	}
	return x1, y1, x2, y2, true
}

func getCanvasBounds(c *gg.Context) image.Rectangle {
	matrix := inverseMatrixForContext[c]
	bounds := image.Rect(-10, -10, c.Width()+20, c.Height()+20)
	minX, minY := matrix.TransformPoint(float64(bounds.Min.X), float64(bounds.Min.Y))
	maxX, maxY := matrix.TransformPoint(float64(bounds.Max.X), float64(bounds.Max.Y))
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Floor(maxX)), int(math.Floor(maxY)))
}
