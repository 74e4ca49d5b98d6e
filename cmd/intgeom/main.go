package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	. "github.com/osuushi/intgeom"
	"github.com/osuushi/intgeom/geometry"
	"github.com/osuushi/intgeom/scalar"
)

// Demo of the geometry kernel. The default subcommand reads one shape and two
// query points A and B from stdin, all whitespace separated, and runs the
// fixed sequence: does the shape contain A, does it cross the segment AB, and
// where does a clone land after moving by the vector from A to B.
//
// Shape input is a keyword and its numbers: "point x y",
// "segment x1 y1 x2 y2", "ray x1 y1 x2 y2", "line x1 y1 x2 y2",
// "circle x y r", or "polygon n x1 y1 ... xn yn".
//
// The vectors and lines subcommands expose the float utilities from the
// scalar package over the same kind of stdin input.

var (
	app = kingpin.New("intgeom", "Exact integer geometry demos.")

	shapeCmd   = app.Command("shape", "Query one shape against two points read from stdin.").Default()
	shapeDraw  = shapeCmd.Flag("draw", "Render the scene to the terminal (iTerm only).").Bool()
	shapeScale = shapeCmd.Flag("scale", "Pixels per grid unit for --draw.").Default("8").Float64()

	vectorsCmd = app.Command("vectors", "Read two vectors as begin/end point pairs and print their measurements.")

	linesCmd = app.Command("lines", "Read two line equations and print directions, then intersection or distance.")
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case shapeCmd.FullCommand():
		app.FatalIfError(runShape(*shapeDraw, *shapeScale), "shape")
	case vectorsCmd.FullCommand():
		app.FatalIfError(runVectors(), "vectors")
	case linesCmd.FullCommand():
		app.FatalIfError(runLines(), "lines")
	}
}

func runShape(draw bool, scale float64) error {
	in := newWordReader(os.Stdin)
	kind, err := in.word()
	if err != nil {
		return errors.Wrap(err, "reading shape keyword")
	}

	var count int
	switch kind {
	case "point":
		count = 2
	case "segment", "ray", "line":
		count = 4
	case "circle":
		count = 3
	case "polygon":
		sizes, err := in.int64s(1)
		if err != nil {
			return errors.Wrap(err, "reading polygon size")
		}
		if sizes[0] < 0 {
			return errors.Errorf("polygon size must not be negative: %d", sizes[0])
		}
		count = int(sizes[0]) * 2
	default:
		return errors.Errorf("undefined command %q", kind)
	}

	params, err := in.int64s(count)
	if err != nil {
		return errors.Wrapf(err, "reading %s parameters", kind)
	}
	shape, err := Parse(kind, params)
	if err != nil {
		return err
	}

	coords, err := in.int64s(4)
	if err != nil {
		return errors.Wrap(err, "reading query points")
	}
	pointA := Point{X: coords[0], Y: coords[1]}
	pointB := Point{X: coords[2], Y: coords[3]}

	answer := "does not contain"
	if shape.ContainsPoint(pointA) {
		answer = "contains"
	}
	fmt.Println("Given shape", answer, "point A")

	segmentAB := Segment{Begin: pointA, End: pointB}
	answer = "does not cross"
	if shape.CrossesSegment(segmentAB) {
		answer = "crosses"
	}
	fmt.Println("Given shape", answer, "segment AB")

	vectorAB := pointB.Sub(pointA)
	fmt.Println(shape.Clone().Move(vectorAB))

	if draw {
		scene := []Shape{shape, &segmentAB, &pointA, &pointB}
		for _, s := range scene {
			fmt.Println("drawing", geometry.DbgName(s), s)
		}
		geometry.DrawShapes(scene, scale)
	}
	return nil
}

func runVectors() error {
	in := newWordReader(os.Stdin)
	coords, err := in.float64s(8)
	if err != nil {
		return errors.Wrap(err, "reading vector endpoints")
	}
	v1 := scalar.Vec{X: coords[2] - coords[0], Y: coords[3] - coords[1]}
	v2 := scalar.Vec{X: coords[6] - coords[4], Y: coords[7] - coords[5]}

	fmt.Printf("%.9f %.9f\n", v1.Length(), v2.Length())
	sum := v1.Add(v2)
	fmt.Printf("%.9f %.9f\n", sum.X, sum.Y)
	fmt.Printf("%.9f %.9f\n", v1.Dot(v2), v1.Cross(v2))
	fmt.Printf("%.9f\n", scalar.TriangleArea(v1, v2))
	return nil
}

func runLines() error {
	in := newWordReader(os.Stdin)
	coeffs, err := in.float64s(6)
	if err != nil {
		return errors.Wrap(err, "reading line coefficients")
	}
	line1 := scalar.Line{A: coeffs[0], B: coeffs[1], C: coeffs[2]}
	line2 := scalar.Line{A: coeffs[3], B: coeffs[4], C: coeffs[5]}

	for _, line := range []scalar.Line{line1, line2} {
		dx, dy := line.DirectionComponents()
		fmt.Printf("%.9f %.9f\n", dx, dy)
	}
	if line1.IsParallel(line2) {
		fmt.Printf("%.9f\n", line1.ParallelDistance(line2))
	} else {
		x, y := line1.IntersectionPoint(line2)
		fmt.Printf("%.9f %.9f\n", x, y)
	}
	return nil
}

// wordReader hands out whitespace separated tokens from a stream, one at a
// time, with an error instead of silence when the input runs dry.
type wordReader struct {
	scanner *bufio.Scanner
}

func newWordReader(f *os.File) *wordReader {
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	return &wordReader{scanner: scanner}
}

func (r *wordReader) word() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("unexpected end of input")
	}
	return r.scanner.Text(), nil
}

func (r *wordReader) int64s(n int) ([]int64, error) {
	out := make([]int64, n)
	for i := range out {
		word, err := r.word()
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseInt(word, 10, 64)
		if err != nil {
			return nil, errors.Errorf("expected an integer, got %q", word)
		}
		out[i] = value
	}
	return out, nil
}

func (r *wordReader) float64s(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		word, err := r.word()
		if err != nil {
			return nil, err
		}
		value, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return nil, errors.Errorf("expected a number, got %q", word)
		}
		out[i] = value
	}
	return out, nil
}
