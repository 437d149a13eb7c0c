// Command cstfit fits CST curves to tabulated samples.
//
// It reads a whitespace-separated table whose first column holds the
// abscissae, fits a CST curve to every remaining column and reports the
// coefficients, boundary offsets and RMS error of each fit:
//
//	cstfit -n 6 blade.dat
//	cstfit -n 12 -n1 0.5 -n2 1 -delta 0,0.0025 -plot fit.png upper.dat
//
// With -plot, the samples and the fitted curves are rendered to an image
// file (the format follows the file extension).
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"honnef.co/go/cst"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cstfit: ")

	var (
		n        = flag.Int("n", 6, "number of shape coefficients")
		n1       = flag.Float64("n1", 0, "class function exponent at ψ=0")
		n2       = flag.Float64("n2", 0, "class function exponent at ψ=1")
		deltaArg = flag.String("delta", "", "fixed boundary offsets as 'lead,trail' (default derived from the data)")
		x0       = flag.Float64("x0", 0, "domain origin")
		dx       = flag.Float64("dx", 0, "domain extent (0 derives the domain from the data)")
		plotOut  = flag.String("plot", "", "write a plot of the samples and fits to this `file`")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cstfit [flags] table")
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := cst.FitOpts{N1: *n1, N2: *n2, X0: *x0, DX: *dx}
	if *deltaArg != "" {
		lead, trail, err := parseDelta(*deltaArg)
		if err != nil {
			log.Fatal(err)
		}
		opts = opts.WithDelta(lead, trail)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	cols, err := cst.ReadTable(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}
	if len(cols) < 2 {
		log.Fatalf("%s: need at least two columns, got %d", flag.Arg(0), len(cols))
	}

	x := cols[0]
	curves := make([]cst.Curve, 0, len(cols)-1)
	for i, y := range cols[1:] {
		crv, err := cst.Fit(x, y, *n, opts)
		if err != nil {
			log.Fatalf("column %d: %v", i+1, err)
		}
		curves = append(curves, crv)
		fmt.Printf("column %d: rms %.3e\n", i+1, rms(crv.EvalAll(x), y))
		fmt.Printf("  a      %.6g\n", crv.A)
		fmt.Printf("  delta  %.6g\n", crv.Delta)
		fmt.Printf("  domain x0=%g dx=%g\n", crv.X0, crv.DX)
	}

	if *plotOut != "" {
		if err := render(*plotOut, x, cols[1:], curves); err != nil {
			log.Fatal(err)
		}
	}
}

func parseDelta(s string) (lead, trail float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("-delta %q: want two comma-separated values", s)
	}
	if lead, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return 0, 0, fmt.Errorf("-delta %q: %v", s, err)
	}
	if trail, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return 0, 0, fmt.Errorf("-delta %q: %v", s, err)
	}
	return lead, trail, nil
}

func rms(a, b []float64) float64 {
	return floats.Distance(a, b, 2) / math.Sqrt(float64(len(a)))
}

func render(path string, x []float64, ys [][]float64, curves []cst.Curve) error {
	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	dense := floats.Span(make([]float64, 256), floats.Min(x), floats.Max(x))
	for i, crv := range curves {
		scatter, err := plotter.NewScatter(xyPoints(x, ys[i]))
		if err != nil {
			return err
		}
		scatter.Color = plotutil.Color(i)

		line, err := plotter.NewLine(xyPoints(dense, crv.EvalAll(dense)))
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)

		p.Add(scatter, line)
		p.Legend.Add(fmt.Sprintf("column %d", i+1), scatter, line)
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func xyPoints(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts
}
