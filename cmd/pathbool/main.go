// Command pathbool demonstrates the pathops boolean path pipeline: it
// builds two shapes, combines them with the requested operator, and
// prints the result as SVG path data.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/pathops"
)

func main() {
	var (
		op        = flag.String("op", "unite", "boolean operator: unite, intersect, subtract, exclude, divide")
		precision = flag.Int("precision", 3, "decimal digits in the emitted SVG path data")
		verbose   = flag.Bool("verbose", false, "log pipeline stages to stderr")
	)
	flag.Parse()

	if *verbose {
		pathops.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	a := pathops.Circle(100, 100, 80)
	b := pathops.RoundedRectangle(60, 60, 160, 120, 20)

	result, err := apply(*op, a, b)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathbool:", err)
		os.Exit(1)
	}

	fmt.Println(pathops.WriteSVGPath(result, *precision))
	fmt.Fprintf(os.Stderr, "area: %.2f\n", result.Area())
}

func apply(op string, a, b pathops.PathItem) (pathops.PathItem, error) {
	switch op {
	case "unite":
		return pathops.Unite(a, b), nil
	case "intersect":
		return pathops.Intersect(a, b), nil
	case "subtract":
		return pathops.Subtract(a, b), nil
	case "exclude":
		return pathops.Exclude(a, b), nil
	case "divide":
		return pathops.Divide(a, b), nil
	default:
		return nil, fmt.Errorf("unknown op %q (want unite, intersect, subtract, exclude, or divide)", op)
	}
}
