// Command circumsphere is a numeric sanity harness around the circumsphere
// solver: it reads point families from whitespace-separated tables, solves
// each one, and validates the equidistance and center-in-span invariants.
//
// Usage:
//
//	circumsphere <config.ini>
//
// The config file is gcfg/INI formatted, one section per point set:
//
//	[pointset "triangle"]
//	File      = testdata/triangle.txt ; one point per row
//	Dim       = 2                     ; coordinates per row
//	Epsilon   = 1e-9                  ; optional dependence threshold
//	Tolerance = 1e-6                  ; optional validation tolerance
//
// Exit status is nonzero if any set fails to read, solve, or validate.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/phil-mansfield/table"
	"gopkg.in/gcfg.v1"

	"github.com/katalvlaran/euclid/circumsphere"
	"github.com/katalvlaran/euclid/core"
)

// defaultTolerance is the validation tolerance used when a point-set section
// does not set one. It is deliberately looser than core.DefaultEpsilon:
// validation accumulates rounding over every induction step.
const defaultTolerance = 1e-6

// PointSetConfig is one [pointset "name"] section.
type PointSetConfig struct {
	// File is the path to a whitespace-separated numeric table, one point
	// per row. Required.
	File string

	// Dim is the number of coordinates per row. Required, must be positive.
	Dim int

	// Epsilon is the dependence threshold; core.DefaultEpsilon when unset.
	Epsilon float64

	// Tolerance is the validation tolerance; defaultTolerance when unset.
	Tolerance float64
}

// Config is the full harness configuration.
type Config struct {
	PointSet map[string]*PointSetConfig `gcfg:"pointset"`
}

func main() {
	log.SetFlags(0)
	if len(os.Args) != 2 {
		log.Fatalf("Usage: %s <config.ini>", os.Args[0])
	}

	var cfg Config
	if err := gcfg.ReadFileInto(&cfg, os.Args[1]); err != nil {
		log.Fatalf("circumsphere: reading %s: %v", os.Args[1], err)
	}
	if len(cfg.PointSet) == 0 {
		log.Fatalf("circumsphere: %s has no [pointset] sections", os.Args[1])
	}

	// Deterministic run order regardless of map iteration.
	names := make([]string, 0, len(cfg.PointSet))
	for name := range cfg.PointSet {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := false
	for _, name := range names {
		if err := runPointSet(name, cfg.PointSet[name]); err != nil {
			log.Printf("%s: FAILED: %v", name, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// runPointSet reads, solves, and validates a single configured point set,
// printing one summary line on success.
func runPointSet(name string, pc *PointSetConfig) error {
	if pc.File == "" {
		return fmt.Errorf("missing 'File'")
	}
	if pc.Dim <= 0 {
		return fmt.Errorf("invalid 'Dim' %d: must be positive", pc.Dim)
	}
	eps := pc.Epsilon
	if eps == 0 {
		eps = core.DefaultEpsilon
	}
	tol := pc.Tolerance
	if tol == 0 {
		tol = defaultTolerance
	}

	points, err := readPoints(pc.File, pc.Dim)
	if err != nil {
		return fmt.Errorf("reading %s: %w", pc.File, err)
	}

	s, err := circumsphere.Circumsphere(points, circumsphere.WithEpsilon(eps))
	if err != nil {
		return err
	}
	if err := circumsphere.Validate(s, points, tol); err != nil {
		return err
	}

	fmt.Printf("%s: n=%d dim=%d center=%v radius=%g (validated to %g)\n",
		name, len(points), pc.Dim, []float64(s.Center), s.Radius, tol)

	return nil
}

// readPoints loads the first dim columns of a whitespace-separated numeric
// table as points, one per row.
func readPoints(file string, dim int) ([]core.Point, error) {
	colIdxs := make([]int, dim)
	for i := range colIdxs {
		colIdxs[i] = i
	}

	cols, err := table.ReadTable(file, colIdxs, nil)
	if err != nil {
		return nil, err
	}
	if len(cols) != dim || len(cols[0]) == 0 {
		return nil, fmt.Errorf("%s: no rows with %d columns", file, dim)
	}

	points := make([]core.Point, len(cols[0]))
	for i := range points {
		p := make(core.Point, dim)
		for j := 0; j < dim; j++ {
			p[j] = cols[j][i]
		}
		points[i] = p
	}

	return points, nil
}
