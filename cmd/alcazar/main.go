package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/alcazar-gen/alcazar/internal/formula"
	"github.com/alcazar-gen/alcazar/internal/generator"
	"github.com/alcazar-gen/alcazar/internal/geometry"
	"github.com/alcazar-gen/alcazar/internal/sat"
)

var (
	validSolvers = []string{"gophersat", "kissat"}
	solvers      = map[string]func() sat.Solver{
		"gophersat": sat.NewGophersatSolver,
		"kissat":    sat.NewKissatSolver,
	}
)

func main() {
	widthPtr := flag.Int("width", 5, "Board width")
	heightPtr := flag.Int("height", 5, "Board height")
	seedPtr := flag.Int64("seed", 0, "PRNG seed for reproducible boards; 0 draws one from system entropy")
	countPtr := flag.Int("count", 1, "Number of boards to generate")
	solverPtr := flag.String("solver", "gophersat", "SAT solver to use. Allowed values are: \"gophersat\", \"kissat\", where \"gophersat\" is the default")
	configPtr := flag.String("config", "", "Path to a JSON config file; explicitly set flags take precedence")
	outFilePtr := flag.String("out", "", "Path to the file where the boards will be written; if empty, they'll be written into the standard output")
	dimacsPtr := flag.String("dimacs", "", "Write the encoded base formula for the given dimensions to this file and exit")
	verbosePtr := flag.Bool("verbose", false, "Log wall-minimization progress")
	flag.Parse()

	width := *widthPtr
	height := *heightPtr
	seed := *seedPtr
	count := *countPtr
	solverStr := strings.ToLower(*solverPtr)

	if *configPtr != "" {
		config, err := configFromJSON(*configPtr)
		if err != nil {
			log.Fatalf("cannot parse config file: %v", err)
		}

		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["width"] && config.Width != 0 {
			width = config.Width
		}
		if !set["height"] && config.Height != 0 {
			height = config.Height
		}
		if !set["seed"] && config.Seed != 0 {
			seed = config.Seed
		}
		if !set["count"] && config.Count != 0 {
			count = config.Count
		}
		if !set["solver"] && config.Solver != "" {
			solverStr = strings.ToLower(config.Solver)
		}
	}

	if width <= 0 || height <= 0 || width*height < 2 {
		log.Fatalf("%vx%v is not a valid board size", width, height)
	} else if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if count <= 0 {
		log.Fatalf("count must be positive: %v", count)
	}

	if *dimacsPtr != "" {
		dumpFormula(width, height, solverStr, *dimacsPtr)
		return
	}

	out := os.Stdout
	if *outFilePtr != "" {
		file, err := os.Create(*outFilePtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		out = file
	}

	for i := 0; i < count; i++ {
		options := generator.DefaultOptions(width, height)
		options.Solver = solvers[solverStr]
		options.Verbose = *verbosePtr
		if seed != 0 {
			options.Seed = seed + int64(i)
		}

		b, err := generator.New(options).Generate()
		if err != nil {
			log.Fatalf("an error occurred during board generation: %v", err)
		}

		walls := lo.Map(b.Walls(), func(w geometry.Wall, _ int) string {
			return fmt.Sprintf("%v%+v", w.Orientation, w.Position)
		})
		fmt.Fprintf(out, "%vx%v board, entry %+v, exit %+v, %v walls: %v\n",
			b.Width(), b.Height(), b.Entry(), b.Exit(), len(walls), strings.Join(walls, " "))
		fmt.Fprintln(out, b)
	}
}

func dumpFormula(width, height int, solverStr, path string) {
	solver := solvers[solverStr]()
	if _, err := formula.Encode(width, height, solver); err != nil {
		log.Fatalf("cannot encode formula: %v", err)
	}
	if err := os.WriteFile(path, []byte(solver.Formula().ToDIMACS()), 0o644); err != nil {
		log.Fatalf("cannot write formula: %v", err)
	}
}
