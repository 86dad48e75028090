// Command valentine generates printable maze images and Valentine's card
// faces.
//
// Modes:
//
//	valentine -width 10 -height 8 -seed 42 -o maze.png   # single maze PNG
//	valentine -svg -o maze.svg                           # vector output
//	valentine -ascii                                     # maze to stdout
//	valentine -card both -config designs/snake.yaml      # full card faces
//
// A .env file (or the environment) may set VALENTINE_OUTPUT_DIR, where all
// output paths are resolved, and VALENTINE_DPI, the print resolution used
// to report physical sizes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/rsolari/valentines-cards/card"
	"github.com/rsolari/valentines-cards/cardconfig"
	"github.com/rsolari/valentines-cards/maze"
	"github.com/rsolari/valentines-cards/pipeline"
	"github.com/rsolari/valentines-cards/render"
)

var log = logrus.New()

type options struct {
	width, height int
	seed          int64
	algorithm     string
	style         string
	cellSize      int
	background    string
	wallColor     string
	output        string
	svg           bool
	solution      bool
	ascii         bool
	configPath    string
	cardFaces     string

	outputDir string
	dpi       int
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.WithError(err).Fatal("generation failed")
	}
}

func parseFlags(args []string) (options, error) {
	var o options

	fs := flag.NewFlagSet("valentine", flag.ContinueOnError)
	fs.IntVar(&o.width, "width", 10, "maze width in cells")
	fs.IntVar(&o.height, "height", 8, "maze height in cells")
	fs.Int64Var(&o.seed, "seed", 0, "generation seed; 0 draws from the clock")
	fs.StringVar(&o.algorithm, "algorithm", string(maze.Backtracker),
		"carving algorithm: backtracker, prim, kruskal, or wilson")
	fs.StringVar(&o.style, "style", render.StyleSolid, "wall style: solid, dotted, mosaic, or snake")
	fs.IntVar(&o.cellSize, "cell", 40, "cell size in pixels")
	fs.StringVar(&o.background, "bg", render.DefaultBackground, "background hex color")
	fs.StringVar(&o.wallColor, "wall", render.DefaultWallColor, "wall hex color")
	fs.StringVar(&o.output, "o", "maze.png", "output file path")
	fs.BoolVar(&o.svg, "svg", false, "write SVG instead of PNG")
	fs.BoolVar(&o.solution, "solution", false, "overlay the solution path")
	fs.BoolVar(&o.ascii, "ascii", false, "print the maze to stdout and exit")
	fs.StringVar(&o.configPath, "config", "", "YAML card configuration file")
	fs.StringVar(&o.cardFaces, "card", "", "compose card faces: front, back, or both")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	// .env is optional; the real environment wins over the file.
	_ = godotenv.Load()
	o.outputDir = os.Getenv("VALENTINE_OUTPUT_DIR")
	o.dpi = card.DPI
	if v := os.Getenv("VALENTINE_DPI"); v != "" {
		dpi, err := strconv.Atoi(v)
		if err != nil || dpi < 1 {
			return o, fmt.Errorf("bad VALENTINE_DPI %q", v)
		}
		o.dpi = dpi
	}

	return o, nil
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	if o.cardFaces != "" {
		return runCard(o)
	}

	return runMaze(o)
}

// runMaze generates a single maze and writes it as PNG, SVG, or ASCII.
func runMaze(o options) error {
	m, err := maze.Generate(o.width, o.height,
		maze.WithAlgorithm(maze.Algorithm(o.algorithm)),
		maze.WithSeed(o.seed),
	)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"size":      fmt.Sprintf("%dx%d", o.width, o.height),
		"algorithm": o.algorithm,
		"walls":     m.OpenWallCount(),
	}).Info("maze generated")

	if o.ascii {
		fmt.Print(m.String())

		return nil
	}

	opts := []render.Option{
		render.WithCellSize(o.cellSize),
		render.WithStyle(o.style),
		render.WithStyleSeed(o.seed),
		render.WithBackground(o.background),
		render.WithWallColor(o.wallColor),
		render.WithSolution(o.solution),
	}

	path := resolve(o.outputDir, o.output)
	produce := func(p string) error {
		return render.WritePNG(m, p, opts...)
	}
	if o.svg {
		produce = func(p string) error {
			f, err := os.Create(p)
			if err != nil {
				return err
			}
			defer f.Close()

			return render.WriteSVG(m, f, opts...)
		}
	}

	outcome, err := pipeline.Run(path, produce)
	if err != nil {
		return err
	}
	logOutput(path, outcome, o.width*o.cellSize, o.height*o.cellSize, o.dpi)

	return nil
}

// runCard composes the configured card faces and writes them next to the
// config's name.
func runCard(o options) error {
	cfg := cardconfig.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = cardconfig.Load(o.configPath); err != nil {
			return err
		}
	}
	if o.seed != 0 {
		cfg.Maze.Seed = o.seed
	}
	log.WithFields(logrus.Fields{
		"design": cfg.Name,
		"style":  cfg.Maze.WallStyle,
	}).Info("composing card")

	// Designs are expected to be standard trading cards; anything else
	// still renders, but the print shop should hear about it.
	if w, h := card.TradingCard().TrimPx(); cfg.Width != w || cfg.Height != h {
		log.WithFields(logrus.Fields{
			"have": fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
			"want": fmt.Sprintf("%dx%d", w, h),
		}).Warn("design is not trading-card sized")
	}

	front := o.cardFaces == "front" || o.cardFaces == "both"
	back := o.cardFaces == "back" || o.cardFaces == "both"
	if !front && !back {
		return fmt.Errorf("bad -card value %q: want front, back, or both", o.cardFaces)
	}

	if front {
		path := resolve(o.outputDir, cfg.Name+"_card_front.png")
		if err := writeCardFace(path, cfg, composeFront, o.dpi); err != nil {
			return err
		}
	}
	if back {
		path := resolve(o.outputDir, cfg.Name+"_card_back.png")
		if err := writeCardFace(path, cfg, card.ComposeBack, o.dpi); err != nil {
			return err
		}
	}

	return nil
}

// faceComposer renders one card face from a configuration.
type faceComposer func(cardconfig.Config) (image.Image, error)

// composeFront loads the configured hero artwork, when any, and hands it
// to the card composer.
func composeFront(cfg cardconfig.Config) (image.Image, error) {
	var hero image.Image
	if cfg.HeroImage != "" {
		var err error
		if hero, err = imaging.Open(cfg.HeroImage); err != nil {
			return nil, fmt.Errorf("load hero image: %w", err)
		}
	}

	return card.ComposeFront(cfg, hero)
}

func writeCardFace(path string, cfg cardconfig.Config, compose faceComposer, dpi int) error {
	outcome, err := pipeline.Run(path, func(p string) error {
		img, err := compose(cfg)
		if err != nil {
			return err
		}
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		defer f.Close()

		return png.Encode(f, img)
	})
	if err != nil {
		return err
	}
	logOutput(path, outcome, cfg.Width, cfg.Height, dpi)

	return nil
}

// resolve joins the output directory from the environment with a
// relative output path. Absolute paths win.
func resolve(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}

func logOutput(path string, outcome pipeline.Outcome, w, h, dpi int) {
	log.WithFields(logrus.Fields{
		"path":    path,
		"outcome": outcome.String(),
		"pixels":  fmt.Sprintf("%dx%d", w, h),
		"print":   card.FromPixels(w, h, dpi).String(),
	}).Info("output written")
}
