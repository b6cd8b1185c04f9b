package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/edwin0cheng/omega-tile/pkg/atlas"
	"github.com/edwin0cheng/omega-tile/pkg/cache"
	"github.com/edwin0cheng/omega-tile/pkg/export"
	"github.com/edwin0cheng/omega-tile/pkg/progress"
	"github.com/edwin0cheng/omega-tile/pkg/sample"
	"github.com/edwin0cheng/omega-tile/pkg/synthengine"
	"github.com/edwin0cheng/omega-tile/pkg/variation"
	"github.com/edwin0cheng/omega-tile/pkg/wtile"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML configuration file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "png", "Export format: png, indices, svg, or all")
	engineName = flag.String("engine", "", "Registered synthengine.Engine to use in generate mode")
	seedFlag   = flag.Uint64("seed", 0, "Override the atlas seed from config (0 = use config seed)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("omegatile version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"png": true, "indices": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: png, indices, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}

	data, err := os.ReadFile(*configPath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := wtile.LoadConfig(data)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = *seedFlag
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	v, err := variation.Parse(cfg.Variation)
	if err != nil {
		return err
	}
	mode, err := cfg.SampleMode()
	if err != nil {
		return err
	}

	c := cache.Open(cfg.CacheDir)
	reporter := progress.Null
	if *verbose {
		reporter = progress.NewWriter(os.Stdout)
	}

	var engine synthengine.Engine
	if mode == sample.Generate {
		engine = synthengine.Get(*engineName)
		if engine == nil {
			return fmt.Errorf("generate mode requires a registered engine; none found for -engine=%q (available: %v)", *engineName, synthengine.List())
		}
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Building tile set...")
	}

	set, _, err := wtile.BuildFromImage(mode, cfg.Input, v, engine, c, reporter)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	built, err := wtile.BuildAtlas(set, cfg.AtlasSize, cfg.Seed)
	if err != nil {
		return fmt.Errorf("atlas solve failed: %w", err)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Build completed in %v\n", elapsed)
	}

	baseName := fmt.Sprintf("atlas_%d", cfg.Seed)

	if *format == "png" || *format == "all" {
		if err := exportPNG(built, baseName); err != nil {
			return err
		}
	}
	if *format == "indices" || *format == "all" {
		if err := exportIndices(built, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(built, baseName, cfg.Seed); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully built atlas (seed=%d) in %v\n", cfg.Seed, elapsed)
	return nil
}

func exportPNG(a *atlas.Atlas, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".png")
	if *verbose {
		fmt.Printf("Exporting combined PNG to %s\n", filename)
	}

	img, err := wtile.RenderCombined(a)
	if err != nil {
		return fmt.Errorf("failed to render combined image: %w", err)
	}
	return writePNG(filename, img)
}

func exportIndices(a *atlas.Atlas, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+"_indices.png")
	if *verbose {
		fmt.Printf("Exporting indices PNG to %s\n", filename)
	}

	img, err := wtile.RenderIndices(a)
	if err != nil {
		return fmt.Errorf("failed to render indices image: %w", err)
	}
	return writePNG(filename, img)
}

func exportSVG(a *atlas.Atlas, baseName string, seed uint64) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}

	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Atlas (seed=%d)", seed)

	if err := export.SaveSVGToFile(a, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	return nil
}

func writePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: omegatile -config <path> [flags]")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("omegatile - build an omega-tile set and atlas from a YAML config")
	fmt.Println()
	printUsage()
}
