package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-wavefront-pathtracer/pkg/renderer"
	"github.com/df07/go-wavefront-pathtracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "cornell", "Scene to render (see -help for list)")
	iterations := flag.Int("iterations", 0, "Iterations (samples per pixel), 0 = scene default")
	maxDepth := flag.Int("depth", 0, "Maximum path depth, 0 = scene default")
	numWorkers := flag.Int("workers", 0, "Parallel workers, 0 = CPU count")
	outputDir := flag.String("output", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Wavefront Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.SceneNames() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
		return
	}

	if err := run(*sceneName, *iterations, *maxDepth, *numWorkers, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneName string, iterations, maxDepth, numWorkers int, outputDir string) error {
	s, err := scene.NewScene(sceneName)
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	config := s.RenderConfig()
	if iterations > 0 {
		config.Iterations = iterations
	}
	if maxDepth > 0 {
		config.MaxDepth = maxDepth
	}
	config.NumWorkers = numWorkers

	logger := renderer.NewDefaultLogger()
	r := renderer.NewRenderer(s, config, logger)

	// Log progress roughly every tenth of the render
	interval := config.Iterations / 10
	if interval < 1 {
		interval = 1
	}

	startTime := time.Now()
	resultChan, errChan := r.RenderProgressive(context.Background(), renderer.RenderOptions{
		UpdateInterval: interval,
	})

	var finalImage *image.RGBA
	for result := range resultChan {
		logger.Printf("Iteration %d/%d (%d rays, %d bounce rounds)\n",
			result.Iteration, config.Iterations, result.Stats.RaysTraced, result.Stats.Bounces)
		if result.IsLast {
			finalImage = result.Image
		}
	}
	if err := <-errChan; err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	logger.Printf("Render completed in %v\n", time.Since(startTime))

	dir := filepath.Join(outputDir, sceneName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(dir, fmt.Sprintf("render_%s.png", timestamp))
	if err := savePNG(finalImage, filename); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

func savePNG(img *image.RGBA, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
