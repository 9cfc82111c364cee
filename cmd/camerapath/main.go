package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ceewaigit/bokeh-sub013/internal/path"
	"github.com/ceewaigit/bokeh-sub013/internal/system"
	"github.com/ceewaigit/bokeh-sub013/internal/timeline"
	"github.com/ceewaigit/bokeh-sub013/internal/viz"
)

func main() {
	projectPtr := flag.String("project", "", "Path to the project YAML (recordings, effects, layout)")
	outPtr := flag.String("out", "", "Write the computed camera path to this YAML file")
	vizPtr := flag.String("viz", "", "Write a PNG plot of the path to this file")
	workersPtr := flag.Int("workers", 0, "Precompute workers (0 = size from the machine)")
	serialPtr := flag.Bool("serial", false, "Force the single-threaded precompute pass")
	fpsPtr := flag.Int("fps", 0, "Override the project FPS")
	statsPtr := flag.Bool("stats", false, "Print a performance report")
	flag.Parse()

	if *projectPtr == "" {
		flag.Usage()
		os.Exit(2)
	}

	project, err := timeline.ReadProject(*projectPtr)
	if err != nil {
		log.Fatal("loading project", "err", err)
	}
	if *fpsPtr > 0 {
		project.Settings.FPS = *fpsPtr
	}

	frameCount := len(project.Layout)
	log.Info("project loaded",
		"recordings", len(project.Recordings),
		"zooms", len(project.Zooms),
		"frames", frameCount,
		"fps", project.Settings.FPS)

	workers := *workersPtr
	if workers <= 0 {
		workers = project.Settings.Workers
	}
	if workers <= 0 {
		workers = system.RecommendWorkers(frameCount)
	}
	if *serialPtr {
		workers = 1
	}

	start := time.Now()
	frames, err := path.PrecomputeParallel(context.Background(), project, workers)
	if err != nil {
		log.Fatal("precompute", "err", err)
	}
	elapsed := time.Since(start)
	log.Info("path computed", "frames", len(frames), "workers", workers, "took", elapsed)

	if *outPtr != "" {
		if err := path.WritePath(frames, project.Settings.FPS, *outPtr); err != nil {
			log.Fatal("writing path", "err", err)
		}
		log.Info("path written", "file", *outPtr)
	}

	if *vizPtr != "" {
		if err := viz.WritePNG(project, frames, 1280, 360, *vizPtr); err != nil {
			log.Fatal("writing visualization", "err", err)
		}
		log.Info("visualization written", "file", *vizPtr)
	}

	if *statsPtr && elapsed > 0 {
		rate := float64(len(frames)) / elapsed.Seconds()
		fmt.Printf(
			"--- [PERFORMANCE REPORT] ---\n"+
				"Frames: %d\n"+
				"Workers: %d\n"+
				"Total Time: %.3fs\n"+
				"Frames/sec: %.0f\n"+
				"----------------------------\n",
			len(frames), workers, elapsed.Seconds(), rate,
		)
	}
}
