package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/kkconaty23/Simple-3D-game/internal/config"
	"github.com/kkconaty23/Simple-3D-game/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	fmt.Println("Starting Simple-3D-game...")

	configPath := flag.String("config", "", "Path to a YAML settings file (defaults used if empty)")
	fov := flag.Float64("fov", 0, "Vertical field of view in degrees (overrides config)")
	sensitivity := flag.Float64("sensitivity", 0, "Mouse sensitivity (overrides config)")
	speed := flag.Float64("speed", 0, "Movement step size (overrides config)")
	timeScaled := flag.Bool("timescale", false, "Scale movement by frame time instead of a fixed per-frame step")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// CLI flags override the config file
	if *fov > 0 {
		cfg.Camera.FOV = float32(*fov)
	}
	if *sensitivity > 0 {
		cfg.Camera.Sensitivity = float32(*sensitivity)
	}
	if *speed > 0 {
		cfg.Camera.MoveSpeed = float32(*speed)
	}
	if *timeScaled {
		cfg.Camera.TimeScaled = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.Run()
}
