package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/OpenGL-GPU-Gems-Implementations/GG1-C1-Effective-Water-Simulation/internal/openglhelper"
	"github.com/OpenGL-GPU-Gems-Implementations/GG1-C1-Effective-Water-Simulation/pkg/config"
	"github.com/OpenGL-GPU-Gems-Implementations/GG1-C1-Effective-Water-Simulation/pkg/engine"
	"github.com/OpenGL-GPU-Gems-Implementations/GG1-C1-Effective-Water-Simulation/pkg/render"
	"github.com/OpenGL-GPU-Gems-Implementations/GG1-C1-Effective-Water-Simulation/pkg/scene"
)

func init() {
	// OpenGL functions must be called from the thread that owns the context
	runtime.LockOSThread()
}

func main() {
	fmt.Println("Starting water simulation...")

	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Close()

	camera := render.NewCamera(mgl32.Vec3{
		cfg.Camera.Position[0],
		cfg.Camera.Position[1],
		cfg.Camera.Position[2],
	})
	camera.SetMoveSpeed(cfg.Camera.Speed)
	camera.SetSensitivity(cfg.Camera.Sensitivity)
	camera.SetViewport(cfg.Window.Width, cfg.Window.Height)
	window.SetResizeHandler(camera.SetViewport)

	skybox, err := scene.NewSkybox()
	if err != nil {
		log.Fatalf("Failed to create skybox: %v", err)
	}
	defer skybox.Delete()

	water, err := scene.NewWater(cfg.Water.Size, cfg.Water.Resolution, cfg.Water.Resolution,
		scene.DefaultWaves(), skybox.CubemapTexture())
	if err != nil {
		log.Fatalf("Failed to create water surface: %v", err)
	}
	defer water.Delete()

	world := scene.NewScene()
	world.Add(water)
	world.Add(skybox) // drawn last, sits at the far plane

	loop := engine.NewLoop(cfg.Window.Title, window, window, camera)
	loop.Run(
		func(dt float32) {
			world.Update(dt)
		},
		func() {
			window.Clear(mgl32.Vec4{0.0, 0.0, 0.0, 1.0})
			world.Draw(camera.ViewMatrix(), camera.ProjectionMatrix(), camera.Position())
		},
	)
}
