package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"

	"chosenoffset.com/colony/internal/assets"
	"chosenoffset.com/colony/internal/config"
	"chosenoffset.com/colony/internal/game"
	"chosenoffset.com/colony/internal/icon"
	"chosenoffset.com/colony/internal/logger"
	ebitenrender "chosenoffset.com/colony/internal/render/ebiten"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "colony: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "configs/colony.yaml", "path to the client configuration")
	manifestPath := flag.String("assets", "", "path to the asset manifest (overrides the configuration)")
	checkAssets := flag.Bool("check-assets", false, "load and validate the asset collection, then exit without opening a window")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *manifestPath != "" {
		cfg.Assets.Manifest = *manifestPath
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	if cfg.FrameStepWarning() {
		log.Warn("Camera speed and max frame delta allow the follow step to overshoot",
			logger.Field{Key: "speed", Value: cfg.Camera.Speed},
			logger.Field{Key: "max_frame_delta", Value: cfg.Render.MaxFrameDelta})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logger.WithLogger(ctx, log)

	loader := assets.NewLoader(cfg.Assets.Manifest, log)
	if *checkAssets {
		return check(ctx, loader, log)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer(cfg.Render.AntiAlias)
	inputMgr := ebitenrender.NewInputManager()
	resources := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	client := game.NewClient(ctx, game.Options{
		Config:   cfg,
		Renderer: renderer,
		Input:    inputMgr,
		Assets:   loader,
		Logger:   log,
	})

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)
	engine.SetTPS(cfg.Render.TPS)

	icons := icon.Set()
	if cfg.Window.Icon != "" {
		img, err := resources.LoadImage(cfg.Window.Icon)
		if err != nil {
			log.Warn("Failed to load window icon, using the built-in one", logger.Err(err))
		} else {
			icons = []image.Image{img}
		}
	}
	engine.SetWindowIcon(icons)

	log.Info("Starting client",
		logger.Field{Key: "config", Value: *configPath},
		logger.Field{Key: "manifest", Value: cfg.Assets.Manifest},
		logger.Field{Key: "debug_build", Value: config.DebugBuild})
	if err := engine.RunGame(client); err != nil {
		log.Error("Game loop failed", logger.Err(err))
		return err
	}
	log.Info("Client closed")
	return nil
}

// check loads the asset collection headlessly and reports what it found.
func check(ctx context.Context, loader *assets.Loader, log logger.Logger) error {
	loader.Start(ctx)
	coll, err := loader.Wait(ctx)
	if err != nil {
		return fmt.Errorf("asset check failed: %w", err)
	}
	log.Info("Asset check passed",
		logger.Field{Key: "models", Value: len(coll.Models)},
		logger.Field{Key: "player_model", Value: coll.PlayerModel.Name})
	return nil
}
