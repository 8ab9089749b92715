package main

import (
	"errors"
	"flag"
	"image"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/region-crop-go/app"
	"github.com/soocke/region-crop-go/config"
	"github.com/soocke/region-crop-go/debug"
	"github.com/soocke/region-crop-go/source"
)

func main() {
	imagePath := flag.String("image", "", "path to the image to crop")
	capture := flag.Bool("capture", false, "capture the screen instead of loading a file")
	cfgPath := flag.String("config", "config.json", "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime stats")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	level := slog.LevelInfo
	if *debugFlag || cfg.Debug {
		cfg.Debug = true
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	_ = cfg.Validate()

	src, base, err := loadSource(*imagePath, *capture)
	if err != nil {
		logger.Error("no source image", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		debug.StartRuntimeLogger(2*time.Second, logger)
	}

	application := app.NewApp("Region Crop", cfg, logger, src, base)
	application.Start()
}

func loadSource(path string, capture bool) (*image.RGBA, string, error) {
	if capture {
		return source.CaptureScreen()
	}
	if path == "" {
		return nil, "", errors.New("pass -image <path> or -capture")
	}
	return source.LoadFile(path)
}
