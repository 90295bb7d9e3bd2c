package main

import (
	"flag"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"github.com/dkolarov/kindermaze/config"
	"github.com/dkolarov/kindermaze/monitor"
)

func loadFace(path string) font.Face {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("font %s: %v, using debug text", path, err)
		return nil
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		log.Warnf("font %s: %v, using debug text", path, err)
		return nil
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    28,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "path to the yaml config")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := NewApp(cfg)
	app.face = loadFace(cfg.Font)

	if cfg.Monitor != "" {
		mon := monitor.New()
		go mon.Loop()
		go func() {
			if err := mon.ListenAndServe(cfg.Monitor); err != nil {
				log.Errorf("monitor server: %v", err)
			}
		}()
		app.mon = mon
	}

	ebiten.SetWindowSize(640, 640)
	ebiten.SetWindowTitle("kindermaze")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
