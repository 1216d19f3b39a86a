package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"github.com/younwookim/impala/internal/application/game"
	"github.com/younwookim/impala/internal/application/input"
	"github.com/younwookim/impala/internal/infrastructure/config"
	"github.com/younwookim/impala/internal/infrastructure/ebitenio"
	"github.com/younwookim/impala/internal/infrastructure/remote"
)

func loadSettings(dir string) (*config.Settings, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadSettings()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs").LoadSettings()
}

func main() {
	configFlag := flag.String("config", "", "Directory holding settings.json or settings.yaml (default: embedded)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto)")
	playFlag := flag.String("play", "", "Play back input from a recorded file")
	flag.Parse()

	settings, err := loadSettings(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	applyReplay(settings, *recordFlag, *playFlag)

	engine, err := game.New(settings, newRegistry(true), game.WithoutPacing())
	if err != nil {
		log.Fatalf("Failed to start engine: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if settings.Remote.Enabled {
		kb, err := game.InputAs[*input.Keyboard](engine.Context(), inputKeyboard)
		if err != nil {
			log.Fatalf("Remote keyboards need a keyboard input: %v", err)
		}
		receiver := remote.NewReceiver(kb, settings.Remote.OriginPatterns...)
		go func() {
			if err := receiver.ListenAndServe(ctx, settings.Remote.Addr); err != nil {
				log.Printf("[Remote] %v", err)
			}
		}()
	}

	screen, _ := game.OutputAs[*ebitenio.Screen](engine.Context(), outputScreen)
	if err := ebitenio.Run(ctx, engine, screen, settings.Display); err != nil {
		log.Fatal(err)
	}
}
