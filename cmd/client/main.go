package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/minigames/client/game"
	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/cbodonnell/minigames/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	seed := flag.Uint64("seed", 0, "Random seed for the games (0 uses the current time)")
	recordDir := flag.String("record-dir", "", "Directory to write game recordings to (disabled when empty)")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	if *recordDir != "" {
		if err := os.MkdirAll(*recordDir, 0o755); err != nil {
			panic(fmt.Sprintf("Failed to create record directory: %v", err))
		}
		log.Info("Recording games to %s", *recordDir)
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:     *debug,
		Seed:      *seed,
		RecordDir: *recordDir,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("Mini-Games")
	// keep ticking when unfocused so focus loss reaches the scenes
	ebiten.SetRunnableOnUnfocused(true)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
