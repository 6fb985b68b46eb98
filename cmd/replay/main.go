package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/cbodonnell/minigames/pkg/replay"
	"github.com/cbodonnell/minigames/pkg/version"
)

func main() {
	file := flag.String("file", "", "Recording to replay")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Debug("Starting replay version %s", version.Get())

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: replay -file <recording.replay>")
		os.Exit(2)
	}

	if err := run(*file); err != nil {
		log.Error("Replay failed: %v", err)
		os.Exit(1)
	}
}

func run(path string) error {
	recording, err := replay.ReadFile(path)
	if err != nil {
		return err
	}
	logger := log.With(log.Fields{
		"recording": recording.ID.String(),
		"game":      recording.Game.String(),
		"seed":      recording.Seed,
	})
	logger.Info("Replaying %d inputs", len(recording.Inputs))

	result, err := replay.Run(recording, replay.RunOptions{Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to replay %s: %v", path, err)
	}

	switch {
	case result.ZipRun != nil:
		s := result.ZipRun
		logger.With(log.Fields{
			"level":    s.Level,
			"best":     s.Best,
			"active":   s.Active,
			"progress": s.Progress,
		}).Info("Final state: %s", s.Status)
	case result.StackTower != nil:
		s := result.StackTower
		logger.With(log.Fields{
			"score":   s.Score,
			"best":    s.Best,
			"playing": s.Playing,
			"blocks":  len(s.Blocks),
		}).Info("Final state: %s", s.Status)
	}
	logger.Info("Replay produced %d events", len(result.Events))
	return nil
}
