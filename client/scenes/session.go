package scenes

import (
	"fmt"
	"path/filepath"

	"github.com/cbodonnell/minigames/pkg/log"
	"github.com/cbodonnell/minigames/pkg/replay"
	"github.com/hajimehoshi/ebiten/v2"
)

// session is the per-scene frame clock and input recorder shared by the game
// scenes. Timestamps are derived from the tick counter so a recording replays
// with the exact frame times the engine saw.
type session struct {
	ticks     uint64
	recorder  *replay.Recorder
	recordDir string
}

func newSession(game replay.Game, seed uint64, recordDir string) *session {
	return &session{
		recorder:  replay.NewRecorder(game, seed),
		recordDir: recordDir,
	}
}

// tick advances the clock and returns the current frame timestamp in milliseconds.
func (s *session) tick() float64 {
	s.ticks++
	return float64(s.ticks) * 1000 / float64(ebiten.TPS())
}

func (s *session) record(kind replay.InputKind, timestamp float64) {
	s.recorder.Record(kind, timestamp)
}

// save writes the recording to the record directory. Nothing is written when
// recording is disabled or no input was recorded.
func (s *session) save() error {
	if s.recordDir == "" || s.recorder.Len() == 0 {
		return nil
	}
	r := s.recorder.Recording()
	path := filepath.Join(s.recordDir, r.ID.String()+replay.FileExtension)
	if err := replay.WriteFile(path, r); err != nil {
		return fmt.Errorf("failed to write recording: %v", err)
	}
	log.Info("Saved %s recording with %d inputs to %s", r.Game, len(r.Inputs), path)
	return nil
}
