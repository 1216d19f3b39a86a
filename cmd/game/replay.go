package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/younwookim/impala/internal/infrastructure/config"
)

// autoRecord as the -record value picks a timestamped file name
const autoRecord = "auto"

// GenerateFilename creates a filename based on current time
func GenerateFilename(now time.Time) string {
	return fmt.Sprintf("replay_%s.json", now.Format("20060102_150405"))
}

// applyReplay merges the -record / -play flags into settings and lists the
// replay resources. The player goes after the devices it feeds, the
// recorder after every other output.
func applyReplay(s *config.Settings, record, play string) {
	if record != "" {
		s.Replay.Record = record
	}
	if play != "" {
		s.Replay.Play = play
	}

	if s.Replay.Record == autoRecord {
		s.Replay.Record = filepath.Join(s.RootPath, GenerateFilename(time.Now()))
	}
	if s.Replay.Record != "" && !slices.Contains(s.OutputManagers, outputRecorder) {
		s.OutputManagers = append(s.OutputManagers, outputRecorder)
	}
	if s.Replay.Play != "" && !slices.Contains(s.InputManagers, inputReplay) {
		s.InputManagers = append(s.InputManagers, inputReplay)
	}
}
