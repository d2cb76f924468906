package app

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ConfigureLogging points the standard logger at cfg.LogFile when set. With
// no file, output stays on stderr unless discard is true, for hosts that own
// the terminal. The returned closer releases the log file.
func ConfigureLogging(cfg *Config, discard bool) (io.Closer, error) {
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if cfg.LogFile == "" {
		if discard {
			log.SetOutput(io.Discard)
		}
		return nopCloser{}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	return f, nil
}
