package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var once sync.Once

var log zerolog.Logger

// Get returns the process wide logger. Local environments log to the console,
// everything else logs JSON to stdout.
func Get() zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil || level == zerolog.NoLevel {
			level = zerolog.InfoLevel
		}

		var output io.Writer = os.Stdout
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" || environment == "local" {
			output = zerolog.ConsoleWriter{
				Out:        os.Stdout,
				TimeFormat: time.RFC3339,
			}
		}

		log = zerolog.New(output).
			Level(level).
			With().
			Timestamp().
			Logger()
	})

	return log
}
