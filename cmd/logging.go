package cmd

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logSettings selects the logger outputs.
type logSettings struct {
	Level      string
	Verbose    bool
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// newLogger builds a console logger on stderr and, when File is set, a JSON
// logger on a rotating file. The returned closer releases the file.
func newLogger(s logSettings, stderr io.Writer) (*zap.Logger, io.Closer, error) {
	level := zapcore.DebugLevel
	if !s.Verbose {
		parsed, err := zapcore.ParseLevel(s.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", s.Level, err)
		}
		level = parsed
	}

	console := zap.NewDevelopmentEncoderConfig()
	console.TimeKey = ""
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(console), zapcore.AddSync(stderr), level),
	}

	var closer io.Closer = nopCloser{}
	if s.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   s.File,
			MaxSize:    s.MaxSize, // megabytes
			MaxBackups: s.MaxBackups,
			MaxAge:     s.MaxAge, // days
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			level,
		))
		closer = rotator
	}

	return zap.New(zapcore.NewTee(cores...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// stderrWriter is where diagnostics go; tests replace it.
var stderrWriter io.Writer = os.Stderr
