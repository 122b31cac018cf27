// Package logging builds the run logger: every entry goes to the console and
// is appended to generation.log in the save directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FileName = "generation.log"

	timeLayout = "2006-01-02T15:04:05.000Z"
)

// Open creates saveDir when needed and returns a logger writing to console
// and the log file. The returned close func flushes and closes the file.
func Open(fsys afero.Fs, saveDir string, console io.Writer) (*zap.Logger, func() error, error) {
	if err := fsys.MkdirAll(saveDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create save directory: %w", err)
	}

	path := filepath.Join(saveDir, FileName)
	file, err := fsys.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := New(zapcore.AddSync(console), file)
	closeFn := func() error {
		_ = logger.Sync()
		return file.Close()
	}

	return logger, closeFn, nil
}

// New returns a logger writing the same lines to every sink.
func New(sinks ...zapcore.WriteSyncer) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(EncoderConfig())
	cores := make([]zapcore.Core, 0, len(sinks))
	for _, sink := range sinks {
		cores = append(cores, zapcore.NewCore(encoder, sink, zapcore.InfoLevel))
	}

	return zap.New(zapcore.NewTee(cores...))
}

// EncoderConfig renders "[2026-01-02T15:04:05.000Z] [info] message" followed
// by any structured fields.
func EncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       bracketedTime,
		EncodeLevel:      bracketedLevel,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

func bracketedTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.UTC().Format(timeLayout) + "]")
}

func bracketedLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + level.String() + "]")
}
