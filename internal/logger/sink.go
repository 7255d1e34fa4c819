package logger

import (
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func newFileSink(
	path string,
	maxSize int,
	maxBackups int,
	maxAge int,
	bufSize int,
	flushInterval time.Duration,
) *fileSink {
	var sink fileSink
	sink.fws = fileSyncWriter{lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}}

	sink.BufferedWriteSyncer = zapcore.BufferedWriteSyncer{
		WS:            &sink.fws,
		Size:          bufSize,
		FlushInterval: flushInterval,
	}

	return &sink
}

var _ zapcore.WriteSyncer = (*fileSink)(nil)

// fileSink buffers writes to a size-rotated log file.
type fileSink struct {
	zapcore.BufferedWriteSyncer
	fws fileSyncWriter
}

// Close flushes pending entries and closes the file.
func (s *fileSink) Close() error {
	return multierr.Combine(
		s.BufferedWriteSyncer.Stop(),
		s.fws.Close(),
	)
}

type fileSyncWriter struct {
	lumberjack.Logger
}

func (sw *fileSyncWriter) Sync() error { return nil }
