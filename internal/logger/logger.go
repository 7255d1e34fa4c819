package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DevModeStr  = "development"
	ProdModeStr = "production"
)

const (
	DevMode = iota + 1
	ProdMode
)

const (
	SequenceKeyField = "sequence"
	ScriptPathField  = "script"
	StepCountField   = "steps"
)

func NewLogger(cfg Config) (*zap.Logger, func() error, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, w io.Writer) (*zap.Logger, func() error, error) {
	mode := ProdMode
	if strings.ToLower(cfg.Mode) == DevModeStr {
		mode = DevMode
	}

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, errors.Wrap(err, "can't parse log level")
	}

	enc := buildEncoder(cfg.Encoding, mode)
	sink, close := buildSink(w, cfg.File)
	opts := buildOptions(mode, sink)

	enab := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= lvl
	})

	core := zapcore.NewCore(enc, sink, enab)

	return zap.New(core, opts...), close, nil
}

func buildEncoder(enc string, mode int) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	if mode == DevMode {
		cfg = zap.NewDevelopmentEncoderConfig()
	}

	e := zapcore.NewConsoleEncoder(cfg)
	if enc == "json" {
		e = zapcore.NewJSONEncoder(cfg)
	}

	return e
}

func buildOptions(mode int, sink zapcore.WriteSyncer) []zap.Option {
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
		zap.ErrorOutput(sink),
	}

	if mode == DevMode {
		opts = append(opts, zap.Development(), zap.AddCaller())
	}

	return opts
}

func buildSink(w io.Writer, fcfg *FileConfig) (zapcore.WriteSyncer, func() error) {
	sink := zapcore.Lock(zapcore.AddSync(w))
	close := func() error { return nil }
	if fcfg != nil && fcfg.Path != "" {
		fsink := newFileSink(
			fcfg.Path,
			fcfg.MaxSize,
			fcfg.MaxBackups,
			fcfg.MaxAge,
			fcfg.BufSize,
			fcfg.FlushInterval,
		)

		sink = zap.CombineWriteSyncers(sink, fsink)
		close = fsink.Close
	}

	return sink, close
}
