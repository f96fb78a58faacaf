// Package ashlog writes log records of each severity to their own file,
// next to a master file receiving every record.
//
// Paths and line formats are chosen per environment from two configuration
// files (JSON or YAML):
//
//	{"test": {"master": "logs/test/master.log", "warning": "logs/test/warning.log", ...}}
//	{"test": {"format": "{timestamp} - {logger_name} - {level_name} - {message}", "datefmt": "%Y-%m-%d %H:%M:%S"}}
//
// A sink other than master accepts records of exactly its own level:
// an error record never shows up in the warning file.
package ashlog

import (
	"fmt"
	"github.com/Borislavv/go-ash-log/config"
	"github.com/Borislavv/go-ash-log/internal/handler"
	"github.com/Borislavv/go-ash-log/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"log/slog"
	"time"
)

var (
	ErrInvalidEnvironment  = model.ErrInvalidEnvironment
	ErrInvalidLevel        = model.ErrInvalidLevel
	ErrConfigParse         = config.ErrConfigParse
	ErrMissingPathConfig   = handler.ErrMissingPathConfig
	ErrMissingFormatConfig = handler.ErrMissingFormatConfig
	ErrInvalidFormatConfig = handler.ErrInvalidFormatConfig
)

// SinkStat is a point-in-time view of one sink's counters.
type SinkStat = handler.SinkStat

// Logger is bound to one environment and shares its channel with every
// other Logger of that environment created through the same Registry.
type Logger struct {
	env model.Env
	ch  *channel
}

// New creates a Logger attached to DefaultRegistry.
func New(env model.Env, cfg *config.Logger, logger *slog.Logger) (*Logger, error) {
	return DefaultRegistry.New(env, cfg, logger)
}

// New loads paths and formats, opens the sinks of env and attaches them to
// the env channel. All directories and files are created here, none at
// call time. If the channel is already populated the freshly opened sinks
// are closed and the existing ones are used. A nil cfg reads the
// conventional locations, as do its empty fields. cfg is not modified.
// logger receives diagnostics and may be nil.
func (r *Registry) New(env model.Env, cfg *config.Logger, logger *slog.Logger) (*Logger, error) {
	if !env.IsValid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidEnvironment, env)
	}
	var c config.Logger
	if cfg != nil {
		c = *cfg
	}
	c.AdjustConfig()
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	paths, err := config.LoadPaths(c.PathsFile)
	if err != nil {
		return nil, err
	}
	formats, err := config.LoadFormats(c.FormatsFile)
	if err != nil {
		return nil, err
	}

	set, err := handler.New(env, paths, formats)
	if err != nil {
		return nil, err
	}

	name := ChannelName(env)
	ch, attached, err := r.attach(name, set)
	if err != nil {
		_ = set.Close()
		return nil, err
	}

	if attached {
		logger.Debug("log channel attached", "channel", name, "sinks", len(handler.SinkLevels))
	} else {
		logger.Debug("log channel already populated, reusing its sinks", "channel", name)
		if err = set.Close(); err != nil {
			logger.Warn("failed to close unused sinks", "channel", name, "err", err)
		}
	}

	return &Logger{env: env, ch: ch}, nil
}

func (l *Logger) Env() model.Env {
	return l.env
}

// Name is the logger identity rendered as {logger_name}.
func (l *Logger) Name() string {
	return l.ch.name
}

func (l *Logger) Debug(msg string) error {
	return l.log(model.Debug, msg)
}

func (l *Logger) Info(msg string) error {
	return l.log(model.Info, msg)
}

func (l *Logger) Warning(msg string) error {
	return l.log(model.Warning, msg)
}

func (l *Logger) Error(msg string) error {
	return l.log(model.Error, msg)
}

func (l *Logger) log(level model.Level, msg string) error {
	return l.ch.set.Write(zapcore.Entry{
		LoggerName: l.ch.name,
		Time:       time.Now(),
		Level:      level.Zap(),
		Message:    msg,
	})
}

// Zap returns a zap logger writing to the same sinks. Fields are dropped
// by the line layout. Write errors go to zap's error output.
func (l *Logger) Zap() *zap.Logger {
	return l.ch.zap
}

// Metrics returns per-sink counters of the channel.
func (l *Logger) Metrics() []SinkStat {
	return l.ch.set.Metrics()
}

// Sync flushes the channel files to stable storage.
func (l *Logger) Sync() error {
	return l.ch.set.Sync()
}
