package handler

import (
	"errors"
	"fmt"
	"github.com/Borislavv/go-ash-log/config"
	"github.com/Borislavv/go-ash-log/model"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"sync/atomic"
)

var (
	ErrMissingPathConfig   = errors.New("missing log path config")
	ErrMissingFormatConfig = errors.New("missing log format config")
	ErrInvalidFormatConfig = errors.New("invalid log format config")
)

// SinkLevels lists the levels a Set builds a sink for, in build order.
// Critical records have no dedicated sink and reach the master sink only.
var SinkLevels = []model.Level{model.Master, model.Debug, model.Info, model.Warning, model.Error}

// SinkStat is a point-in-time view of one sink's counters.
type SinkStat struct {
	Level       model.Level
	Path        string
	Records     int64
	WriteErrors int64
}

// Set owns the sinks of one environment.
type Set struct {
	env        model.Env
	sinks      []*sink
	collectors []prometheus.Collector
	registerer prometheus.Registerer
	closed     atomic.Bool
}

// New builds one sink per SinkLevels entry for env.
//
// Every path and the format are resolved before anything touches the
// filesystem, so a configuration error creates no directories or files.
// If a file cannot be opened the sinks opened so far are closed again.
func New(env model.Env, paths config.Paths, formats config.Formats) (*Set, error) {
	resolved := make([]string, len(SinkLevels))
	for i, level := range SinkLevels {
		path, ok := paths.Lookup(env.String(), level.Key())
		if !ok {
			return nil, fmt.Errorf("%w: environment %q, level %q", ErrMissingPathConfig, env, level.Key())
		}
		resolved[i] = path
	}

	format, ok := formats.Lookup(env.String())
	if !ok {
		return nil, fmt.Errorf("%w: environment %q", ErrMissingFormatConfig, env)
	}
	l, err := newLayout(format)
	if err != nil {
		return nil, err
	}

	set := &Set{env: env, sinks: make([]*sink, 0, len(SinkLevels))}
	for i, level := range SinkLevels {
		s, err := openSink(level, resolved[i], l)
		if err != nil {
			_ = set.Close()
			return nil, err
		}
		set.sinks = append(set.sinks, s)
	}

	return set, nil
}

func (s *Set) Env() model.Env {
	return s.env
}

// Core fans zap entries out to every sink. Each sink filters on its own.
func (s *Set) Core() zapcore.Core {
	cores := make([]zapcore.Core, 0, len(s.sinks))
	for _, sk := range s.sinks {
		cores = append(cores, sk)
	}
	return zapcore.NewTee(cores...)
}

// Write delivers ent to every sink accepting its level.
// Failed writes do not stop delivery to the remaining sinks.
func (s *Set) Write(ent zapcore.Entry) error {
	var err error
	for _, sk := range s.sinks {
		if sk.Enabled(ent.Level) {
			err = multierr.Append(err, sk.Write(ent, nil))
		}
	}
	return err
}

// Metrics returns the counters of every sink in SinkLevels order.
func (s *Set) Metrics() []SinkStat {
	stats := make([]SinkStat, 0, len(s.sinks))
	for _, sk := range s.sinks {
		records, writeErrors := sk.counters.snapshot()
		stats = append(stats, SinkStat{
			Level:       sk.level,
			Path:        sk.path,
			Records:     records,
			WriteErrors: writeErrors,
		})
	}
	return stats
}

func (s *Set) Sync() error {
	var err error
	for _, sk := range s.sinks {
		err = multierr.Append(err, sk.Sync())
	}
	return err
}

// Close unregisters metrics and closes every file. Only the first call has effect.
func (s *Set) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.unregister()

	var err error
	for _, sk := range s.sinks {
		err = multierr.Append(err, sk.close())
	}
	return err
}
