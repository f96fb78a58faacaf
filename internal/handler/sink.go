package handler

import (
	"github.com/Borislavv/go-ash-log/model"
	"go.uber.org/zap/zapcore"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var _ zapcore.Core = (*sink)(nil)

// sink appends the records its filter accepts to one file.
// The master sink accepts every record, any other sink only records
// of exactly its own rank.
type sink struct {
	level    model.Level
	path     string
	file     *os.File
	layout   *layout
	counters *sinkCounters
}

// openSink creates the parent directories of path and opens it for append.
// Filesystem errors are returned as is.
func openSink(level model.Level, path string, l *layout) (*sink, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return nil, err
	}

	return &sink{
		level:    level,
		path:     path,
		file:     file,
		layout:   l,
		counters: newSinkCounters(),
	}, nil
}

// ensureDir is a no-op when the directory already exists.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), dirPerm)
}

func (s *sink) accepts(level model.Level) bool {
	if s.level == model.Master {
		return true
	}
	return level.Rank() == s.level.Rank()
}

func (s *sink) Enabled(lvl zapcore.Level) bool {
	level, ok := model.LevelFromZap(lvl)
	return ok && s.accepts(level)
}

// With returns the sink itself: the line layout has no room for fields.
func (s *sink) With([]zapcore.Field) zapcore.Core {
	return s
}

func (s *sink) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if s.Enabled(ent.Level) {
		return ce.AddCore(ent, s)
	}
	return ce
}

// Write renders ent and appends it with a single write call.
func (s *sink) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	level, ok := model.LevelFromZap(ent.Level)
	if !ok {
		return nil
	}

	buf := s.layout.render(ent, level)
	defer buf.Free()

	if _, err := s.file.Write(buf.Bytes()); err != nil {
		s.counters.writeErrors.Add(1)
		return err
	}
	s.counters.records.Add(1)

	return nil
}

func (s *sink) Sync() error {
	return s.file.Sync()
}

func (s *sink) close() error {
	return s.file.Close()
}
