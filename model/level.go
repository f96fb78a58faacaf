package model

import (
	"errors"
	"fmt"
	"go.uber.org/zap/zapcore"
	"strconv"
	"strings"
)

// ErrInvalidLevel is returned by ParseLevel for unknown names.
var ErrInvalidLevel = errors.New("invalid logging level")

// Level is a severity with a numeric rank and the key used for
// configuration lookup and file naming.
type Level struct {
	rank int
	key  string
}

var (
	// Master is not a record severity: it names the sink receiving every record.
	Master   = Level{rank: 0, key: "master"}
	Debug    = Level{rank: 10, key: "debug"}
	Info     = Level{rank: 20, key: "info"}
	Warning  = Level{rank: 30, key: "warning"}
	Error    = Level{rank: 40, key: "error"}
	Critical = Level{rank: 50, key: "critical"}
)

var levels = []Level{Master, Debug, Info, Warning, Error, Critical}

// Levels returns all levels ordered by rank.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// ParseLevel maps a name to a Level, ignoring case.
func ParseLevel(name string) (Level, error) {
	key := strings.ToLower(name)
	for _, l := range levels {
		if l.key == key {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}

func (l Level) Rank() int {
	return l.rank
}

func (l Level) Key() string {
	return l.key
}

// Name is the upper-case form rendered into log lines, e.g. WARNING.
func (l Level) Name() string {
	return strings.ToUpper(l.key)
}

func (l Level) IsZero() bool {
	return l.key == ""
}

func (l Level) String() string {
	if l.IsZero() {
		return "level(" + strconv.Itoa(l.rank) + ")"
	}
	return l.key
}

// Zap returns the zap severity carrying records of this level.
// Master has no record severity and maps to zapcore.InvalidLevel.
func (l Level) Zap() zapcore.Level {
	switch l {
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warning:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	case Critical:
		return zapcore.DPanicLevel
	default:
		return zapcore.InvalidLevel
	}
}

// LevelFromZap is the inverse of Level.Zap. Panic and fatal records
// are reported as Critical.
func LevelFromZap(l zapcore.Level) (Level, bool) {
	switch l {
	case zapcore.DebugLevel:
		return Debug, true
	case zapcore.InfoLevel:
		return Info, true
	case zapcore.WarnLevel:
		return Warning, true
	case zapcore.ErrorLevel:
		return Error, true
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return Critical, true
	default:
		return Level{}, false
	}
}
