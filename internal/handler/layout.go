package handler

import (
	"fmt"
	"github.com/Borislavv/go-ash-log/config"
	"github.com/Borislavv/go-ash-log/model"
	"github.com/ncruces/go-strftime"
	"github.com/valyala/fasttemplate"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
	"io"
	"strconv"
	"strings"
)

const (
	tagTimestamp  = "timestamp"
	tagLoggerName = "logger_name"
	tagLevelName  = "level_name"
	tagLevelNo    = "level_no"
	tagMessage    = "message"
)

// %(...)s directives of older format files are rewritten into placeholders.
var legacyDirectives = strings.NewReplacer(
	"%(asctime)s", "{"+tagTimestamp+"}",
	"%(name)s", "{"+tagLoggerName+"}",
	"%(levelname)s", "{"+tagLevelName+"}",
	"%(levelno)s", "{"+tagLevelNo+"}",
	"%(message)s", "{"+tagMessage+"}",
)

var bufferPool = buffer.NewPool()

// layout renders one record into one line.
type layout struct {
	tpl     *fasttemplate.Template
	datefmt string
}

func newLayout(f config.Format) (*layout, error) {
	f = f.WithDefaults()

	tpl, err := fasttemplate.NewTemplate(legacyDirectives.Replace(f.Format), "{", "}")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFormatConfig, f.Format, err)
	}

	return &layout{tpl: tpl, datefmt: f.DateFormat}, nil
}

// render returns the line terminated by '\n'. The caller frees the buffer.
func (l *layout) render(ent zapcore.Entry, level model.Level) *buffer.Buffer {
	buf := bufferPool.Get()
	_, _ = l.tpl.ExecuteFunc(buf, func(w io.Writer, tag string) (int, error) {
		switch tag {
		case tagTimestamp:
			return io.WriteString(w, strftime.Format(l.datefmt, ent.Time))
		case tagLoggerName:
			return io.WriteString(w, ent.LoggerName)
		case tagLevelName:
			return io.WriteString(w, level.Name())
		case tagLevelNo:
			return io.WriteString(w, strconv.Itoa(level.Rank()))
		case tagMessage:
			return io.WriteString(w, ent.Message)
		default:
			// unknown placeholders are kept as written
			return io.WriteString(w, "{"+tag+"}")
		}
	})
	buf.AppendByte('\n')
	return buf
}
