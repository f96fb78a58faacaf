package handler

import (
	"github.com/Borislavv/go-ash-log/config"
	"github.com/Borislavv/go-ash-log/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"testing"
	"time"
)

var fixedTime = time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)

func renderLine(t *testing.T, f config.Format, level model.Level, msg string) string {
	t.Helper()
	l, err := newLayout(f)
	require.NoError(t, err)

	buf := l.render(zapcore.Entry{LoggerName: "app.test", Time: fixedTime, Level: level.Zap(), Message: msg}, level)
	defer buf.Free()
	return buf.String()
}

// TestLayout_Defaults renders the default template and date layout.
func TestLayout_Defaults(t *testing.T) {
	got := renderLine(t, config.Format{}, model.Warning, "disk almost full")
	require.Equal(t, "2024-03-05 07:08:09 - app.test - WARNING - disk almost full\n", got)
}

// TestLayout_CustomDate applies the strftime layout to {timestamp}.
func TestLayout_CustomDate(t *testing.T) {
	got := renderLine(t, config.Format{Format: "[{timestamp}] {message}", DateFormat: "%d/%m/%Y"}, model.Info, "hi")
	require.Equal(t, "[05/03/2024] hi\n", got)
}

// TestLayout_LevelNo renders the numeric rank.
func TestLayout_LevelNo(t *testing.T) {
	got := renderLine(t, config.Format{Format: "{level_no}:{level_name}"}, model.Error, "")
	require.Equal(t, "40:ERROR\n", got)
}

// TestLayout_LegacyDirectives accepts %(name)s style templates.
func TestLayout_LegacyDirectives(t *testing.T) {
	got := renderLine(t, config.Format{
		Format:     "%(asctime)s - %(name)s - %(levelname)s(%(levelno)s) - %(message)s",
		DateFormat: "%H:%M:%S",
	}, model.Debug, "legacy")
	require.Equal(t, "07:08:09 - app.test - DEBUG(10) - legacy\n", got)
}

// TestLayout_UnknownPlaceholder is emitted verbatim.
func TestLayout_UnknownPlaceholder(t *testing.T) {
	got := renderLine(t, config.Format{Format: "{host} {message}"}, model.Info, "up")
	require.Equal(t, "{host} up\n", got)
}

// TestLayout_MessageNotTemplated keeps braces inside messages.
func TestLayout_MessageNotTemplated(t *testing.T) {
	got := renderLine(t, config.Format{Format: "{message}"}, model.Info, "{level_name}")
	require.Equal(t, "{level_name}\n", got)
}
