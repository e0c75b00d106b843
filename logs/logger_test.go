package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("machine halted", "actor", 1, "ip", 7)
	})
	if !strings.Contains(buf.String(), "actor=1 ip=7") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
		level Level,
	) {
		prev := level.Level()
		defer level.Set(prev)

		level.Set(slog.LevelInfo)
		logger.Debug("step", "ip", 3)
		if buf.Len() > 0 {
			t.Fatalf("got %s", buf.String())
		}
		level.Set(slog.LevelDebug)
		logger.Debug("step", "ip", 3)
		if !strings.Contains(buf.String(), "ip=3") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.run"); got != "LOGS_RUN" {
		t.Fatalf("got %s", got)
	}
}
