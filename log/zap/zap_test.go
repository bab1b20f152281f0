package zap

import (
	"testing"

	"github.com/unkn0wn-root/codecs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerMapsLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core))

	c := codecs.Func[string]("upper",
		func(s string) (string, error) { return s, nil },
		func(s string) (string, error) { return s, nil })
	c.SetLogger(l)
	if _, err := c.Encode("abc"); err != nil {
		t.Fatal(err)
	}
	l.Warn("w", nil)
	l.Error("e", codecs.Fields{"k": 1})

	entries := logs.AllUntimed()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	pre := entries[0]
	if pre.Message != "pre-encode" || pre.Level != zapcore.DebugLevel || pre.LoggerName != "codecs" {
		t.Fatalf("bad pre-encode entry: %+v", pre)
	}
	ctx := pre.ContextMap()
	if ctx[codecs.FieldUnit] != "upper.Encode" || ctx[codecs.FieldType] != "string" {
		t.Fatalf("bad fields: %v", ctx)
	}
	if got := entries[1].ContextMap()[codecs.FieldLength]; got != int64(3) {
		t.Fatalf("length=%v (%T)", got, got)
	}
	if entries[2].Level != zapcore.WarnLevel || len(entries[2].Context) != 0 {
		t.Fatalf("bad warn entry: %+v", entries[2])
	}
	if entries[3].Level != zapcore.ErrorLevel {
		t.Fatalf("bad error entry: %+v", entries[3])
	}
}
