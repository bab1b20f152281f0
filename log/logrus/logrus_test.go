package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/unkn0wn-root/codecs"
)

func TestLogrusLoggerMapsLevelsAndFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := New(base)

	l.Debug("pre-encode", codecs.Fields{codecs.FieldType: "int", codecs.FieldUnit: "int.Encode"})
	l.Info("append", codecs.Fields{codecs.FieldID: uint64(7)})
	l.Warn("w", nil)
	l.Error("e", codecs.Fields{})

	entries := hook.AllEntries()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	first := entries[0]
	if first.Level != logrus.DebugLevel || first.Message != "pre-encode" {
		t.Fatalf("bad entry: %+v", first)
	}
	if first.Data["component"] != "codecs" || first.Data[codecs.FieldType] != "int" {
		t.Fatalf("bad data: %v", first.Data)
	}
	if entries[1].Level != logrus.InfoLevel || entries[1].Data[codecs.FieldID] != uint64(7) {
		t.Fatalf("bad info entry: %+v", entries[1])
	}
	if entries[2].Level != logrus.WarnLevel || entries[3].Level != logrus.ErrorLevel {
		t.Fatalf("bad levels: %v %v", entries[2].Level, entries[3].Level)
	}
}
