package exceptions

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestLogReporter(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	r := &LogReporter{Logger: logger}

	r.ReportException(errors.New("seek failed"), Fields{"target": "garbage"})

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("ReportException() did not log")
	}
	if g, e := entry.Level, logrus.ErrorLevel; g != e {
		t.Errorf("ReportException() wrong level, got %v, expected %v", g, e)
	}
	if g, e := entry.Data["target"], "garbage"; g != e {
		t.Errorf("ReportException() wrong target field, got %v, expected %v", g, e)
	}
	if g, e := entry.Data[logrus.ErrorKey].(error).Error(), "seek failed"; g != e {
		t.Errorf("ReportException() wrong error field, got %q, expected %q", g, e)
	}
}

func TestNewWithoutDSN(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	r, err := New("", "test", logger)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if _, ok := r.(*LogReporter); !ok {
		t.Errorf("New() wrong reporter, got %T, expected *LogReporter", r)
	}
}
