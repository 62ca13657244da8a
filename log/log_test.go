package log

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"
)

func withDebug(t *testing.T, value string) {
	t.Helper()

	old, had := os.LookupEnv("DEBUG")
	os.Setenv("DEBUG", value)
	patternsOnce = sync.Once{}
	t.Cleanup(func() {
		if had {
			os.Setenv("DEBUG", old)
		} else {
			os.Unsetenv("DEBUG")
		}
		patternsOnce = sync.Once{}
	})
}

func TestLog(t *testing.T) {
	withDebug(t, "")
	_log := NewLog("events:emitter")
	buf := new(bytes.Buffer)

	t.Run("prefix", func(t *testing.T) {
		if _log.Prefix() != "events:emitter" || _log.Logger.Prefix() != "events:emitter " {
			t.Fatalf(`*Log.Prefix() = %q, want match for %#q`, _log.Prefix(), "events:emitter")
		}
	})

	_log.SetFlags(0)
	_log.SetOutput(buf)

	_log.Debug("Test")

	if buf.Len() > 0 {
		t.Fatal(`_log.Debug("Test") There should be no output here, but got the output.`)
	}

	buf.Reset()

	_log.Printf("hello %d world", 23)
	line := buf.String()
	line = line[0 : len(line)-1]
	pattern := "^" + _log.Logger.Prefix() + "hello 23 world$"
	matched, err := regexp.MatchString(pattern, line)
	if err != nil {
		t.Fatal("pattern did not compile:", err)
	}
	if !matched {
		t.Errorf("log output should match %q is %q", pattern, line)
	}

	buf.Reset()
	_log.DEBUG = true
	_log.Debug("forced %s", "on")
	if !strings.Contains(buf.String(), "forced on") {
		t.Errorf("_log.Debug with DEBUG=true wrote %q", buf.String())
	}
}

func TestEnabled(t *testing.T) {
	withDebug(t, "events:*, -events:noisy other")

	for namespace, want := range map[string]bool{
		"events:emitter": true,
		"events:noisy":   false,
		"other":          true,
		"othermodule":    false,
		"engine:server":  false,
	} {
		if got := Enabled(namespace); got != want {
			t.Errorf(`Enabled(%q) = %t, want match for %t`, namespace, got, want)
		}
	}

	buf := new(bytes.Buffer)
	_log := NewLog("events:emitter")
	_log.SetOutput(buf)
	_log.Debug("traced")
	if !strings.Contains(buf.String(), "traced") {
		t.Fatalf(`_log.Debug("traced") wrote %q, want the message`, buf.String())
	}
}
