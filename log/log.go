// Package log provides the namespaced debug logger used by the emitter.
package log

import (
	_log "log"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/gookit/color"
)

type Log struct {
	*_log.Logger

	DEBUG bool

	mu        sync.RWMutex // protects the following fields
	namespace string
	enabled   bool
}

var (
	patternsOnce sync.Once
	includes     []*regexp.Regexp
	excludes     []*regexp.Regexp
)

// compile turns a DEBUG glob such as "events:*" into an anchored regexp.
func compile(glob string) *regexp.Regexp {
	return regexp.MustCompile("^" + strings.ReplaceAll(regexp.QuoteMeta(glob), `\*`, `.*`) + "$")
}

// loadPatterns reads DEBUG once. Patterns are separated by commas or spaces,
// a leading "-" excludes matching namespaces.
func loadPatterns() {
	includes, excludes = nil, nil
	for _, p := range strings.FieldsFunc(os.Getenv("DEBUG"), func(r rune) bool { return r == ',' || r == ' ' }) {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		if strings.HasPrefix(p, "-") {
			excludes = append(excludes, compile(p[1:]))
		} else {
			includes = append(includes, compile(p))
		}
	}
}

// Enabled reports whether DEBUG selects the namespace.
func Enabled(namespace string) bool {
	patternsOnce.Do(loadPatterns)

	for _, r := range excludes {
		if r.MatchString(namespace) {
			return false
		}
	}
	for _, r := range includes {
		if r.MatchString(namespace) {
			return true
		}
	}
	return false
}

func NewLog(namespace string) *Log {
	l := &Log{
		Logger: _log.New(os.Stderr, "", 0),
		DEBUG:  false,
	}
	l.SetPrefix(namespace)
	return l
}

// Console log Println.
func (d *Log) Println(message string, args ...any) {
	d.Logger.Println(color.Sprintf(message, args...))
}

// Console log Info.
func (d *Log) Info(message string, args ...any) {
	d.Logger.Println(color.Info.Sprintf(message, args...))
}

// Console Debug Debug.
func (d *Log) Debug(message string, args ...any) {
	if d.DebugEnabled() {
		d.Logger.Println(color.Debug.Sprintf(message, args...))
	}
}

// Console log Error.
func (d *Log) Error(message string, args ...any) {
	d.Logger.Println(color.Danger.Sprintf(message, args...))
}

// Console log Warning.
func (d *Log) Warning(message string, args ...any) {
	d.Logger.Println(color.Warn.Sprintf(message, args...))
}

// DebugEnabled reports whether Debug lines are written.
func (d *Log) DebugEnabled() bool {
	if d.DEBUG {
		return true
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.enabled
}

// Prefix returns the namespace of the logger.
func (d *Log) Prefix() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.namespace
}

// SetPrefix changes the namespace and re-evaluates it against DEBUG.
func (d *Log) SetPrefix(namespace string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.namespace = namespace
	d.enabled = namespace != "" && Enabled(namespace)

	if namespace != "" {
		d.Logger.SetPrefix(namespace + " ")
	} else {
		d.Logger.SetPrefix("")
	}
}
