package config

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// sourceHook records the file and line that emitted an entry.
type sourceHook struct {
	sync.Mutex
	field  string
	levels []log.Level
}

func newSourceHook(min log.Level) *sourceHook {
	h := &sourceHook{field: "source"}
	for _, l := range log.AllLevels {
		if l <= min {
			h.levels = append(h.levels, l)
		}
	}
	return h
}

func (h *sourceHook) Levels() []log.Level {
	return h.levels
}

func (h *sourceHook) Fire(entry *log.Entry) error {
	h.Lock()
	defer h.Unlock()

	entry.Data[h.field] = caller()
	return nil
}

// caller skips the logrus frames.
func caller() string {
	for skip := 5; skip < 15; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if strings.Contains(file, "sirupsen/logrus") {
			continue
		}
		return fmt.Sprintf("%s:%d", shorten(file), line)
	}
	return ""
}

// shorten keeps the package directory and file name.
func shorten(file string) string {
	n := 0
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			n++
			if n >= 2 {
				return file[i+1:]
			}
		}
	}
	return file
}
