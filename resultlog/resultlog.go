// Package resultlog keeps the text shown in the results area: one timestamped
// entry per message, newest first.
package resultlog

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2/data/binding"
)

// Log is safe for concurrent use.
type Log struct {
	mu      sync.Mutex
	entries []string // newest first
	now     func() time.Time
	text    binding.String
}

// New returns an empty log stamped with the local wall clock.
func New() *Log {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty log stamped by now.
func NewWithClock(now func() time.Time) *Log {
	return &Log{now: now, text: binding.NewString()}
}

// Add records msg at the top of the log.
func (l *Log) Add(msg string) {
	l.mu.Lock()
	entry := fmt.Sprintf("[%s] %s", l.now().Format("15:04:05"), msg)
	l.entries = append([]string{entry}, l.entries...)
	l.publish()
	l.mu.Unlock()
}

// publish pushes the rendered text to the binding. Callers hold mu so
// updates reach the binding in the order they were made.
func (l *Log) publish() {
	if err := l.text.Set(l.render()); err != nil {
		log.Printf("results log: %v", err)
	}
}

// Addf formats and records a message.
func (l *Log) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Clear drops every entry.
func (l *Log) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.publish()
	l.mu.Unlock()
}

// Text returns the whole log.
func (l *Log) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.render()
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Binding exposes the log text for widgets.
func (l *Log) Binding() binding.String {
	return l.text
}

func (l *Log) render() string {
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	return b.String()
}
