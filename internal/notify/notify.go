// Package notify carries short user-facing messages out of the simulation.
// Emission is fire-and-forget; sinks decide how long messages live.
package notify

import "log/slog"

// Notifier receives messages in emission order.
type Notifier interface {
	Emit(msg string)
}

// Nop discards every message.
type Nop struct{}

func (Nop) Emit(string) {}

// Multi fans a message out to several sinks.
type Multi []Notifier

func (m Multi) Emit(msg string) {
	for _, n := range m {
		if n != nil {
			n.Emit(msg)
		}
	}
}

// Logger mirrors messages into a structured log.
type Logger struct {
	log *slog.Logger
}

// NewLogger returns a sink writing to logger, or slog.Default() when nil.
func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{log: logger}
}

func (l *Logger) Emit(msg string) {
	l.log.Info("notification", "msg", msg)
}

// Message is one entry of a Log.
type Message struct {
	Text string
	TTL  int // ticks left before it expires
}

// Log keeps recent messages for the HUD. Each message expires after ttl
// ticks and at most max messages are kept, oldest dropped first.
type Log struct {
	ttl  int
	max  int
	msgs []Message
}

// DefaultTTL and DefaultMax are the stock message lifetime and log length.
const (
	DefaultTTL = 120
	DefaultMax = 50
)

// NewLog creates a message log. Non-positive arguments select the defaults.
func NewLog(ttl, max int) *Log {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if max <= 0 {
		max = DefaultMax
	}
	return &Log{ttl: ttl, max: max}
}

func (l *Log) Emit(msg string) {
	l.msgs = append(l.msgs, Message{Text: msg, TTL: l.ttl})
	if over := len(l.msgs) - l.max; over > 0 {
		l.msgs = append(l.msgs[:0], l.msgs[over:]...)
	}
}

// Tick ages every message by one tick and drops the expired ones.
func (l *Log) Tick() {
	kept := l.msgs[:0]
	for _, m := range l.msgs {
		m.TTL--
		if m.TTL > 0 {
			kept = append(kept, m)
		}
	}
	clear(l.msgs[len(kept):])
	l.msgs = kept
}

// Len returns the number of live messages.
func (l *Log) Len() int { return len(l.msgs) }

// Recent returns up to n live messages, oldest first.
func (l *Log) Recent(n int) []Message {
	if n <= 0 || n > len(l.msgs) {
		n = len(l.msgs)
	}
	out := make([]Message, n)
	copy(out, l.msgs[len(l.msgs)-n:])
	return out
}
