// Package notify carries short user-visible messages from the storage and
// session layers to whoever renders them.
package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Level of a message.
type Level string

// Message levels.
const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message is one notification.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Notifier receives fire-and-forget notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type ctxKey struct{}

// WithNotifier returns a copy of ctx carrying n.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, ctxKey{}, n)
}

// From returns the notifier carried by ctx. Without one, messages go to the
// log.
func From(ctx context.Context) Notifier {
	if ctx != nil {
		if n, ok := ctx.Value(ctxKey{}).(Notifier); ok && n != nil {
			return n
		}
	}

	return logNotifier{}
}

type logNotifier struct{}

func (logNotifier) Success(msg string) {
	log.Info().Str("notification", string(LevelSuccess)).Msg(msg)
}

func (logNotifier) Error(msg string) {
	log.Warn().Str("notification", string(LevelError)).Msg(msg)
}

// Recorder collects notifications in memory. The zero value is ready to use.
type Recorder struct {
	mu   sync.Mutex
	msgs []Message
}

// Success implements Notifier.
func (r *Recorder) Success(msg string) {
	r.add(LevelSuccess, msg)
}

// Error implements Notifier.
func (r *Recorder) Error(msg string) {
	r.add(LevelError, msg)
}

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.msgs = append(r.msgs, Message{Level: level, Text: msg})
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Message(nil), r.msgs...)
}

// Drain returns the recorded messages and forgets them.
func (r *Recorder) Drain() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs := r.msgs
	r.msgs = nil

	return msgs
}

// Pending drains the messages recorded so far on the Recorder carried by
// ctx. It returns nil when ctx has no Recorder.
func Pending(ctx context.Context) []Message {
	if r, ok := From(ctx).(*Recorder); ok {
		return r.Drain()
	}

	return nil
}
