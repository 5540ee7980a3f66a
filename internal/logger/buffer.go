package logger

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/formfield/internal/ports"
)

const defaultBufferLimit = 1000

type bufferedEntry struct {
	ctx    context.Context
	level  zerolog.Level
	msg    string
	fields []interface{}
}

type entryStore struct {
	mu      sync.Mutex
	limit   int
	entries []bufferedEntry
}

// Buffer is a ports.Logger that keeps entries in memory until Flush replays
// them, for periods where nothing may write to the terminal. Once the limit
// is reached the oldest entries are dropped.
type Buffer struct {
	store  *entryStore
	fields []interface{}
}

var _ ports.Logger = (*Buffer)(nil)

// NewBuffer creates a buffer holding up to limit entries (1000 when limit <= 0).
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &Buffer{store: &entryStore{limit: limit}}
}

func (b *Buffer) Debug(ctx context.Context, msg string, fields ...interface{}) {
	b.add(ctx, zerolog.DebugLevel, msg, fields)
}

func (b *Buffer) Info(ctx context.Context, msg string, fields ...interface{}) {
	b.add(ctx, zerolog.InfoLevel, msg, fields)
}

func (b *Buffer) Warn(ctx context.Context, msg string, fields ...interface{}) {
	b.add(ctx, zerolog.WarnLevel, msg, fields)
}

func (b *Buffer) Error(ctx context.Context, msg string, fields ...interface{}) {
	b.add(ctx, zerolog.ErrorLevel, msg, fields)
}

// With returns a buffer sharing the same storage that prefixes every entry
// with the supplied key/value pairs.
func (b *Buffer) With(fields ...interface{}) ports.Logger {
	if b == nil {
		return nil
	}
	return &Buffer{store: b.store, fields: append(append([]interface{}{}, b.fields...), fields...)}
}

// Len reports how many entries are waiting.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	return len(b.store.entries)
}

// Flush replays and clears the buffered entries in order.
func (b *Buffer) Flush(delegate ports.Logger) {
	if b == nil || delegate == nil {
		return
	}

	b.store.mu.Lock()
	entries := b.store.entries
	b.store.entries = nil
	b.store.mu.Unlock()

	for _, entry := range entries {
		switch entry.level {
		case zerolog.DebugLevel:
			delegate.Debug(entry.ctx, entry.msg, entry.fields...)
		case zerolog.WarnLevel:
			delegate.Warn(entry.ctx, entry.msg, entry.fields...)
		case zerolog.ErrorLevel:
			delegate.Error(entry.ctx, entry.msg, entry.fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, entry.fields...)
		}
	}
}

func (b *Buffer) add(ctx context.Context, level zerolog.Level, msg string, fields []interface{}) {
	if b == nil || b.store == nil {
		return
	}
	entry := bufferedEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: append(append([]interface{}{}, b.fields...), fields...),
	}

	s := b.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == s.limit {
		copy(s.entries, s.entries[1:])
		s.entries[len(s.entries)-1] = entry
		return
	}
	s.entries = append(s.entries, entry)
}
