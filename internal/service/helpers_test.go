package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"cpu-catalog-be/internal/pkg/logger"
	"cpu-catalog-be/internal/repository/unitofwork"
	"cpu-catalog-be/internal/testutil"
	"cpu-catalog-be/pkg/events"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type logLine struct {
	level   string
	module  string
	message string
	details map[string]interface{}
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (l *recordingLogger) add(level, module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, logLine{level, module, message, details})
}

func (l *recordingLogger) Debug(m, msg string, d map[string]interface{}) { l.add("DEBUG", m, msg, d) }
func (l *recordingLogger) Info(m, msg string, d map[string]interface{})  { l.add("INFO", m, msg, d) }
func (l *recordingLogger) Warn(m, msg string, d map[string]interface{})  { l.add("WARN", m, msg, d) }
func (l *recordingLogger) Error(m, msg string, d map[string]interface{}) { l.add("ERROR", m, msg, d) }
func (l *recordingLogger) Sync() error                                  { return nil }

func (l *recordingLogger) snapshot() []logLine {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logLine(nil), l.lines...)
}

var _ logger.ILogger = (*recordingLogger)(nil)

var errPublish = errors.New("bus down")

func newFactory(t *testing.T) unitofwork.RepositoryFactory {
	return unitofwork.NewRepositoryFactory(testutil.NewSQLiteDB(t))
}
