// Package mocks provides an in-memory tracer for tests.
package mocks

import (
	"context"
	"jamat/infras/otel"
	"sync"
)

// Recorder keeps what was traced instead of exporting it.
type Recorder struct {
	mu         sync.Mutex
	spans      []string
	errors     []error
	events     []string
	attributes map[string]any
}

// NewOtel returns a tracer that records nothing worth asserting on.
func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Recorder {
	return &Recorder{attributes: map[string]any{}}
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.spans = append(r.spans, spanName)
	r.mu.Unlock()

	return ctx, &scope{recorder: r}
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.spans...)
}

func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.events...)
}

// Attribute returns the last value set for key on any span.
func (r *Recorder) Attribute(key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, ok := r.attributes[key]

	return value, ok
}

type scope struct {
	recorder *Recorder
}

func (s *scope) End() {}

func (s *scope) TraceError(err error) {
	if err == nil {
		return
	}

	s.recorder.mu.Lock()
	s.recorder.errors = append(s.recorder.errors, err)
	s.recorder.mu.Unlock()
}

func (s *scope) TraceIfError(err error) {
	s.TraceError(err)
}

func (s *scope) AddEvent(name string) {
	s.recorder.mu.Lock()
	s.recorder.events = append(s.recorder.events, name)
	s.recorder.mu.Unlock()
}

func (s *scope) SetAttribute(key string, value any) {
	s.recorder.mu.Lock()
	s.recorder.attributes[key] = value
	s.recorder.mu.Unlock()
}

func (s *scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
