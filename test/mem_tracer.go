package test

import (
	"sync"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/log"
)

// MemTracer implements a simple tracer in memory for testing purposes. It
// records the operation names of the spans it starts, in starting order.
type MemTracer struct {
	Spans []string
	sync.Mutex
}

type memSpan struct {
	opName string
}

// StartSpan implements the opentracing.Tracer interface.
func (t *MemTracer) StartSpan(operationName string, opts ...opentracing.StartSpanOption) opentracing.Span {
	t.Lock()
	t.Spans = append(t.Spans, operationName)
	t.Unlock()
	return &memSpan{opName: operationName}
}

// Inject implements the opentracing.Tracer interface.
func (t *MemTracer) Inject(sm opentracing.SpanContext, format interface{}, carrier interface{}) error {
	panic("not implemented")
}

// Extract implements the opentracing.Tracer interface.
func (t *MemTracer) Extract(format interface{}, carrier interface{}) (opentracing.SpanContext, error) {
	panic("not implemented")
}

func (s *memSpan) Context() opentracing.SpanContext { return nil }

func (s *memSpan) SetBaggageItem(key, val string) opentracing.Span { return s }

func (s *memSpan) BaggageItem(key string) string { return "" }

func (s *memSpan) SetTag(key string, value interface{}) opentracing.Span { return s }

func (s *memSpan) LogFields(fields ...log.Field) {}

func (s *memSpan) LogKV(keyVals ...interface{}) {}

func (s *memSpan) Finish() {}

func (s *memSpan) FinishWithOptions(opts opentracing.FinishOptions) {}

func (s *memSpan) SetOperationName(operationName string) opentracing.Span { return s }

func (s *memSpan) Tracer() opentracing.Tracer { return nil }

func (s *memSpan) LogEvent(event string) {}

func (s *memSpan) LogEventWithPayload(event string, payload interface{}) {}

func (s *memSpan) Log(data opentracing.LogData) {}
