package trace

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"pullmenu/internal/status"
	"pullmenu/internal/swipe"
)

// SpanName names the span covering one gesture session.
const SpanName = "pullmenu.gesture"

const instrumentationName = "pullmenu/internal/swipe"

// SessionObserver implements swipe.Observer and records each gesture
// session, from leaving Idle until returning to it, as one span.
//
// The session's uuid doubles as the span's trace ID so that logs carrying
// the session id can be joined with the exported trace.
type SessionObserver struct {
	tracer oteltrace.Tracer
	newID  func() uuid.UUID

	mu      sync.Mutex
	span    oteltrace.Span
	session uuid.UUID
}

// Ensure SessionObserver implements swipe.Observer.
var _ swipe.Observer = (*SessionObserver)(nil)

// NewSessionObserver creates an observer recording to tp. A nil provider
// records nothing.
func NewSessionObserver(tp oteltrace.TracerProvider) *SessionObserver {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &SessionObserver{
		tracer: tp.Tracer(instrumentationName),
		newID:  uuid.New,
	}
}

// Session returns the id of the open session, or uuid.Nil.
func (o *SessionObserver) Session() uuid.UUID {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.span == nil {
		return uuid.Nil
	}
	return o.session
}

// OnStatusChange opens a span when the layout leaves Idle and ends it on the
// way back.
func (o *SessionObserver) OnStatusChange(from, to status.Status) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.span == nil {
		if to == status.Idle {
			return
		}
		o.start()
	}
	o.span.AddEvent("status", oteltrace.WithAttributes(
		attribute.String("pullmenu.status.from", from.String()),
		attribute.String("pullmenu.status.to", to.String()),
	))
	if to == status.Idle {
		o.end()
	}
}

// OnRecoilStart records the snap-back launch.
func (o *SessionObserver) OnRecoilStart(fromTop int, fromCancel bool) {
	o.addEvent("recoil.start",
		attribute.Int("pullmenu.recoil.from_top", fromTop),
		attribute.Bool("pullmenu.recoil.from_cancel", fromCancel),
	)
}

// OnRecoilEnd records the end of the snap-back.
func (o *SessionObserver) OnRecoilEnd() {
	o.addEvent("recoil.end")
}

// OnItemSelected records the confirmed selection on the session span.
func (o *SessionObserver) OnItemSelected(index int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.span == nil {
		return
	}
	o.span.SetAttributes(attribute.Int("pullmenu.selected.index", index))
	o.span.AddEvent("item.selected", oteltrace.WithAttributes(attribute.Int("pullmenu.selected.index", index)))
}

// Close ends any open session span.
func (o *SessionObserver) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.span != nil {
		o.span.SetAttributes(attribute.Bool("pullmenu.session.abandoned", true))
		o.end()
	}
}

func (o *SessionObserver) addEvent(name string, attrs ...attribute.KeyValue) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.span == nil {
		return
	}
	o.span.AddEvent(name, oteltrace.WithAttributes(attrs...))
}

// start must be called with mu held.
func (o *SessionObserver) start() {
	o.session = o.newID()
	ctx := oteltrace.ContextWithSpanContext(context.Background(), oteltrace.NewSpanContext(oteltrace.SpanContextConfig{
		TraceID:    oteltrace.TraceID(o.session),
		TraceFlags: oteltrace.FlagsSampled,
	}))
	_, o.span = o.tracer.Start(ctx, SpanName,
		oteltrace.WithAttributes(attribute.String("pullmenu.session.id", o.session.String())),
	)
}

// end must be called with mu held.
func (o *SessionObserver) end() {
	o.span.End()
	o.span = nil
}
