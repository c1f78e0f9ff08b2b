// Package widget holds the divisor grid state: raw text, the validated
// bound derived from it, the shuffled sequence derived from the bound and
// the highlighted set derived from hover events.
//
// Writes to an upstream cell recompute the downstream cells immediately and
// in dependency order (validator, generator, highlighter), so readers never
// see a half-updated widget. A Widget is not safe for concurrent use; the UI
// drives it from a single update loop.
package widget

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"divgrid/internal/domain"
	"divgrid/internal/eventbus"
	"divgrid/internal/highlight"
	"divgrid/internal/sequence"
	"divgrid/internal/validator"
)

var (
	ErrInvalidMaximum = errors.New("maximum must be a positive integer")
	ErrInvalidStart   = errors.New("start must be a positive integer")
)

// Options configures a Widget. Maximum and Start are fixed for its lifetime.
type Options struct {
	Maximum int
	Start   int
	Source  sequence.Source   // nil picks a randomly seeded source
	Bus     eventbus.EventBus // nil disables notifications
	Logger  *zap.Logger
}

// Widget is a single divisor grid instance
type Widget struct {
	maximum int
	src     sequence.Source
	bus     eventbus.EventBus
	logger  *zap.Logger

	raw         string
	outcome     domain.Outcome
	seq         []int
	highlighter *highlight.Highlighter
}

// New creates a widget seeded with Start as its initial raw text
func New(opts Options) (*Widget, error) {
	if opts.Maximum < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaximum, opts.Maximum)
	}
	if opts.Start < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStart, opts.Start)
	}
	if opts.Source == nil {
		opts.Source = sequence.NewSource(0)
	}
	if opts.Bus == nil {
		opts.Bus = eventbus.NullBus{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	w := &Widget{
		maximum:     opts.Maximum,
		src:         opts.Source,
		bus:         opts.Bus,
		logger:      opts.Logger.Named("widget"),
		outcome:     domain.Empty(opts.Maximum),
		seq:         []int{},
		highlighter: highlight.New(nil),
	}
	w.SetRawInput(fmt.Sprint(opts.Start))
	return w, nil
}

// SetRawInput replaces the raw text and recomputes everything downstream.
// The sequence is regenerated only when the resulting bound differs from
// the current one.
func (w *Widget) SetRawInput(text string) {
	w.raw = text

	prev := w.outcome.EffectiveBound()
	w.outcome = validator.Validate(text, w.maximum)
	next := w.outcome.EffectiveBound()

	if w.outcome.Kind == domain.OutcomeInvalid {
		w.bus.Publish(domain.ValidationFailedEvent{Raw: text, Reason: w.outcome.Reason})
	}

	if next == prev {
		return
	}

	w.logger.Debug("bound changed",
		zap.Int("from", prev),
		zap.Int("to", next),
		zap.Stringer("outcome", w.outcome))
	w.bus.Publish(domain.BoundChangedEvent{From: prev, To: next, Outcome: w.outcome})

	w.regenerate(next)
}

// Reshuffle draws a fresh permutation for the current bound
func (w *Widget) Reshuffle() {
	bound := w.outcome.EffectiveBound()
	if bound == domain.NoBound {
		return
	}
	w.regenerate(bound)
}

func (w *Widget) regenerate(bound int) {
	hadHighlight := w.highlighter.Len() > 0

	w.seq = sequence.Generate(bound, w.src)
	w.highlighter.Reset(w.seq)

	w.bus.Publish(domain.SequenceRegeneratedEvent{Bound: bound, Length: len(w.seq)})
	if hadHighlight {
		w.bus.Publish(domain.HighlightClearedEvent{Forced: true})
	}
}

// OnHover highlights every displayed value that divides target
func (w *Widget) OnHover(target int) {
	w.highlighter.OnHover(target)
	w.bus.Publish(domain.HighlightChangedEvent{Target: target, Count: w.highlighter.Len()})
}

// OnHoverEnd clears the highlighted set
func (w *Widget) OnHoverEnd() {
	w.highlighter.OnHoverEnd()
	w.bus.Publish(domain.HighlightClearedEvent{})
}

// Maximum returns the configured upper limit
func (w *Widget) Maximum() int {
	return w.maximum
}

// RawInput returns the current raw text
func (w *Widget) RawInput() string {
	return w.raw
}

// Outcome returns the current validation outcome
func (w *Widget) Outcome() domain.Outcome {
	return w.outcome
}

// Bound returns the validated bound or domain.NoBound
func (w *Widget) Bound() int {
	return w.outcome.EffectiveBound()
}

// ErrorMessage returns the text to show under the input, "" when there is none
func (w *Widget) ErrorMessage() string {
	return w.outcome.Message()
}

// Sequence returns a copy of the displayed permutation
func (w *Widget) Sequence() []int {
	return slices.Clone(w.seq)
}

// Len returns the number of displayed cells
func (w *Widget) Len() int {
	return len(w.seq)
}

// At returns the value displayed at index i
func (w *Widget) At(i int) (int, bool) {
	if i < 0 || i >= len(w.seq) {
		return 0, false
	}
	return w.seq[i], true
}

// IsHighlighted reports whether v is in the highlighted set
func (w *Widget) IsHighlighted(v int) bool {
	return w.highlighter.Contains(v)
}

// Highlighted returns the highlighted values in ascending order
func (w *Widget) Highlighted() []int {
	return w.highlighter.Values()
}

// Hovered returns the value currently hovered, if any
func (w *Widget) Hovered() (int, bool) {
	return w.highlighter.Target()
}
