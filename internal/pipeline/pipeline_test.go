package pipeline

import (
	"context"
	"errors"
	"testing"
)

// stubStep is a configurable step for pipeline tests.
type stubStep struct {
	name string
	err  error
	fn   func(item *Item)
}

func (s *stubStep) Do(_ context.Context, item *Item) error {
	if s.fn != nil {
		s.fn(item)
	}
	return s.err
}

func (s *stubStep) Name() string { return s.name }

// TestPipelineRunsStepsInOrder tests sequential execution.
func TestPipelineRunsStepsInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	p := New()
	for _, name := range []string{"first", "second", "third"} {
		name := name
		p.AddStep(&stubStep{name: name, fn: func(*Item) { order = append(order, name) }})
	}

	if err := p.Run(context.Background(), &Item{Path: "a.jpg"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Errorf("execution order = %v", order)
	}
}

// TestPipelineStopsOnError tests that later steps do not run after a
// failure and the error names the failing step.
func TestPipelineStopsOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	ran := false

	p := New()
	p.AddStep(&stubStep{name: "explode", err: boom})
	p.AddStep(&stubStep{name: "after", fn: func(*Item) { ran = true }})

	err := p.Run(context.Background(), &Item{Path: "a.jpg"})
	if !errors.Is(err, boom) {
		t.Fatalf("Run error = %v, expected the step's error", err)
	}
	if ran {
		t.Error("step after the failure still ran")
	}
}

// TestPipelineRespectsCancellation tests that a cancelled context stops
// execution before the next step.
func TestPipelineRespectsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	p := New()
	p.AddStep(&stubStep{name: "never", fn: func(*Item) { ran = true }})

	if err := p.Run(ctx, &Item{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, expected context.Canceled", err)
	}
	if ran {
		t.Error("step ran despite cancelled context")
	}
}
