package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-doc2md/internal/logging"
)

type testMessage struct {
	Source string
}

func (testMessage) Type() string { return "doc2md.test.message" }

func (testMessage) Validate() error { return nil }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "doc2md.test.invalid" }

func (invalidMessage) Validate() error {
	return errors.New("invalid")
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler[invalidMessage](func(ctx context.Context, msg invalidMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), invalidMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when context is cancelled")
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	execErr := errors.New("boom")
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return execErr
	})

	err := h.Execute(context.Background(), testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !errors.Is(err, execErr) {
		t.Fatalf("expected wrapped error to unwrap to cause, got %v", err)
	}
}

func TestHandlerKeepsCategorisedErrors(t *testing.T) {
	cause := goerrors.Wrap(errors.New("too deep"), goerrors.CategoryValidation, "render failed")
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return cause
	})

	err := h.Execute(context.Background(), testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category to survive, got %v", err)
	}
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	var status TelemetryStatus
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	},
		WithTimeout[testMessage](10*time.Millisecond),
		WithTelemetry[testMessage](func(_ context.Context, _ testMessage, info TelemetryInfo) {
			status = info.Status
		}),
	)

	err := h.Execute(context.Background(), testMessage{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
	if status != TelemetryStatusContextError {
		t.Fatalf("expected context_error status, got %q", status)
	}
}

func TestHandlerTelemetryReceivesFields(t *testing.T) {
	var got TelemetryInfo
	var ctxFields map[string]any
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		ctxFields = logging.ContextFields(ctx)
		return nil
	},
		WithOperation[testMessage]("convert"),
		WithRunIDGenerator[testMessage](func() string { return "run-1" }),
		WithMessageFields[testMessage](func(msg testMessage) map[string]any {
			return map[string]any{"source_path": msg.Source}
		}),
		WithTelemetry[testMessage](func(_ context.Context, _ testMessage, info TelemetryInfo) {
			got = info
		}),
	)

	if err := h.Execute(context.Background(), testMessage{Source: "course.xml"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Status != TelemetryStatusSuccess || got.Command != "doc2md.test.message" || got.Operation != "convert" {
		t.Fatalf("unexpected telemetry info %+v", got)
	}
	if got.Fields["source_path"] != "course.xml" || got.Fields["run_id"] != "run-1" {
		t.Fatalf("unexpected telemetry fields %+v", got.Fields)
	}
	if ctxFields["run_id"] != "run-1" {
		t.Fatalf("expected run id on context, got %+v", ctxFields)
	}
}

func TestHandlerReusesRunIDFromContext(t *testing.T) {
	var runID any
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error { return nil },
		WithRunIDGenerator[testMessage](func() string { return "fresh" }),
		WithTelemetry[testMessage](func(_ context.Context, _ testMessage, info TelemetryInfo) {
			runID = info.Fields["run_id"]
		}),
	)

	ctx := logging.ContextWithFields(context.Background(), map[string]any{"run_id": "outer"})
	if err := h.Execute(ctx, testMessage{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if runID != "outer" {
		t.Fatalf("expected outer run id, got %v", runID)
	}
}

func TestNewHandlerPanicsOnNilFunc(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewHandler[testMessage](nil)
}
