package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-doc2md/internal/logging"
	"github.com/goliatone/go-doc2md/internal/logging/console"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 3, 14, 15, 9, 26, 535897000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := logging.ModuleLogger(provider, "doc2md.site")
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"run_id": uuid.MustParse("8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999"),
	})
	logger = logger.WithContext(ctx)

	logger.Info("page.written",
		"output_path", "out/01-intro.md",
		"elapsed", 1500*time.Millisecond,
		"title", "01 Intro",
	)

	got := strings.TrimSpace(buf.String())
	want := `2024-03-14T15:09:26.535897Z INFO page.written elapsed=1.5s logger=doc2md.site module=doc2md.site output_path=out/01-intro.md run_id=8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999 title="01 Intro"`
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{Writer: &buf, MinLevel: &minLevel})

	logger := provider.GetLogger("doc2md.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
}

func TestConsoleLogger_PositionalArgs(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{Writer: &buf})

	provider.GetLogger("x").Error("failed", 42, "value", "err", errors.New("boom now"), "dangling")

	got := buf.String()
	for _, want := range []string{"arg_0=value", `err="boom now"`, "arg_4=dangling"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestParseLevel(t *testing.T) {
	level, err := console.ParseLevel(" Warning ")
	if err != nil || level != console.LevelWarn {
		t.Fatalf("expected warn level, got %v %v", level, err)
	}
	if _, err := console.ParseLevel("loud"); err == nil {
		t.Fatal("expected unknown level error")
	}
	if console.LevelFatal.String() != "FATAL" || console.Level(99).String() != "INFO" {
		t.Fatal("unexpected level labels")
	}
}
