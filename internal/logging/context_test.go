package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"alcfg/internal/logging"
	"alcfg/internal/services"
)

func TestWithContextAddsStageAndRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := services.WithRunID(services.WithStage(context.Background(), "story"), "run-1")
	logging.WithContext(ctx, logger).Info("stage started")

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if payload[logging.FieldStage] != "story" {
		t.Fatalf("expected stage field, got %v", payload[logging.FieldStage])
	}
	if payload[logging.FieldCorrelationID] != "run-1" {
		t.Fatalf("expected correlation id, got %v", payload[logging.FieldCorrelationID])
	}
}

func TestWithContextNilLogger(t *testing.T) {
	if logging.WithContext(context.Background(), nil) == nil {
		t.Fatal("expected no-op logger")
	}
	if fields := logging.ContextFields(context.Background()); len(fields) != 0 {
		t.Fatalf("expected no fields, got %v", fields)
	}
}
