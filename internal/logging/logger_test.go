package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gabrielfcoelh83/cine-insights/internal/logging"
)

func TestNewJSONFormatEmitsStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("fetching movie", logging.Int64("movie_id", 550))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "fetching movie" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["movie_id"] != float64(550) {
		t.Fatalf("unexpected movie_id: %v", record["movie_id"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLevelFiltersDebugRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatal("debug record should have been filtered")
	}
	if !strings.Contains(out, "kept") {
		t.Fatal("warn record missing from output")
	}
}

func TestNewNopDiscardsEverything(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("ignored", logging.Error(nil))
}
