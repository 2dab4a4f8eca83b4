package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopline/storefront/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testEvent() model.OrderEvent {
	return model.OrderEvent{
		OrderID:     "o-1",
		OrderNumber: "ORD-1",
		Action:      model.OrderEventStatusChanged,
		Status:      model.OrderStatusApproved,
		ActorID:     "staff-1",
		OccurredAt:  time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewHTTPSenderValidatesURL(t *testing.T) {
	if _, err := NewHTTPSender("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPSender("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestSendDeliversEvent(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender, err := NewHTTPSender(server.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create sender: %v", err)
	}
	if err := sender.Send(context.Background(), testEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if received["orderNumber"] != "ORD-1" || received["action"] != "status_changed" {
		t.Fatalf("unexpected payload: %v", received)
	}
	if received["occurredAt"] != "2026-03-15T10:00:00Z" {
		t.Errorf("timestamp must be RFC3339, got %q", received["occurredAt"])
	}
}

func TestSendHandlesRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	sender, err := NewHTTPSender(server.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create sender: %v", err)
	}
	err = sender.Send(context.Background(), testEvent())
	var rateErr TooManyRequestsError
	if !errors.As(err, &rateErr) {
		t.Fatalf("expected TooManyRequestsError, got %v", err)
	}
	if rateErr.RetryAfter != 7*time.Second {
		t.Errorf("retry after = %s, want 7s", rateErr.RetryAfter)
	}
}

func TestSendFailsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	sender, err := NewHTTPSender(server.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create sender: %v", err)
	}
	if err := sender.Send(context.Background(), testEvent()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter(""); got != 5*time.Second {
		t.Errorf("empty header defaults to 5s, got %s", got)
	}
	if got := parseRetryAfter("12"); got != 12*time.Second {
		t.Errorf("seconds header, got %s", got)
	}
	if got := parseRetryAfter("garbage"); got != 5*time.Second {
		t.Errorf("unparsable header defaults to 5s, got %s", got)
	}
}

func TestNoopSender(t *testing.T) {
	if err := (NoopSender{}).Send(context.Background(), testEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
