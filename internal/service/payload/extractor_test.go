package payload

import (
	"errors"
	"testing"

	"TVRelay/pkg/config"
	xhttp "TVRelay/pkg/http"
)

func payloadStatus(t *testing.T, err error) int {
	t.Helper()
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr.Status
}

func TestStructuredExtractFullPayload(t *testing.T) {
	body := []byte(`{"ticker":"BTCUSD","strategy":{"order_action":"buy"},"key":"k"}`)
	a, err := Structured{}.Extract(body)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if a.Ticker != "BTCUSD" {
		t.Fatalf("unexpected ticker %q", a.Ticker)
	}
	if a.Strategy.OrderAction != "buy" {
		t.Fatalf("unexpected action %q", a.Strategy.OrderAction)
	}
	if a.Key != "k" {
		t.Fatalf("unexpected key %q", a.Key)
	}
	if a.IsRaw() {
		t.Fatalf("structured alert reported raw")
	}
}

func TestStructuredExtractDefaults(t *testing.T) {
	a, err := Structured{}.Extract([]byte(`{}`))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if a.Ticker != "unknown" {
		t.Fatalf("expected sentinel ticker, got %q", a.Ticker)
	}
	if a.Strategy.OrderAction != "none" {
		t.Fatalf("expected sentinel action, got %q", a.Strategy.OrderAction)
	}
}

func TestStructuredExtractEmptyBody(t *testing.T) {
	for _, body := range [][]byte{nil, []byte(""), []byte("   "), []byte("null")} {
		_, err := Structured{}.Extract(body)
		if err == nil {
			t.Fatalf("expected error for body %q", body)
		}
		if got := payloadStatus(t, err); got != 400 {
			t.Fatalf("expected 400 for body %q, got %d", body, got)
		}
		var appErr *xhttp.AppError
		errors.As(err, &appErr)
		if appErr.Message != "Invalid JSON or empty body" {
			t.Fatalf("unexpected message %q", appErr.Message)
		}
	}
}

func TestStructuredExtractMalformedJSON(t *testing.T) {
	_, err := Structured{}.Extract([]byte(`{"ticker":`))
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := payloadStatus(t, err); got != 400 {
		t.Fatalf("expected 400, got %d", got)
	}
}

func TestStructuredExtractWrongShape(t *testing.T) {
	cases := [][]byte{
		[]byte(`{"ticker":123}`),
		[]byte(`{"strategy":"not-an-object"}`),
		[]byte(`"just a string"`),
	}
	for _, body := range cases {
		_, err := Structured{}.Extract(body)
		if err == nil {
			t.Fatalf("expected error for %s", body)
		}
		var appErr *xhttp.AppError
		if !errors.As(err, &appErr) {
			t.Fatalf("expected AppError")
		}
		if appErr.Message != "Invalid data format" {
			t.Fatalf("expected format error for %s, got %q", body, appErr.Message)
		}
	}
}

func TestRawExtractPassthrough(t *testing.T) {
	a, err := RawText{}.Extract([]byte("Long signal on ETHUSD"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !a.IsRaw() {
		t.Fatalf("expected raw alert")
	}
	if a.RawText != "Long signal on ETHUSD" {
		t.Fatalf("unexpected text %q", a.RawText)
	}
}

func TestRawExtractEmpty(t *testing.T) {
	for _, body := range [][]byte{nil, []byte(""), []byte("  \n ")} {
		if _, err := (RawText{}).Extract(body); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}

func TestRawExtractInvalidUTF8(t *testing.T) {
	_, err := RawText{}.Extract([]byte{0xff, 0xfe, 0xfd})
	if err == nil {
		t.Fatalf("expected error for invalid UTF-8")
	}
	if got := payloadStatus(t, err); got != 400 {
		t.Fatalf("expected 400, got %d", got)
	}
}

func TestForMode(t *testing.T) {
	if _, ok := ForMode(config.ModeRaw).(RawText); !ok {
		t.Fatalf("expected raw extractor")
	}
	if _, ok := ForMode(config.ModeStructured).(Structured); !ok {
		t.Fatalf("expected structured extractor")
	}
}
