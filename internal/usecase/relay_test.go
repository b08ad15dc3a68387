package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"TVRelay/internal/domain/models"
	"TVRelay/internal/service/payload"
	"TVRelay/pkg/config"
	xhttp "TVRelay/pkg/http"
	xlogger "TVRelay/pkg/logger"
)

type fakeForwarder struct {
	res   *models.DeliveryResult
	err   error
	calls int
	last  string
}

func (f *fakeForwarder) Forward(_ context.Context, content string) (*models.DeliveryResult, error) {
	f.calls++
	f.last = content
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

type nopMetrics struct{}

func (nopMetrics) RecordRelay(mode, outcome string)     {}
func (nopMetrics) RecordError(kind string)              {}
func (nopMetrics) RecordForwardLatency(seconds float64) {}

func testConfig(mode, webhookURL, secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Relay.Mode = mode
	cfg.Relay.SecretKey = secret
	cfg.Discord.WebhookURL = webhookURL
	return cfg
}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newRelay(t *testing.T, cfg *config.Config, fw *fakeForwarder) *Relay {
	t.Helper()
	return NewRelay(cfg, testLogger(t), payload.ForMode(cfg.Relay.Mode), fw, nopMetrics{})
}

func appErrStatus(t *testing.T, err error) *xhttp.AppError {
	t.Helper()
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr
}

func TestHandleDegradedConfiguration(t *testing.T) {
	fw := &fakeForwarder{res: &models.DeliveryResult{StatusCode: 204}}
	r := newRelay(t, testConfig(config.ModeStructured, "", ""), fw)

	err := r.Handle(context.Background(), []byte(`{"ticker":"BTCUSD"}`), http.Header{})
	if appErrStatus(t, err).Status != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
	if fw.calls != 0 {
		t.Fatalf("expected no outbound call, got %d", fw.calls)
	}
}

func TestHandleStructuredSuccess(t *testing.T) {
	fw := &fakeForwarder{res: &models.DeliveryResult{StatusCode: 204}}
	r := newRelay(t, testConfig(config.ModeStructured, "https://discord.example/wh", ""), fw)

	body := []byte(`{"ticker":"BTCUSD","strategy":{"order_action":"buy"}}`)
	if err := r.Handle(context.Background(), body, http.Header{}); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if fw.calls != 1 {
		t.Fatalf("expected one outbound call, got %d", fw.calls)
	}
	if !strings.Contains(fw.last, "BTCUSD") {
		t.Fatalf("content missing ticker: %q", fw.last)
	}
	if !strings.Contains(fw.last, "BUY") {
		t.Fatalf("content missing upper-cased action: %q", fw.last)
	}
}

func TestHandleSecretMismatch(t *testing.T) {
	fw := &fakeForwarder{res: &models.DeliveryResult{StatusCode: 204}}
	r := newRelay(t, testConfig(config.ModeStructured, "https://discord.example/wh", "s3cret"), fw)

	for _, body := range []string{
		`{"ticker":"BTCUSD","key":"wrong"}`,
		`{"ticker":"BTCUSD"}`,
	} {
		err := r.Handle(context.Background(), []byte(body), http.Header{})
		if appErrStatus(t, err).Status != http.StatusForbidden {
			t.Fatalf("expected 403 for %s", body)
		}
	}
	if fw.calls != 0 {
		t.Fatalf("rejected request must not reach Discord, got %d calls", fw.calls)
	}
}

func TestHandleSecretMatch(t *testing.T) {
	fw := &fakeForwarder{res: &models.DeliveryResult{StatusCode: 200}}
	r := newRelay(t, testConfig(config.ModeStructured, "https://discord.example/wh", "s3cret"), fw)

	body := []byte(`{"ticker":"BTCUSD","strategy":{"order_action":"sell"},"key":"s3cret"}`)
	if err := r.Handle(context.Background(), body, http.Header{}); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if fw.calls != 1 {
		t.Fatalf("expected one outbound call")
	}
}

func TestHandleUpstreamRejected(t *testing.T) {
	fw := &fakeForwarder{res: &models.DeliveryResult{StatusCode: 404, Body: `{"message":"Unknown Webhook"}`}}
	r := newRelay(t, testConfig(config.ModeStructured, "https://discord.example/wh", ""), fw)

	err := r.Handle(context.Background(), []byte(`{"ticker":"BTCUSD"}`), http.Header{})
	appErr := appErrStatus(t, err)
	if appErr.Status != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", appErr.Status)
	}
	if appErr.Params["discord_response"] != `{"message":"Unknown Webhook"}` {
		t.Fatalf("downstream body not embedded: %v", appErr.Params)
	}
}

func TestHandleTransportError(t *testing.T) {
	fw := &fakeForwarder{err: errors.New("dial tcp: connection refused")}
	r := newRelay(t, testConfig(config.ModeStructured, "https://discord.example/wh", ""), fw)

	err := r.Handle(context.Background(), []byte(`{"ticker":"BTCUSD"}`), http.Header{})
	if appErrStatus(t, err).Status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
}

func TestHandlePayloadError(t *testing.T) {
	fw := &fakeForwarder{res: &models.DeliveryResult{StatusCode: 204}}
	r := newRelay(t, testConfig(config.ModeStructured, "https://discord.example/wh", ""), fw)

	err := r.Handle(context.Background(), nil, http.Header{})
	if appErrStatus(t, err).Status != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if fw.calls != 0 {
		t.Fatalf("expected no outbound call")
	}
}

func TestHandleRawPassthrough(t *testing.T) {
	fw := &fakeForwarder{res: &models.DeliveryResult{StatusCode: 204}}
	r := newRelay(t, testConfig(config.ModeRaw, "https://discord.example/wh", ""), fw)

	text := "Long signal on ETHUSD"
	if err := r.Handle(context.Background(), []byte(text), http.Header{}); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if fw.last != text {
		t.Fatalf("raw content must pass through verbatim, got %q", fw.last)
	}
}

func TestHandleRawHeaderAuth(t *testing.T) {
	fw := &fakeForwarder{res: &models.DeliveryResult{StatusCode: 204}}
	r := newRelay(t, testConfig(config.ModeRaw, "https://discord.example/wh", "s3cret"), fw)

	h := http.Header{}
	h.Set(RawKeyHeader, "s3cret")
	if err := r.Handle(context.Background(), []byte("signal"), h); err != nil {
		t.Fatalf("handle with header key: %v", err)
	}

	err := r.Handle(context.Background(), []byte("signal"), http.Header{})
	if appErrStatus(t, err).Status != http.StatusForbidden {
		t.Fatalf("expected 403 without header key")
	}
}
