package models

import (
	"fmt"
	"strings"
	"time"

	"TVRelay/pkg/util"
)

// Alert is the parsed inbound trading notification. In structured mode the
// JSON fields are populated and RawText stays empty; in raw mode only
// RawText is set. Extraction guarantees RawText is non-empty for raw alerts.
type Alert struct {
	Ticker   string   `json:"ticker" default:"unknown" validate:"max=64"`
	Strategy Strategy `json:"strategy"`
	Key      string   `json:"key,omitempty" validate:"max=128"`

	RawText string `json:"-"`
}

// Strategy carries the nested strategy block of a TradingView alert.
type Strategy struct {
	OrderAction string `json:"order_action" default:"none" validate:"max=32"`
}

// IsRaw reports whether the alert came from an unstructured text body.
func (a *Alert) IsRaw() bool {
	return a.RawText != ""
}

// Content derives the message forwarded downstream. Raw alerts pass through
// verbatim; structured alerts render timestamp, ticker, and upper-cased
// action into a Discord-friendly line.
func (a *Alert) Content(now time.Time) string {
	if a.IsRaw() {
		return a.RawText
	}
	return fmt.Sprintf("[%s] **%s**: `%s` signal detected",
		util.FormatLocal(now), a.Ticker, strings.ToUpper(a.Strategy.OrderAction))
}
