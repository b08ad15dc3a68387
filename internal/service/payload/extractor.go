package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"TVRelay/internal/domain/models"
	"TVRelay/pkg/config"
	xhttp "TVRelay/pkg/http"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Extractor turns a request body into an Alert. One extractor is selected
// at startup from the configured relay mode; the two are never active at
// the same time.
type Extractor interface {
	Extract(body []byte) (*models.Alert, error)
}

// ForMode returns the extractor for the configured relay mode.
func ForMode(mode string) Extractor {
	if mode == config.ModeRaw {
		return RawText{}
	}
	return Structured{}
}

// Structured parses JSON alert payloads.
type Structured struct{}

func (Structured) Extract(body []byte) (*models.Alert, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, xhttp.PayloadError("Invalid JSON or empty body")
	}

	var a models.Alert
	if err := json.Unmarshal(trimmed, &a); err != nil {
		// A syntactically valid document of the wrong shape is a format
		// error; anything unparseable counts as invalid JSON.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, xhttp.PayloadError("Invalid data format").WithError(err)
		}
		return nil, xhttp.PayloadError("Invalid JSON or empty body").WithError(err)
	}

	// Absent fields fall back to the "unknown"/"none" sentinels
	if err := defaults.Set(&a); err != nil {
		return nil, xhttp.PayloadError("Invalid data format").WithError(err)
	}
	if err := validate.Struct(&a); err != nil {
		return nil, xhttp.PayloadError("Invalid data format").WithError(err)
	}

	return &a, nil
}

// RawText passes UTF-8 text bodies through untouched.
type RawText struct{}

func (RawText) Extract(body []byte) (*models.Alert, error) {
	if !utf8.Valid(body) {
		return nil, xhttp.PayloadError("Invalid or empty request body")
	}
	text := string(body)
	if strings.TrimSpace(text) == "" {
		return nil, xhttp.PayloadError("Invalid or empty request body")
	}
	return &models.Alert{RawText: text}, nil
}
