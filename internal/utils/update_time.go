package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bitcoin_price_app/internal/apperrors"
	"github.com/araddon/dateparse"
)

const (
	// UpstreamTimeLayout is the price index's human readable updated time.
	UpstreamTimeLayout = "Jan 2, 2006 15:04:05 MST"
	// UpstreamISOLayout is the ISO form, always with a numeric offset.
	UpstreamISOLayout = "2006-01-02T15:04:05-07:00"
	// UpstreamUKLayout is the UK locale form.
	UpstreamUKLayout = "Jan 2, 2006 at 15:04 MST"
	// DisplayTimeLayout is the canonical updateTime format (yyyy/MM/dd HH:mm:ss).
	DisplayTimeLayout = "2006/01/02 15:04:05"
)

// NormalizeUpdateTime rewrites an upstream updated-time string into
// DisplayTimeLayout keeping the same wall clock values; no zone conversion
// happens. If the text cannot be parsed, the current local time is returned
// in the same layout along with an error wrapping apperrors.ErrTimeFormat.
func NormalizeUpdateTime(text string) (string, error) {
	t, err := parseUpdateTime(text)
	if err != nil {
		return time.Now().Format(DisplayTimeLayout), fmt.Errorf("%w: %q: %v", apperrors.ErrTimeFormat, text, err)
	}
	return t.Format(DisplayTimeLayout), nil
}

func parseUpdateTime(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	// Parsing with MST keeps the wall clock even for zone abbreviations
	// the runtime does not know.
	if t, err := time.Parse(UpstreamTimeLayout, text); err == nil {
		return t, nil
	}
	return dateparse.ParseStrict(text)
}
