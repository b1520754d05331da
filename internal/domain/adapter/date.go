package adapter

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// DateLayout is the legacy DD-MM-YYYY representation.
const DateLayout = "02-01-2006"

var zonedLayouts = []string{
	time.RFC3339,
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	DateLayout,
}

// FormatDate renders a timestamp (epoch milliseconds), time.Time or date string
// as DD-MM-YYYY in the local time zone. Falsy or unparseable input yields "".
func FormatDate(v any) string {
	if !truthy(v) {
		return ""
	}

	t, ok := parseDate(v)
	if !ok {
		return ""
	}
	return t.Local().Format(DateLayout)
}

func parseDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	case string:
		return parseDateString(strings.TrimSpace(t))
	case json.Number:
		ms, err := t.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return fromMillis(ms)
	}

	ms, err := cast.ToFloat64E(v)
	if err != nil {
		return time.Time{}, false
	}
	return fromMillis(ms)
}

// maxMillis keeps epoch milliseconds inside the int64 range.
const maxMillis = 1 << 62

func fromMillis(ms float64) (time.Time, bool) {
	if !finite(ms) || ms > maxMillis || ms < -maxMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

func parseDateString(s string) (time.Time, bool) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
