package events

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Event is a stored event. ID is assigned by the store on insert and is
// empty until then.
type Event struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Date        time.Time
	CreatedAt   time.Time
}

// EventInput carries the createEvent arguments. Price is typed as any
// because callers may send a number or a numeric string; CoercePrice
// normalizes it. All fields are required but otherwise unvalidated.
type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       any    `json:"price" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

// CoercePrice converts a number-like value to float64. Malformed input
// coerces to NaN rather than failing, matching the loose numeric
// conversion the API has always applied.
func CoercePrice(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return math.NaN()
		}
		return parsed
	default:
		return math.NaN()
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate converts a date-like string to a UTC timestamp. Unparseable
// input coerces to the zero time; it is persisted as-is, not rejected.
func ParseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
