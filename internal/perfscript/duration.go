package perfscript

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// durationUnit maps a literal suffix to its size in milliseconds
type durationUnit struct {
	suffix string
	millis int64
}

// Checked in order: "ms" must win over "s". Case matters, "M" is minutes.
var durationUnits = []durationUnit{
	{suffix: "ms", millis: 1},
	{suffix: "s", millis: 1000},
	{suffix: "M", millis: 60 * 1000},
	{suffix: "H", millis: 60 * 60 * 1000},
}

var (
	errNegativeDuration = errors.New("duration must not be negative")
	errDurationOverflow = errors.New("duration overflows int64 milliseconds")
	errBlankDuration    = errors.New("duration is blank")
)

// ParseDuration converts an assertion timeout literal to milliseconds.
//
// Accepted forms are "<n>ms", "<n>s", "<n>M" (minutes), "<n>H" (hours) and a
// bare "<n>" meaning milliseconds. Suffixed values are not trimmed; a bare
// number may carry surrounding whitespace. Anything else, including blank
// text and negative numbers, yields an *InvalidDurationError.
func ParseDuration(value string) (int64, error) {
	for _, unit := range durationUnits {
		if strings.HasSuffix(value, unit.suffix) {
			return toMillis(value, strings.TrimSuffix(value, unit.suffix), unit.millis)
		}
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, &InvalidDurationError{Value: value, Err: errBlankDuration}
	}
	return toMillis(value, trimmed, 1)
}

func toMillis(value, digits string, factor int64) (int64, error) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &InvalidDurationError{Value: value, Err: err}
	}
	if n < 0 {
		return 0, &InvalidDurationError{Value: value, Err: errNegativeDuration}
	}
	if n > math.MaxInt64/factor {
		return 0, &InvalidDurationError{Value: value, Err: errDurationOverflow}
	}
	return n * factor, nil
}

// FormatDuration renders milliseconds using the largest unit that divides the
// value exactly, so that ParseDuration(FormatDuration(n)) == n.
func FormatDuration(millis int64) string {
	if millis <= 0 {
		return "0ms"
	}
	for i := len(durationUnits) - 1; i >= 0; i-- {
		unit := durationUnits[i]
		if millis%unit.millis == 0 {
			return strconv.FormatInt(millis/unit.millis, 10) + unit.suffix
		}
	}
	return strconv.FormatInt(millis, 10) + "ms"
}
