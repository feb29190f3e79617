package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/desertwitch/nest/internal/value"
)

// numberFromLiteral applies the numeric policy to a decimal number literal:
// an unsigned integer becomes Uint, a signed one Int, anything else (a
// fraction, an exponent, or an integer out of 64-bit range) Float.
func numberFromLiteral(lit string) (value.Value, error) {
	if !strings.ContainsAny(lit, ".eE") {
		if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
			return value.Uint(u), nil
		}
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return value.Int(i), nil
		}
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !isRangeError(err) {
		return value.Value{}, fmt.Errorf("(codec-number) invalid number %q: %w", lit, err)
	}

	return value.Float(f), nil
}

// numberFromInt64 applies the numeric policy to a native signed integer.
func numberFromInt64(i int64) value.Value {
	if i >= 0 {
		return value.Uint(uint64(i))
	}

	return value.Int(i)
}

// formatFloat renders a finite float so that reading it back yields a float
// again, i.e. it always has a decimal point or an exponent.
func formatFloat(f float64) string {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}

	s := strconv.FormatFloat(f, format, -1, 64)

	if format == 'e' {
		// 1e-07 -> 1e-7
		if n := len(s); n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}

	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

func checkFinite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: non-finite float %v", ErrUnsupportedValue, f)
	}

	return nil
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError) //nolint:errorlint
	if !ok {
		return false
	}

	return numErr.Err == strconv.ErrRange //nolint:errorlint
}
