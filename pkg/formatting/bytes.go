// Package formatting converts between human-readable and machine values:
// byte sizes for configuration, and JSON recovered from model output.
package formatting

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidByteSize is returned by ParseBytes for input it cannot read.
var ErrInvalidByteSize = errors.New("invalid byte size")

const unit = 1024

var (
	sizeSuffixes = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}
	sizePattern  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([A-Za-z]*)$`)
)

// FormatBytes renders n with the largest base-1024 suffix that keeps the
// value at or above one, using precision decimal places.
func FormatBytes(n int64, precision int) string {
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	precision = max(precision, 0)

	v := float64(n)
	i := 0
	for v >= unit && i < len(sizeSuffixes)-1 {
		v /= unit
		i++
	}
	return strconv.FormatFloat(v, 'f', precision, 64) + " " + sizeSuffixes[i]
}

// ParseBytes reads sizes such as "512", "64KB", "1 mb" or "1.5GiB". Suffixes
// are base-1024 and case-insensitive; a bare number is bytes.
func ParseBytes(s string) (int64, error) {
	m := sizePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidByteSize, s)
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidByteSize, s)
	}

	suffix := strings.ToUpper(m[2])
	suffix = strings.Replace(suffix, "IB", "B", 1)
	if len(suffix) == 1 && suffix != "B" {
		suffix += "B"
	}
	if suffix == "" {
		suffix = "B"
	}

	for i, known := range sizeSuffixes {
		if suffix == known {
			for range i {
				v *= unit
			}
			return int64(v), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidByteSize, m[2])
}
