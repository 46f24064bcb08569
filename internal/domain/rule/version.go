package rule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NextVersion computes the version assigned on publish: the next integer
// major version with the fractional part reset, e.g. "2.3" -> "3.0".
// Unparsable versions are treated as 0.0, so a blank version publishes as
// "1.0". Both the bulk publish path and the inline checkbox path share this
// single implementation.
func NextVersion(current string) string {
	major := 0
	if f, err := strconv.ParseFloat(strings.TrimSpace(current), 64); err == nil {
		major = int(math.Floor(f))
	}
	return fmt.Sprintf("%d.0", major+1)
}
