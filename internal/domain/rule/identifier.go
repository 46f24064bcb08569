package rule

import (
	"fmt"
	"regexp"
	"strconv"
)

var ruleIDPattern = regexp.MustCompile(`^R(\d{4})$`)

// NextRuleID generates the next business identifier of the form R0001.
// It takes the maximum numeric suffix among conforming identifiers and
// increments it, ignoring identifiers that don't match the pattern. The
// loop afterwards guards against collision with any existing identifier,
// conforming or not; the max scan should make it unnecessary but both
// checks are kept.
func NextRuleID(existing []string) string {
	used := make(map[string]struct{}, len(existing))
	max := 0
	for _, id := range existing {
		used[id] = struct{}{}
		m := ruleIDPattern.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	n := max + 1
	candidate := fmt.Sprintf("R%04d", n)
	for {
		if _, taken := used[candidate]; !taken {
			return candidate
		}
		n++
		candidate = fmt.Sprintf("R%04d", n)
	}
}
