package rule_test

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/planops/ruleboard/internal/domain/rule"
	"github.com/stretchr/testify/require"
)

func TestNextRuleID_EmptyStoreStartsAtOne(t *testing.T) {
	require.Equal(t, "R0001", rule.NextRuleID(nil))
}

func TestNextRuleID_IncrementsMax(t *testing.T) {
	require.Equal(t, "R0013", rule.NextRuleID([]string{"R0003", "R0012", "R0001"}))
}

func TestNextRuleID_IgnoresNonConforming(t *testing.T) {
	// Non-conforming identifiers don't feed the max scan, but they still
	// count for collision avoidance.
	require.Equal(t, "R0002", rule.NextRuleID([]string{"R0001", "LEGACY-7", "R99999", "X0042"}))
}

func TestNextRuleID_CollisionGuard(t *testing.T) {
	// A store containing the max-derived candidate forces the increment loop.
	got := rule.NextRuleID([]string{"R0005", "junk-R0006", "R0006"})
	require.Equal(t, "R0007", got)
}

func TestNextRuleID_SequenceIsPairwiseDistinct(t *testing.T) {
	pattern := regexp.MustCompile(`^R\d{4}$`)
	existing := []string{"weird", "R0002"}
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		id := rule.NextRuleID(existing)
		require.Regexp(t, pattern, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		existing = append(existing, id)
	}
}

func TestNextVersion(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"2.3", "3.0"},
		{"0.1", "1.0"},
		{"1.0", "2.0"},
		{"", "1.0"},
		{"garbage", "1.0"},
		{" 4.9 ", "5.0"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, rule.NextVersion(tc.in), fmt.Sprintf("NextVersion(%q)", tc.in))
	}
}
