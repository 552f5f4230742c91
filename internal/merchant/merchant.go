// Package merchant derives merchant bucket names from transaction
// descriptions.
package merchant

import "strings"

// Extract returns the merchant name for a description: the text before the
// first digit, trimmed. A description with no digits is itself the merchant
// name. This is a bucketing heuristic, not entity resolution — descriptions
// with different leading text land in different buckets, and dashboards
// depend on today's bucket boundaries staying put.
func Extract(description string) string {
	for i, r := range description {
		if r >= '0' && r <= '9' {
			return strings.TrimSpace(description[:i])
		}
	}
	return strings.TrimSpace(description)
}
