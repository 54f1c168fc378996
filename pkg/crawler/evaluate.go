package crawler

import "strings"

// notification reasons reported by Evaluate
const (
	ReasonChanged = "changed"
	ReasonKeyword = "keyword"
)

// Decision is the outcome of evaluating a crawl result against a target's
// alert configuration
type Decision struct {
	Notify  bool
	Reasons []string
}

// Evaluate decides whether a new value warrants a notification. Pure and
// deterministic, no I/O.
//
// The "changed" reason fires when change alerts are enabled and the value
// differs from the previous one. An absent previous value never counts as a
// change: a target's first successful crawl has nothing to compare against.
// The "keyword" reason fires when the keyword is non-blank and the new value
// contains it case-insensitively.
func Evaluate(prev, cur *string, keyword string, notifyOnChange bool) Decision {
	var d Decision

	if notifyOnChange && prev != nil && !equalValues(prev, cur) {
		d.Reasons = append(d.Reasons, ReasonChanged)
	}

	if kw := strings.TrimSpace(keyword); kw != "" && cur != nil &&
		strings.Contains(strings.ToLower(*cur), strings.ToLower(kw)) {
		d.Reasons = append(d.Reasons, ReasonKeyword)
	}

	d.Notify = len(d.Reasons) > 0
	return d
}

// equalValues compares two optional values; nil equals only nil
func equalValues(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
