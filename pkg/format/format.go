// Package format provides small resource-agnostic helpers shared by every
// handler: field validators, string sanitization, response stamping, and
// byte-size parsing for configuration values.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// emailPattern is deliberately permissive: anything@anything.anything with no
// whitespace or extra @. Stricter RFC 5322 matching rejects real addresses
// more often than it catches bad ones.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail reports whether s looks like an email address.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateName reports whether s is an acceptable display name (2-100 chars).
func ValidateName(s string) bool {
	return len(s) >= 2 && len(s) <= 100
}

// Sanitize trims surrounding whitespace. It performs no HTML escaping; output
// encoding is the responsibility of whoever renders the value.
func Sanitize(s string) string {
	return strings.TrimSpace(s)
}

// Timestamp returns the current time in ISO-8601/RFC 3339 form, the format
// every response envelope and stamped payload carries.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Stamp returns a copy of data with a "timestamp" key holding the current
// time in ISO-8601/RFC 3339 form. The input map is never mutated.
func Stamp(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	out["timestamp"] = Timestamp()
	return out
}

var sizePattern = regexp.MustCompile(`^(\d+)\s*(b|kb|mb)?$`)

// ParseRequestSize parses a human-friendly byte size such as "512", "64kb"
// or "10MB" into a byte count. The unit defaults to bytes when omitted.
func ParseRequestSize(s string) (int64, error) {
	matches := sizePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if matches == nil {
		return 0, fmt.Errorf("invalid size %q: expected <number>[b|kb|mb]", s)
	}

	n, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}

	switch matches[2] {
	case "kb":
		n *= 1024
	case "mb":
		n *= 1024 * 1024
	}

	return n, nil
}
