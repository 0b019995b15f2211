// Package classify maps dispatch failures to canned user guidance.
//
// Classification is cosmetic: it never affects control flow, only which
// static help text is shown alongside the generic failure message.
package classify

import "strings"

// Category identifies one of the four guidance buckets
type Category string

const (
	CategoryAPI          Category = "api"
	CategoryConnectivity Category = "connectivity"
	CategoryResource     Category = "resource"
	CategoryGeneric      Category = "generic"
)

// Classify selects exactly one category for the given error by
// case-insensitive substring match against its message. Priority order
// is fixed: api/key, then timeout/connection, then memory/resource,
// then generic. The matching is intentionally naive — a connection
// error whose message mentions "key" classifies as API — because the
// result is purely advisory.
func Classify(err error) Category {
	if err == nil {
		return CategoryGeneric
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "api") || strings.Contains(msg, "key"):
		return CategoryAPI
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "connection"):
		return CategoryConnectivity
	case strings.Contains(msg, "memory") || strings.Contains(msg, "resource"):
		return CategoryResource
	default:
		return CategoryGeneric
	}
}

// Guidance returns the static help text for a category
func Guidance(c Category) string {
	switch c {
	case CategoryAPI:
		return "Check your API configuration: make sure the provider API key is set (e.g., OPENAI_API_KEY or ANTHROPIC_API_KEY) and valid."
	case CategoryConnectivity:
		return "Check your network connection and make sure the provider endpoint is reachable, then try again."
	case CategoryResource:
		return "The system appears to be low on resources. Close other applications or reduce the request size, then try again."
	default:
		return "Please try again or check your configuration."
	}
}
