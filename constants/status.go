package constants

import "strings"

// Status tags stored in pages.left_source_v2. The tag is the only signal the
// batch stages use to decide whether a page still needs processing:
//
//	NULL                  -> not yet processed
//	"llm:v2:<model>"      -> extraction succeeded with <model>
//	"llm_error_v2:<kind>" -> terminal extraction failure of <kind>
const (
	successTagPrefix = "llm:v2:"

	// ErrorTagPrefix marks terminal failures; exported so the repository can
	// match it in a prefix query when resetting.
	ErrorTagPrefix = "llm_error_v2:"
)

// SuccessTag returns the status tag recorded after a successful extraction.
func SuccessTag(model string) string {
	return successTagPrefix + model
}

// ErrorTag returns the status tag recorded after retries are exhausted.
func ErrorTag(kind string) string {
	return ErrorTagPrefix + kind
}

// IsErrorTag reports whether tag marks a terminal extraction failure.
// Error-tagged pages may be re-enqueued by resetting the tag to NULL.
func IsErrorTag(tag string) bool {
	return strings.HasPrefix(tag, ErrorTagPrefix)
}

// IsSuccessTag reports whether tag marks a completed extraction.
func IsSuccessTag(tag string) bool {
	return strings.HasPrefix(tag, successTagPrefix)
}
