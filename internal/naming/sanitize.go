package naming

import "strings"

// SanitizePath removes literal double-quote characters anywhere in raw and
// trims leading/trailing whitespace. No other transformation is applied:
// slashes, escapes and relative segments are left as-is.
func SanitizePath(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
}
