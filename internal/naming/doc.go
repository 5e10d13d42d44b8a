// Package naming provides path sanitization for user-supplied paths and the
// output naming convention for watermarked copies.
//
//   - SanitizePath(raw) strips every double quote and surrounding whitespace,
//     which is what a path pasted into a terminal prompt usually carries.
//   - OutputPath(outputDir, filename) places "edited_<filename>" in outputDir.
//   - OutputClaims detects two inputs that end up writing the same file once
//     their output paths are sanitized.
package naming
