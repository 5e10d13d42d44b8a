package naming

import "path/filepath"

// OutputPrefix is prepended to the original filename of every output.
const OutputPrefix = "edited_"

// OutputPath builds the output file path for an input filename:
//
//	<outputDir>/edited_<filename>
//
// outputDir is sanitized; filename is used verbatim.
func OutputPath(outputDir, filename string) string {
	return filepath.Join(SanitizePath(outputDir), OutputPrefix+filename)
}
