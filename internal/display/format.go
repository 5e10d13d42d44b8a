// Package display holds presentation helpers: the startup banner and
// human-readable sizes for the batch summary.
package display

import (
	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable IEC size ("512 B", "1.5 KiB",
// "700 MiB"). Negative values are shown as "0 B".
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatBytesWithSign prefixes with + or - for delta display (e.g. "- 1.2 GiB").
func FormatBytesWithSign(bytes int64) string {
	sign := ""
	if bytes > 0 {
		sign = "+ "
	} else if bytes < 0 {
		sign = "- "
		bytes = -bytes
	}
	return sign + FormatBytes(bytes)
}

// FormatBitRate returns an SI bit rate label (e.g. "800 kbps", "1.2 Mbps").
func FormatBitRate(bps int64) string {
	return humanize.SIWithDigits(float64(bps), 1, "bps")
}
