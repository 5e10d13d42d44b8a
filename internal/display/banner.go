package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))

const bannerArt = `                 _                                 _
__      ____ _| |_ ___ _ __ _ __ ___   __ _ _ __| | _____ _ __
\ \ /\ / / _` + "`" + ` | __/ _ \ '__| '_ ` + "`" + ` _ \ / _` + "`" + ` | '__| |/ / _ \ '__|
 \ V  V / (_| | ||  __/ |  | | | | | | (_| | |  |   <  __/ |
  \_/\_/ \__,_|\__\___|_|  |_| |_| |_|\__,_|_|  |_|\_\___|_|`

// PrintBanner writes the ASCII art banner and version line to w. Colors
// follow the lipgloss profile chosen by term.Configure.
func PrintBanner(w io.Writer, version string) {
	fmt.Fprintln(w, bannerStyle.Render(bannerArt))
	fmt.Fprintln(w, "  v"+version)
}
