// ABOUTME: Presets the lipgloss background before Bubble Tea's init() can query the terminal
// ABOUTME: PI_VLIST_BACKGROUND=light|dark overrides the dark default; import with _ first

package termfix

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EnvBackground names the variable that selects the background preset.
const EnvBackground = "PI_VLIST_BACKGROUND"

func init() {
	// Setting the background explicitly skips the OSC 10/11 query that
	// would otherwise race the raw-mode reader. This package must not
	// import bubbletea so this init runs first.
	lipgloss.SetHasDarkBackground(IsDark(os.Getenv(EnvBackground)))
}

// IsDark maps a background preset to lipgloss' dark flag. Anything but
// "light" is dark.
func IsDark(preset string) bool {
	return !strings.EqualFold(strings.TrimSpace(preset), "light")
}
