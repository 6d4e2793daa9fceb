// ABOUTME: Copies item text to the clipboard via OSC 52 or pbcopy/xclip
// ABOUTME: OSC 52 goes through the terminal itself and so also works over SSH

package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// OSC52 returns the escape sequence that sets the system clipboard to
// text on terminals that support it.
func OSC52(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
}

// WriteOSC52 writes the OSC 52 sequence for text to w, normally the
// terminal.
func WriteOSC52(w io.Writer, text string) error {
	_, err := io.WriteString(w, OSC52(text))
	return err
}

// Write copies text to the system clipboard. Empty text is a no-op.
func Write(text string) error {
	if text == "" {
		return nil
	}
	cmd, args := clipboardCmd()
	if cmd == "" {
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}

	c := exec.Command(cmd, args...)
	c.Stdin = strings.NewReader(text)
	return c.Run()
}

// clipboardCmd returns the clipboard command and arguments for the current OS.
func clipboardCmd() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "pbcopy", nil
	case "linux":
		return "xclip", []string{"-selection", "clipboard"}
	default:
		return "", nil
	}
}
