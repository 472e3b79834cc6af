// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Write copies text to the system clipboard.
func Write(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		}
	case "windows":
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		// Try xclip as fallback
		cmd = exec.Command("xclip", "-selection", "clipboard")
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// WriteImage copies a PNG file to the system clipboard.
func WriteImage(path string) error {
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf(`set the clipboard to (read (POSIX file %q) as «class PNGf»)`, path)
		return exec.Command("osascript", "-e", script).Run()
	case "linux":
		if _, err := exec.LookPath("xclip"); err != nil {
			return fmt.Errorf("xclip not found, cannot copy images")
		}
		return exec.Command("xclip", "-selection", "clipboard", "-t", "image/png", "-i", path).Run()
	default:
		return fmt.Errorf("image clipboard not supported on %s", runtime.GOOS)
	}
}

// Available checks if clipboard functionality is available.
func Available() bool {
	switch runtime.GOOS {
	case "darwin":
		_, err := exec.LookPath("pbcopy")
		return err == nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		_, err := exec.LookPath("xsel")
		return err == nil
	case "windows":
		return true // clip is always available on Windows
	default:
		return false
	}
}
