package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

// colorEnabled is false when stdout is redirected
var colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))

// SetColorEnabled overrides terminal detection
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func colorize(text string, codes ...string) string {
	if !colorEnabled {
		return text
	}
	return strings.Join(codes, "") + text + ColorReset
}

// GetDisplayWidth returns the terminal cell width of text
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads s with spaces to width display cells
func PadString(s string, width int, leftAlign bool) string {
	w := GetDisplayWidth(s)
	if w >= width {
		return s
	}
	pad := strings.Repeat(" ", width-w)
	if leftAlign {
		return s + pad
	}
	return pad + s
}

// FormatHeaderTitle formats main header titles (Cyan + Bold)
func FormatHeaderTitle(title string) string {
	return colorize(title, ColorBold, ColorCyan)
}

// FormatSuccess formats a completion message (Green)
func FormatSuccess(msg string) string {
	return colorize(msg, ColorGreen)
}

// FormatWarning formats a warning message (Yellow)
func FormatWarning(msg string) string {
	return colorize(msg, ColorYellow)
}

// FormatDuration renders seconds as 1h 5m 3s
func FormatDuration(seconds float64) string {
	total := int(seconds)
	h, m, s := total/3600, (total%3600)/60, total%60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
