package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color scheme for locate
var (
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow)
	Info    = color.New(color.FgCyan)

	Muted = color.New(color.Faint)
	Bold  = color.New(color.Bold)

	// Status indicators
	CheckMark = color.GreenString("✓")
	Arrow     = color.CyanString("→")
	Bullet    = color.HiBlackString("•")
)

// InitColors initializes color settings based on environment and the
// configured mode ("auto", "always" or "never")
func InitColors(mode string) {
	switch mode {
	case "never":
		color.NoColor = true
		return
	case "always":
		color.NoColor = false
		return
	}

	// Respect NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	// Respect TERM environment variable
	if os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}
}

// PrintHeader prints a section header
func PrintHeader(w io.Writer, text string) {
	fmt.Fprintln(w)
	Bold.Fprintln(w, text)
	Muted.Fprintln(w, "────────────────────────────────────────")
}

// PrintKeyValue prints a key-value pair with color
func PrintKeyValue(w io.Writer, key, value string) {
	Bold.Fprintf(w, "%s: ", key)
	fmt.Fprintln(w, value)
}

// PrintInfo prints an info message
func PrintInfo(w io.Writer, format string, args ...interface{}) {
	Info.Fprintf(w, "%s %s\n", Arrow, fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, format string, args ...interface{}) {
	Warning.Fprintf(w, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// PrintList prints a bulleted list
func PrintList(w io.Writer, items []string) {
	for _, item := range items {
		fmt.Fprintf(w, "  %s %s\n", Bullet, item)
	}
}

// DisableColors disables all color output
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables color output
func EnableColors() {
	color.NoColor = false
}

// AreColorsEnabled returns whether colors are currently enabled
func AreColorsEnabled() bool {
	return !color.NoColor
}
