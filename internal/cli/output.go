package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
)

// colorEnabled reports whether output to f should carry color. Color is
// dropped when --no-color was given, when NO_COLOR is set, or when f is
// not a terminal.
func colorEnabled(f *os.File) bool {
	if globalNoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	if colorEnabled(os.Stdout) {
		fmt.Printf("%s✓%s %s\n", colorGreen, colorReset, msg)
	} else {
		fmt.Printf("✓ %s\n", msg)
	}
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	if colorEnabled(os.Stdout) {
		fmt.Printf("%s⚠%s %s\n", colorYellow, colorReset, msg)
	} else {
		fmt.Printf("⚠ %s\n", msg)
	}
}

// printErrorMsg prints an error message to stderr, even in quiet mode
func printErrorMsg(msg string) {
	if colorEnabled(os.Stderr) {
		fmt.Fprintf(os.Stderr, "%s✗%s %s\n", colorRed, colorReset, msg)
	} else {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	}
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	if colorEnabled(os.Stdout) {
		fmt.Printf("%s→%s %s\n", colorBlue, colorReset, msg)
	} else {
		fmt.Printf("→ %s\n", msg)
	}
}
