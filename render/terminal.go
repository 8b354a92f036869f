// Package render draws a canvas to a tcell terminal screen or a PNG
// file, adapting box-drawing glyph choice to the host terminal's
// detected Unicode support.
package render

import (
	"os"
	"strings"
)

// UnicodeLevel represents the level of Unicode box-drawing support a
// terminal offers. draw.go only distinguishes UnicodeNone from
// everything else, but DetectCapabilities still reports the finer
// grade so a future renderer (rounded corners under UnicodeExtended,
// say) has something to switch on without re-deriving it.
type UnicodeLevel int

const (
	UnicodeNone     UnicodeLevel = iota // ASCII only
	UnicodeBasic                        // Basic box-drawing
	UnicodeExtended                     // Full box-drawing with rounded corners
	UnicodeFull                         // Including emoji, complex scripts
)

// TerminalCapabilities is the terminal-dependent state drawObject and
// drawLine switch on: whether box-drawing runes are safe to emit.
type TerminalCapabilities struct {
	Name         string
	UnicodeLevel UnicodeLevel
}

// DetectCapabilities detects the current terminal's Unicode support.
func DetectCapabilities() TerminalCapabilities {
	// Allow override via environment variable
	if forceMode := os.Getenv("GRIDWIRE_TERMINAL_MODE"); forceMode != "" {
		switch forceMode {
		case "ascii":
			return ForceASCII()
		case "unicode":
			return ForceUnicode()
		}
	}

	caps := TerminalCapabilities{
		Name:         "unknown",
		UnicodeLevel: UnicodeBasic, // Default to basic Unicode
	}

	// Detect specific terminals first
	if !detectSpecificTerminal(&caps) {
		// Fall back to TERM environment variable
		caps.Name = os.Getenv("TERM")
	}

	hasUTF8 := detectUTF8Locale()

	// Determine Unicode level based on terminal and locale
	if !hasUTF8 || caps.Name == "linux" || caps.Name == "dumb" {
		caps.UnicodeLevel = UnicodeNone
	} else if caps.Name == "windows-terminal" || caps.Name == "iterm2" || caps.Name == "kitty" {
		caps.UnicodeLevel = UnicodeFull
	} else if strings.Contains(caps.Name, "xterm") || caps.Name == "alacritty" {
		caps.UnicodeLevel = UnicodeExtended
	}

	// Be more conservative over SSH unless we're sure about UTF-8
	if os.Getenv("SSH_CLIENT") != "" || os.Getenv("SSH_TTY") != "" || os.Getenv("SSH_CONNECTION") != "" {
		if !hasUTF8 && caps.UnicodeLevel > UnicodeBasic {
			caps.UnicodeLevel = UnicodeBasic
		}
	}

	// Many CI environments have limited Unicode support
	if os.Getenv("CI") != "" || os.Getenv("CONTINUOUS_INTEGRATION") != "" {
		if caps.Name == "" || caps.Name == "dumb" {
			caps.UnicodeLevel = UnicodeNone
		}
	}

	return caps
}

// detectSpecificTerminal checks for specific terminal emulators that
// identify themselves through an environment variable TERM alone
// doesn't carry, and sets caps.Name/UnicodeLevel from the match.
func detectSpecificTerminal(caps *TerminalCapabilities) bool {
	if os.Getenv("WT_SESSION") != "" {
		caps.Name = "windows-terminal"
		caps.UnicodeLevel = UnicodeFull
		return true
	}

	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app":
		caps.Name = "iterm2"
		caps.UnicodeLevel = UnicodeFull
		return true
	case "Apple_Terminal":
		caps.Name = "terminal.app"
		caps.UnicodeLevel = UnicodeExtended
		return true
	}

	if os.Getenv("VTE_VERSION") != "" {
		caps.Name = "vte-based"
		caps.UnicodeLevel = UnicodeExtended
		return true
	}

	if os.Getenv("KONSOLE_VERSION") != "" {
		caps.Name = "konsole"
		caps.UnicodeLevel = UnicodeExtended
		return true
	}

	if term := os.Getenv("TERM"); term == "alacritty" {
		caps.Name = "alacritty"
		caps.UnicodeLevel = UnicodeExtended
		return true
	}

	if term := os.Getenv("TERM"); strings.HasPrefix(term, "xterm-kitty") {
		caps.Name = "kitty"
		caps.UnicodeLevel = UnicodeFull
		return true
	}

	if os.Getenv("TMUX") != "" {
		caps.Name = "tmux"
		caps.UnicodeLevel = UnicodeExtended
		return true
	}

	if term := os.Getenv("TERM"); strings.HasPrefix(term, "rxvt-unicode") {
		caps.Name = "rxvt-unicode"
		caps.UnicodeLevel = UnicodeExtended
		return true
	}

	if os.Getenv("WEZTERM_EXECUTABLE") != "" {
		caps.Name = "wezterm"
		caps.UnicodeLevel = UnicodeFull
		return true
	}

	return false
}

// detectUTF8Locale checks if the locale supports UTF-8.
func detectUTF8Locale() bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := os.Getenv(env)
		if value == "" {
			continue
		}

		// Handle C.UTF-8, en_US.UTF-8, en_US.UTF-8@euro, etc.
		parts := strings.Split(value, ".")
		if len(parts) > 1 {
			charsetPart := parts[1]
			if idx := strings.Index(charsetPart, "@"); idx != -1 {
				charsetPart = charsetPart[:idx]
			}
			if strings.EqualFold(charsetPart, "UTF-8") || strings.EqualFold(charsetPart, "UTF8") {
				return true
			}
		}

		upperValue := strings.ToUpper(value)
		if strings.Contains(upperValue, "UTF-8") || strings.Contains(upperValue, "UTF8") {
			return true
		}
	}

	return false
}

// ForceASCII returns capabilities configured for ASCII-only output.
func ForceASCII() TerminalCapabilities {
	return TerminalCapabilities{Name: "ascii", UnicodeLevel: UnicodeNone}
}

// ForceUnicode returns capabilities configured for full Unicode support.
func ForceUnicode() TerminalCapabilities {
	return TerminalCapabilities{Name: "unicode", UnicodeLevel: UnicodeFull}
}
