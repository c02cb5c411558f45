// Package icons maps configured action icons onto terminal glyphs using
// Nerd Fonts, with plain-character fallbacks for terminals without them.
package icons

import (
	"os"
	"strings"
	"unicode"
)

// Icon represents an icon with Nerd Font and fallback options
type Icon struct {
	NerdFont string
	Fallback string
}

// Symbolic icon names understood by the launcher. These mirror the
// freedesktop names commonly used for session actions.
var symbolic = map[string]Icon{
	"system-lock-screen": {
		NerdFont: "", // padlock
		Fallback: "⊠",
	},
	"system-log-out": {
		NerdFont: "", // sign-out arrow
		Fallback: "↪",
	},
	"system-suspend": {
		NerdFont: "", // crescent moon
		Fallback: "☾",
	},
	"system-suspend-hibernate": {
		NerdFont: "", // snowflake
		Fallback: "❄",
	},
	"system-reboot": {
		NerdFont: "", // circular arrows
		Fallback: "↻",
	},
	"system-shutdown": {
		NerdFont: "", // power symbol
		Fallback: "⏻",
	},
}

// ImageFile is the generic glyph shown for icon values that point at an
// existing image file on disk. Terminal cells cannot render the image itself.
var ImageFile = Icon{
	NerdFont: "", // framed picture
	Fallback: "▣",
}

var useNerdFonts *bool

// hasNerdFonts detects if Nerd Fonts are likely available
func hasNerdFonts() bool {
	if useNerdFonts != nil {
		return *useNerdFonts
	}

	// Check common environment variables that indicate Nerd Font usage
	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	term := strings.ToLower(os.Getenv("TERM"))

	// Common terminals/configs that often use Nerd Fonts
	nerdFontTerms := []string{
		"alacritty", "kitty", "wezterm", "iterm", "hyper", "ghostty",
		"tmux-256color", "xterm-256color", "xterm-ghostty",
	}

	result := false
	for _, nfTerm := range nerdFontTerms {
		if strings.Contains(termProgram, nfTerm) || strings.Contains(term, nfTerm) {
			result = true
			break
		}
	}

	// Cache the result
	useNerdFonts = &result
	return result
}

// Get returns the appropriate icon string based on Nerd Font availability
func (i Icon) Get() string {
	if hasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// SetNerdFonts manually overrides Nerd Font detection
func SetNerdFonts(enabled bool) {
	useNerdFonts = &enabled
}

// IsFilePath reports whether an icon value names an image file rather than
// a symbolic icon. Paths contain a separator or an extension dot.
func IsFilePath(icon string) bool {
	return strings.ContainsAny(icon, "/.")
}

// Resolve returns the glyph for an action button and whether it is the
// first-letter fallback. File paths that exist get a generic image glyph;
// missing files and unknown symbolic names degrade to the fallback.
func Resolve(icon, name string) (string, bool) {
	if icon != "" {
		if IsFilePath(icon) {
			if _, err := os.Stat(icon); err == nil {
				return ImageFile.Get(), false
			}
			return FallbackGlyph(name), true
		}
		if i, ok := symbolic[icon]; ok {
			return i.Get(), false
		}
	}
	return FallbackGlyph(name), true
}

// FallbackGlyph is the uppercased first character of the action name.
func FallbackGlyph(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return "?"
}
