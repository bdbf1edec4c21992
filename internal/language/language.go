package language

import "strings"

// Language describes one supported content language. Content language is
// what the learner is studying, distinct from the UI display language.
type Language struct {
	// Code is the canonical identifier, e.g. "japanese".
	Code string

	// Name is the English name.
	Name string

	// ISO is the two-letter ISO 639-1 code.
	ISO string

	// Logographic marks scripts where characters, not words, are the unit
	// of text length (Japanese kanji, Chinese hanzi).
	Logographic bool
}

// registry is the supported language set. Mirrors the product's shared
// content-language config; extend here when a new language launches.
var registry = []Language{
	{Code: "japanese", Name: "Japanese", ISO: "ja", Logographic: true},
	{Code: "chinese", Name: "Chinese", ISO: "zh", Logographic: true},
	{Code: "english", Name: "English", ISO: "en"},
	{Code: "french", Name: "French", ISO: "fr"},
	{Code: "spanish", Name: "Spanish", ISO: "es"},
	{Code: "german", Name: "German", ISO: "de"},
	{Code: "korean", Name: "Korean", ISO: "ko"},
}

// Default is the fallback content language.
const Default = "english"

// Get returns the language for code, matching case-insensitively.
// The second return reports whether the code is supported.
func Get(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range registry {
		if l.Code == code || l.ISO == code {
			return l, true
		}
	}
	return Language{}, false
}

// Normalize maps a code or ISO alias to the canonical language code.
// Unknown codes pass through lowercased and trimmed.
func Normalize(code string) string {
	if l, ok := Get(code); ok {
		return l.Code
	}
	return strings.ToLower(strings.TrimSpace(code))
}

// IsValid reports whether code names a supported language.
func IsValid(code string) bool {
	_, ok := Get(code)
	return ok
}

// IsLogographic reports whether the language's script counts characters
// rather than words. Unknown codes are treated as alphabetic.
func IsLogographic(code string) bool {
	l, ok := Get(code)
	return ok && l.Logographic
}

// All returns the supported languages in registration order.
func All() []Language {
	out := make([]Language, len(registry))
	copy(out, registry)
	return out
}
