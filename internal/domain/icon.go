package domain

// Icon is a resolved service icon: the token stored on the service and the glyph clients render
type Icon struct {
	Token string
	Glyph string
}

// Icon tokens
const (
	IconScissors   = "Scissors"
	IconGem        = "Gem"
	IconHand       = "Hand"
	IconSparkles   = "Sparkles"
	IconFootprints = "Footprints"
)

var iconRegistry = map[string]string{
	IconScissors:   "cut",
	IconGem:        "bridal",
	IconHand:       "manicure",
	IconSparkles:   "facial",
	IconFootprints: "pedicure",
}

// DefaultIcon is used for any unrecognized token
var DefaultIcon = Icon{Token: IconHand, Glyph: "manicure"}

// ResolveIcon maps an icon token to its glyph, falling back to DefaultIcon
func ResolveIcon(token string) Icon {
	glyph, ok := iconRegistry[token]
	if !ok {
		return DefaultIcon
	}
	return Icon{Token: token, Glyph: glyph}
}

// IsKnownIcon reports whether token is in the registry
func IsKnownIcon(token string) bool {
	_, ok := iconRegistry[token]
	return ok
}

// IconTokens returns the registry tokens in display order
func IconTokens() []string {
	return []string{IconScissors, IconGem, IconHand, IconSparkles, IconFootprints}
}
