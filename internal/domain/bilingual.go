package domain

// LocaleEN and LocaleFR are the two resident-facing locales the platform
// supports. Every locale string that reaches the domain layer has already
// been narrowed to one of these two by the i18n package.
const (
	LocaleEN = "en"
	LocaleFR = "fr"
)

// Bilingual is an {en, fr} text pair used for all resident-facing strings.
type Bilingual struct {
	En string `json:"en"`
	Fr string `json:"fr"`
}

// Localize resolves the pair for the requested locale using the fixed
// fallback chain: requested locale → English → French → fallback.
// The chain is deliberately the single place this rule lives; call sites
// must not reimplement it.
func (b Bilingual) Localize(locale, fallback string) string {
	if locale == LocaleFR && b.Fr != "" {
		return b.Fr
	}
	if locale == LocaleEN && b.En != "" {
		return b.En
	}
	if b.En != "" {
		return b.En
	}
	if b.Fr != "" {
		return b.Fr
	}
	return fallback
}

// IsZero reports whether both sides of the pair are empty.
func (b Bilingual) IsZero() bool {
	return b.En == "" && b.Fr == ""
}

// BilingualList is an {en, fr} pair of string lists, used for accepted-item
// lists and placement bullet points.
type BilingualList struct {
	En []string `json:"en"`
	Fr []string `json:"fr"`
}

// Localize resolves the list for the requested locale with the same fallback
// chain as Bilingual.Localize. An empty list never satisfies the chain.
func (b BilingualList) Localize(locale string) []string {
	if locale == LocaleFR && len(b.Fr) > 0 {
		return b.Fr
	}
	if len(b.En) > 0 {
		return b.En
	}
	return b.Fr
}
