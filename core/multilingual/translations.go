package multilingual

// Translations maps an application-defined language key to the literal
// string for that language. The map may be partial; absence of a key is a
// valid state handled by the resolution fallback, not an error.
type Translations[T comparable] map[T]string

// Resolve returns the string for the selected language, falling back to the
// default language and finally to the empty string. The selected language is
// nullable; nil means "no explicit selection" and skips straight to the
// default.
//
// Resolution is a pure function of its inputs and is applied identically by
// every text-bearing node, including accessibility label mappings.
func Resolve[T comparable](m Translations[T], defaultLang T, selected *T) string {
	if selected != nil {
		if s, ok := m[*selected]; ok {
			return s
		}
	}
	return m[defaultLang]
}

// ResolveOptional behaves like Resolve but reports whether the mapping was
// present at all. A nil mapping yields ("", false); a non-nil mapping that
// lacks both the selected and default keys yields ("", true). Span
// accessibility labels use this distinction: an absent label mapping lowers
// to no label, not to an empty one.
func ResolveOptional[T comparable](m Translations[T], defaultLang T, selected *T) (string, bool) {
	if m == nil {
		return "", false
	}
	return Resolve(m, defaultLang, selected), true
}
