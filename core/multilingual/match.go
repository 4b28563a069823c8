package multilingual

import "golang.org/x/text/language"

// TagMapping associates an application language key with the BCP-47 tag it
// represents. Order matters: earlier entries win ties during matching, and
// the first entry is the matcher's fallback preference.
type TagMapping[T comparable] struct {
	Key T
	Tag language.Tag
}

// MatchTag selects the application language key best matching the requested
// BCP-47 tag strings, in preference order (e.g. "de-AT", "en-US;q=0.8").
// With no requested tags the first mapping wins. It returns false when
// nothing matches with any confidence or when no mappings were supplied.
//
// Matching is strictly caller-driven; this package never reads the process
// environment to guess a language.
func MatchTag[T comparable](mappings []TagMapping[T], requested ...string) (T, bool) {
	var zero T
	if len(mappings) == 0 {
		return zero, false
	}
	if len(requested) == 0 {
		return mappings[0].Key, true
	}

	tags := make([]language.Tag, len(mappings))
	for i, m := range mappings {
		tags[i] = m.Tag
	}

	matcher := language.NewMatcher(tags)
	for _, accept := range requested {
		desired, _, err := language.ParseAcceptLanguage(accept)
		if err != nil {
			continue
		}
		if _, index, conf := matcher.Match(desired...); conf != language.No {
			return mappings[index].Key, true
		}
	}
	return zero, false
}
