// Package multilingual provides the translation mapping type and the
// resolution rule shared by every text-bearing node in the library.
//
// A Translations map associates an application-defined language key with the
// literal string for that language. The map may be partial: a missing key is
// a normal, expected state, never an error. Resolution follows a two-level
// fallback so the UI never renders a placeholder:
//
//	selected language -> default language -> empty string
//
// # Basic Usage
//
// The language key is a generic, comparable type supplied by the embedding
// application, typically an enumerated constant:
//
//	type Lang int
//
//	const (
//		English Lang = iota
//		German
//	)
//
//	greeting := multilingual.Translations[Lang]{
//		English: "Hello",
//		German:  "Guten Tag",
//	}
//
//	sel := German
//	text := multilingual.Resolve(greeting, English, &sel)
//	// Output: "Guten Tag"
//
// A nil selected language falls back to the default language:
//
//	text = multilingual.Resolve(greeting, English, nil)
//	// Output: "Hello"
//
// # Tag Matching
//
// MatchTag maps caller-supplied BCP-47 language tags onto the application's
// key type. It is strictly caller-invoked; the package never inspects the
// process environment:
//
//	key, ok := multilingual.MatchTag([]multilingual.TagMapping[Lang]{
//		{Key: English, Tag: language.English},
//		{Key: German, Tag: language.German},
//	}, "de-AT", "en")
//	// key == German, ok == true
package multilingual
