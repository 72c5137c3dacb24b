package gloss

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldCase uppercases text and trims surrounding whitespace. Full case
// mapping is used, so ß becomes SS. A Caser is not safe for concurrent
// use, so one is built per call.
func FoldCase(text string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(text))
}

// StripPunctuation keeps letters A-Z, digits, hyphens, apostrophes and
// whitespace. Diacritics are folded first (É becomes E) and any Unicode
// space becomes a plain space so words never run together. Apostrophes are
// kept for CollapseContractions, which removes them.
func StripPunctuation(text string) string {
	text = apostropheFolder.Replace(text)
	if folded, _, err := transform.String(diacriticFolder(), text); err == nil {
		text = folded
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '\'':
			return r
		case r >= 'a' && r <= 'z':
			return unicode.ToUpper(r)
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, text)
}

// diacriticFolder applies compatibility decomposition (ﬁ becomes FI),
// drops combining marks and recomposes.
// transform.Chain keeps state, so a new one is built per call.
func diacriticFolder() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// ElideFunctionWords removes standalone articles and be-verbs.
func ElideFunctionWords(text string) string {
	return functionWords.ReplaceAllString(text, "")
}

// CollapseContractions reduces subject contractions to the pronoun, then
// drops possessive 's and every remaining apostrophe.
func CollapseContractions(text string) string {
	for _, c := range contractions {
		text = strings.ReplaceAll(text, c.from, c.to)
	}
	text = possessive.ReplaceAllString(text, "")
	return apostropheRemover.Replace(text)
}

// Lemmatize replaces every token found in the verb table with its lemma.
// Lookup is exact; tokens are rejoined with single spaces.
func Lemmatize(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		if l, ok := verbLemmas[w]; ok {
			words[i] = l
		}
	}
	return strings.Join(words, " ")
}

// NormalizeWhitespace collapses whitespace runs to one space and trims.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
