package gloss

import (
	"regexp"
	"strings"
)

// functionWords matches articles and be-verbs as whole tokens. The text is
// already restricted to [A-Z0-9'-] and whitespace when this runs, so the
// ASCII \b of RE2 is a faithful word boundary. An apostrophe is also a
// boundary, so the A of A'S is elided.
var functionWords = regexp.MustCompile(`\b(?:A|AN|THE|AM|IS|ARE|WAS|WERE|BE|BEEN|BEING)\b`)

// possessive matches an 's left at the end of a word.
var possessive = regexp.MustCompile(`'S\b`)

// contractions are applied in this order as literal replacements.
var contractions = []struct{ from, to string }{
	{"I'M", "I"},
	{"YOU'RE", "YOU"},
	{"HE'S", "HE"},
	{"SHE'S", "SHE"},
	{"IT'S", "IT"},
	{"WE'RE", "WE"},
	{"THEY'RE", "THEY"},
}

var apostropheRemover = strings.NewReplacer("'", "")

// apostropheFolder maps the typographic quotes speech engines emit to '.
var apostropheFolder = strings.NewReplacer("\u2019", "'", "\u2018", "'", "\u02bc", "'")

// verbLemmas maps inflected forms to their lemma.
var verbLemmas = map[string]string{
	"WENT":  "GO",
	"GOING": "GO",
	"GOES":  "GO",
	"GONE":  "GO",

	"ATE":    "EAT",
	"EATING": "EAT",
	"EATS":   "EAT",
	"EATEN":  "EAT",

	"SAW":    "SEE",
	"SEEN":   "SEE",
	"SEEING": "SEE",
	"SEES":   "SEE",

	"DID":   "DO",
	"DOING": "DO",
	"DOES":  "DO",
	"DONE":  "DO",

	"HAD":    "HAVE",
	"HAS":    "HAVE",
	"HAVING": "HAVE",

	"CAME":   "COME",
	"COMING": "COME",
	"COMES":  "COME",

	"BOUGHT": "BUY",
	"BUYING": "BUY",
	"BUYS":   "BUY",
}

// Lemma returns the base form of an inflected verb in the closed table.
func Lemma(token string) (string, bool) {
	l, ok := verbLemmas[token]
	return l, ok
}
