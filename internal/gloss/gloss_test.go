package gloss

import (
	"regexp"
	"strings"
	"sync"
	"testing"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \t\n  ", ""},
		{"punctuation only", "!!! ??? ...", ""},
		{"copula and article", "I am going to the store", "I GO TO STORE"},
		{"contraction and article", "She's eating an apple", "SHE EAT APPLE"},
		{"plural contraction", "They're buying cars", "THEY BUY CARS"},
		{"past tense", "We went to the park yesterday.", "WE GO TO PARK YESTERDAY"},
		{"possessive", "John's dog ate the bone", "JOHN DOG EAT BONE"},
		{"it's with hyphen compound", "It's a well-known fact", "IT WELL-KNOWN FACT"},
		{"i'm", "I'm done", "I DO"},
		{"perfect progressive", "He has been eating", "HE HAVE EAT"},
		{"you're", "You're coming, right?", "YOU COME RIGHT"},
		{"we're", "We're seeing it", "WE SEE IT"},
		{"curly apostrophe", "They\u2019re coming", "THEY COME"},
		{"substrings untouched", "Isabel is in the theater", "ISABEL IN THEATER"},
		{"only articles", "the a an", ""},
		{"exact lemma lookup", "goings wentworth", "GOINGS WENTWORTH"},
		{"diacritics folded", "Café naïve", "CAFE NAIVE"},
		{"sharp s", "Straße", "STRASSE"},
		{"ligature", "\ufb01ne", "FINE"},
		// ' is a regexp word boundary, so an article before 'S is elided
		{"apostrophe bounds article", "straight A's", "STRAIGHT"},
		{"apostrophe bounds be-verb", "be's", ""},
		{"digits kept", "I bought 3 apples", "I BUY 3 APPLES"},
		{"non-breaking space", "dog\u00a0ate", "DOG EAT"},
		// '-' is a word boundary for elision, so the A of A-FRAME is dropped.
		{"hyphen boundary", "A-frame", "-FRAME"},
		{"underscore removed", "snake_case", "SNAKECASE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transform(tt.input); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

var glossAlphabet = regexp.MustCompile(`^[A-Z0-9 -]*$`)

func TestTransformOutputShape(t *testing.T) {
	inputs := []string{
		"",
		"Hello, world!",
		"  leading and trailing  ",
		"tabs\tand\nnewlines\r\nmixed",
		"Don't you think it's O'Brien's?",
		"emoji 🎉 and symbols © ® ™",
		"Ünïcödé ßtraße",
		"under_score and $money$ 100%",
		"'''",
		"- - -",
		"a - the - is",
		"‘quoted’ “double”",
		"日本語 text",
	}

	for _, in := range inputs {
		got := Transform(in)
		if !glossAlphabet.MatchString(got) {
			t.Errorf("Transform(%q) = %q contains characters outside [A-Z0-9 -]", in, got)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("Transform(%q) = %q contains a double space", in, got)
		}
		if got != strings.TrimSpace(got) {
			t.Errorf("Transform(%q) = %q has leading or trailing space", in, got)
		}
	}
}

// A second pass is not guaranteed to be a no-op. These cases document the
// actual behaviour.
func TestTransformSecondPass(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		first  string
		second string
	}{
		{"stable sentence", "She's eating an apple", "SHE EAT APPLE", "SHE EAT APPLE"},
		{"stable lemma", "I went", "I GO", "I GO"},
		{"apostrophe forms an article", "t'he dog", "THE DOG", "DOG"},
		{"apostrophe forms a be-verb", "b'e quick", "BE QUICK", "QUICK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Transform(tt.input)
			if first != tt.first {
				t.Fatalf("first pass = %q, want %q", first, tt.first)
			}
			if second := Transform(first); second != tt.second {
				t.Errorf("second pass = %q, want %q", second, tt.second)
			}
		})
	}
}

func TestStageOrderMatters(t *testing.T) {
	swapped := NewWithStages(
		FoldCase,
		StripPunctuation,
		CollapseContractions,
		ElideFunctionWords,
		Lemmatize,
		NormalizeWhitespace,
	)

	input := "t'he dog"
	if got := Transform(input); got != "THE DOG" {
		t.Errorf("default order = %q, want %q", got, "THE DOG")
	}
	if got := swapped.Transform(input); got != "DOG" {
		t.Errorf("swapped order = %q, want %q", got, "DOG")
	}
}

func TestDefaultStagesFreshSlice(t *testing.T) {
	a := DefaultStages()
	a[0] = NormalizeWhitespace
	if got := Transform("hello"); got != "HELLO" {
		t.Errorf("mutating DefaultStages() result changed Transform: %q", got)
	}
}

func TestTransformConcurrent(t *testing.T) {
	inputs := []string{
		"I am going to the store",
		"She's eating an apple",
		"They're buying cars",
		"John's dog ate the bone",
	}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		want[i] = Transform(in)
	}

	tr := New()
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				i := n % len(inputs)
				if got := tr.Transform(inputs[i]); got != want[i] {
					t.Errorf("concurrent Transform(%q) = %q, want %q", inputs[i], got, want[i])
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"keeps grammar words", "I am going to the store.", "I AM GOING TO THE STORE"},
		{"drops apostrophes", "She's here", "SHES HERE"},
		{"drops symbols", "**STORE** -> I GO", "STORE - I GO"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
