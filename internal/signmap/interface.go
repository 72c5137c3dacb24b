// Package signmap turns an ASL gloss into the sequence of gesture images a
// player shows: whole-word signs where the mapping has them, fingerspelling
// otherwise.
package signmap

// Gesture types.
const (
	TypeSign        = "sign"
	TypeFingerspell = "fingerspell"
	TypeSpace       = "space"
)

// Entry is one record of the gesture mapping file.
type Entry struct {
	Letter    string `json:"letter,omitempty"`
	Name      string `json:"name,omitempty"`
	ImagePath string `json:"image_path"`
}

// Gesture is a single step of a gesture sequence.
type Gesture struct {
	Letter    string `json:"letter"`
	ImagePath string `json:"image_path"`
	Type      string `json:"type"`
	IsSpace   bool   `json:"isSpace"`
}

// Mapper maps glosses to gesture sequences.
type Mapper interface {
	Sequence(gloss string) []Gesture
	Len() int
}
