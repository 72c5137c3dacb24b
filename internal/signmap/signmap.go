package signmap

import "strings"

func (m *implMapper) Len() int {
	return len(m.entries)
}

// Sequence never returns nil. Letters without an entry are skipped.
func (m *implMapper) Sequence(gloss string) []Gesture {
	words := strings.Fields(gloss)
	seq := make([]Gesture, 0, len(words))
	space, hasSpace := m.entries[m.spaceKey]

	for i, word := range words {
		word = strings.ToUpper(word)

		if e, ok := m.entries[word]; ok {
			label := e.Letter
			if label == "" {
				label = e.Name
			}
			seq = append(seq, Gesture{Letter: label, ImagePath: e.ImagePath, Type: TypeSign})
		} else {
			for _, r := range word {
				letter := string(r)
				if e, ok := m.entries[letter]; ok {
					seq = append(seq, Gesture{Letter: letter, ImagePath: e.ImagePath, Type: TypeFingerspell})
				}
			}
		}

		if i < len(words)-1 && hasSpace {
			seq = append(seq, Gesture{ImagePath: space.ImagePath, Type: TypeSpace, IsSpace: true})
		}
	}

	return seq
}
