package overlay

import (
	"boxlens/pkg/element"
	"boxlens/pkg/script"
)

// AddMatching attaches overlays to every element under root selected by
// the matcher and returns how many matched. On an evaluation error no
// overlays are added.
func (s *Store) AddMatching(root *element.Element, m *script.Matcher, parts Part) (int, error) {
	els, err := m.Select(root)
	if err != nil {
		return 0, err
	}
	for _, el := range els {
		s.Add(el, parts)
	}
	return len(els), nil
}
