package core

import (
	"galogen/internal/shared"
	"galogen/internal/types"
)

// Selection is the set of entity names currently part of the output, one
// name set per entity kind.
type Selection struct {
	sets map[types.EntityKind]map[string]struct{}
}

func NewSelection() *Selection {
	sets := make(map[types.EntityKind]map[string]struct{}, len(types.EntityKinds))
	for _, kind := range types.EntityKinds {
		sets[kind] = map[string]struct{}{}
	}
	return &Selection{sets: sets}
}

func (s *Selection) Add(kind types.EntityKind, name string) {
	s.sets[kind][name] = struct{}{}
}

func (s *Selection) Remove(kind types.EntityKind, name string) {
	delete(s.sets[kind], name)
}

func (s *Selection) Has(kind types.EntityKind, name string) bool {
	_, ok := s.sets[kind][name]
	return ok
}

func (s *Selection) Len(kind types.EntityKind) int {
	return len(s.sets[kind])
}

// Names returns the selected names of kind in ascending order.
func (s *Selection) Names(kind types.EntityKind) []string {
	return shared.SortedKeys(s.sets[kind])
}

// Contains reports whether every name selected in other is also selected in s.
func (s *Selection) Contains(other *Selection) bool {
	for kind, names := range other.sets {
		for name := range names {
			if !s.Has(kind, name) {
				return false
			}
		}
	}
	return true
}
