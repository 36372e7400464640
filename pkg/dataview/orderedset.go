package dataview

// orderedSet records distinct names in the order they are first added.
// Later adds of a known name are ignored, so a name's position is fixed
// by its first appearance. Membership is indexed so adds stay cheap as
// the set grows.
type orderedSet struct {
	names []string
	seen  map[string]struct{}
}

// add records name if it has not been seen before.
func (s *orderedSet) add(name string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[name]; ok {
		return
	}
	s.seen[name] = struct{}{}
	s.names = append(s.names, name)
}
