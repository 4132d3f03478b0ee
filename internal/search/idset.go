package search

// idSet is a deduplicated set of entity IDs produced by a filter stage.
type idSet map[string]struct{}

func newIDSet(ids []string) idSet {
	s := make(idSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s idSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s idSet) slice() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

// subtract returns the members of s that are not in other.
func (s idSet) subtract(other idSet) idSet {
	out := make(idSet)
	for id := range s {
		if !other.has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// intersect keeps the members of ids that are in s, preserving order.
func (s idSet) intersect(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if s.has(id) {
			out = append(out, id)
		}
	}
	return out
}
