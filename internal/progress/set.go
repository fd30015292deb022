package progress

import (
	"encoding/json"
	"sort"
)

// Set is an immutable, deduplicated collection of string ids. Add returns
// a new Set; the zero value is an empty set ready to use.
type Set struct {
	m map[string]struct{}
}

// NewSet builds a Set from ids, dropping duplicates and empty strings.
func NewSet(ids ...string) Set {
	if len(ids) == 0 {
		return Set{}
	}
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		m[id] = struct{}{}
	}
	return Set{m: m}
}

// Has reports membership.
func (s Set) Has(id string) bool {
	_, ok := s.m[id]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.m)
}

// Add returns a set containing s plus ids. If nothing new is added the
// receiver is returned as is.
func (s Set) Add(ids ...string) Set {
	var fresh []string
	for _, id := range ids {
		if id != "" && !s.Has(id) {
			fresh = append(fresh, id)
		}
	}
	if len(fresh) == 0 {
		return s
	}

	m := make(map[string]struct{}, len(s.m)+len(fresh))
	for id := range s.m {
		m[id] = struct{}{}
	}
	for _, id := range fresh {
		m[id] = struct{}{}
	}
	return Set{m: m}
}

// Slice returns the members sorted ascending. It is never nil.
func (s Set) Slice() []string {
	out := make([]string, 0, len(s.m))
	for id := range s.m {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same members.
func (s Set) Equal(o Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for id := range s.m {
		if !o.Has(id) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON accepts an array of strings; null decodes to an empty set.
func (s *Set) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSet(ids...)
	return nil
}

// MarshalYAML encodes the set as a sorted sequence.
func (s Set) MarshalYAML() (any, error) {
	return s.Slice(), nil
}
