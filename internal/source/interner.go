package source

import "strings"

// StringID names an interned identifier. The zero ID is the empty string.
type StringID uint32

const NoStringID StringID = 0

// Interner maps identifier text to dense IDs for one parse. Not safe for
// concurrent use; the parallel driver gives each file its own.
type Interner struct {
	names []string
	ids   map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{names: []string{""}, ids: map[string]StringID{"": NoStringID}}
}

// Intern returns the ID of s, assigning the next one on first sight.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.ids[s]; ok {
		return id
	}
	// s often aliases the source buffer; keep a copy
	s = strings.Clone(s)
	id := StringID(len(in.names))
	in.names = append(in.names, s)
	in.ids[s] = id
	return id
}

func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(in.names) {
		return "", false
	}
	return in.names[id], true
}

// Len includes the empty string at NoStringID.
func (in *Interner) Len() int { return len(in.names) }
