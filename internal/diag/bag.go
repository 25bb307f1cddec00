package diag

import (
	"cmp"
	"slices"
)

// Bag collects diagnostics for one unit of work. A positive limit caps how many
// are kept; anything beyond it is silently dropped.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(limit int) *Bag {
	hint := 8
	if limit > 0 && limit < hint {
		hint = limit
	}
	return &Bag{items: make([]Diagnostic, 0, hint), max: limit}
}

// Add reports false once the limit is reached.
func (b *Bag) Add(d Diagnostic) bool {
	if b.full() {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) full() bool { return b.max > 0 && len(b.items) >= b.max }

func (b *Bag) HasErrors() bool   { return b.any(SevError) }
func (b *Bag) HasWarnings() bool { return b.any(SevWarning) }

func (b *Bag) any(atLeast Severity) bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= atLeast })
}

func (b *Bag) Len() int { return len(b.items) }

// Items shares the backing array; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Pointers returns the diagnostics as pointers into the bag, for formatters.
func (b *Bag) Pointers() []*Diagnostic {
	out := make([]*Diagnostic, len(b.items))
	for i := range b.items {
		out[i] = &b.items[i]
	}
	return out
}

// Merge appends other's diagnostics, growing the limit so none are lost.
func (b *Bag) Merge(other *Bag) {
	if other == nil || len(other.items) == 0 {
		return
	}
	b.items = append(b.items, other.items...)
	if b.max > 0 {
		b.max = max(b.max, len(b.items))
	}
}

// Sort orders by file and position, then errors before warnings, then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup drops repeats of the same code, primary span and message, keeping the first.
func (b *Bag) Dedup() {
	seen := make(map[dedupKey]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := keyOf(d.Code, d.Severity, d.Primary, d.Message)
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
