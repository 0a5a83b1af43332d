package check

import "github.com/you-not-fish/polyc/internal/syntax"

// PolyEntry is the declaration table entry of one polynomial name.
type PolyEntry struct {
	Name   string
	Lines  []int    // every declaration line, in source order
	Params []string // formal parameters of the stored declaration
	Decl   *syntax.PolyDecl
}

// Arity returns the number of formal parameters.
func (e *PolyEntry) Arity() int {
	return len(e.Params)
}

// PolyTable maps polynomial names to their declarations.
type PolyTable struct {
	entries map[string]*PolyEntry
	order   []string // names in order of first declaration
}

// NewPolyTable returns an empty table.
func NewPolyTable() *PolyTable {
	return &PolyTable{entries: make(map[string]*PolyEntry)}
}

// Declare records a declaration. A repeated name appends its line and
// replaces the stored body and parameters, so the last declaration parsed
// is the one evaluated.
func (t *PolyTable) Declare(d *syntax.PolyDecl) *PolyEntry {
	name := d.Name.Value
	e, ok := t.entries[name]
	if !ok {
		e = &PolyEntry{Name: name}
		t.entries[name] = e
		t.order = append(t.order, name)
	}
	e.Lines = append(e.Lines, d.Name.Line())
	e.Params = d.ParamNames()
	e.Decl = d
	return e
}

// Lookup returns the entry for name.
func (t *PolyTable) Lookup(name string) (*PolyEntry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Names returns the declared names in order of first declaration.
func (t *PolyTable) Names() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of distinct names.
func (t *PolyTable) Len() int {
	return len(t.order)
}

// LocTable maps variable names to memory slots. Slots are handed out in
// first-seen order starting at 0 and are never released.
type LocTable struct {
	slots map[string]int
	names []string
}

// NewLocTable returns an empty table.
func NewLocTable() *LocTable {
	return &LocTable{slots: make(map[string]int)}
}

// Alloc returns the slot of name, allocating the next one on first mention.
func (t *LocTable) Alloc(name string) int {
	if slot, ok := t.slots[name]; ok {
		return slot
	}
	slot := len(t.names)
	t.slots[name] = slot
	t.names = append(t.names, name)
	return slot
}

// Lookup returns the slot of name.
func (t *LocTable) Lookup(name string) (int, bool) {
	slot, ok := t.slots[name]
	return slot, ok
}

// Name returns the variable stored in slot.
func (t *LocTable) Name(slot int) string {
	return t.names[slot]
}

// Len returns the number of allocated slots.
func (t *LocTable) Len() int {
	return len(t.names)
}
