// Package atoms models SublerCLI metadata atoms: named key/value pairs
// that are handed to the external tool as repeated -metadata arguments.
package atoms

// Atom is a single metadata key/value pair destined for SublerCLI.
// The name must be non-empty; the value is opaque text and is never
// validated here. SublerCLI is the final arbiter of validity.
type Atom struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewAtom creates an atom with the given tag name and value.
func NewAtom(name, value string) Atom {
	return Atom{Name: name, Value: value}
}

// Atoms is an ordered collection of metadata atoms.
//
// Insertion order is preserved and duplicate names are allowed: SublerCLI
// treats repeated flags (cast or genre entries, for example) as an
// accumulating list keyed by position, so the collection never collapses
// duplicates into a last-write-wins value.
type Atoms struct {
	inner []Atom
}

// List returns the atoms in insertion order.
// The returned slice is a copy; mutating it does not affect the collection.
func (a Atoms) List() []Atom {
	out := make([]Atom, len(a.inner))
	copy(out, a.inner)
	return out
}

// Len returns the number of stored atoms.
func (a Atoms) Len() int {
	return len(a.inner)
}

// Args renders the collection as SublerCLI argument tokens: one
// "-metadata <name> <value>" triple per atom, in insertion order.
func (a Atoms) Args() []string {
	args := make([]string, 0, 3*len(a.inner))
	for _, atom := range a.inner {
		args = append(args, "-metadata", atom.Name, atom.Value)
	}
	return args
}
