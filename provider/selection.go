package provider

// Selection is a closed variant describing how to pick among discovered
// implementations: automatically when exactly one is present, or by an
// explicit qualified name. The engine never guesses among multiple
// candidates.
type Selection struct {
	kind selectionKind
	name string
}

type selectionKind uint8

const (
	selectAuto selectionKind = iota
	selectNamed
)

// Auto selects the sole implementation; more than one is an error.
func Auto() Selection {
	return Selection{kind: selectAuto}
}

// Named selects the implementation with the given qualified name. The name
// is typically itself a resolved configuration value (e.g. a "database kind"
// setting mapped to an implementation).
func Named(name string) Selection {
	return Selection{kind: selectNamed, name: name}
}

// Choose applies the selection to a discovered list.
func Choose[T any](list []Descriptor[T], selection Selection) (Descriptor[T], error) {
	switch selection.kind {
	case selectNamed:
		return SelectByName(list, selection.name)
	default:
		return SelectSingle(list)
	}
}
