// Package spanJSON generates JSON text into a caller-supplied
// fixed-size buffer with no heap allocation and no buffer growth.
// The caller describes the data as a tree of Value nodes; Generate
// walks the tree and either writes the complete text or reports
// failure by returning length 0, never writing past the buffer.
package spanJSON

// ### Type Definitions ###

// Kind selects how a Value's payload is interpreted and rendered.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindUint
	KindHex // unsigned, rendered as a quoted uppercase hex string
	KindString
	KindRaw // caller-formatted fragment, inserted verbatim
	KindArray
	KindObject
)

// Value describes one JSON value. Exactly one payload field is
// meaningful, selected by Kind (and Elem for dense arrays). Values
// are caller-owned and read-only for the duration of a Generate
// call; the generator never retains or copies them.
//
// A KindArray value is either an explicit list (Elems, element kinds
// may differ per element) or, when Elem is set, a dense array: a
// homogeneous sequence read from the slice matching Elem (Bools,
// Ints, Uints for KindUint/KindHex, Strs for KindString/KindRaw).
type Value struct {
	Str     string   // 16 bytes (ptr + len)
	Members []Member // 24 bytes (ptr + len + cap)
	Elems   []Value  // 24 bytes (ptr + len + cap)
	Bools   []bool   // 24 bytes (ptr + len + cap)
	Ints    []int64  // 24 bytes (ptr + len + cap)
	Uints   []uint64 // 24 bytes (ptr + len + cap)
	Strs    []string // 24 bytes (ptr + len + cap)
	Int     int64    // 8 bytes
	Uint    uint64   // 8 bytes
	Bool    bool     // 1 byte
	Kind    Kind     // 1 byte
	Elem    Kind     // 1 byte (dense element kind, KindInvalid when unused)
}

// Member is one ordered key/value pair of an object. Member lists
// carry their length in the slice header; there is no terminator
// convention.
type Member struct {
	Key   string
	Value Value
}

// Generator holds the output style and limits. The zero value is
// ready to use: spaced output (a space after ':' and ',', matching
// the historical format) and no depth cap.
type Generator struct {
	// MaxDepth caps object nesting. Generation fails once more than
	// MaxDepth object levels are open. 0 means uncapped.
	MaxDepth int

	// Compact drops the space after ':' and ','.
	Compact bool
}
