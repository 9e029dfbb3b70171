package spanJSON

// ### Constructors ###
//
// Convenience layer for building Value trees as literals. The core
// reads plain struct fields, so none of these are required — they
// only keep call sites short. Width-specific integer constructors
// convert at the call site; the renderer itself is width-agnostic.

// Object describes a JSON object with the given members, in order.
func Object(members ...Member) Value {
	return Value{Kind: KindObject, Members: members}
}

// Field builds one object member.
func Field(key string, v Value) Member {
	return Member{Key: key, Value: v}
}

// Array describes a JSON array from an explicit element list. The
// elements may be of mixed kinds.
func Array(elems ...Value) Value {
	return Value{Kind: KindArray, Elems: elems}
}

// String describes a quoted, escaped JSON string.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Raw describes a pre-formatted JSON fragment inserted verbatim.
func Raw(s string) Value {
	return Value{Kind: KindRaw, Str: s}
}

// Bool describes true or false.
func Bool(v bool) Value {
	return Value{Kind: KindBool, Bool: v}
}

// Null describes the null literal.
func Null() Value {
	return Value{Kind: KindNull}
}

// Int describes a signed decimal integer.
func Int(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

func Int8(v int8) Value { return Int(int64(v)) }
func Int16(v int16) Value { return Int(int64(v)) }
func Int32(v int32) Value { return Int(int64(v)) }
func Int64(v int64) Value { return Int(v) }

// Uint describes an unsigned decimal integer.
func Uint(v uint64) Value {
	return Value{Kind: KindUint, Uint: v}
}

func Uint8(v uint8) Value { return Uint(uint64(v)) }
func Uint16(v uint16) Value { return Uint(uint64(v)) }
func Uint32(v uint32) Value { return Uint(uint64(v)) }
func Uint64(v uint64) Value { return Uint(v) }

// Hex describes an unsigned integer rendered as a quoted uppercase
// hex string.
func Hex(v uint64) Value {
	return Value{Kind: KindHex, Uint: v}
}

func Hex8(v uint8) Value { return Hex(uint64(v)) }
func Hex16(v uint16) Value { return Hex(uint64(v)) }
func Hex32(v uint32) Value { return Hex(uint64(v)) }
func Hex64(v uint64) Value { return Hex(v) }

// ### Dense Arrays ###
//
// Dense constructors describe a homogeneous array by one Value plus
// a slice, instead of one Value per element. The slice is referenced,
// not copied; it stays caller-owned.

// Bools describes a dense array of booleans.
func Bools(v []bool) Value {
	return Value{Kind: KindArray, Elem: KindBool, Bools: v}
}

// Ints describes a dense array of signed integers.
func Ints(v []int64) Value {
	return Value{Kind: KindArray, Elem: KindInt, Ints: v}
}

// Uints describes a dense array of unsigned integers.
func Uints(v []uint64) Value {
	return Value{Kind: KindArray, Elem: KindUint, Uints: v}
}

// Hexes describes a dense array of quoted uppercase hex strings.
func Hexes(v []uint64) Value {
	return Value{Kind: KindArray, Elem: KindHex, Uints: v}
}

// Strings describes a dense array of quoted, escaped strings.
func Strings(v []string) Value {
	return Value{Kind: KindArray, Elem: KindString, Strs: v}
}

// Raws describes a dense array of verbatim fragments.
func Raws(v []string) Value {
	return Value{Kind: KindArray, Elem: KindRaw, Strs: v}
}
