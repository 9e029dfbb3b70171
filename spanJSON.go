package spanJSON

// ### Core Functions ###

// Generate writes root as JSON text into dst using the default style
// (spaced, no depth cap). See Generator.Generate.
func Generate(dst []byte, root Value) int {
	var g Generator
	return g.Generate(dst, root)
}

// Generate writes root as JSON text into dst and returns the number
// of bytes written, excluding the NUL terminator appended after the
// text. It returns 0 if dst is too small for the complete text plus
// terminator, if the object depth cap is exceeded, or if root (or
// any nested value) carries an invalid Kind. On failure nothing
// usable is guaranteed written; on success the text is complete —
// there is no partial output in between. No byte is ever written at
// or past len(dst).
//
// The generator state is local to each call, so concurrent calls on
// different goroutines are safe as long as they use distinct dst
// buffers.
func (g Generator) Generate(dst []byte, root Value) int {
	w := writer{
		dst:      dst,
		rem:      len(dst),
		maxDepth: g.MaxDepth,
		spaced:   !g.Compact,
	}
	// Reserve the terminator up front so the final write can never
	// be the one that overflows.
	if !w.take(1) {
		return 0
	}
	if !w.writeValue(root) {
		return 0
	}
	n := w.off
	w.putByte(0)
	return n
}

// Measure returns the exact byte length Generate would produce for
// root under the default style, excluding the terminator. See
// Generator.Measure.
func Measure(root Value) int {
	var g Generator
	return g.Measure(root)
}

// Measure runs the generation pass without a buffer and returns the
// exact byte length of the text, terminator excluded. A buffer of
// Measure(root)+1 bytes is the smallest that Generate accepts.
// Returns 0 for an invalid root or a tree past the depth cap.
func (g Generator) Measure(root Value) int {
	w := writer{
		rem:      int(^uint(0) >> 2),
		maxDepth: g.MaxDepth,
		spaced:   !g.Compact,
	}
	if !w.writeValue(root) {
		return 0
	}
	return w.off
}

// ### Recursive Writer ###

// writer is the per-call generation state: output buffer, write
// offset, remaining budget, and open-object depth. One writer is
// shared by pointer across the whole recursion of a single Generate
// call, so the budget is a hard ceiling on total output, not a
// per-node one. Invariant in generation mode: off + rem == len(dst).
// With dst nil the writer only measures.
type writer struct {
	dst      []byte
	off      int
	rem      int
	depth    int
	maxDepth int
	spaced   bool
}

// take authorizes the next n bytes. Nothing may be written without a
// prior successful take of exactly the span about to be written.
func (w *writer) take(n int) bool {
	if w.rem < n {
		return false
	}
	w.rem -= n
	return true
}

func (w *writer) putByte(c byte) {
	if w.dst != nil {
		w.dst[w.off] = c
	}
	w.off++
}

func (w *writer) putString(s string) {
	if w.dst != nil {
		copy(w.dst[w.off:], s)
	}
	w.off += len(s)
}

// writeValue dispatches one value by its Kind. A false return means
// the budget ran out (or the Kind is invalid) and unwinds the whole
// generation.
func (w *writer) writeValue(v Value) bool {
	switch v.Kind {
	case KindNull:
		return w.writeNull()
	case KindBool:
		return w.writeBool(v.Bool)
	case KindInt:
		return w.writeInt(v.Int)
	case KindUint:
		return w.writeUint(v.Uint)
	case KindHex:
		return w.writeHex(v.Uint)
	case KindString:
		return w.writeQuoted(v.Str)
	case KindRaw:
		return w.writeRaw(v.Str)
	case KindArray:
		return w.writeArray(v)
	case KindObject:
		return w.writeObject(v.Members)
	}
	return false
}

func (w *writer) writeObject(members []Member) bool {
	w.depth++
	if w.maxDepth > 0 && w.depth > w.maxDepth {
		return false
	}
	if !w.take(1) {
		return false
	}
	w.putByte(jsonOpenBrace)
	for i, m := range members {
		if i > 0 && !w.writeSeparator() {
			return false
		}
		if !w.writeKey(m.Key) {
			return false
		}
		if !w.writeValue(m.Value) {
			return false
		}
	}
	if !w.take(1) {
		return false
	}
	w.putByte(jsonCloseBrace)
	w.depth--
	return true
}

func (w *writer) writeArray(v Value) bool {
	if !w.take(1) {
		return false
	}
	w.putByte(jsonOpenBracket)
	if v.Elem != KindInvalid {
		if !w.writeDense(v) {
			return false
		}
	} else {
		for i, e := range v.Elems {
			if i > 0 && !w.writeSeparator() {
				return false
			}
			if !w.writeValue(e) {
				return false
			}
		}
	}
	if !w.take(1) {
		return false
	}
	w.putByte(jsonCloseBracket)
	return true
}

// writeDense iterates a homogeneous slice payload directly instead
// of one Value per element. An empty (or nil) slice has already
// produced "[" and will produce "]" — the empty form falls out.
func (w *writer) writeDense(v Value) bool {
	switch v.Elem {
	case KindBool:
		for i, b := range v.Bools {
			if i > 0 && !w.writeSeparator() {
				return false
			}
			if !w.writeBool(b) {
				return false
			}
		}
	case KindInt:
		for i, n := range v.Ints {
			if i > 0 && !w.writeSeparator() {
				return false
			}
			if !w.writeInt(n) {
				return false
			}
		}
	case KindUint:
		for i, n := range v.Uints {
			if i > 0 && !w.writeSeparator() {
				return false
			}
			if !w.writeUint(n) {
				return false
			}
		}
	case KindHex:
		for i, n := range v.Uints {
			if i > 0 && !w.writeSeparator() {
				return false
			}
			if !w.writeHex(n) {
				return false
			}
		}
	case KindString:
		for i, s := range v.Strs {
			if i > 0 && !w.writeSeparator() {
				return false
			}
			if !w.writeQuoted(s) {
				return false
			}
		}
	case KindRaw:
		for i, s := range v.Strs {
			if i > 0 && !w.writeSeparator() {
				return false
			}
			if !w.writeRaw(s) {
				return false
			}
		}
	default:
		return false
	}
	return true
}

// writeKey emits `"key":` (plus a space in spaced style). Keys go
// through the same quote/backslash escaping as string values.
func (w *writer) writeKey(key string) bool {
	if !w.writeQuoted(key) {
		return false
	}
	if w.spaced {
		if !w.take(2) {
			return false
		}
		w.putByte(jsonColon)
		w.putByte(jsonSpace)
		return true
	}
	if !w.take(1) {
		return false
	}
	w.putByte(jsonColon)
	return true
}

func (w *writer) writeSeparator() bool {
	if w.spaced {
		if !w.take(2) {
			return false
		}
		w.putByte(jsonComma)
		w.putByte(jsonSpace)
		return true
	}
	if !w.take(1) {
		return false
	}
	w.putByte(jsonComma)
	return true
}
