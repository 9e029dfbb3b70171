package spanJSON

// ### Scalar Writers ###

const hexDigits = "0123456789ABCDEF"

const (
	jsonQuote        = byte('"')
	jsonBackslash    = byte('\\')
	jsonColon        = byte(':')
	jsonComma        = byte(',')
	jsonSpace        = byte(' ')
	jsonOpenBrace    = byte('{')
	jsonCloseBrace   = byte('}')
	jsonOpenBracket  = byte('[')
	jsonCloseBracket = byte(']')
)

const (
	jsonTrue  = "true"
	jsonFalse = "false"
	jsonNull  = "null"
)

func (w *writer) writeNull() bool {
	if !w.take(len(jsonNull)) {
		return false
	}
	w.putString(jsonNull)
	return true
}

func (w *writer) writeBool(v bool) bool {
	lit := jsonFalse
	if v {
		lit = jsonTrue
	}
	if !w.take(len(lit)) {
		return false
	}
	w.putString(lit)
	return true
}

// writeInt emits the sign separately, then renders the magnitude as
// unsigned. Negation happens in uint64 arithmetic so the minimum
// int64 keeps its correct magnitude.
func (w *writer) writeInt(v int64) bool {
	u := uint64(v)
	if v < 0 {
		if !w.take(1) {
			return false
		}
		w.putByte('-')
		u = -u
	}
	return w.writeUint(u)
}

func (w *writer) writeUint(v uint64) bool {
	if !w.take(digitCount(v, 10)) {
		return false
	}
	w.writeDigits(v, 10)
	return true
}

// writeHex renders the value as a quoted uppercase hex string: no
// "0x" prefix, no leading zeros. Hex is deliberately a JSON string,
// not a bare number.
func (w *writer) writeHex(v uint64) bool {
	if !w.take(digitCount(v, 16) + 2) {
		return false
	}
	w.putByte(jsonQuote)
	w.writeDigits(v, 16)
	w.putByte(jsonQuote)
	return true
}

// digitCount returns the rendered digit count of v in the given
// base, 1 for zero.
func digitCount(v, base uint64) int {
	n := 1
	for v >= base {
		v /= base
		n++
	}
	return n
}

// writeDigits renders v most-significant-digit first by successive
// divide/remainder, so no reversal buffer is needed. The caller has
// already budgeted digitCount(v, base) bytes.
func (w *writer) writeDigits(v, base uint64) {
	pow := uint64(1)
	for i := digitCount(v, base); i > 1; i-- {
		pow *= base
	}
	for pow > 0 {
		w.putByte(hexDigits[v/pow])
		v %= pow
		pow /= base
	}
}

// countEscapeChars returns how many bytes of s need a backslash.
// Only '"' and '\' are escaped; control characters and non-UTF-8
// bytes pass through untouched.
func countEscapeChars(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == jsonQuote || s[i] == jsonBackslash {
			n++
		}
	}
	return n
}

// writeQuoted emits s as a quoted JSON string. The escaped length is
// computed first so the whole span is budgeted in one take; the copy
// then runs in unescaped chunks.
func (w *writer) writeQuoted(s string) bool {
	esc := countEscapeChars(s)
	if !w.take(len(s) + esc + 2) {
		return false
	}
	w.putByte(jsonQuote)
	if esc == 0 {
		w.putString(s)
	} else {
		start := 0
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c == jsonQuote || c == jsonBackslash {
				if start < i {
					w.putString(s[start:i])
				}
				w.putByte(jsonBackslash)
				w.putByte(c)
				start = i + 1
			}
		}
		if start < len(s) {
			w.putString(s[start:])
		}
	}
	w.putByte(jsonQuote)
	return true
}

// writeRaw copies s verbatim, unquoted and unvalidated. The caller
// owns the burden of supplying a valid JSON fragment; this is the
// escape hatch for types without a native writer, such as floats.
func (w *writer) writeRaw(s string) bool {
	if !w.take(len(s)) {
		return false
	}
	w.putString(s)
	return true
}
