package motion

import (
	"math"
	"strconv"
	"strings"
)

// valueKind distinguishes the payload carried by a Value.
type valueKind uint8

const (
	kindNone   valueKind = iota // undefined
	kindNumber                  // float64 payload
	kindString                  // string payload
)

// Value is a single animatable property value: a number, a string, or
// undefined (the zero Value). Values are comparable with ==, which gives the
// strict equality used by the snap rule.
type Value struct {
	kind valueKind
	num  float64
	str  string
}

// Undefined is the zero Value.
var Undefined Value

// Num returns a numeric Value.
func Num(f float64) Value {
	return Value{kind: kindNumber, num: f}
}

// Str returns a string Value.
func Str(s string) Value {
	return Value{kind: kindString, str: s}
}

// IsDefined reports whether v carries a number or a string.
func (v Value) IsDefined() bool { return v.kind != kindNone }

// IsNumber reports whether v is numeric.
func (v Value) IsNumber() bool { return v.kind == kindNumber }

// IsString reports whether v is a string.
func (v Value) IsString() bool { return v.kind == kindString }

// Float returns the numeric payload. ok is false for strings and undefined.
func (v Value) Float() (f float64, ok bool) {
	return v.num, v.kind == kindNumber
}

// Equal reports strict equality. NaN is never equal to itself.
func (v Value) Equal(o Value) bool {
	return v == o
}

// String formats v the way a style sheet expects it. Numbers use the
// shortest representation that round-trips; undefined formats as "".
func (v Value) String() string {
	switch v.kind {
	case kindNumber:
		return formatNumber(v.num)
	case kindString:
		return v.str
	default:
		return ""
	}
}

// GoString makes test failures readable.
func (v Value) GoString() string {
	switch v.kind {
	case kindNumber:
		return "Num(" + formatNumber(v.num) + ")"
	case kindString:
		return "Str(" + strconv.Quote(v.str) + ")"
	default:
		return "Undefined"
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == 0 {
		return "0" // also folds -0
	}
	if a := math.Abs(f); a < 1e-6 || a >= 1e21 {
		// Exponent form without zero padding: 1e-7, 1.5e+21.
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseValue turns literal text into a Value. Text in canonical number
// form becomes a number; everything else, "1.0" included, stays a string so
// that it formats back to the same text.
func parseValue(s string) Value {
	if f, err := strconv.ParseFloat(s, 64); err == nil && formatNumber(f) == s {
		return Num(f)
	}
	return Str(s)
}

// Endpoint is the target of one property: a single scalar, or a keyframe
// sequence interpreted by the driver. A one-element sequence is still a
// sequence and is never snapped.
type Endpoint struct {
	frames []Value
	seq    bool
}

// Scalar wraps a single value.
func Scalar(v Value) Endpoint {
	return Endpoint{frames: []Value{v}}
}

// Sequence builds a keyframe sequence.
func Sequence(vs ...Value) Endpoint {
	frames := make([]Value, len(vs))
	copy(frames, vs)
	return Endpoint{frames: frames, seq: true}
}

// IsSequence reports whether e is a keyframe sequence.
func (e Endpoint) IsSequence() bool { return e.seq }

// IsDefined reports whether e has at least one defined frame.
func (e Endpoint) IsDefined() bool {
	for _, f := range e.frames {
		if f.IsDefined() {
			return true
		}
	}
	return false
}

// First returns the first frame, or Undefined.
func (e Endpoint) First() Value {
	if len(e.frames) == 0 {
		return Undefined
	}
	return e.frames[0]
}

// Last returns the final frame, or Undefined.
func (e Endpoint) Last() Value {
	if len(e.frames) == 0 {
		return Undefined
	}
	return e.frames[len(e.frames)-1]
}

// Frames returns a copy of the frames.
func (e Endpoint) Frames() []Value {
	out := make([]Value, len(e.frames))
	copy(out, e.frames)
	return out
}

// Len returns the number of frames.
func (e Endpoint) Len() int { return len(e.frames) }
