package mython

// holderMode tags the three construction modes ObjectHolder supports
// (spec.md §3): an Owning holder is the value's origin, a Sharing holder
// aliases a Value some outer owner keeps alive, and None wraps nothing.
//
// Go's garbage collector already keeps a Value alive for as long as any
// holder (or anything else) references it, so the owning/sharing
// distinction carries no runtime consequence here the way it does in the
// original's reference-counted C++ ObjectHolder — it is preserved purely
// as a tag, to keep the holder's construction-site intent (is this the
// value's home, or a borrowed alias for the duration of one call) visible
// in the model the way spec.md §3's invariant describes it. See DESIGN.md.
type holderMode int

const (
	holderNone holderMode = iota
	holderOwning
	holderSharing
)

// ObjectHolder is an ownership wrapper around a Value, per spec.md §3.
type ObjectHolder struct {
	mode  holderMode
	value Value
}

// None constructs the empty holder: comparable, prints as "None", falsy.
func None() ObjectHolder {
	return ObjectHolder{mode: holderNone}
}

// Own constructs an Owning holder: the wrapper is the origin of v.
func Own(v Value) ObjectHolder {
	return ObjectHolder{mode: holderOwning, value: v}
}

// Share constructs a Sharing holder aliasing v without transferring
// ownership. Used for the `self` binding during a method call (spec.md
// §4.2) and nowhere else — the sole use the design notes require to be
// correct.
func Share(v Value) ObjectHolder {
	return ObjectHolder{mode: holderSharing, value: v}
}

// IsNone reports whether this holder wraps nothing.
func (h ObjectHolder) IsNone() bool {
	return h.mode == holderNone
}

// Value returns the wrapped Value and whether one is present.
func (h ObjectHolder) Value() (Value, bool) {
	if h.mode == holderNone {
		return Value{}, false
	}
	return h.value, true
}

func (h ObjectHolder) AsNumber() (int32, bool) {
	if h.mode == holderNone || h.value.Kind() != KindNumber {
		return 0, false
	}
	return h.value.Number(), true
}

func (h ObjectHolder) AsString() (string, bool) {
	if h.mode == holderNone || h.value.Kind() != KindString {
		return "", false
	}
	return h.value.Str(), true
}

func (h ObjectHolder) AsBool() (bool, bool) {
	if h.mode == holderNone || h.value.Kind() != KindBool {
		return false, false
	}
	return h.value.Bool(), true
}

func (h ObjectHolder) AsClass() (*Class, bool) {
	if h.mode == holderNone || h.value.Kind() != KindClass {
		return nil, false
	}
	return h.value.Class(), true
}

func (h ObjectHolder) AsInstance() (*ClassInstance, bool) {
	if h.mode == holderNone || h.value.Kind() != KindInstance {
		return nil, false
	}
	return h.value.Instance(), true
}

// IsTrue implements spec.md §4.2: true iff the holder wraps a non-zero
// Number, a non-empty String, or Bool(true); everything else (including
// None, Class, ClassInstance) is falsy.
func IsTrue(h ObjectHolder) bool {
	v, ok := h.Value()
	if !ok {
		return false
	}
	switch v.Kind() {
	case KindNumber:
		return v.Number() != 0
	case KindString:
		return v.Str() != ""
	case KindBool:
		return v.Bool()
	default:
		return false
	}
}
