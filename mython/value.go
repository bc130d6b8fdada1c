package mython

// ValueKind discriminates the variants of Value described in spec.md §3.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindString
	KindBool
	KindClass
	KindInstance
)

// Value is the tagged union of runtime data: a number, a string, a bool, a
// class descriptor, or a class instance. Only the field matching Kind is
// meaningful, mirroring the teacher's kind+data Value shape
// (vibes/value.go) adapted to a closed, spec-defined variant set instead of
// an `any` payload, since Mython's value set is small and fixed.
type Value struct {
	kind ValueKind

	num int32
	str string
	b   bool

	class    *Class
	instance *ClassInstance
}

func NewNumber(n int32) Value { return Value{kind: KindNumber, num: n} }
func NewString(s string) Value { return Value{kind: KindString, str: s} }
func NewBool(b bool) Value     { return Value{kind: KindBool, b: b} }
func NewClassValue(c *Class) Value {
	return Value{kind: KindClass, class: c}
}
func NewInstanceValue(ci *ClassInstance) Value {
	return Value{kind: KindInstance, instance: ci}
}

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) Number() int32   { return v.num }
func (v Value) Str() string     { return v.str }
func (v Value) Bool() bool      { return v.b }
func (v Value) Class() *Class   { return v.class }
func (v Value) Instance() *ClassInstance {
	return v.instance
}

// Method is a named body of code attached to a class (spec.md §3).
type Method struct {
	Name         string
	FormalParams []string
	Body         Node
}

// Class is a runtime class descriptor: its own methods plus an optional
// parent for single inheritance (spec.md §3).
type Class struct {
	Name    string
	Methods []Method
	Parent  *Class
}

// GetMethod performs the linear own-methods-then-parent search spec.md
// §4.2 describes. Method resolution order is strictly single-inheritance
// linear: a class's own methods always win over an inherited one of the
// same name.
func (c *Class) GetMethod(name string) *Method {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i]
		}
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil
}

// ClassInstance is a live object: a reference to its class plus a mutable
// field table (spec.md §3).
type ClassInstance struct {
	class  *Class
	fields map[string]ObjectHolder
}

// NewClassInstance allocates a fresh, fieldless instance of c.
func NewClassInstance(c *Class) *ClassInstance {
	return &ClassInstance{class: c, fields: make(map[string]ObjectHolder)}
}

func (ci *ClassInstance) Class() *Class { return ci.class }

// Fields exposes the mutable field table directly; FieldAssignment and
// self.<field> assignment inside method bodies both write through it.
func (ci *ClassInstance) Fields() map[string]ObjectHolder {
	return ci.fields
}

// HasMethod reports whether GetMethod(name) resolves to a method whose
// arity matches (spec.md §4.2).
func (ci *ClassInstance) HasMethod(name string, arity int) bool {
	m := ci.class.GetMethod(name)
	return m != nil && len(m.FormalParams) == arity
}

// Call looks up name, binds a fresh closure with self shared and each
// formal bound to its actual argument, and executes the method body
// (spec.md §4.2). Arity mismatches are reported as "method not found" per
// spec.md §7.
func (ci *ClassInstance) Call(name string, actualArgs []ObjectHolder, ctx *Context) (ObjectHolder, error) {
	if !ci.HasMethod(name, len(actualArgs)) {
		return ObjectHolder{}, runtimeErrorf("method %s not found", name)
	}
	m := ci.class.GetMethod(name)

	closure := Closure{}
	closure["self"] = Share(NewInstanceValue(ci))
	for i, param := range m.FormalParams {
		closure[param] = actualArgs[i]
	}
	return m.Body.Execute(closure, ctx)
}
