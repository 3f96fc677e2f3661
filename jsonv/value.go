package jsonv

// Kind is the JSON type of a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// Span is the byte range [Pos, End) a value occupies in the parsed text.
// Values built with the New* constructors have a zero Span.
type Span struct {
	Pos int
	End int
}

// Value is one parsed JSON value. A nil *Value is not valid.
type Value struct {
	kind Kind
	// text is the decoded string, the number literal, or "true"/"false".
	text    string
	items   []*Value
	members []Member
	span    Span
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

func NewNull() *Value { return &Value{kind: Null} }

func NewBool(b bool) *Value {
	if b {
		return &Value{kind: Bool, text: "true"}
	}
	return &Value{kind: Bool, text: "false"}
}

// NewNumber wraps a number literal. The literal is not validated.
func NewNumber(literal string) *Value { return &Value{kind: Number, text: literal} }

func NewString(s string) *Value { return &Value{kind: String, text: s} }

func NewArray(items ...*Value) *Value { return &Value{kind: Array, items: items} }

// NewObject builds an object with the same member normalization Parse
// applies.
func NewObject(members ...Member) *Value {
	return &Value{kind: Object, members: normalizeMembers(members)}
}

// Field is shorthand for a Member literal.
func Field(key string, v *Value) Member { return Member{Key: key, Value: v} }

func (v *Value) Kind() Kind { return v.kind }

// Span reports where the value was found in the parsed text.
func (v *Value) Span() Span { return v.span }

// Str returns the decoded string of a String value.
func (v *Value) Str() string {
	if v.kind != String {
		return ""
	}
	return v.text
}

// Literal returns the source text of a Number value.
func (v *Value) Literal() string {
	if v.kind != Number {
		return ""
	}
	return v.text
}

func (v *Value) Bool() bool { return v.kind == Bool && v.text == "true" }

// Items returns the elements of an Array value.
func (v *Value) Items() []*Value { return v.items }

// Members returns the members of an Object value in enumeration order.
func (v *Value) Members() []Member { return v.members }

// Len returns the number of elements or members of a container, and 0 for
// primitives.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	}
	return 0
}

// IsContainer reports whether v is an array or object.
func (v *Value) IsContainer() bool { return v.kind == Array || v.kind == Object }

// Equal reports whether a and b are the same JSON value. Spans are ignored
// and numbers compare by their serialized form, so 1.0 equals 1.
func Equal(a, b *Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool, String:
		return a.text == b.text
	case Number:
		return formatNumber(a.text) == formatNumber(b.text)
	case Array:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.members) != len(b.members) {
			return false
		}
		for i := range a.members {
			if a.members[i].Key != b.members[i].Key || !Equal(a.members[i].Value, b.members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
