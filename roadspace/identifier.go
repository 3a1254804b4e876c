package roadspace

import "strings"

// Identifier is a structural, map-key-usable identifier: a tuple of small
// integers and short strings, as every entity in this model carries one.
// Field order is significant and fixed by the constructor that built it —
// it is the order the canonical string below joins fields in.
type Identifier struct {
	fieldNames []string
	fieldValues []string
}

// NewIdentifier builds an Identifier from name/value pairs given in
// declaration order. Values are accepted pre-stringified (small ints and
// short strings are both rendered by the caller) so this type stays free
// of a dependency on any particular numeric formatting.
func NewIdentifier(pairs ...[2]string) Identifier {
	id := Identifier{
		fieldNames:  make([]string, 0, len(pairs)),
		fieldValues: make([]string, 0, len(pairs)),
	}
	for _, pair := range pairs {
		id.fieldNames = append(id.fieldNames, pair[0])
		id.fieldValues = append(id.fieldValues, pair[1])
	}
	return id
}

// Canonical renders the identifier as a deterministic, field-name-prefixed,
// '|'-joined token string — the canonical string the identifier hash is
// computed over.
func (id Identifier) Canonical() string {
	var b strings.Builder
	for i, name := range id.fieldNames {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(id.fieldValues[i])
	}
	return b.String()
}

// String satisfies fmt.Stringer with the same canonical rendering, so an
// Identifier reads sensibly in error messages and test failures.
func (id Identifier) String() string { return id.Canonical() }

// FieldValue looks up a field by name, returning ("", false) if absent.
func (id Identifier) FieldValue(name string) (string, bool) {
	for i, n := range id.fieldNames {
		if n == name {
			return id.fieldValues[i], true
		}
	}
	return "", false
}

// Fields returns the identifier's name/value pairs in declaration order, so
// a caller building an attribute set mirroring the source identifier
// fields doesn't need to know the field names in advance.
func (id Identifier) Fields() [][2]string {
	out := make([][2]string, len(id.fieldNames))
	for i, name := range id.fieldNames {
		out[i] = [2]string{name, id.fieldValues[i]}
	}
	return out
}
