package model

import (
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// builtinsQualifier is the module prefix checkers put in front of builtin names.
const builtinsQualifier = "builtins."

// builtinNames is the closed set of names recognized as builtins.
var builtinNames = map[string]struct{}{
	"bool":           {},
	"bytes":          {},
	"bytearray":      {},
	"complex":        {},
	"contextmanager": {},
	"dict":           {},
	"float":          {},
	"frozenset":      {},
	"function":       {},
	"GenericAlias":   {},
	"int":            {},
	"list":           {},
	"module":         {},
	"range":          {},
	"set":            {},
	"str":            {},
	"tuple":          {},
	"memoryview":     {},
	"None":           {},
	"NoneType":       {},
}

// Type is a parsed type expression.
//
// Hash returns a canonical fingerprint: two types are equal exactly when
// their hashes are equal. Union membership is keyed on it.
type Type interface {
	Hash() string
	Equal(other Type) bool
	String() string
	isType()
}

// StripBuiltinsQualifier removes a leading "builtins." from name.
func StripBuiltinsQualifier(name string) string {
	return strings.TrimPrefix(name, builtinsQualifier)
}

// LookupBuiltin reports whether text names a builtin, with or without the
// "builtins." qualifier, and returns the unqualified name.
func LookupBuiltin(text string) (string, bool) {
	name := StripBuiltinsQualifier(text)
	if _, ok := builtinNames[name]; !ok {
		return "", false
	}

	return name, true
}

// Builtin is one of the fixed builtin type names.
type Builtin struct {
	Name string
}

// NewBuiltin builds a Builtin, stripping any "builtins." qualifier.
func NewBuiltin(name string) Builtin {
	return Builtin{Name: StripBuiltinsQualifier(name)}
}

// NoneType is the builtin None.
func NoneType() Builtin {
	return Builtin{Name: "None"}
}

func (Builtin) isType() {}

// Hash implements Type. None and NoneType share an identity.
func (b Builtin) Hash() string {
	name := b.Name
	if name == "NoneType" {
		name = "None"
	}

	return "B:" + name
}

// Equal implements Type.
func (b Builtin) Equal(other Type) bool {
	return equalTypes(b, other)
}

func (b Builtin) String() string {
	return b.Name
}

// Opaque is type text that did not match any recognized form.
type Opaque struct {
	Text string
}

func (Opaque) isType() {}

// Hash implements Type.
func (o Opaque) Hash() string {
	return "O" + strconv.Itoa(len(o.Text)) + ":" + o.Text
}

// Equal implements Type.
func (o Opaque) Equal(other Type) bool {
	return equalTypes(o, other)
}

func (o Opaque) String() string {
	return o.Text
}

// Generic is a named type applied to ordered arguments.
type Generic struct {
	Name string
	Args []Type
}

// NewGeneric builds a Generic. A "builtins." qualifier on name is dropped.
func NewGeneric(name string, args ...Type) Generic {
	return Generic{Name: StripBuiltinsQualifier(name), Args: slices.Clone(args)}
}

func (Generic) isType() {}

// Hash implements Type. Argument order is significant.
func (g Generic) Hash() string {
	var b strings.Builder

	b.WriteString("G")
	b.WriteString(strconv.Itoa(len(g.Name)))
	b.WriteString(":")
	b.WriteString(g.Name)
	b.WriteString("[")

	for i, arg := range g.Args {
		if i > 0 {
			b.WriteString(",")
		}

		b.WriteString(arg.Hash())
	}

	b.WriteString("]")

	return b.String()
}

// Equal implements Type.
func (g Generic) Equal(other Type) bool {
	return equalTypes(g, other)
}

func (g Generic) String() string {
	args := make([]string, 0, len(g.Args))
	for _, arg := range g.Args {
		args = append(args, arg.String())
	}

	return g.Name + "[" + strings.Join(args, ", ") + "]"
}

// Union is an unordered, deduplicated set of member types. Nested unions
// and optionals are flattened into their members on construction.
type Union struct {
	members *set.HashSet[Type, string]
}

// NewUnion builds a Union from members in any order.
func NewUnion(members ...Type) Union {
	s := set.NewHashSet[Type, string](len(members))
	for _, member := range members {
		insertFlattened(s, member)
	}

	return Union{members: s}
}

func insertFlattened(s *set.HashSet[Type, string], t Type) {
	switch v := t.(type) {
	case Union:
		for _, member := range v.Members() {
			s.Insert(member)
		}
	case Optional:
		insertFlattened(s, v.Inner)
		s.Insert(NoneType())
	default:
		s.Insert(t)
	}
}

func (Union) isType() {}

// Members returns the distinct members sorted by hash.
func (u Union) Members() []Type {
	if u.members == nil {
		return nil
	}

	members := u.members.Slice()
	slices.SortFunc(members, func(a, b Type) int {
		return strings.Compare(a.Hash(), b.Hash())
	})

	return members
}

// Len returns the number of distinct members.
func (u Union) Len() int {
	if u.members == nil {
		return 0
	}

	return u.members.Size()
}

// Hash implements Type. Member order and repetition do not affect it.
func (u Union) Hash() string {
	members := u.Members()

	hashes := make([]string, 0, len(members))
	for _, member := range members {
		hashes = append(hashes, member.Hash())
	}

	return "U{" + strings.Join(hashes, "|") + "}"
}

// Equal implements Type. A Union equals an Optional with the same members.
func (u Union) Equal(other Type) bool {
	if o, ok := other.(Optional); ok {
		other = o.AsUnion()
	}

	if o, ok := other.(Union); ok && u.members != nil && o.members != nil {
		return u.members.Equal(o.members)
	}

	return equalTypes(u, other)
}

func (u Union) String() string {
	members := u.Members()

	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, member.String())
	}

	return "Union[" + strings.Join(names, ", ") + "]"
}

// Optional is sugar for Union[Inner, None].
type Optional struct {
	Inner Type
}

func (Optional) isType() {}

// AsUnion expands the optional into its union form.
func (o Optional) AsUnion() Union {
	return NewUnion(o.Inner, NoneType())
}

// Hash implements Type. It is the hash of the equivalent Union.
func (o Optional) Hash() string {
	return o.AsUnion().Hash()
}

// Equal implements Type.
func (o Optional) Equal(other Type) bool {
	return o.AsUnion().Equal(other)
}

func (o Optional) String() string {
	return "Optional[" + o.Inner.String() + "]"
}

func equalTypes(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Hash() == b.Hash()
}

// TypeMembers lists the members of a union-like type, or the type itself.
func TypeMembers(t Type) []Type {
	switch v := t.(type) {
	case Union:
		return v.Members()
	case Optional:
		return v.AsUnion().Members()
	default:
		return []Type{t}
	}
}
