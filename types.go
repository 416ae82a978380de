// types.go — the Vlad static type model.
//
// Types are the five numeric kinds plus bool, each optionally wrapped as
// list<T>. The numeric kinds form a total promotion order
//
//	natural < integer < rational < real < complex
//
// bool does not promote to or from any numeric kind, and list<A> is only
// compatible with list<B> when A and B are mutually promotable numerics.
package vlad

// Kind enumerates the scalar type kinds. The numeric kinds are declared in
// promotion order so the join is a max.
type Kind int

const (
	KindNatural Kind = iota
	KindInteger
	KindRational
	KindReal
	KindComplex
	KindBool
	KindList
)

var kindNames = map[Kind]string{
	KindNatural:  "natural",
	KindInteger:  "integer",
	KindRational: "rational",
	KindReal:     "real",
	KindComplex:  "complex",
	KindBool:     "bool",
	KindList:     "list",
}

func (k Kind) String() string { return kindNames[k] }

// IsNumeric reports membership in the promotion order.
func (k Kind) IsNumeric() bool { return k >= KindNatural && k <= KindComplex }

// joinKind is the least upper bound of two numeric kinds.
func joinKind(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

// Type is a scalar kind or a homogeneous list of a scalar kind. Elem is nil
// unless Kind == KindList.
type Type struct {
	Kind Kind
	Elem *Type
}

func ScalarType(k Kind) Type { return Type{Kind: k} }

func ListType(elem Type) Type {
	e := elem
	return Type{Kind: KindList, Elem: &e}
}

var typeNames = map[string]Kind{
	"natural":  KindNatural,
	"integer":  KindInteger,
	"rational": KindRational,
	"real":     KindReal,
	"complex":  KindComplex,
	"bool":     KindBool,
}

// TypeByName resolves a scalar type name from a signature. "list" is not a
// scalar name; parameterised lists are handled by the parser.
func TypeByName(name string) (Type, bool) {
	k, ok := typeNames[name]
	if !ok {
		return Type{}, false
	}
	return ScalarType(k), true
}

func (t Type) String() string {
	if t.Kind == KindList {
		return "list<" + t.Elem.String() + ">"
	}
	return t.Kind.String()
}

func (t Type) IsNumeric() bool { return t.Kind.IsNumeric() }
func (t Type) IsBool() bool    { return t.Kind == KindBool }
func (t Type) IsList() bool    { return t.Kind == KindList }

// Equal is structural equality.
func (t Type) Equal(u Type) bool {
	if t.Kind != u.Kind {
		return false
	}
	if t.Kind == KindList {
		return t.Elem.Equal(*u.Elem)
	}
	return true
}

// PromotesTo reports whether a value of type t may be supplied where u is
// expected: identical types, numeric widening along the promotion order, or
// list element widening.
func (t Type) PromotesTo(u Type) bool {
	if t.Kind == KindList && u.Kind == KindList {
		return t.Elem.PromotesTo(*u.Elem)
	}
	if t.IsNumeric() && u.IsNumeric() {
		return t.Kind <= u.Kind
	}
	return t.Equal(u)
}

// Join computes the least upper bound of two types when one exists:
// numeric kinds join along the promotion order, identical bools join to
// bool, and lists join element-wise. The second result is false when the
// pair has no join (bool vs numeric, list vs scalar).
func (t Type) Join(u Type) (Type, bool) {
	switch {
	case t.IsNumeric() && u.IsNumeric():
		return ScalarType(joinKind(t.Kind, u.Kind)), true
	case t.IsBool() && u.IsBool():
		return ScalarType(KindBool), true
	case t.IsList() && u.IsList():
		elem, ok := t.Elem.Join(*u.Elem)
		if !ok {
			return Type{}, false
		}
		return ListType(elem), true
	}
	return Type{}, false
}
