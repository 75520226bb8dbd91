// Package idl parses libvirt's XDR interface-definition ("*.x") text
// into a typed AST. Parsing holds the whole input in memory (libvirt
// protocol files are well under 10^5 bytes) and proceeds in two
// passes: a syntactic parse producing an unresolved Protocol, and a
// resolution pass that binds every Named type reference and constant
// bound.
package idl

// Protocol is the ordered set of declarations parsed from one *.x
// file. Procedures is empty after Parse; PairProcedures fills it from
// the distinguished procedure enumeration.
type Protocol struct {
	Constants  []*ConstDecl
	Structs    []*StructDecl
	Enums      []*EnumDecl
	Unions     []*UnionDecl
	Typedefs   []*TypedefDecl
	Procedures []*Procedure

	// Order records every declaration above in original source order,
	// so consumers that must not reorder output (the emitter) can walk
	// declarations exactly once, in file order, regardless of kind.
	Order []Decl
}

// Decl is implemented by every declaration kind held in Protocol.Order.
type Decl interface {
	DeclName() string
}

// ConstDecl is a `const NAME = LIT;` declaration.
type ConstDecl struct {
	Name  string
	Value int64
}

func (d *ConstDecl) DeclName() string { return d.Name }

// Field is one member of a Struct, or the discriminant/arm of a Union
// case.
type Field struct {
	Name string
	Type Type
}

// StructDecl is a `struct NAME { FIELD; ... };` declaration.
type StructDecl struct {
	Name   string
	Fields []Field
}

func (d *StructDecl) DeclName() string { return d.Name }

// EnumVariant is one `NAME = LIT` member of an EnumDecl.
type EnumVariant struct {
	Name  string
	Value int32
}

// EnumDecl is an `enum NAME { VARIANT = LIT, ... };` declaration.
type EnumDecl struct {
	Name     string
	Variants []EnumVariant
}

func (d *EnumDecl) DeclName() string { return d.Name }

// UnionCase is one `case LIT: ARM;` arm of a UnionDecl. Field is nil
// for a `void` arm.
type UnionCase struct {
	Value int64
	Field *Field
}

// UnionDecl is a `union NAME switch (DISC_TYPE DISC_NAME) { case LIT:
// ARM; ... default: ARM; };` declaration. Default is nil both when
// there is no default clause at all and when the default clause is
// `void`; HasDefault distinguishes the two, since an explicit void
// default still means an unmatched discriminant is not an error.
type UnionDecl struct {
	Name         string
	Discriminant Field
	Cases        []UnionCase
	HasDefault   bool
	Default      *Field // nil if no default clause, or if it is void
}

func (d *UnionDecl) DeclName() string { return d.Name }

// TypedefDecl is a `typedef TYPE NAME (ARRAY_SPEC)?;` declaration.
type TypedefDecl struct {
	Name   string
	Target Type
}

func (d *TypedefDecl) DeclName() string { return d.Name }

// Procedure is one variant of the protocol's distinguished
// `*_procedure` enum, paired with its optional args/ret struct names
// by the caller (the parser itself only yields the raw enum and type
// table; pairing is a codegen-time concern, per spec).
type Procedure struct {
	Name   string // e.g. REMOTE_PROC_CONNECT_GET_VERSION
	Number int32
	Args   string // struct name, or "" if this procedure takes no arguments
	Ret    string // struct name, or "" if this procedure returns nothing
}

// Kind enumerates the primitive and composite XDR type shapes.
type Kind int

const (
	KindInt Kind = iota
	KindUInt
	KindHyper
	KindUHyper
	KindFloat
	KindDouble
	KindBool
	KindString
	KindOpaque
	KindArray
	KindOptional
	KindNamed
)

// LengthSpec describes the bound attached to a string, opaque, or
// array type. A Fixed spec carries no count prefix on the wire; a
// Variable spec does, optionally capped at Max (Max < 0 means
// unbounded).
//
// A bound written as a constant name rather than a literal (e.g.
// `opaque uuid[VIR_UUID_BUFLEN];`) is held unresolved in
// UnresolvedConst until the resolution pass looks it up against the
// file's const declarations and fills in N or Max.
type LengthSpec struct {
	Fixed           bool
	N               int    // element/byte count, when Fixed
	Max             int    // bound, when !Fixed; -1 means unbounded (<>)
	UnresolvedConst string // constant name, until resolve() fills N/Max
}

// Type is one XDR type expression: a primitive, a bounded string or
// opaque blob, a fixed or variable array, an optional pointer, or a
// reference to an earlier declaration.
type Type struct {
	Kind Kind

	// String / Opaque
	Length LengthSpec

	// Array
	Elem   *Type
	Length2 LengthSpec // array length spec (reuses LengthSpec shape)

	// Optional
	Inner *Type

	// Named
	Ref string
}
