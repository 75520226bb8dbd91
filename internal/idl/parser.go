package idl

import (
	"strings"
)

// Parse parses the text of one *.x interface-definition file into a
// Protocol. Parsing is a pure function of its input: identical source
// text (modulo comments and whitespace) always yields a
// structurally-identical Protocol.
func Parse(src string) (*Protocol, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	proto := &Protocol{}
	names := map[string]bool{}

	for p.tok.kind != tokEOF {
		var decl Decl
		var err error
		switch {
		case p.isKeyword("const"):
			decl, err = p.parseConst()
		case p.isKeyword("typedef"):
			decl, err = p.parseTypedef()
		case p.isKeyword("struct"):
			decl, err = p.parseStruct()
		case p.isKeyword("enum"):
			decl, err = p.parseEnum()
		case p.isKeyword("union"):
			decl, err = p.parseUnion()
		default:
			return nil, p.errorf(UnexpectedToken, p.tok.text, "expected a top-level declaration")
		}
		if err != nil {
			return nil, err
		}
		if names[decl.DeclName()] {
			return nil, &ParseError{Kind: DuplicateName, Line: p.tok.line, Column: p.tok.column, Snippet: decl.DeclName()}
		}
		names[decl.DeclName()] = true
		proto.Order = append(proto.Order, decl)

		switch d := decl.(type) {
		case *ConstDecl:
			proto.Constants = append(proto.Constants, d)
		case *TypedefDecl:
			proto.Typedefs = append(proto.Typedefs, d)
		case *StructDecl:
			proto.Structs = append(proto.Structs, d)
		case *EnumDecl:
			proto.Enums = append(proto.Enums, d)
		case *UnionDecl:
			proto.Unions = append(proto.Unions, d)
		}
	}

	if err := resolve(proto); err != nil {
		return nil, err
	}
	return proto, nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) errorf(kind ErrorKind, snippet, detail string) error {
	return &ParseError{Kind: kind, Line: p.tok.line, Column: p.tok.column, Snippet: snippet, Detail: detail}
}

func (p *parser) isKeyword(kw string) bool {
	return p.tok.kind == tokIdent && p.tok.text == kw
}

func (p *parser) expectPunct(s string) error {
	if p.tok.kind != tokPunct || p.tok.text != s {
		return p.errorf(UnexpectedToken, p.tok.text, "expected '"+s+"'")
	}
	return p.advance()
}

func (p *parser) expectIdent() (string, error) {
	if p.tok.kind != tokIdent {
		return "", p.errorf(UnexpectedToken, p.tok.text, "expected identifier")
	}
	s := p.tok.text
	return s, p.advance()
}

// parseNumberOrConst parses either a literal integer or a reference to
// an earlier `const` name (resolved in the second pass).
func (p *parser) parseNumberOrConst() (int64, string, error) {
	if p.tok.kind == tokNumber {
		n := p.tok.num
		return n, "", p.advance()
	}
	if p.tok.kind == tokIdent {
		name := p.tok.text
		return 0, name, p.advance()
	}
	return 0, "", p.errorf(UnexpectedToken, p.tok.text, "expected number or constant name")
}

func (p *parser) parseConst() (Decl, error) {
	if err := p.advance(); err != nil { // consume "const"
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("="); err != nil {
		return nil, err
	}
	if p.tok.kind != tokNumber {
		return nil, p.errorf(UnexpectedToken, p.tok.text, "expected integer literal")
	}
	val := p.tok.num
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	return &ConstDecl{Name: name, Value: val}, nil
}

// parseBaseType parses a primitive keyword, "opaque", "string", or a
// Named reference to an earlier declaration. It does not consume any
// trailing array/bound syntax; that is handled by the caller since
// its placement differs between typedefs and struct fields.
func (p *parser) parseBaseType() (Type, error) {
	if p.tok.kind != tokIdent {
		return Type{}, p.errorf(UnexpectedToken, p.tok.text, "expected a type name")
	}
	name := p.tok.text
	kind, isPrimitive := primitiveKinds[name]
	if err := p.advance(); err != nil {
		return Type{}, err
	}
	if isPrimitive {
		return Type{Kind: kind}, nil
	}
	return Type{Kind: KindNamed, Ref: name}, nil
}

var primitiveKinds = map[string]Kind{
	"int":     KindInt,
	"unsigned": KindUInt,
	"hyper":   KindHyper,
	"float":   KindFloat,
	"double":  KindDouble,
	"bool":    KindBool,
}

// parseDeclaredType parses a complete field/typedef type, including
// the "opaque"/"string" bound syntax (TYPE NAME<BOUND>; or
// TYPE NAME[N];), the "*" optional-pointer marker, and array bounds
// attached to an otherwise-ordinary type (TYPE NAME<BOUND>;). It
// returns the Type and the declared name.
func (p *parser) parseDeclaredType() (Type, string, error) {
	// "unsigned int" / "unsigned hyper" collapse to a single keyword in
	// primitiveKinds already tokenized as "unsigned"; libvirt's grammar
	// always writes "unsigned int" so consume an optional following
	// "int"/"hyper" token for readability parity with the source.
	if p.tok.kind == tokIdent && p.tok.text == "unsigned" {
		if err := p.advance(); err != nil {
			return Type{}, "", err
		}
		kind := KindUInt
		if p.tok.kind == tokIdent && p.tok.text == "hyper" {
			kind = KindUHyper
			if err := p.advance(); err != nil {
				return Type{}, "", err
			}
		} else if p.tok.kind == tokIdent && p.tok.text == "int" {
			if err := p.advance(); err != nil {
				return Type{}, "", err
			}
		}
		return p.finishDeclaredType(Type{Kind: kind})
	}

	if p.tok.kind == tokIdent && (p.tok.text == "opaque" || p.tok.text == "string") {
		isString := p.tok.text == "string"
		if err := p.advance(); err != nil {
			return Type{}, "", err
		}
		optional, err := p.consumeOptionalStar()
		if err != nil {
			return Type{}, "", err
		}
		name, err := p.expectIdent()
		if err != nil {
			return Type{}, "", err
		}
		length, err := p.parseBoundSuffix(isString)
		if err != nil {
			return Type{}, "", err
		}
		kind := KindOpaque
		if isString {
			kind = KindString
		}
		t := Type{Kind: kind, Length: length}
		if optional {
			inner := t
			t = Type{Kind: KindOptional, Inner: &inner}
		}
		if err := p.expectPunct(";"); err != nil {
			return Type{}, "", err
		}
		return t, name, nil
	}

	base, err := p.parseBaseType()
	if err != nil {
		return Type{}, "", err
	}
	return p.finishDeclaredType(base)
}

// finishDeclaredType handles the optional "*", the identifier, and any
// trailing array bound for a type already parsed as a base/primitive
// type.
func (p *parser) finishDeclaredType(base Type) (Type, string, error) {
	optional, err := p.consumeOptionalStar()
	if err != nil {
		return Type{}, "", err
	}
	name, err := p.expectIdent()
	if err != nil {
		return Type{}, "", err
	}
	// An array bound following the name turns this into T arr<N>; / T
	// arr[N];
	if p.tok.kind == tokPunct && (p.tok.text == "<" || p.tok.text == "[") {
		length, err := p.parseBoundSuffix(false)
		if err != nil {
			return Type{}, "", err
		}
		elem := base
		t := Type{Kind: KindArray, Elem: &elem, Length2: length}
		if optional {
			inner := t
			t = Type{Kind: KindOptional, Inner: &inner}
		}
		if err := p.expectPunct(";"); err != nil {
			return Type{}, "", err
		}
		return t, name, nil
	}
	t := base
	if optional {
		inner := t
		t = Type{Kind: KindOptional, Inner: &inner}
	}
	if err := p.expectPunct(";"); err != nil {
		return Type{}, "", err
	}
	return t, name, nil
}

func (p *parser) consumeOptionalStar() (bool, error) {
	if p.tok.kind == tokPunct && p.tok.text == "*" {
		return true, p.advance()
	}
	return false, nil
}

// parseBoundSuffix parses "<N>", "<>", or "[N]" following a type/name
// pair. isString does not change the result: opaque and string both
// yield an unbounded <> when no literal is given, matching libvirt's
// own grammar.
func (p *parser) parseBoundSuffix(isString bool) (LengthSpec, error) {
	_ = isString
	if p.tok.kind != tokPunct || (p.tok.text != "<" && p.tok.text != "[") {
		return LengthSpec{}, p.errorf(UnexpectedToken, p.tok.text, "expected '<' or '['")
	}
	fixed := p.tok.text == "["
	closer := ">"
	if fixed {
		closer = "]"
	}
	if err := p.advance(); err != nil {
		return LengthSpec{}, err
	}
	if p.tok.kind == tokPunct && p.tok.text == closer {
		if err := p.advance(); err != nil {
			return LengthSpec{}, err
		}
		return LengthSpec{Fixed: fixed, Max: -1}, nil
	}
	n, constName, err := p.parseNumberOrConst()
	if err != nil {
		return LengthSpec{}, err
	}
	if p.tok.kind != tokPunct || p.tok.text != closer {
		return LengthSpec{}, p.errorf(UnexpectedToken, p.tok.text, "expected '"+closer+"'")
	}
	if err := p.advance(); err != nil {
		return LengthSpec{}, err
	}
	if constName != "" {
		if fixed {
			return LengthSpec{Fixed: true, UnresolvedConst: constName}, nil
		}
		return LengthSpec{Fixed: false, UnresolvedConst: constName}, nil
	}
	if fixed {
		return LengthSpec{Fixed: true, N: int(n)}, nil
	}
	return LengthSpec{Fixed: false, Max: int(n)}, nil
}

func (p *parser) parseTypedef() (Decl, error) {
	if err := p.advance(); err != nil { // consume "typedef"
		return nil, err
	}
	typ, name, err := p.parseDeclaredType()
	if err != nil {
		return nil, err
	}
	return &TypedefDecl{Name: name, Target: typ}, nil
}

func (p *parser) parseFieldDecl() (Field, error) {
	typ, name, err := p.parseDeclaredType()
	if err != nil {
		return Field{}, err
	}
	return Field{Name: name, Type: typ}, nil
}

func (p *parser) parseStruct() (Decl, error) {
	if err := p.advance(); err != nil { // consume "struct"
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var fields []Field
	seen := map[string]bool{}
	for !(p.tok.kind == tokPunct && p.tok.text == "}") {
		f, err := p.parseFieldDecl()
		if err != nil {
			return nil, err
		}
		if seen[f.Name] {
			return nil, &ParseError{Kind: DuplicateName, Line: p.tok.line, Column: p.tok.column, Snippet: f.Name}
		}
		seen[f.Name] = true
		fields = append(fields, f)
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	return &StructDecl{Name: name, Fields: fields}, nil
}

func (p *parser) parseEnum() (Decl, error) {
	if err := p.advance(); err != nil { // consume "enum"
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var variants []EnumVariant
	seenNames := map[string]bool{}
	seenValues := map[int32]bool{}
	next := int32(0)
	for !(p.tok.kind == tokPunct && p.tok.text == "}") {
		vname, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		val := next
		if p.tok.kind == tokPunct && p.tok.text == "=" {
			if err := p.advance(); err != nil {
				return nil, err
			}
			n, _, err := p.parseNumberOrConst()
			if err != nil {
				return nil, err
			}
			val = int32(n)
		}
		if seenNames[vname] {
			return nil, &ParseError{Kind: DuplicateName, Line: p.tok.line, Column: p.tok.column, Snippet: vname}
		}
		if seenValues[val] {
			return nil, &ParseError{Kind: DuplicateEnumValue, Line: p.tok.line, Column: p.tok.column, Snippet: vname}
		}
		seenNames[vname] = true
		seenValues[val] = true
		variants = append(variants, EnumVariant{Name: vname, Value: val})
		next = val + 1

		if p.tok.kind == tokPunct && p.tok.text == "," {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	return &EnumDecl{Name: name, Variants: variants}, nil
}

func (p *parser) parseUnion() (Decl, error) {
	if err := p.advance(); err != nil { // consume "union"
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.isKeywordErr("switch"); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	discField, err := func() (Field, error) {
		typ, err := p.parseBaseType()
		if err != nil {
			return Field{}, err
		}
		dname, err := p.expectIdent()
		if err != nil {
			return Field{}, err
		}
		return Field{Name: dname, Type: typ}, nil
	}()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	var cases []UnionCase
	var def *Field
	var hasDefault bool
	for !(p.tok.kind == tokPunct && p.tok.text == "}") {
		if p.isKeyword("case") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			n, _, err := p.parseNumberOrConst()
			if err != nil {
				return nil, err
			}
			if err := p.expectPunct(":"); err != nil {
				return nil, err
			}
			field, err := p.parseUnionArm()
			if err != nil {
				return nil, err
			}
			cases = append(cases, UnionCase{Value: n, Field: field})
			continue
		}
		if p.isKeyword("default") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.expectPunct(":"); err != nil {
				return nil, err
			}
			field, err := p.parseUnionArm()
			if err != nil {
				return nil, err
			}
			def = field
			hasDefault = true
			continue
		}
		return nil, p.errorf(UnexpectedToken, p.tok.text, "expected 'case' or 'default'")
	}
	if err := p.expectPunct("}"); err != nil {
		return nil, err
	}
	if err := p.expectPunct(";"); err != nil {
		return nil, err
	}
	return &UnionDecl{Name: name, Discriminant: discField, Cases: cases, Default: def, HasDefault: hasDefault}, nil
}

func (p *parser) parseUnionArm() (*Field, error) {
	if p.isKeyword("void") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectPunct(";"); err != nil {
			return nil, err
		}
		return nil, nil
	}
	f, err := p.parseFieldDecl()
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (p *parser) isKeywordErr(kw string) error {
	if !p.isKeyword(kw) {
		return p.errorf(UnexpectedToken, p.tok.text, "expected '"+kw+"'")
	}
	return nil
}

// procedureEnumSuffix identifies the distinguished enum that lists
// every RPC procedure, per libvirt's own naming convention.
const procedureEnumSuffix = "_PROCEDURE"

func isProcedureEnum(name string) bool {
	return strings.HasSuffix(strings.ToUpper(name), procedureEnumSuffix)
}
