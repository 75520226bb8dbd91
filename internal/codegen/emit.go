package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/jbweber/virtnative/internal/idl"
)

// Emit renders a parsed Protocol as one gofmt-formatted Go source
// file in package pkg. Declarations are emitted in a stable
// topological order (dependencies before dependents, ties broken by
// declaration order in the source .x file — see topologicalOrder),
// except that the distinguished procedure enum is skipped (procedures
// are emitted as client methods at the end, sorted by their assigned
// number for a stable read order).
func Emit(pkg string, proto *idl.Protocol) ([]byte, error) {
	idl.PairProcedures(proto)

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by virtnative's IDL compiler. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import (\n\t\"context\"\n\t\"fmt\"\n\n\t\"github.com/jbweber/virtnative/internal/xdr\"\n)\n\n")

	if protocolUsesFixedOpaque16(proto) {
		emitUUIDType(&b)
	}

	// typedefs maps a typedef's IDL name to its target type, so a
	// field referencing it can be encoded/decoded as that underlying
	// type directly: a typedef is a Go type alias, not a defined type,
	// and so carries no Encode/Decode methods of its own.
	typedefs := map[string]idl.Type{}
	for _, td := range proto.Typedefs {
		typedefs[td.Name] = td.Target
	}

	for _, d := range topologicalOrder(proto.Order) {
		switch decl := d.(type) {
		case *idl.ConstDecl:
			fmt.Fprintf(&b, "const %s = %d\n\n", mangleType(decl.Name), decl.Value)
		case *idl.EnumDecl:
			if isProcedureEnum(decl.Name) {
				continue
			}
			emitEnum(&b, decl)
		case *idl.StructDecl:
			emitStruct(&b, decl, typedefs)
		case *idl.UnionDecl:
			emitUnion(&b, decl, typedefs)
		case *idl.TypedefDecl:
			emitTypedef(&b, decl)
		}
	}

	procs := append([]*idl.Procedure(nil), proto.Procedures...)
	sort.Slice(procs, func(i, j int) bool { return procs[i].Number < procs[j].Number })
	for _, p := range procs {
		emitProcedure(&b, p)
	}

	src := b.Bytes()
	formatted, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("codegen: gofmt generated source: %w", err)
	}
	return formatted, nil
}

func isProcedureEnum(name string) bool {
	return strings.HasSuffix(strings.ToUpper(name), "_PROCEDURE")
}

// topologicalOrder returns order with every declaration moved after
// the declarations it references by name (a struct field, union
// discriminant/arm, or typedef target of Named type), so a
// declaration is never emitted before something it depends on.
// Declarations with no ordering constraint between them keep their
// relative position, so a protocol already declared dependency-first
// (as libvirt's remote_protocol.x is) emits in its original order.
func topologicalOrder(order []idl.Decl) []idl.Decl {
	index := make(map[string]int, len(order))
	for i, d := range order {
		index[d.DeclName()] = i
	}

	var collect func(t idl.Type, out *[]int)
	collect = func(t idl.Type, out *[]int) {
		switch t.Kind {
		case idl.KindNamed:
			if i, ok := index[t.Ref]; ok {
				*out = append(*out, i)
			}
		case idl.KindArray:
			collect(*t.Elem, out)
		case idl.KindOptional:
			collect(*t.Inner, out)
		}
	}

	deps := make([][]int, len(order))
	for i, d := range order {
		var out []int
		switch decl := d.(type) {
		case *idl.StructDecl:
			for _, f := range decl.Fields {
				collect(f.Type, &out)
			}
		case *idl.UnionDecl:
			collect(decl.Discriminant.Type, &out)
			for _, c := range decl.Cases {
				if c.Field != nil {
					collect(c.Field.Type, &out)
				}
			}
			if decl.Default != nil {
				collect(decl.Default.Type, &out)
			}
		case *idl.TypedefDecl:
			collect(decl.Target, &out)
		}
		deps[i] = out
	}

	visited := make([]bool, len(order))
	onStack := make([]bool, len(order))
	result := make([]idl.Decl, 0, len(order))

	// onStack breaks a cycle rather than recursing forever: an
	// optional field of a struct's own type is a valid XDR pointer,
	// not a real ordering dependency, since Go structs can hold a
	// pointer to their own type without a forward declaration.
	var visit func(i int)
	visit = func(i int) {
		if visited[i] || onStack[i] {
			return
		}
		onStack[i] = true
		for _, j := range deps[i] {
			visit(j)
		}
		onStack[i] = false
		visited[i] = true
		result = append(result, order[i])
	}
	for i := range order {
		visit(i)
	}
	return result
}

// isFixedOpaque16 reports whether t is a 16-byte fixed-length opaque
// value, the shape libvirt uses for a UUID whether it arrives via a
// named typedef (remote_uuid) or as a bare inline struct field.
func isFixedOpaque16(t idl.Type) bool {
	return t.Kind == idl.KindOpaque && t.Length.Fixed && t.Length.N == 16
}

// protocolUsesFixedOpaque16 walks every declaration in proto looking
// for a 16-byte fixed opaque value, so Emit only declares the UUID
// type when something in the protocol actually needs it.
func protocolUsesFixedOpaque16(proto *idl.Protocol) bool {
	var uses func(t idl.Type) bool
	uses = func(t idl.Type) bool {
		switch t.Kind {
		case idl.KindOpaque:
			return isFixedOpaque16(t)
		case idl.KindArray:
			return uses(*t.Elem)
		case idl.KindOptional:
			return uses(*t.Inner)
		}
		return false
	}
	for _, s := range proto.Structs {
		for _, f := range s.Fields {
			if uses(f.Type) {
				return true
			}
		}
	}
	for _, u := range proto.Unions {
		if uses(u.Discriminant.Type) {
			return true
		}
		for _, c := range u.Cases {
			if c.Field != nil && uses(c.Field.Type) {
				return true
			}
		}
		if u.Default != nil && uses(u.Default.Type) {
			return true
		}
	}
	for _, td := range proto.Typedefs {
		if uses(td.Target) {
			return true
		}
	}
	return false
}

// emitUUIDType emits the dedicated type used for every 16-byte fixed
// opaque value in the protocol, whatever field or typedef it arrives
// through. It shares the fixed-opaque codec path with any other
// fixed-length opaque; the distinct type exists for readability and
// to carry a String() method.
func emitUUIDType(b *bytes.Buffer) {
	fmt.Fprintf(b, "type UUID [16]byte\n\n")
	fmt.Fprintf(b, "func (v UUID) String() string {\n")
	fmt.Fprintf(b, "\treturn fmt.Sprintf(\"%%08x-%%04x-%%04x-%%04x-%%012x\", v[0:4], v[4:6], v[6:8], v[8:10], v[10:16])\n")
	fmt.Fprintf(b, "}\n\n")
}

func emitEnum(b *bytes.Buffer, e *idl.EnumDecl) {
	typeName := mangleType(e.Name)
	prefix := commonVariantPrefix(e.Variants)
	fmt.Fprintf(b, "type %s int32\n\nconst (\n", typeName)
	for _, v := range e.Variants {
		fmt.Fprintf(b, "\t%s %s = %d\n", mangleEnumVariant(e.Name, prefix, v.Name), typeName, v.Value)
	}
	fmt.Fprintf(b, ")\n\n")

	fmt.Fprintf(b, "func (v %s) String() string {\n\tswitch v {\n", typeName)
	for _, v := range e.Variants {
		fmt.Fprintf(b, "\tcase %s:\n\t\treturn %q\n", mangleEnumVariant(e.Name, prefix, v.Name), v.Name)
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn fmt.Sprintf(\"%s(%%d)\", int32(v))\n\t}\n}\n\n", typeName)

	fmt.Fprintf(b, "func (v %s) Encode(e *xdr.Encoder) error {\n\te.Int32(int32(v))\n\treturn nil\n}\n\n", typeName)
	fmt.Fprintf(b, "func (v *%s) Decode(d *xdr.Decoder) error {\n", typeName)
	fmt.Fprintf(b, "\tn, err := d.Int32()\n\tif err != nil {\n\t\treturn err\n\t}\n")
	fmt.Fprintf(b, "\tswitch n {\n")
	for _, v := range e.Variants {
		fmt.Fprintf(b, "\tcase %d:\n", v.Value)
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn fmt.Errorf(\"%s: %%d: %%w\", n, xdr.ErrInvalidEnum)\n\t}\n", typeName)
	fmt.Fprintf(b, "\t*v = %s(n)\n\treturn nil\n}\n\n", typeName)
}

func emitStruct(b *bytes.Buffer, s *idl.StructDecl, typedefs map[string]idl.Type) {
	fmt.Fprintf(b, "type %s struct {\n", mangleType(s.Name))
	for _, f := range s.Fields {
		fmt.Fprintf(b, "\t%s %s\n", mangleField(f.Name), goType(f.Type))
	}
	fmt.Fprintf(b, "}\n\n")
	emitStructCodec(b, s, typedefs)
}

// emitStructCodec emits Encode/Decode methods for a struct, walking
// its fields in declaration order. XDR has no implicit padding
// between aggregate members beyond what each field's own encoding
// contributes, so the struct codec is simply each field's codec
// concatenated in order.
func emitStructCodec(b *bytes.Buffer, s *idl.StructDecl, typedefs map[string]idl.Type) {
	name := mangleType(s.Name)
	fmt.Fprintf(b, "func (v *%s) Encode(e *xdr.Encoder) error {\n", name)
	for _, f := range s.Fields {
		emitEncodeStmt(b, "v."+mangleField(f.Name), f.Type, typedefs)
	}
	fmt.Fprintf(b, "\treturn nil\n}\n\n")

	fmt.Fprintf(b, "func (v *%s) Decode(d *xdr.Decoder) error {\n", name)
	for _, f := range s.Fields {
		emitDecodeStmt(b, "v."+mangleField(f.Name), f.Type, typedefs)
	}
	fmt.Fprintf(b, "\treturn nil\n}\n\n")
}

// emitEncodeStmt writes the statement(s) that encode one Go
// expression of the given IDL type.
func emitEncodeStmt(b *bytes.Buffer, expr string, t idl.Type, typedefs map[string]idl.Type) {
	if t.Kind == idl.KindNamed {
		if target, ok := typedefs[t.Ref]; ok {
			emitEncodeStmt(b, expr, target, typedefs)
			return
		}
	}
	switch t.Kind {
	case idl.KindInt:
		fmt.Fprintf(b, "\te.Int32(%s)\n", expr)
	case idl.KindUInt:
		fmt.Fprintf(b, "\te.Uint32(%s)\n", expr)
	case idl.KindHyper:
		fmt.Fprintf(b, "\te.Int64(%s)\n", expr)
	case idl.KindUHyper:
		fmt.Fprintf(b, "\te.Uint64(%s)\n", expr)
	case idl.KindFloat:
		fmt.Fprintf(b, "\te.Float32(%s)\n", expr)
	case idl.KindDouble:
		fmt.Fprintf(b, "\te.Float64(%s)\n", expr)
	case idl.KindBool:
		fmt.Fprintf(b, "\te.Bool(%s)\n", expr)
	case idl.KindString:
		fmt.Fprintf(b, "\tif err := e.String(%s, %d); err != nil {\n\t\treturn err\n\t}\n", expr, t.Length.Max)
	case idl.KindOpaque:
		if t.Length.Fixed {
			fmt.Fprintf(b, "\te.FixedOpaque(%s[:])\n", expr)
		} else {
			fmt.Fprintf(b, "\tif err := e.VarOpaque(%s, %d); err != nil {\n\t\treturn err\n\t}\n", expr, t.Length.Max)
		}
	case idl.KindArray:
		fmt.Fprintf(b, "\tif err := e.ArrayLen(len(%s), %d); err != nil {\n\t\treturn err\n\t}\n", expr, t.Length2.Max)
		fmt.Fprintf(b, "\tfor _, elem := range %s {\n", expr)
		emitEncodeStmt(b, "elem", *t.Elem, typedefs)
		fmt.Fprintf(b, "\t}\n")
	case idl.KindOptional:
		fmt.Fprintf(b, "\te.Optional(%s != nil)\n", expr)
		fmt.Fprintf(b, "\tif %s != nil {\n", expr)
		emitEncodeStmt(b, "(*"+expr+")", *t.Inner, typedefs)
		fmt.Fprintf(b, "\t}\n")
	case idl.KindNamed:
		fmt.Fprintf(b, "\tif err := (&%s).Encode(e); err != nil {\n\t\treturn err\n\t}\n", expr)
	}
}

// emitDecodeStmt writes the statement(s) that decode into one Go
// expression of the given IDL type.
func emitDecodeStmt(b *bytes.Buffer, expr string, t idl.Type, typedefs map[string]idl.Type) {
	if t.Kind == idl.KindNamed {
		if target, ok := typedefs[t.Ref]; ok {
			emitDecodeStmt(b, expr, target, typedefs)
			return
		}
	}
	switch t.Kind {
	case idl.KindInt:
		fmt.Fprintf(b, "\t{\n\t\tn, err := d.Int32()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\t%s = n\n\t}\n", expr)
	case idl.KindUInt:
		fmt.Fprintf(b, "\t{\n\t\tn, err := d.Uint32()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\t%s = n\n\t}\n", expr)
	case idl.KindHyper:
		fmt.Fprintf(b, "\t{\n\t\tn, err := d.Int64()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\t%s = n\n\t}\n", expr)
	case idl.KindUHyper:
		fmt.Fprintf(b, "\t{\n\t\tn, err := d.Uint64()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\t%s = n\n\t}\n", expr)
	case idl.KindFloat:
		fmt.Fprintf(b, "\t{\n\t\tn, err := d.Float32()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\t%s = n\n\t}\n", expr)
	case idl.KindDouble:
		fmt.Fprintf(b, "\t{\n\t\tn, err := d.Float64()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\t%s = n\n\t}\n", expr)
	case idl.KindBool:
		fmt.Fprintf(b, "\t{\n\t\tn, err := d.Bool()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\t%s = n\n\t}\n", expr)
	case idl.KindString:
		fmt.Fprintf(b, "\t{\n\t\tn, err := d.String(%d)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\t%s = n\n\t}\n", t.Length.Max, expr)
	case idl.KindOpaque:
		if t.Length.Fixed {
			fmt.Fprintf(b, "\t{\n\t\tb, err := d.FixedOpaque(%d)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\tcopy(%s[:], b)\n\t}\n", t.Length.N, expr)
		} else {
			fmt.Fprintf(b, "\t{\n\t\tb, err := d.VarOpaque(%d)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n\t\t%s = b\n\t}\n", t.Length.Max, expr)
		}
	case idl.KindArray:
		elemType := goType(*t.Elem)
		fmt.Fprintf(b, "\t{\n\t\tn, err := d.ArrayLen(%d)\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n", t.Length2.Max)
		fmt.Fprintf(b, "\t\t%s = make([]%s, n)\n\t\tfor i := 0; i < n; i++ {\n", expr, elemType)
		emitDecodeStmt(b, expr+"[i]", *t.Elem, typedefs)
		fmt.Fprintf(b, "\t\t}\n\t}\n")
	case idl.KindOptional:
		innerType := goType(*t.Inner)
		fmt.Fprintf(b, "\t{\n\t\tpresent, err := d.Optional()\n\t\tif err != nil {\n\t\t\treturn err\n\t\t}\n")
		fmt.Fprintf(b, "\t\tif present {\n\t\t\tvar tmp %s\n", innerType)
		emitDecodeStmt(b, "tmp", *t.Inner, typedefs)
		fmt.Fprintf(b, "\t\t\t%s = &tmp\n\t\t} else {\n\t\t\t%s = nil\n\t\t}\n\t}\n", expr, expr)
	case idl.KindNamed:
		fmt.Fprintf(b, "\tif err := (&%s).Decode(d); err != nil {\n\t\treturn err\n\t}\n", expr)
	}
}

func emitTypedef(b *bytes.Buffer, t *idl.TypedefDecl) {
	name := mangleType(t.Name)
	if isFixedOpaque16(t.Target) {
		if name != "UUID" {
			fmt.Fprintf(b, "type %s = UUID\n\n", name)
		}
		return
	}
	fmt.Fprintf(b, "type %s = %s\n\n", name, goType(t.Target))
}

func emitUnion(b *bytes.Buffer, u *idl.UnionDecl, typedefs map[string]idl.Type) {
	name := mangleType(u.Name)
	fmt.Fprintf(b, "// %s is a discriminated union; only the arm field selected by\n", name)
	fmt.Fprintf(b, "// %s is non-nil.\n", mangleField(u.Discriminant.Name))
	fmt.Fprintf(b, "type %s struct {\n", name)
	fmt.Fprintf(b, "\t%s %s\n", mangleField(u.Discriminant.Name), goType(u.Discriminant.Type))
	for _, c := range u.Cases {
		if c.Field == nil {
			continue
		}
		fmt.Fprintf(b, "\t%s *%s\n", mangleField(c.Field.Name), goType(c.Field.Type))
	}
	if u.Default != nil {
		fmt.Fprintf(b, "\t%s *%s\n", mangleField(u.Default.Name), goType(u.Default.Type))
	}
	fmt.Fprintf(b, "}\n\n")
	emitUnionCodec(b, u, typedefs)
}

// emitUnionCodec emits Encode/Decode methods for a discriminated
// union: the discriminant is encoded/decoded first, then exactly one
// arm is encoded/decoded based on its value. Arm fields are pointers,
// so on encode a case whose field is left nil disagrees with the
// discriminant and is ErrDiscriminantMismatch; on decode, only the
// selected arm is allocated, leaving every other arm nil. A
// discriminant matching no case and no default arm is ErrInvalidUnion
// on decode.
func emitUnionCodec(b *bytes.Buffer, u *idl.UnionDecl, typedefs map[string]idl.Type) {
	name := mangleType(u.Name)
	discName := "v." + mangleField(u.Discriminant.Name)

	fmt.Fprintf(b, "func (v *%s) Encode(e *xdr.Encoder) error {\n", name)
	emitEncodeStmt(b, discName, u.Discriminant.Type, typedefs)
	fmt.Fprintf(b, "\tswitch %s {\n", discName)
	for _, c := range u.Cases {
		fmt.Fprintf(b, "\tcase %d:\n", c.Value)
		if c.Field != nil {
			fname := "v." + mangleField(c.Field.Name)
			fmt.Fprintf(b, "\t\tif %s == nil {\n\t\t\treturn xdr.ErrDiscriminantMismatch\n\t\t}\n", fname)
			emitEncodeStmt(b, "(*"+fname+")", c.Field.Type, typedefs)
		}
	}
	if u.Default != nil {
		fname := "v." + mangleField(u.Default.Name)
		fmt.Fprintf(b, "\tdefault:\n")
		fmt.Fprintf(b, "\t\tif %s == nil {\n\t\t\treturn xdr.ErrDiscriminantMismatch\n\t\t}\n", fname)
		emitEncodeStmt(b, "(*"+fname+")", u.Default.Type, typedefs)
	}
	fmt.Fprintf(b, "\t}\n\treturn nil\n}\n\n")

	fmt.Fprintf(b, "func (v *%s) Decode(d *xdr.Decoder) error {\n", name)
	emitDecodeStmt(b, discName, u.Discriminant.Type, typedefs)
	fmt.Fprintf(b, "\tswitch %s {\n", discName)
	for _, c := range u.Cases {
		fmt.Fprintf(b, "\tcase %d:\n", c.Value)
		if c.Field != nil {
			fname := "v." + mangleField(c.Field.Name)
			innerType := goType(c.Field.Type)
			fmt.Fprintf(b, "\t\t{\n\t\t\tvar tmp %s\n", innerType)
			emitDecodeStmt(b, "tmp", c.Field.Type, typedefs)
			fmt.Fprintf(b, "\t\t\t%s = &tmp\n\t\t}\n", fname)
		}
	}
	switch {
	case u.Default != nil:
		fname := "v." + mangleField(u.Default.Name)
		innerType := goType(u.Default.Type)
		fmt.Fprintf(b, "\tdefault:\n")
		fmt.Fprintf(b, "\t\t{\n\t\t\tvar tmp %s\n", innerType)
		emitDecodeStmt(b, "tmp", u.Default.Type, typedefs)
		fmt.Fprintf(b, "\t\t\t%s = &tmp\n\t\t}\n", fname)
	case u.HasDefault:
		fmt.Fprintf(b, "\tdefault:\n")
	default:
		fmt.Fprintf(b, "\tdefault:\n\t\treturn xdr.ErrInvalidUnion\n")
	}
	fmt.Fprintf(b, "\t}\n\treturn nil\n}\n\n")
}

// emitProcedure emits one client method per RPC procedure. The body
// is a thin call through to the generic rpc.Conn.Call primitive;
// codegen's job is to give each procedure a typed Go signature, not to
// reimplement dispatch. A procedure with no args struct takes no
// request parameter (Call is given a nil Encodable); one with no ret
// struct returns only an error (Call is given a nil Decodable) — an
// empty anonymous struct would satisfy neither interface.
func emitProcedure(b *bytes.Buffer, p *idl.Procedure) {
	method := mangleProcedure(p.Name)

	argParam := ""
	argExpr := "nil"
	if p.Args != "" {
		argType := mangleType(p.Args)
		argParam = fmt.Sprintf("args *%s", argType)
		argExpr = "args"
	}

	fmt.Fprintf(b, "// %s issues procedure %d (%s).\n", method, p.Number, p.Name)
	if p.Ret == "" {
		fmt.Fprintf(b, "func (c *RemoteClient) %s(ctx context.Context, %s) error {\n", method, argParam)
		fmt.Fprintf(b, "\tif err := c.conn.Call(ctx, %d, %s, nil); err != nil {\n", p.Number, argExpr)
		fmt.Fprintf(b, "\t\treturn fmt.Errorf(\"%s: %%w\", err)\n", method)
		fmt.Fprintf(b, "\t}\n\treturn nil\n}\n\n")
		return
	}

	retType := mangleType(p.Ret)
	sep := ""
	if argParam != "" {
		sep = ", "
	}
	fmt.Fprintf(b, "func (c *RemoteClient) %s(ctx context.Context%s%s) (*%s, error) {\n", method, sep, argParam, retType)
	fmt.Fprintf(b, "\tvar reply %s\n", retType)
	fmt.Fprintf(b, "\tif err := c.conn.Call(ctx, %d, %s, &reply); err != nil {\n", p.Number, argExpr)
	fmt.Fprintf(b, "\t\treturn nil, fmt.Errorf(\"%s: %%w\", err)\n", method)
	fmt.Fprintf(b, "\t}\n")
	fmt.Fprintf(b, "\treturn &reply, nil\n")
	fmt.Fprintf(b, "}\n\n")
}

func goType(t idl.Type) string {
	switch t.Kind {
	case idl.KindInt:
		return "int32"
	case idl.KindUInt:
		return "uint32"
	case idl.KindHyper:
		return "int64"
	case idl.KindUHyper:
		return "uint64"
	case idl.KindFloat:
		return "float32"
	case idl.KindDouble:
		return "float64"
	case idl.KindBool:
		return "bool"
	case idl.KindString:
		return "string"
	case idl.KindOpaque:
		if t.Length.Fixed {
			if t.Length.N == 16 {
				return "UUID"
			}
			return fmt.Sprintf("[%d]byte", t.Length.N)
		}
		return "[]byte"
	case idl.KindArray:
		return "[]" + goType(*t.Elem)
	case idl.KindOptional:
		return "*" + goType(*t.Inner)
	case idl.KindNamed:
		return mangleType(t.Ref)
	default:
		return "any"
	}
}
