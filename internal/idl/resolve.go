package idl

import "strings"

// resolve runs the second, semantic pass over a syntactically parsed
// Protocol: every Named type reference is checked against the set of
// declared names, every constant-named bound is substituted with its
// literal value. It does not fill Protocol.Procedures; that is done
// by PairProcedures.
func resolve(p *Protocol) error {
	known := map[string]bool{
		"void": true,
	}
	for _, d := range p.Order {
		known[d.DeclName()] = true
	}

	consts := map[string]int64{}
	for _, c := range p.Constants {
		consts[c.Name] = c.Value
	}

	resolveLength := func(l *LengthSpec) error {
		if l.UnresolvedConst == "" {
			return nil
		}
		v, ok := consts[l.UnresolvedConst]
		if !ok {
			return &ParseError{Kind: UndefinedConstant, Snippet: l.UnresolvedConst}
		}
		if l.Fixed {
			l.N = int(v)
		} else {
			l.Max = int(v)
		}
		l.UnresolvedConst = ""
		return nil
	}

	var resolveType func(t *Type) error
	resolveType = func(t *Type) error {
		switch t.Kind {
		case KindNamed:
			if !known[t.Ref] {
				return &ParseError{Kind: UndefinedType, Snippet: t.Ref}
			}
		case KindString, KindOpaque:
			if err := resolveLength(&t.Length); err != nil {
				return err
			}
		case KindArray:
			if err := resolveLength(&t.Length2); err != nil {
				return err
			}
			return resolveType(t.Elem)
		case KindOptional:
			return resolveType(t.Inner)
		}
		return nil
	}

	for _, s := range p.Structs {
		for i := range s.Fields {
			if err := resolveType(&s.Fields[i].Type); err != nil {
				return err
			}
		}
	}
	for _, u := range p.Unions {
		if err := resolveType(&u.Discriminant.Type); err != nil {
			return err
		}
		for _, c := range u.Cases {
			if c.Field != nil {
				if err := resolveType(&c.Field.Type); err != nil {
					return err
				}
			}
		}
		if u.Default != nil {
			if err := resolveType(&u.Default.Type); err != nil {
				return err
			}
		}
	}
	for _, td := range p.Typedefs {
		if err := resolveType(&td.Target); err != nil {
			return err
		}
	}

	return nil
}

// PairProcedures expands the distinguished procedure enum (if any)
// into p.Procedures, pairing each variant with its conventionally
// named args/ret structs. This is a codegen-time concern, not part of
// parsing: Parse yields the raw enum and type table only, and a
// caller that wants procedure/struct pairing calls PairProcedures
// explicitly once it has decided how to interpret the protocol's
// naming convention.
func PairProcedures(p *Protocol) {
	p.Procedures = nil

	structByName := map[string]bool{}
	for _, s := range p.Structs {
		structByName[s.Name] = true
	}

	for _, e := range p.Enums {
		if !isProcedureEnum(e.Name) {
			continue
		}
		for _, v := range e.Variants {
			base := procedureBaseName(v.Name)
			argsName := "remote_" + base + "_args"
			retName := "remote_" + base + "_ret"
			proc := &Procedure{Name: v.Name, Number: v.Value}
			if structByName[argsName] {
				proc.Args = argsName
			}
			if structByName[retName] {
				proc.Ret = retName
			}
			p.Procedures = append(p.Procedures, proc)
		}
	}
}

// procedureBaseName strips the REMOTE_PROC_ prefix from a procedure
// enum variant and lowercases it, producing the stem shared by its
// paired args/ret struct names (e.g. REMOTE_PROC_CONNECT_GET_VERSION
// -> "connect_get_version").
func procedureBaseName(variant string) string {
	s := strings.TrimPrefix(variant, "REMOTE_PROC_")
	return strings.ToLower(s)
}
