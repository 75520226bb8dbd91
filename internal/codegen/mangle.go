// Package codegen turns a parsed protocol (internal/idl.Protocol) into
// Go source: one struct per IDL struct/union, one typed constant group
// per enum, and one client method per procedure. Emission is a pure,
// total function of its input AST: the same Protocol always produces
// byte-identical Go source, regardless of process or platform.
package codegen

import (
	"strings"

	"github.com/jbweber/virtnative/internal/idl"
)

// mangleType converts an IDL struct/enum/union/typedef name to an
// exported Go identifier: strip the "remote_" prefix and convert to
// UpperCamelCase. A trailing "_args"/"_ret" is kept, so
// remote_domain_lookup_by_name_args becomes DomainLookupByNameArgs.
func mangleType(idlName string) string {
	s := strings.TrimPrefix(idlName, "remote_")
	return snakeToCamel(s)
}

// mangleField converts an IDL field name to an exported Go field
// name.
func mangleField(idlName string) string {
	return snakeToCamel(idlName)
}

// commonVariantPrefix returns the longest prefix shared by every
// variant name in an enum, trimmed back to end immediately after an
// "_" so it always strips whole snake-case segments. Different enums
// carry different prefixes on their variants (REMOTE_AUTH_* for
// remote_auth_type, VIR_DOMAIN_* for remote_domain_state, since the
// latter's variants come from libvirt's public C enum, not the RPC
// wire protocol's own REMOTE_ namespace), so the prefix must be
// computed per enum rather than assumed.
func commonVariantPrefix(variants []idl.EnumVariant) string {
	if len(variants) == 0 {
		return ""
	}
	prefix := variants[0].Name
	for _, v := range variants[1:] {
		prefix = commonStringPrefix(prefix, v.Name)
		if prefix == "" {
			break
		}
	}
	if idx := strings.LastIndex(prefix, "_"); idx >= 0 {
		return prefix[:idx+1]
	}
	return ""
}

func commonStringPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// mangleEnumVariant converts an enum variant name to an exported Go
// constant name scoped under its enum's mangled type name, e.g.
// REMOTE_AUTH_NONE under enum remote_auth_type (common variant prefix
// "REMOTE_AUTH_") becomes AuthNone.
func mangleEnumVariant(enumIDLName, prefix, variantIDLName string) string {
	enumStem := strings.TrimPrefix(enumIDLName, "remote_")
	enumStem = strings.TrimSuffix(enumStem, "_type")
	v := strings.TrimPrefix(variantIDLName, prefix)
	return snakeToCamel(enumStem) + snakeToCamel(strings.ToLower(v))
}

// mangleProcedure strips the REMOTE_PROC_ prefix from a procedure enum
// variant and converts it to the exported Go method name used on the
// generated client, e.g. REMOTE_PROC_CONNECT_GET_VERSION becomes
// ConnectGetVersion.
func mangleProcedure(procIDLName string) string {
	s := strings.TrimPrefix(procIDLName, "REMOTE_PROC_")
	return snakeToCamel(strings.ToLower(s))
}

// snakeToCamel converts a lower_snake_case or UPPER_SNAKE_CASE string
// to UpperCamelCase.
func snakeToCamel(s string) string {
	parts := strings.Split(strings.ToLower(s), "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if acr, ok := acronyms[p]; ok {
			b.WriteString(acr)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// acronyms restores the small set of all-caps acronyms libvirt's
// naming convention relies on, so generated identifiers read the way
// a human author would write them. Matched per whole snake-case
// segment, never as a substring, so a field like "identifier" is left
// alone.
var acronyms = map[string]string{
	"uuid": "UUID",
	"id":   "ID",
	"url":  "URL",
	"cpu":  "CPU",
	"io":   "IO",
	"xml":  "XML",
	"uri":  "URI",
}
