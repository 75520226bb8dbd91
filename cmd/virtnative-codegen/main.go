// Command virtnative-codegen reads an IDL file and writes the Go
// source internal/codegen emits for it. It is invoked via a
// go:generate directive in internal/protocol, not run directly by
// end users.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jbweber/virtnative/internal/codegen"
	"github.com/jbweber/virtnative/internal/idl"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "virtnative-codegen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	in := flag.String("in", "idl/remote_protocol.x", "path to the .x IDL source")
	out := flag.String("out", "internal/protocol/generated.go", "path to write the generated Go source")
	pkg := flag.String("package", "protocol", "package name for the generated source")
	flag.Parse()

	src, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("read %s: %w", *in, err)
	}

	proto, err := idl.Parse(string(src))
	if err != nil {
		return fmt.Errorf("parse %s: %w", *in, err)
	}

	generated, err := codegen.Emit(*pkg, proto)
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	if err := os.WriteFile(*out, generated, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	return nil
}
