/*
Package asm writes and reads assembler source listings made of labelled
sections of byte directives.

A listing looks like this for the default dialect:

	logo_clut_size:
		.byte $02

	logo_clut:
		.byte $00, $00, $FF, $00
		.byte $00, $FF, $00, $00

Every byte is written as exactly two hexadecimal digits so a listing can be
read back byte for byte with Parse.
*/
package asm

import (
	"fmt"
	"sort"
	"strings"
)

// Extension is the file suffix used for listings
const Extension = ".asm"

// Dialect describes the syntax of one assembler family.
type Dialect struct {
	Name      string
	Directive string // Byte directive, e.g. ".byte"
	Prefix    string // Hex literal prefix, e.g. "$"
	Separator string
}

// Literal formats b as a hex literal.
func (d Dialect) Literal(b byte) string {
	return fmt.Sprintf("%s%02X", d.Prefix, b)
}

var (
	// CA65 is the cc65 assembler syntax and the default.
	CA65 = Dialect{Name: "ca65", Directive: ".byte", Prefix: "$", Separator: ", "}
	// ASM68K is the Motorola style used by asm68k and vasm.
	ASM68K = Dialect{Name: "asm68k", Directive: "dc.b", Prefix: "$", Separator: ", "}
	// RGBDS is the Game Boy assembler syntax.
	RGBDS = Dialect{Name: "rgbds", Directive: "db", Prefix: "$", Separator: ", "}
	// NASM is the Intel style used by nasm.
	NASM = Dialect{Name: "nasm", Directive: "db", Prefix: "0x", Separator: ", "}
)

// Default is the dialect used when none is chosen
var Default = CA65

var dialects = map[string]Dialect{
	CA65.Name:   CA65,
	ASM68K.Name: ASM68K,
	RGBDS.Name:  RGBDS,
	NASM.Name:   NASM,
}

// Lookup returns the dialect with the given name, ignoring case.
func Lookup(name string) (Dialect, error) {
	if d, ok := dialects[strings.ToLower(name)]; ok {
		return d, nil
	}
	return Dialect{}, fmt.Errorf("asm: unknown assembler %q, expected one of %s", name, strings.Join(Names(), ", "))
}

// Names returns the names of the known dialects, sorted.
func Names() []string {
	names := make([]string, 0, len(dialects))
	for n := range dialects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
