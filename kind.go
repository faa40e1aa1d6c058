package docset

import "strings"

// Kind identifies a category of indexable symbol declaration.
type Kind int

// Symbol kinds, in the order they are extracted from a listing page.
const (
	KindStruct Kind = iota + 1
	KindEnum
	KindMacro
	KindTypedef
	KindConstant
	KindTrait
	KindFunction
	KindUnion
)

// kindInfo maps a kind to its listing-page markup and docset category.
// A rustdoc release that renames its markup classes only needs this table
// updated.
type kindInfo struct {
	marker string
	label  string
}

var kindTable = map[Kind]kindInfo{
	KindStruct:   {marker: "structs", label: "structs"},
	KindEnum:     {marker: "enums", label: "enums"},
	KindMacro:    {marker: "macros", label: "macros"},
	KindTypedef:  {marker: "types", label: "types"},
	KindConstant: {marker: "constants", label: "constants"},
	KindTrait:    {marker: "traits", label: "traits"},
	KindFunction: {marker: "functions", label: "functions"},
	KindUnion:    {marker: "unions", label: "unions"},
}

// Kinds returns every symbol kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindStruct,
		KindEnum,
		KindMacro,
		KindTypedef,
		KindConstant,
		KindTrait,
		KindFunction,
		KindUnion,
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// Marker returns the HTML class token that groups declarations of this
// kind on a listing page.
func (k Kind) Marker() string {
	return kindTable[k].marker
}

// Label returns the plural docset category, e.g. "structs".
func (k Kind) Label() string {
	return kindTable[k].label
}

// PersistedType returns the singular form stored in the index type column.
func (k Kind) PersistedType() string {
	return strings.TrimSuffix(k.Label(), "s")
}

// String returns the persisted type, or "unknown" for invalid kinds.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return k.PersistedType()
}
