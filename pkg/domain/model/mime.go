package model

import "strings"

// DefaultMIMEType is returned for extensions missing from the table
const DefaultMIMEType = "text/plain"

var defaultMIMETypes = map[string]string{
	".css": "text/css",
	".js":  "application/javascript",
}

// MIMETable maps file extensions to content types. It is immutable once built.
type MIMETable struct {
	types map[string]string
}

// NewMIMETable builds a table from the default entries, overridden and
// extended by extra. Keys are normalized to a lower-case extension with a
// leading dot, so "SVG" and ".svg" are the same entry.
func NewMIMETable(extra map[string]string) *MIMETable {
	types := make(map[string]string, len(defaultMIMETypes)+len(extra))
	for ext, typ := range defaultMIMETypes {
		types[ext] = typ
	}
	for ext, typ := range extra {
		if ext == "" || typ == "" {
			continue
		}
		types[normalizeExt(ext)] = typ
	}

	return &MIMETable{types: types}
}

// Lookup returns the content type for ext, or DefaultMIMEType
func (x *MIMETable) Lookup(ext string) string {
	if typ, ok := x.types[normalizeExt(ext)]; ok {
		return typ
	}
	return DefaultMIMEType
}

// Len returns the number of registered extensions
func (x *MIMETable) Len() int {
	return len(x.types)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
