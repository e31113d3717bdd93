package model

// ComboMarker separates the base directory from the file list in a combo URL
const ComboMarker = "??"

// ComboRequest represents a parsed combo URL
type ComboRequest struct {
	ID        string   // Correlation ID for logs and error reports
	BasePath  string   // Directory prefix shared by all files
	FileNames []string // File names relative to BasePath, in output order
	Paths     []string // Resolved paths, same order as FileNames
	MIMEType  string   // Content type derived from the first file
}

// IsEmpty reports whether the request names no file
func (x *ComboRequest) IsEmpty() bool {
	return len(x.Paths) == 0
}
