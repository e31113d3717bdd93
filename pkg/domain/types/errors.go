package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagResolution marks a combo URL that resolved to no file at all
	ErrTagResolution = goerr.NewTag("resolution")
	// ErrTagNotFound marks a path that does not exist in the asset source
	ErrTagNotFound = goerr.NewTag("not_found")
	// ErrTagNotRegularFile marks a path that exists but is a directory, device, etc.
	ErrTagNotRegularFile = goerr.NewTag("not_regular_file")
	// ErrTagIO marks any other lookup or read failure
	ErrTagIO = goerr.NewTag("io")
)

// ErrorKind returns the name of the first error tag attached to err, or
// "unknown" when err carries none of them.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case goerr.HasTag(err, ErrTagResolution):
		return "resolution"
	case goerr.HasTag(err, ErrTagNotFound):
		return "not_found"
	case goerr.HasTag(err, ErrTagNotRegularFile):
		return "not_regular_file"
	case goerr.HasTag(err, ErrTagIO):
		return "io"
	default:
		return "unknown"
	}
}
