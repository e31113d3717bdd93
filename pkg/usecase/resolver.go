package usecase

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/combine/pkg/domain/model"
)

// Resolver turns a combo URL into a ComboRequest rooted at a fixed directory
type Resolver struct {
	root string
	mime *model.MIMETable
}

// NewResolver creates a Resolver. A nil table falls back to the default one.
func NewResolver(root string, mime *model.MIMETable) *Resolver {
	if mime == nil {
		mime = model.NewMIMETable(nil)
	}
	return &Resolver{
		root: root,
		mime: mime,
	}
}

// Resolve parses rawURL, e.g. "/static/??a.css,b.css". A URL without the
// marker is handled as a combo of one file, so "/static/a.css" and
// "/??static/a.css" resolve to the same path.
func (x *Resolver) Resolve(rawURL string) *model.ComboRequest {
	if !strings.Contains(rawURL, model.ComboMarker) {
		rawURL = strings.Replace(rawURL, "/", "/"+model.ComboMarker, 1)
	}

	base, list, _ := strings.Cut(rawURL, model.ComboMarker)

	// Cache busting suffix, e.g. "??a.css,b.css?v=3"
	list, _, _ = strings.Cut(list, "?")

	req := &model.ComboRequest{
		ID:       uuid.NewString(),
		BasePath: unescape(base),
		MIMEType: model.DefaultMIMEType,
	}

	for _, name := range strings.Split(list, ",") {
		if name == "" {
			continue
		}
		name = unescape(name)
		req.FileNames = append(req.FileNames, name)
		req.Paths = append(req.Paths, filepath.Join(x.root, req.BasePath, name))
	}

	if len(req.Paths) > 0 {
		req.MIMEType = x.mime.Lookup(filepath.Ext(req.Paths[0]))
	}

	return req
}

func unescape(s string) string {
	if v, err := url.PathUnescape(s); err == nil {
		return v
	}
	return s
}
