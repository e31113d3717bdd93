package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/combine/pkg/domain/model"
	"github.com/m-mizutani/combine/pkg/usecase"
)

func TestResolver_Resolve(t *testing.T) {
	resolver := usecase.NewResolver("/srv", nil)

	tests := []struct {
		name      string
		url       string
		wantBase  string
		wantNames []string
		wantPaths []string
		wantMIME  string
	}{
		{
			name:      "Combo of two stylesheets",
			url:       "/static/??a.css,b.css",
			wantBase:  "/static/",
			wantNames: []string{"a.css", "b.css"},
			wantPaths: []string{"/srv/static/a.css", "/srv/static/b.css"},
			wantMIME:  "text/css",
		},
		{
			name:      "Bare single file",
			url:       "/static/a.css",
			wantBase:  "/",
			wantNames: []string{"static/a.css"},
			wantPaths: []string{"/srv/static/a.css"},
			wantMIME:  "text/css",
		},
		{
			name:      "MIME type from first file only",
			url:       "/static/??a.css,b.js",
			wantBase:  "/static/",
			wantNames: []string{"a.css", "b.js"},
			wantPaths: []string{"/srv/static/a.css", "/srv/static/b.js"},
			wantMIME:  "text/css",
		},
		{
			name:      "Script combo",
			url:       "/js/??lib/x.js,app.js",
			wantBase:  "/js/",
			wantNames: []string{"lib/x.js", "app.js"},
			wantPaths: []string{"/srv/js/lib/x.js", "/srv/js/app.js"},
			wantMIME:  "application/javascript",
		},
		{
			name:      "Order and duplicates are preserved",
			url:       "/static/??b.css,a.css,b.css",
			wantBase:  "/static/",
			wantNames: []string{"b.css", "a.css", "b.css"},
			wantPaths: []string{"/srv/static/b.css", "/srv/static/a.css", "/srv/static/b.css"},
			wantMIME:  "text/css",
		},
		{
			name:      "Unknown extension falls back to text/plain",
			url:       "/docs/??readme.md",
			wantBase:  "/docs/",
			wantNames: []string{"readme.md"},
			wantPaths: []string{"/srv/docs/readme.md"},
			wantMIME:  "text/plain",
		},
		{
			name:      "Cache busting suffix on combo",
			url:       "/static/??a.css,b.css?v=3",
			wantBase:  "/static/",
			wantNames: []string{"a.css", "b.css"},
			wantPaths: []string{"/srv/static/a.css", "/srv/static/b.css"},
			wantMIME:  "text/css",
		},
		{
			name:      "Cache busting suffix on bare file",
			url:       "/static/a.js?v=1",
			wantBase:  "/",
			wantNames: []string{"static/a.js"},
			wantPaths: []string{"/srv/static/a.js"},
			wantMIME:  "application/javascript",
		},
		{
			name:      "Percent encoded names",
			url:       "/my%20static/??my%20file.css",
			wantBase:  "/my static/",
			wantNames: []string{"my file.css"},
			wantPaths: []string{"/srv/my static/my file.css"},
			wantMIME:  "text/css",
		},
		{
			name:      "Empty names are dropped",
			url:       "/static/??a.css,,b.css,",
			wantBase:  "/static/",
			wantNames: []string{"a.css", "b.css"},
			wantPaths: []string{"/srv/static/a.css", "/srv/static/b.css"},
			wantMIME:  "text/css",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := resolver.Resolve(tt.url)
			gt.Equal(t, req.BasePath, tt.wantBase)
			gt.Equal(t, req.FileNames, tt.wantNames)
			gt.Equal(t, req.Paths, tt.wantPaths)
			gt.Equal(t, req.MIMEType, tt.wantMIME)
			gt.False(t, req.IsEmpty())
		})
	}
}

func TestResolver_BareEqualsExplicitCombo(t *testing.T) {
	resolver := usecase.NewResolver("/srv", nil)

	bare := resolver.Resolve("/static/app.js")
	explicit := resolver.Resolve("/??static/app.js")

	gt.Equal(t, bare.Paths, explicit.Paths)
	gt.Equal(t, bare.MIMEType, explicit.MIMEType)
	gt.Equal(t, bare.BasePath, explicit.BasePath)
}

func TestResolver_EmptyList(t *testing.T) {
	resolver := usecase.NewResolver("/srv", nil)

	for _, url := range []string{"/static/??", "/", "/static/??,,", "/??"} {
		t.Run(url, func(t *testing.T) {
			req := resolver.Resolve(url)
			gt.True(t, req.IsEmpty())
			gt.Equal(t, len(req.FileNames), 0)
			gt.Equal(t, req.MIMEType, model.DefaultMIMEType)
		})
	}
}

func TestResolver_CustomMIMETable(t *testing.T) {
	table := model.NewMIMETable(map[string]string{".svg": "image/svg+xml"})
	resolver := usecase.NewResolver("/srv", table)

	req := resolver.Resolve("/img/??a.svg,b.svg")
	gt.Equal(t, req.MIMEType, "image/svg+xml")
}

func TestResolver_UniqueID(t *testing.T) {
	resolver := usecase.NewResolver("/srv", nil)

	a := resolver.Resolve("/static/??a.css")
	b := resolver.Resolve("/static/??a.css")
	gt.Value(t, a.ID).NotEqual("")
	gt.Value(t, a.ID).NotEqual(b.ID)
}
