package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/combine/pkg/cli"
)

func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	gt.NoError(t, os.MkdirAll(filepath.Join(root, "static"), 0755))
	gt.NoError(t, os.WriteFile(filepath.Join(root, "static", "a.css"), []byte("body{}"), 0644))
	gt.NoError(t, os.WriteFile(filepath.Join(root, "static", "b.css"), []byte(".x{}"), 0644))
	return root
}

func TestRun_Resolve(t *testing.T) {
	root := setupRoot(t)

	tests := []struct {
		name    string
		urls    []string
		wantErr bool
	}{
		{
			name: "All files exist",
			urls: []string{"/static/??a.css,b.css", "/static/a.css"},
		},
		{
			name:    "Missing file",
			urls:    []string{"/static/??a.css,missing.css,b.css"},
			wantErr: true,
		},
		{
			name:    "One of several URLs fails",
			urls:    []string{"/static/??a.css", "/static/??"},
			wantErr: true,
		},
		{
			name:    "No URL",
			urls:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"combine", "--log-format", "text", "--log-level", "error", "resolve", "--root", root}, tt.urls...)
			err := cli.Run(context.Background(), args)
			if (err != nil) != tt.wantErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	root := setupRoot(t)
	err := cli.Run(context.Background(), []string{"combine", "--log-level", "verbose", "resolve", "--root", root, "/static/a.css"})
	gt.Error(t, err)
}
