package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/combine/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Asset holds configuration of the served files
type Asset struct {
	Root     string
	MIMEFile string
}

// Flags returns CLI flags for asset configuration
func (c *Asset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "root",
			Aliases:     []string{"r"},
			Usage:       "Root directory (or object prefix with --gcs-bucket) of served files",
			Value:       ".",
			Destination: &c.Root,
			Sources:     cli.EnvVars("COMBINE_ROOT"),
		},
		&cli.StringFlag{
			Name:        "mime-file",
			Usage:       "TOML file with extra extension to content type entries",
			Destination: &c.MIMEFile,
			Sources:     cli.EnvVars("COMBINE_MIME_FILE"),
		},
	}
}

// mimeFile is the layout of the file given by --mime-file:
//
//	[types]
//	".svg" = "image/svg+xml"
//	".map" = "application/json"
type mimeFile struct {
	Types map[string]string `toml:"types"`
}

// MIMETable builds the content type table, merging the --mime-file entries
// over the defaults
func (c *Asset) MIMETable() (*model.MIMETable, error) {
	if c.MIMEFile == "" {
		return model.NewMIMETable(nil), nil
	}

	raw, err := os.ReadFile(c.MIMEFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read MIME file", goerr.V("path", c.MIMEFile))
	}

	var file mimeFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse MIME file", goerr.V("path", c.MIMEFile))
	}

	return model.NewMIMETable(file.Types), nil
}

// AbsRoot returns Root as an absolute local path. Object prefixes of a
// bucket are used as given.
func (c *Asset) AbsRoot(remote bool) (string, error) {
	if remote {
		return filepath.Join("/", c.Root), nil
	}

	root, err := filepath.Abs(c.Root)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve root directory", goerr.V("root", c.Root))
	}
	return root, nil
}
