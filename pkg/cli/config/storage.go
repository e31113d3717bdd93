package config

import (
	"context"

	"github.com/m-mizutani/combine/pkg/domain/interfaces"
	"github.com/m-mizutani/combine/pkg/infra/gcs"
	"github.com/m-mizutani/combine/pkg/infra/local"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// Storage holds configuration of where the files are read from
type Storage struct {
	GCSBucket   string
	GCSEndpoint string
}

// Flags returns CLI flags for storage configuration
func (c *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Serve files from this Cloud Storage bucket instead of the local filesystem",
			Destination: &c.GCSBucket,
			Sources:     cli.EnvVars("COMBINE_GCS_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "gcs-endpoint",
			Usage:       "Cloud Storage endpoint, e.g. of an emulator (no authentication is used)",
			Destination: &c.GCSEndpoint,
			Sources:     cli.EnvVars("COMBINE_GCS_ENDPOINT"),
		},
	}
}

// IsRemote reports whether files are read from a bucket
func (c *Storage) IsRemote() bool {
	return c.GCSBucket != ""
}

// Configure creates the asset source. The returned function releases it.
func (c *Storage) Configure(ctx context.Context) (interfaces.AssetSource, func(), error) {
	if !c.IsRemote() {
		return local.NewSource(), func() {}, nil
	}

	var opts []option.ClientOption
	if c.GCSEndpoint != "" {
		opts = append(opts,
			option.WithEndpoint(c.GCSEndpoint),
			option.WithoutAuthentication(),
		)
	}

	client, err := gcs.NewClient(ctx, c.GCSBucket, opts...)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create GCS asset source")
	}

	return client, func() { _ = client.Close() }, nil
}
