package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/combine/pkg/cli/config"
	"github.com/m-mizutani/combine/pkg/domain/interfaces"
	"github.com/m-mizutani/combine/pkg/domain/types"
	"github.com/m-mizutani/combine/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	skipColor = color.New(color.FgHiBlack)
)

func cmdResolve() *cli.Command {
	var (
		assetCfg   config.Asset
		storageCfg config.Storage
	)

	return &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve and validate combo URLs without starting a server",
		ArgsUsage: "URL [URL...]",
		Flags:     append(assetCfg.Flags(), storageCfg.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			urls := c.Args().Slice()
			if len(urls) == 0 {
				return goerr.New("at least one URL is required, e.g. \"/static/??a.css,b.css\"")
			}

			mimeTable, err := assetCfg.MIMETable()
			if err != nil {
				return err
			}

			root, err := assetCfg.AbsRoot(storageCfg.IsRemote())
			if err != nil {
				return err
			}

			source, closeSource, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer closeSource()

			comboUC := usecase.NewCombo(root, source, usecase.WithMIMETable(mimeTable))

			var failed int
			for _, url := range urls {
				if !printResolution(ctx, c.Root().Writer, comboUC, url) {
					failed++
				}
			}

			if failed > 0 {
				return goerr.New("some combo URLs cannot be served",
					goerr.V("failed", failed),
					goerr.V("total", len(urls)),
				)
			}
			return nil
		},
	}
}

// printResolution writes the resolved paths of url and their status, and
// reports whether the URL would be served
func printResolution(ctx context.Context, w io.Writer, comboUC interfaces.ComboUseCase, url string) bool {
	req, files, err := comboUC.Prepare(ctx, url)

	fmt.Fprintf(w, "%s\n  content-type: %s\n", url, req.MIMEType)

	if req.IsEmpty() {
		failColor.Fprintf(w, "  ✘ no file in combo URL\n")
		return false
	}

	if err == nil {
		for _, f := range files {
			okColor.Fprintf(w, "  ✔ %s (%d bytes)\n", f.Path, f.Size)
		}
		return true
	}

	failedPath := usecase.FailedPath(err)
	reached := false
	for _, path := range req.Paths {
		switch {
		case reached:
			skipColor.Fprintf(w, "  - %s (not checked)\n", path)
		case path == failedPath:
			failColor.Fprintf(w, "  ✘ %s (%s)\n", path, types.ErrorKind(err))
			reached = true
		default:
			okColor.Fprintf(w, "  ✔ %s\n", path)
		}
	}
	return false
}
