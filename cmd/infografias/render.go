package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"infografias.nextwaveia.mx/internal/catalog"
	"infografias.nextwaveia.mx/internal/logging"
	"infografias.nextwaveia.mx/internal/views"
	"infografias.nextwaveia.mx/internal/webui"
)

func newRenderCmd() *cobra.Command {
	var part, out string

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Write one part as a standalone HTML file",
		Long: `render writes the page for one part with its stylesheet and logo inlined,
ready to be opened in a browser or captured as an image. Output goes to
stdout unless --out is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := catalog.ParsePart(part)
			if err != nil {
				return err
			}

			application, err := setup(cmd)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				return renderPart(cmd.OutOrStdout(), application.Catalog, p)
			}
			return renderToFile(out, application.Catalog, p, application.Logger)
		},
	}

	renderCmd.Flags().StringVar(&part, "part", "1", "Part to render (1 or 2)")
	renderCmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")

	return renderCmd
}

func renderPart(w io.Writer, c *catalog.Catalog, p catalog.Part) error {
	page, err := views.PageFor(c, p)
	if err != nil {
		return err
	}

	renderer, err := webui.NewRenderer()
	if err != nil {
		return err
	}
	return renderer.RenderStandalone(w, page)
}

func renderToFile(path string, c *catalog.Catalog, p catalog.Part, logger *slog.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "export", path)

	w := bufio.NewWriter(f)
	if err := renderPart(w, c, p); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logging.LogOperation(logger, "rendered page",
		slog.String("part", p.String()),
		slog.String("path", path))
	return nil
}
