package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/inkstack-labs/inkwell/internal/cli/config"
	"github.com/inkstack-labs/inkwell/internal/gallery"
	"github.com/inkstack-labs/inkwell/pkg/device"
)

// renderConcurrency bounds the number of in-flight document pipelines.
const renderConcurrency = 4

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render [documents...]",
		Short: "Render gallery documents through the configured device",
		Long: `Render linearizes each named gallery document into an instruction log,
compiles it on the configured device backend, and writes the executed
output to the output directory. With no arguments, all documents are
rendered.`,
		RunE: runRender,
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	runID := uuid.NewString()

	var docs []gallery.Document
	if len(args) == 0 {
		docs = gallery.All()
	} else {
		for _, name := range args {
			doc, err := gallery.Get(name)
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
	}

	dev, err := device.New(deviceConfig(cfg), logger)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ext := outputExt(cfg.Device)

	// One pipeline per document; pipelines are independent, so they run
	// concurrently against the same device.
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(renderConcurrency)
	for _, doc := range docs {
		doc := doc
		eg.Go(func() error {
			out, err := device.Render(ctx, dev, doc.Build())
			if err != nil {
				return fmt.Errorf("render %s: %w", doc.Name, err)
			}

			path := filepath.Join(cfg.OutputDir, doc.Name+ext)
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			logger.Info("rendered document",
				"run_id", runID,
				"document", doc.Name,
				"path", path,
				"bytes", len(out))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d document(s) to %s\n", len(docs), cfg.OutputDir)
	return nil
}
