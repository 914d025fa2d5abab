package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/beautypro-inventory/internal/config"
	"github.com/andresuchdata/beautypro-inventory/internal/inventory"
	"github.com/andresuchdata/beautypro-inventory/internal/sheets"
	"github.com/andresuchdata/beautypro-inventory/internal/storage"
	"github.com/andresuchdata/beautypro-inventory/internal/workbook"
	"github.com/andresuchdata/beautypro-inventory/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	if err := newApp(cfg).Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("generator failed")
	}
}

func newApp(cfg *config.Config) *cli.App {
	return &cli.App{
		Name:   "generator",
		Usage:  "Generate the Beauty Pro inventory workbook",
		Flags:  generateFlags(cfg),
		Action: runGenerate(cfg),
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Write the workbook (default command)",
				Flags:  generateFlags(cfg),
				Action: runGenerate(cfg),
			},
			{
				Name:   "reorder",
				Usage:  "Log the reorder recommendations and the total order value",
				Flags:  sourceFlags(cfg),
				Action: runReorder,
			},
		},
	}
}

// sourceFlags control where sheet data comes from and how reorders are evaluated.
func sourceFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "sheets-dir",
			Usage: "Directory with <Sheet>.csv or <Sheet>.xlsx sources; built-in samples when empty",
			Value: cfg.Generator.SheetsDir,
		},
		&cli.IntFlag{
			Name:  "reorder-buffer",
			Usage: "Units above the minimum that still count as MEDIUM priority",
			Value: cfg.Reorder.BufferUnits,
		},
		&cli.Float64Flag{
			Name:  "reorder-buffer-pct",
			Usage: "Buffer as a percentage of the minimum level (the larger buffer wins)",
			Value: cfg.Reorder.BufferPercent,
		},
		&cli.BoolFlag{
			Name:  "include-inventory-reorders",
			Usage: "Add flagged Inventory rows to the reorder list",
			Value: cfg.Reorder.IncludeInventory,
		},
	}
}

func generateFlags(cfg *config.Config) []cli.Flag {
	return append(sourceFlags(cfg),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Path of the generated workbook",
			Value:   cfg.Generator.OutputPath,
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Brand name used in titles and document properties",
			Value: cfg.Generator.Title,
		},
		&cli.Float64Flag{
			Name:  "max-column-width",
			Usage: "Upper bound for auto-sized column widths",
			Value: cfg.Generator.MaxColumnWidth,
		},
		&cli.BoolFlag{
			Name:  "upload",
			Usage: "Upload the workbook to the configured S3-compatible bucket",
			Value: cfg.Storage.Enabled,
		},
	)
}

func newGenerator(c *cli.Context) *workbook.Generator {
	var src sheets.Source = sheets.NewEmbeddedSource()
	if dir := c.String("sheets-dir"); dir != "" {
		src = sheets.NewDirSource(dir)
	}

	opts := workbook.DefaultOptions()
	opts.Policy = inventory.ReorderPolicy{
		BufferUnits:   c.Int("reorder-buffer"),
		BufferPercent: c.Float64("reorder-buffer-pct"),
	}
	opts.IncludeInventoryReorders = c.Bool("include-inventory-reorders")
	if title := c.String("title"); title != "" {
		opts.Brand = title
	}
	if w := c.Float64("max-column-width"); w > 0 {
		opts.MaxColumnWidth = w
	}
	return workbook.NewGenerator(src, opts)
}

func runGenerate(cfg *config.Config) cli.ActionFunc {
	return func(c *cli.Context) error {
		output := c.String("output")
		report, err := newGenerator(c).Generate(output)
		if err != nil {
			return err
		}

		for _, s := range report.Failed() {
			logger.Log.Warn().Str("sheet", s.Name).Err(s.Err).Msg("worksheet generated without data")
		}

		if !c.Bool("upload") {
			return nil
		}
		return upload(c.Context, cfg.Storage, output)
	}
}

func upload(ctx context.Context, cfg config.StorageConfig, path string) error {
	client, err := storage.NewMinioClient(storage.MinioConfig{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Bucket:    cfg.Bucket,
		Region:    cfg.Region,
		UseSSL:    cfg.UseSSL,
		Prefix:    cfg.Prefix,
	})
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s for upload: %w", path, err)
	}

	key := client.Key(filepath.Base(path))
	if err := client.UploadObject(ctx, key, data); err != nil {
		return err
	}
	logger.Log.Info().Str("bucket", cfg.Bucket).Str("key", key).Int("bytes", len(data)).Msg("workbook uploaded")
	return nil
}

func runReorder(c *cli.Context) error {
	report := newGenerator(c).Evaluate()

	for _, rec := range report.Reorder.Items {
		logger.Log.Info().
			Str("item", rec.Item).
			Str("supplier", rec.Supplier).
			Int("current", rec.CurrentStock).
			Int("min", rec.MinLevel).
			Int("order_qty", rec.OrderQuantity).
			Str("order_cost", rec.OrderCost.String()).
			Str("priority", rec.Priority.Label()).
			Msg(rec.Priority.Action())
	}
	logger.Log.Info().
		Int("items", len(report.Reorder.Items)).
		Str("total_order_value", report.Reorder.TotalFormatted()).
		Msg("reorder evaluation complete")

	if failed := report.Failed(); len(failed) > 0 {
		logger.Log.Warn().Int("failed_sheets", len(failed)).Msg("some sources could not be loaded")
	}
	return nil
}
