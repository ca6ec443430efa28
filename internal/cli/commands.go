package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/infrastructure/exporter"
	"github.com/yourusername/product-catalog/internal/infrastructure/files"
)

// ExportCommand converts a spreadsheet (or the default catalog) to a JSON export.
// Mode selects the kind of export and the flags that apply.
type ExportCommand struct {
	Mode      string
	Input     string
	OutputDir string
	Profile   string
	Category  string

	Out   io.Writer
	Clock exporter.Clock
}

const (
	ModeImport   = "import"
	ModeSummary  = "summary"
	ModeCategory = "category"
	ModeDefaults = "defaults"
)

// NewExportCommand creates an export command writing into defaultOutputDir unless -out is given
func NewExportCommand(mode, defaultOutputDir string) *ExportCommand {
	return &ExportCommand{Mode: mode, OutputDir: defaultOutputDir, Out: os.Stdout}
}

// ParseFlags parses command line flags
func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet(cmd.Mode, flag.ContinueOnError)

	if cmd.Mode != ModeDefaults {
		fs.StringVar(&cmd.Input, "in", "", "Path to the .xlsx file to import")
	}
	fs.StringVar(&cmd.OutputDir, "out", cmd.OutputDir, "Directory the JSON export is written to")
	if cmd.Mode == ModeImport || cmd.Mode == ModeDefaults {
		fs.StringVar(&cmd.Profile, "profile", "", "Export profile: simple, detailed or minimal (default: full export)")
	}
	if cmd.Mode == ModeCategory {
		fs.StringVar(&cmd.Category, "category", "", "Category ID to export, e.g. beverages")
	}

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: catalogctl %s [options]\n\nOptions:\n", cmd.Mode)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case cmd.Mode == ModeImport && cmd.Input == "":
		return errors.New("-in is required")
	case cmd.Mode == ModeCategory && cmd.Category == "":
		return errors.New("-category is required")
	}
	if cmd.Profile != "" {
		if _, err := parseProfile(cmd.Profile); err != nil {
			return err
		}
	}
	return nil
}

// Run imports the input and writes the export
func (cmd *ExportCommand) Run(ctx context.Context) error {
	svc := newServices(cmd.Clock)
	sink := files.NewFileSink(cmd.OutputDir)

	count, err := svc.load(ctx, cmd.Input)
	if err != nil {
		return err
	}
	if cmd.Input != "" {
		fmt.Fprintf(cmd.Out, "📥 Imported %d products from %s\n", count, cmd.Input)
	}

	var file *entity.ExportFile
	switch cmd.Mode {
	case ModeSummary:
		file, err = svc.export.ExportSummary(ctx, sink)
	case ModeCategory:
		file, err = svc.export.ExportCategory(ctx, sink, cmd.Category)
	default:
		if cmd.Profile != "" {
			file, err = svc.export.ExportProfile(ctx, sink, entity.ExportProfile(cmd.Profile))
		} else {
			file, err = svc.export.Export(ctx, sink, entity.DefaultExportOptions())
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Out, "✅ Wrote %s (%d bytes) to %s\n", file.Filename, len(file.Data), cmd.OutputDir)
	return nil
}

// TemplateCommand writes the import template
type TemplateCommand struct {
	OutputDir string
	Out       io.Writer
}

// NewTemplateCommand creates a template command writing into defaultOutputDir unless -out is given
func NewTemplateCommand(defaultOutputDir string) *TemplateCommand {
	return &TemplateCommand{OutputDir: defaultOutputDir, Out: os.Stdout}
}

// ParseFlags parses command line flags
func (cmd *TemplateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("template", flag.ContinueOnError)
	fs.StringVar(&cmd.OutputDir, "out", cmd.OutputDir, "Directory the template is written to")
	return fs.Parse(args)
}

// Run generates the template
func (cmd *TemplateCommand) Run(ctx context.Context) error {
	svc := newServices(nil)

	name, err := svc.catalog.Template(ctx, files.NewFileSink(cmd.OutputDir))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Out, "✅ Wrote %s to %s\n", name, cmd.OutputDir)
	return nil
}
