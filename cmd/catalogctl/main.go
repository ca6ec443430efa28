package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yourusername/product-catalog/config"
	"github.com/yourusername/product-catalog/internal/cli"
	"github.com/yourusername/product-catalog/internal/logging"
)

type command interface {
	ParseFlags(args []string) error
	Run(ctx context.Context) error
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	var cmd command
	switch os.Args[1] {
	case cli.ModeImport, cli.ModeSummary, cli.ModeCategory, cli.ModeDefaults:
		cmd = cli.NewExportCommand(os.Args[1], cfg.ExportDir)
	case "template":
		cmd = cli.NewTemplateCommand(cfg.ExportDir)
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err := cmd.ParseFlags(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: catalogctl <command> [options]

Commands:
  import     Import an .xlsx file and write a JSON export
  summary    Write a summary export (of -in, or of the default catalog)
  category   Write the products of one category
  defaults   Export the built-in default catalog
  template   Write the .xlsx import template

Run "catalogctl <command> -h" for the options of a command.`)
}
