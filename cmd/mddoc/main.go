// Command mddoc parses Markdown files into the structured document model and
// prints the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	mddoc "github.com/goliatone/go-mddoc"
	"github.com/goliatone/go-mddoc/internal/commands/documentcmd"
	"github.com/goliatone/go-mddoc/internal/logging"
	"github.com/goliatone/go-mddoc/internal/logging/gologger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("mddoc: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("mddoc", flag.ExitOnError)
	contentDir := fs.String("content-dir", ".", "Path to the markdown content root")
	path := fs.String("path", "", "Single file to parse, relative to the content root")
	directory := fs.String("dir", "", "Directory to scan, relative to the content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	recursive := fs.Bool("recursive", true, "Traverse sub-directories when scanning")
	indentUnit := fs.Int("indent-unit", 2, "Spaces per checklist nesting level")
	render := fs.Bool("render", false, "Render document bodies to HTML")
	summaryOnly := fs.Bool("summary", false, "Print checklist summaries instead of full documents")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" && *directory == "" {
		return fmt.Errorf("either -path or -dir is required")
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  *logLevel,
		Format: *logFormat,
	})
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	cfg := mddoc.DefaultConfig()
	cfg.BasePath = *contentDir
	cfg.Pattern = *pattern
	cfg.Recursive = *recursive
	cfg.IndentUnit = *indentUnit
	cfg.Logger = provider

	service, err := mddoc.NewService(cfg, nil)
	if err != nil {
		return fmt.Errorf("configure service: %w", err)
	}

	var docs []*mddoc.Document
	sink := func(doc *mddoc.Document) {
		docs = append(docs, doc)
	}
	logger := logging.CommandsLogger(provider)

	ctx := context.Background()
	if *path != "" {
		handler := documentcmd.NewParseFileHandler(service, logger, sink)
		if err := handler.Execute(ctx, documentcmd.ParseFileCommand{Path: *path, Render: *render}); err != nil {
			return err
		}
	} else {
		handler := documentcmd.NewScanDirectoryHandler(service, logger, sink)
		if err := handler.Execute(ctx, documentcmd.ScanDirectoryCommand{
			Directory: *directory,
			Pattern:   *pattern,
			Recursive: *recursive,
		}); err != nil {
			return err
		}
	}

	return printJSON(os.Stdout, docs, *summaryOnly)
}

type checklistReport struct {
	Path    string                 `json:"path"`
	Title   string                 `json:"title,omitempty"`
	Summary mddoc.ChecklistSummary `json:"summary"`
}

func printJSON(out *os.File, docs []*mddoc.Document, summaryOnly bool) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	if summaryOnly {
		reports := make([]checklistReport, 0, len(docs))
		for _, doc := range docs {
			reports = append(reports, checklistReport{
				Path:    doc.FilePath,
				Title:   doc.Title,
				Summary: doc.ChecklistSummary(),
			})
		}
		return encoder.Encode(reports)
	}
	return encoder.Encode(docs)
}
