package documentcmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-mddoc/internal/commands"
	"github.com/goliatone/go-mddoc/internal/logging"
	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

const (
	parseFileOperation     = "document.parse_file"
	scanDirectoryOperation = "document.scan_directory"
)

var (
	_ command.Commander[ParseFileCommand]     = (*ParseFileHandler)(nil)
	_ command.Commander[ScanDirectoryCommand] = (*ScanDirectoryHandler)(nil)
)

// DocumentSink receives every document a handler produces. Handlers invoke it
// synchronously, in path order.
type DocumentSink func(*interfaces.Document)

// ParseFileHandler parses a single document through the shared handler foundation.
type ParseFileHandler struct {
	inner *commands.Handler[ParseFileCommand]
}

// NewParseFileHandler creates a handler bound to the supplied document service.
func NewParseFileHandler(service interfaces.DocumentService, logger interfaces.Logger, sink DocumentSink, opts ...commands.HandlerOption[ParseFileCommand]) *ParseFileHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ParseFileCommand) error {
		doc, err := service.Load(ctx, msg.Path, interfaces.LoadOptions{})
		if err != nil {
			return err
		}
		if msg.Render {
			if _, err := service.RenderDocument(ctx, doc, interfaces.ParseOptions{}); err != nil {
				return err
			}
		}

		summary := doc.ChecklistSummary()
		logging.WithDocumentContext(baseLogger, doc.FilePath, "parse_file").Info("document.command.parse_file.completed",
			"sections", len(doc.Sections),
			"variables", len(doc.Variables),
			"checklist_total", summary.Total,
			"checklist_completed", summary.Completed,
		)
		if sink != nil {
			sink(doc)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ParseFileCommand]{
		commands.WithLogger[ParseFileCommand](baseLogger),
		commands.WithOperation[ParseFileCommand](parseFileOperation),
		commands.WithMessageFields(func(msg ParseFileCommand) map[string]any {
			fields := map[string]any{
				"path": msg.Path,
			}
			if msg.Render {
				fields["render"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ParseFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ParseFileCommand].
func (h *ParseFileHandler) Execute(ctx context.Context, msg ParseFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ScanDirectoryHandler parses every matching document under a directory.
type ScanDirectoryHandler struct {
	inner *commands.Handler[ScanDirectoryCommand]
}

// NewScanDirectoryHandler creates a handler bound to the supplied document service.
func NewScanDirectoryHandler(service interfaces.DocumentService, logger interfaces.Logger, sink DocumentSink, opts ...commands.HandlerOption[ScanDirectoryCommand]) *ScanDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ScanDirectoryCommand) error {
		recursive := msg.Recursive
		docs, err := service.LoadDirectory(ctx, msg.Directory, interfaces.LoadOptions{
			Pattern:   msg.Pattern,
			Recursive: &recursive,
		})
		if err != nil {
			return err
		}

		var total, completed int
		for _, doc := range docs {
			summary := doc.ChecklistSummary()
			total += summary.Total
			completed += summary.Completed
			if sink != nil {
				sink(doc)
			}
		}
		logging.WithDocumentContext(baseLogger, msg.Directory, "scan_directory").Info("document.command.scan_directory.completed",
			"documents", len(docs),
			"checklist_total", total,
			"checklist_completed", completed,
		)
		return nil
	}

	handlerOpts := []commands.HandlerOption[ScanDirectoryCommand]{
		commands.WithLogger[ScanDirectoryCommand](baseLogger),
		commands.WithOperation[ScanDirectoryCommand](scanDirectoryOperation),
		commands.WithMessageFields(func(msg ScanDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			if msg.Recursive {
				fields["recursive"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ScanDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ScanDirectoryCommand].
func (h *ScanDirectoryHandler) Execute(ctx context.Context, msg ScanDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
