package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-mddoc/internal/logging"
	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

// ServiceConfig controls filesystem discovery, parsing, and rendering.
type ServiceConfig struct {
	BasePath  string
	Pattern   string
	Recursive bool
	Parser    ParserConfig
	Render    interfaces.ParseOptions
	// MetadataSchema, when set, is a JSON schema every loaded document's
	// frontmatter must satisfy.
	MetadataSchema map[string]any
	Logger         interfaces.LoggerProvider
}

// Service implements interfaces.DocumentService for filesystem-backed documents.
type Service struct {
	cfg      ServiceConfig
	parser   *Parser
	renderer interfaces.Renderer
	loader   *Loader
	logger   interfaces.Logger
}

var _ interfaces.DocumentService = (*Service)(nil)

// NewService constructs a document service. When renderer is nil, a goldmark
// renderer with the configured default options is created.
func NewService(cfg ServiceConfig, renderer interfaces.Renderer) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}

	if err := ValidateMetadataSchema(cfg.MetadataSchema); err != nil {
		return nil, err
	}

	if renderer == nil {
		renderer = NewGoldmarkRenderer(cfg.Render)
	}

	parser := NewParser(cfg.Parser)
	loader := NewLoader(filesystem, parser, LoaderConfig{
		BasePath:  cfg.BasePath,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
		Logger:    cfg.Logger,
	})

	return &Service{
		cfg:      cfg,
		parser:   parser,
		renderer: renderer,
		loader:   loader,
		logger:   logging.ServiceLogger(cfg.Logger),
	}, nil
}

// Parser exposes the underlying structural parser.
func (s *Service) Parser() *Parser {
	return s.parser
}

// Parse converts Markdown text into a structured document.
func (s *Service) Parse(text string) (*interfaces.Document, error) {
	return s.parser.Parse(text)
}

// Load reads a single Markdown document relative to the configured base path.
func (s *Service) Load(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.Document, error) {
	doc, err := s.loader.LoadFile(ctx, s.normalisePath(path), opts)
	if err != nil {
		return nil, err
	}
	if err := s.validateMetadata(doc); err != nil {
		return nil, err
	}
	logging.WithDocumentContext(s.logger, doc.FilePath, "load").Debug("document.load.completed",
		"sections", len(doc.Sections),
		"checklist_total", doc.ChecklistSummary().Total,
	)
	return doc, nil
}

// LoadDirectory reads every matching Markdown document within dir.
func (s *Service) LoadDirectory(ctx context.Context, dir string, opts interfaces.LoadOptions) ([]*interfaces.Document, error) {
	docs, err := s.loader.LoadDirectory(ctx, s.normalisePath(dir), opts)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if err := s.validateMetadata(doc); err != nil {
			return nil, err
		}
	}
	logging.WithDocumentContext(s.logger, dir, "load_directory").Debug("document.load_directory.completed",
		"documents", len(docs),
	)
	return docs, nil
}

// Render converts Markdown bytes into HTML using the configured renderer.
func (s *Service) Render(ctx context.Context, markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return s.renderer.RenderWithOptions(markdown, mergeParseOptions(s.cfg.Render, opts))
}

// RenderDocument converts the document body into HTML and stores it on BodyHTML.
func (s *Service) RenderDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.ParseOptions) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("document service: document is nil")
	}
	html, err := s.Render(ctx, []byte(doc.Body), opts)
	if err != nil {
		return nil, fmt.Errorf("document service render %s: %w", doc.FilePath, err)
	}
	doc.BodyHTML = html
	return html, nil
}

func (s *Service) validateMetadata(doc *interfaces.Document) error {
	if err := ValidateFrontMatter(s.cfg.MetadataSchema, doc.FrontMatter); err != nil {
		return fmt.Errorf("document service metadata %s: %w", doc.FilePath, err)
	}
	return nil
}

func (s *Service) normalisePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "."
	}
	return path
}

func mergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Sanitize {
		result.Sanitize = true
	}
	if override.HardWraps {
		result.HardWraps = true
	}
	if override.SafeMode {
		result.SafeMode = true
	}
	return result
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("document service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
