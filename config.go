package mddoc

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-mddoc/internal/checklist"
	"github.com/goliatone/go-mddoc/internal/classify"
	"github.com/goliatone/go-mddoc/internal/document"
	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

// Config tunes parsing, filesystem discovery, and rendering. The zero value
// is not usable directly; start from DefaultConfig.
type Config struct {
	// IndentUnit is the indentation width mapping to one checklist nesting
	// level. The classic fixture corpus uses two spaces; four-space documents
	// set this explicitly.
	IndentUnit int
	// Markers lists the recognised list marker characters.
	Markers string
	// FrontMatter enables the YAML metadata pre-pass.
	FrontMatter bool
	// GenerateIDs controls deterministic section identifiers.
	GenerateIDs bool

	// BasePath is the content root for the document service.
	BasePath string
	// Pattern is the discovery glob (defaults to "*.md").
	Pattern string
	// Recursive controls directory traversal.
	Recursive bool
	// Render holds the default HTML rendering options.
	Render interfaces.ParseOptions
	// MetadataSchema, when set, is a JSON schema loaded frontmatter must satisfy.
	MetadataSchema map[string]any
	// Logger supplies module-scoped loggers; nil disables logging.
	Logger interfaces.LoggerProvider
}

// DefaultConfig returns the configuration used by the package-level helpers:
// two-space indentation, dash/star/plus markers, frontmatter pre-pass and
// deterministic IDs enabled.
func DefaultConfig() Config {
	return Config{
		IndentUnit:  checklist.DefaultIndentUnit,
		Markers:     classify.DefaultMarkers,
		FrontMatter: true,
		GenerateIDs: true,
		Pattern:     "*.md",
		Recursive:   true,
	}
}

// Validate reports configuration errors before any service is constructed.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.IndentUnit, validation.Min(0)),
		validation.Field(&c.Markers, validation.By(func(value any) error {
			markers := value.(string)
			for _, r := range markers {
				switch r {
				case '-', '*', '+':
				default:
					return validation.NewError("mddoc.config.markers_invalid", "markers may only contain '-', '*', and '+'")
				}
			}
			return nil
		})),
	)
}

func (c Config) parserConfig() document.ParserConfig {
	return document.ParserConfig{
		IndentUnit:  c.IndentUnit,
		Markers:     c.Markers,
		FrontMatter: c.FrontMatter,
		GenerateIDs: c.GenerateIDs,
	}
}

func (c Config) serviceConfig() document.ServiceConfig {
	return document.ServiceConfig{
		BasePath:       c.BasePath,
		Pattern:        c.Pattern,
		Recursive:      c.Recursive,
		Parser:         c.parserConfig(),
		Render:         c.Render,
		MetadataSchema: c.MetadataSchema,
		Logger:         c.Logger,
	}
}
