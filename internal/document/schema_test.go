package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

func metadataSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []any{"title", "author"},
		"properties": map[string]any{
			"title":  map[string]any{"type": "string", "minLength": 1},
			"author": map[string]any{"type": "string"},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}
}

func TestValidateMetadataSchema(t *testing.T) {
	if err := ValidateMetadataSchema(nil); err != nil {
		t.Fatalf("nil schema must validate: %v", err)
	}
	if err := ValidateMetadataSchema(metadataSchema()); err != nil {
		t.Fatalf("valid schema rejected: %v", err)
	}

	bad := map[string]any{"type": 42}
	if err := ValidateMetadataSchema(bad); !errors.Is(err, ErrMetadataSchemaInvalid) {
		t.Fatalf("err = %v, want ErrMetadataSchemaInvalid", err)
	}
}

func TestValidateFrontMatterPasses(t *testing.T) {
	fm := interfaces.FrontMatter{
		Present: true,
		Raw: map[string]any{
			"title":  "Guide",
			"author": "ana",
			"tags":   []any{"setup"},
		},
	}
	if err := ValidateFrontMatter(metadataSchema(), fm); err != nil {
		t.Fatalf("ValidateFrontMatter: %v", err)
	}
}

func TestValidateFrontMatterFails(t *testing.T) {
	fm := interfaces.FrontMatter{
		Present: true,
		Raw:     map[string]any{"title": "Guide"},
	}

	err := ValidateFrontMatter(metadataSchema(), fm)
	if !errors.Is(err, ErrMetadataInvalid) {
		t.Fatalf("err = %v, want ErrMetadataInvalid", err)
	}

	var verr *MetadataValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err type = %T", err)
	}
	if len(verr.Issues) == 0 {
		t.Fatalf("expected at least one issue")
	}
	if !strings.Contains(err.Error(), "author") {
		t.Fatalf("error should name the missing property, got %q", err.Error())
	}
}

func TestValidateFrontMatterSkipsWhenAbsent(t *testing.T) {
	if err := ValidateFrontMatter(metadataSchema(), interfaces.FrontMatter{}); err != nil {
		t.Fatalf("absent frontmatter must validate trivially: %v", err)
	}
	if err := ValidateFrontMatter(nil, interfaces.FrontMatter{Present: true}); err != nil {
		t.Fatalf("nil schema must validate trivially: %v", err)
	}
}
