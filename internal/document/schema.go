package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

var (
	ErrMetadataSchemaInvalid = errors.New("mddoc: metadata schema invalid")
	ErrMetadataInvalid       = errors.New("mddoc: frontmatter does not satisfy metadata schema")
)

// MetadataIssue captures a single frontmatter validation failure.
type MetadataIssue struct {
	Location string
	Message  string
}

// MetadataValidationError surfaces frontmatter validation issues with
// schema-aware context.
type MetadataValidationError struct {
	Issues []MetadataIssue
	Cause  error
}

func (e *MetadataValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrMetadataInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *MetadataValidationError) Unwrap() error {
	return ErrMetadataInvalid
}

// ValidateMetadataSchema ensures the schema itself can be compiled.
func ValidateMetadataSchema(schema map[string]any) error {
	if len(schema) == 0 {
		return nil
	}
	if _, err := compileSchema(schema); err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataSchemaInvalid, err)
	}
	return nil
}

// ValidateFrontMatter validates the document's raw frontmatter keys against a
// JSON schema. A nil schema or an absent frontmatter block validates
// trivially; schema enforcement is opt-in.
func ValidateFrontMatter(schema map[string]any, fm interfaces.FrontMatter) error {
	if len(schema) == 0 || !fm.Present {
		return nil
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMetadataSchemaInvalid, err)
	}

	payload := fm.Raw
	if payload == nil {
		payload = map[string]any{}
	}
	if err := compiled.Validate(normalizePayload(payload)); err != nil {
		return &MetadataValidationError{
			Issues: collectIssues(err),
			Cause:  err,
		}
	}
	return nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

// normalizePayload round-trips the payload through JSON so YAML-decoded
// values (time.Time, map[any]any) take shapes the validator understands.
func normalizePayload(payload map[string]any) any {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return payload
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return payload
	}
	return out
}

func collectIssues(err error) []MetadataIssue {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) || validationErr == nil {
		return []MetadataIssue{{Message: err.Error()}}
	}

	issues := []MetadataIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, MetadataIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return issues
}
