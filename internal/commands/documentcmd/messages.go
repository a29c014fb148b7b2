// Package documentcmd exposes document parsing operations as go-command
// messages so hosts can dispatch them through a command bus.
package documentcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	parseFileMessageType     = "mddoc.parse_file"
	scanDirectoryMessageType = "mddoc.scan_directory"
)

// ParseFileCommand loads and parses a single Markdown file relative to the
// service's base path, optionally rendering the body to HTML.
type ParseFileCommand struct {
	// Path selects the file to parse, relative to the configured content root.
	Path string `json:"path"`
	// Render toggles HTML rendering of the document body.
	Render bool `json:"render,omitempty"`
}

// Type implements command.Message.
func (ParseFileCommand) Type() string { return parseFileMessageType }

// Validate ensures a path is present before handlers execute.
func (cmd ParseFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("mddoc.parse_file.path_required", "path is required")
			}
			return nil
		})),
	)
}

// ScanDirectoryCommand discovers and parses every matching Markdown file
// under the provided directory.
type ScanDirectoryCommand struct {
	// Directory selects the filesystem path to scan, relative to the content root.
	Directory string `json:"directory"`
	// Pattern overrides the discovery glob (defaults to the service pattern).
	Pattern string `json:"pattern,omitempty"`
	// Recursive toggles traversal into sub-directories.
	Recursive bool `json:"recursive,omitempty"`
}

// Type implements command.Message.
func (ScanDirectoryCommand) Type() string { return scanDirectoryMessageType }

// Validate ensures a directory is present before handlers execute.
func (cmd ScanDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("mddoc.scan_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}
