// Package logging provides the no-op logger and module-scoped logger helpers
// shared by services and command handlers.
package logging

import (
	"context"
	"maps"
	"strings"

	"github.com/goliatone/go-mddoc/pkg/interfaces"
)

const (
	rootModule     = "mddoc"
	serviceModule  = "mddoc.service"
	loaderModule   = "mddoc.loader"
	commandsModule = "mddoc.commands"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as structured context so entries can be filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ServiceLogger returns the logger namespace reserved for the document service.
func ServiceLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, serviceModule)
}

// LoaderLogger returns the logger namespace reserved for filesystem discovery.
func LoaderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, loaderModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension. Nil or empty maps are safe.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// WithDocumentContext enriches the logger with common document fields such as
// the source path and the action being performed. Empty values are ignored.
func WithDocumentContext(logger interfaces.Logger, path, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields["document_path"] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields["action"] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry. It satisfies the Logger
// contract so services can operate safely when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
