package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by every categorised handler error, so hosts can route
// document-command failures without string matching.
const (
	messageInvalidCode    = "DOCUMENT_MESSAGE_INVALID"
	executionCanceledCode = "DOCUMENT_EXECUTION_CANCELED"
	executionTimeoutCode  = "DOCUMENT_EXECUTION_TIMEOUT"
	executionFailedCode   = "DOCUMENT_EXECUTION_FAILED"
)

// wrapMessageError categorises a rejected message. Errors already carrying a
// category pass through untouched.
func wrapMessageError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "document message rejected").
		WithTextCode(messageInvalidCode)
}

// wrapContextError maps a context failure onto the matching execution code.
func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	code := executionFailedCode
	msg := "document command aborted"
	switch {
	case errors.Is(err, context.Canceled):
		code = executionCanceledCode
		msg = "document command canceled"
	case errors.Is(err, context.DeadlineExceeded):
		code = executionTimeoutCode
		msg = "document command timed out"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, msg).WithTextCode(code)
}

// wrapExecuteError categorises a failure from the wrapped execution function.
func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "document command failed").
		WithTextCode(executionFailedCode)
}
