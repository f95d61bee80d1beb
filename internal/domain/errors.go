package domain

import (
	"errors"
	"fmt"
)

const (
	// ErrCodeInvalidDirectory: the target path is missing or not a directory.
	ErrCodeInvalidDirectory = "invalid_directory"
	// ErrCodeUnreadableDocument: a PDF could not be parsed or has no pages.
	ErrCodeUnreadableDocument = "unreadable_document"
	// ErrCodeAccessDenied: a file or directory could not be read.
	ErrCodeAccessDenied = "access_denied"
	// ErrCodeReportWriteFailed: the spreadsheet could not be created or written.
	ErrCodeReportWriteFailed = "report_write_failed"
)

// Error carries a stable code, the path involved and the underlying cause.
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	var msg string
	switch e.Code {
	case ErrCodeInvalidDirectory:
		msg = fmt.Sprintf("%s: %q is not a readable directory", e.Code, e.Path)
	case ErrCodeUnreadableDocument:
		msg = fmt.Sprintf("%s: cannot read pages of %q", e.Code, e.Path)
	case ErrCodeAccessDenied:
		msg = fmt.Sprintf("%s: cannot access %q", e.Code, e.Path)
	case ErrCodeReportWriteFailed:
		msg = fmt.Sprintf("%s: cannot write report %q", e.Code, e.Path)
	default:
		msg = e.Code
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Code extracts the error code from err, or "" when err is not an *Error.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Fatal reports whether err must abort the run.
func Fatal(err error) bool {
	switch Code(err) {
	case ErrCodeUnreadableDocument, ErrCodeAccessDenied:
		return false
	default:
		return err != nil
	}
}
