// Package ggez provides the shared foundation for the ggez game framework:
// the error taxonomy, the package logger, and the virtual filesystem used by
// resource loading. The drawing API lives in the graphics subpackage.
package ggez

import "errors"

// Error taxonomy. Recoverable failures returned by the framework wrap one of
// these sentinels, so callers can branch with errors.Is regardless of the
// descriptive message attached at the failure site.
var (
	// ErrRender wraps GPU resource creation and submission failures.
	// These are never retried internally.
	ErrRender = errors.New("ggez: render error")

	// ErrResourceLoad wraps image decode failures and resource constraint
	// violations such as zero-sized texture dimensions.
	ErrResourceLoad = errors.New("ggez: resource load error")

	// ErrResourceNotFound is returned when a named virtual path does not
	// resolve to a resource.
	ErrResourceNotFound = errors.New("ggez: resource not found")

	// ErrFilesystem wraps I/O failures from the filesystem collaborator.
	ErrFilesystem = errors.New("ggez: filesystem error")

	// ErrConfig wraps configuration parse failures.
	ErrConfig = errors.New("ggez: config error")
)
