package wpget

import (
	"github.com/mrjoshuak/wpget/types"
)

// Policy selects how the content region is reduced and serialized.
type Policy = types.Policy

// Options configures a Getter.
type Options = types.Options

// Error is the error type returned by every pipeline stage.
type Error = types.Error

// ErrorKind defines the category of an Error.
type ErrorKind = types.ErrorKind

// Error kinds
const (
	RetrievalError = types.RetrievalError
	ParseError     = types.ParseError
	NotFoundError  = types.NotFoundError
)

// Common errors
var (
	ErrEmptyDocument    = types.ErrEmptyDocument
	ErrNoContentRegion  = types.ErrNoContentRegion
	ErrUnexpectedStatus = types.ErrUnexpectedStatus
)

// Defaults
const (
	DefaultBaseURL    = types.DefaultBaseURL
	DefaultXPath      = types.DefaultXPath
	ParserOutputXPath = types.ParserOutputXPath
	DefaultUserAgent  = types.DefaultUserAgent
	DefaultTimeout    = types.DefaultTimeout
)

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return types.DefaultOptions()
}

// IsRetrievalError reports whether err is a failed fetch or file read.
func IsRetrievalError(err error) bool { return types.IsRetrievalError(err) }

// IsParseError reports whether err came from building the document tree.
func IsParseError(err error) bool { return types.IsParseError(err) }

// IsNotFoundError reports whether the content region was missing.
func IsNotFoundError(err error) bool { return types.IsNotFoundError(err) }

// StatusCode returns the HTTP status carried by a retrieval error, or zero.
func StatusCode(err error) int { return types.StatusCode(err) }

// BuildInfo contains version and build information for the wpget library.
type BuildInfo = types.BuildInfo

// GetBuildInfo returns the current version information for the wpget library.
func GetBuildInfo() BuildInfo {
	return types.GetBuildInfo()
}

// Version is the current version of the wpget library.
var Version = types.Version

// Name is the name of the wpget library.
var Name = types.Name
