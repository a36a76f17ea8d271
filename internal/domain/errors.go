package domain

import "errors"

var (
	ErrParameterNotFound  = errors.New("parameter not found")
	ErrElementNotFound    = errors.New("element not found")
	ErrLevelNotFound      = errors.New("level not found")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownClass       = errors.New("unknown element class")
	ErrInvalidFilter      = errors.New("invalid filter criteria")
	ErrInvalidViewRange   = errors.New("invalid view range configuration")
	ErrAmbiguousAlias     = errors.New("alias expands to multiple parameters")
	ErrHostOperation      = errors.New("host operation failed")
	ErrHostTimeout        = errors.New("timed out waiting for host")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrReportFailed       = errors.New("report generation failed")
	ErrInvalidReportKey   = errors.New("invalid report key")
)
