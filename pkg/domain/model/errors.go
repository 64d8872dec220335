package model

import (
	"errors"

	"github.com/issuepulse/issuepulse/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Error tags for categorization
var (
	ErrTagConfig    = goerr.NewTag("config")
	ErrTagAuth      = goerr.NewTag("auth")
	ErrTagTransport = goerr.NewTag("transport")
	ErrTagUpstream  = goerr.NewTag("upstream")
)

// Sentinel errors for domain operations
var (
	ErrMissingCredentials = goerr.New("missing credentials",
		goerr.T(ErrTagConfig),
		goerr.V("code", types.ErrCodeMissingCredentials))
	ErrConfigRequired = goerr.New("configuration required",
		goerr.T(ErrTagConfig),
		goerr.V("code", types.ErrCodeConfigRequired))
	ErrInvalidCredentials = goerr.New("invalid credentials",
		goerr.T(ErrTagAuth),
		goerr.V("code", types.ErrCodeInvalidCredentials))
)

// CodeOf extracts the taxonomy code carried by an error chain.
// Returns ErrCodeInternal when no code is attached.
func CodeOf(err error) types.ErrorCode {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if goErr, ok := e.(*goerr.Error); ok {
			if code, ok := goErr.Values()["code"].(types.ErrorCode); ok {
				return code
			}
		}
	}
	return types.ErrCodeInternal
}

// StatusOf extracts the upstream HTTP status carried by an error chain,
// or 0 when none is attached
func StatusOf(err error) int {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if goErr, ok := e.(*goerr.Error); ok {
			if status, ok := goErr.Values()["status"].(int); ok {
				return status
			}
		}
	}
	return 0
}
