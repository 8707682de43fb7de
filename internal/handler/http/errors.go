// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyTokenHeader is returned by the identity middleware when the
	// request does not carry the token header at all.
	ErrEmptyTokenHeader = errors.New("empty token header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not follow the "Bearer <token>" scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidRequestBody is returned when a JSON or multipart body cannot
	// be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")
)
