// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// lost-and-found service layer and HTTP handlers.
//
// All Msg* constants are human-readable strings that are written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// throughout the API.
package app

const (
	// MsgSignedOut is the body message of a successful signout.
	MsgSignedOut = "Signed out successfully"

	// MsgAdminCreated is attached to the result of an admin signup.
	MsgAdminCreated = "Admin created successfully"

	// MsgTokenIsExpired is returned when a token is correctly signed but its
	// expiry time has passed.
	MsgTokenIsExpired = "Token is expired"

	// MsgAuthenticate is returned when the token is missing, malformed or
	// carries an invalid signature.
	MsgAuthenticate = "Please authenticate using a valid token"

	// MsgAccessDenied is returned when the caller's role does not match the
	// role required by the route.
	MsgAccessDenied = "Access denied"

	// MsgInvalidCredentials is returned for an unknown email, a wrong
	// password or a role mismatch at signin. The three cases are not told
	// apart.
	MsgInvalidCredentials = "Please enter valid credentials"

	// MsgAlreadyExists is returned when a unique field (email, item name,
	// notes title) is taken.
	MsgAlreadyExists = "Already exists"

	MsgValidationFailed = "Validation failed"
	MsgInvalidBody      = "Invalid request body"
	MsgNotFound         = "Not found"

	// MsgServiceUnavailable is returned when storage failed for a transient
	// reason and the request can be retried.
	MsgServiceUnavailable = "Service is temporarily unavailable, please try again later"

	// MsgInternalServerError is returned for every unexpected failure. The
	// cause is logged, never sent.
	MsgInternalServerError = "Some internal server error occurred, please try again later"
)
