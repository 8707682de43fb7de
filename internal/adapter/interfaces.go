// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the lost-and-found HTTP API.
//
// [ServerAdapter] decouples callers from the transport. The package ships a
// resty-based implementation ([NewHTTPServerAdapter]).
//
// Non-2xx answers are returned as *[ResponseError], which unwraps to the
// sentinel errors of errors.go so that callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-lost-found/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// File is an image sent in a multipart request.
type File struct {
	Name string
	Body io.Reader
}

// ServerAdapter defines communication with the lost-and-found server.
// Implementations attach the stored token to authenticated requests and map
// error responses to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the token attached to all subsequent authenticated
	// requests.
	SetToken(token string)

	// Token returns the stored token, or an empty string.
	Token() string

	// Signup creates an account of the given role and stores the issued token.
	Signup(ctx context.Context, role models.Role, req models.SignupRequest) (models.AuthResult, error)

	// Signin authenticates against the endpoint of the given role and stores
	// the issued token.
	Signin(ctx context.Context, role models.Role, req models.SigninRequest) (models.AuthResult, error)

	// Signout calls the signout endpoint and forgets the stored token.
	Signout(ctx context.Context, role models.Role) (models.MessageResponse, error)

	Profile(ctx context.Context, role models.Role) (models.PublicUser, error)
	UpdateProfile(ctx context.Context, update models.UserUpdate) (models.PublicUser, error)
	ListUsers(ctx context.Context) ([]models.PublicUser, error)

	// ReportItem posts a new item as a multipart form with the given images.
	ReportItem(ctx context.Context, item models.NewItem, images ...File) (models.Item, error)
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)

	// AddNotes posts a notes entry as a multipart form. image may be nil.
	AddNotes(ctx context.Context, notes models.NewNotes, image *File) (models.Notes, error)
	ListNotes(ctx context.Context) ([]models.Notes, error)

	ServerVersion(ctx context.Context) (string, error)
}
