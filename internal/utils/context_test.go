// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-lost-found/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "testKey", key.String())
	assert.Equal(t, "identity", IdentityCtxKey.String())
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	want := models.Identity{UserID: "u-1", Role: models.RoleAdmin}
	ctx := WithIdentity(context.Background(), want)

	got, ok := GetIdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	got, ok := GetIdentityFromContext(context.Background())
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "u-1")

	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}

func TestGetIdentityFromContext_PlainStringKeyDoesNotCollide(t *testing.T) {
	//nolint:staticcheck
	ctx := context.WithValue(context.Background(), "identity", models.Identity{UserID: "x"})

	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}
