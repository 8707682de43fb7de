package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces unique opaque identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates time-ordered UUIDv7 strings.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// UniqueFilename returns a fresh UUID followed by the lower-cased extension
// of originalName. Directory components of originalName are ignored.
func UniqueFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return uuid.NewString() + ext
}
