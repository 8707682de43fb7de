package models

import "io"

// Upload is a single file received in a multipart request.
type Upload struct {
	// Field is the multipart form field the file was sent in.
	Field string

	// OriginalName is the client-side filename; only its extension is kept.
	OriginalName string

	// ContentType is the declared MIME type of the file.
	ContentType string

	// Size is the declared length of Body in bytes.
	Size int64

	Body io.Reader
}
