package models

import "time"

// Notes is a reference topic published by an administrator.
type Notes struct {
	ID string `json:"_id"`

	// Title is unique across all notes.
	Title string `json:"title"`

	// Slug is the URL-friendly title followed by a short random suffix.
	Slug       string    `json:"slug"`
	NotesLink  string    `json:"notesLink"`
	NotesImage string    `json:"notesImage,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewNotes holds the multipart form fields of POST /notes/add.
type NewNotes struct {
	Title string `json:"title" validate:"required,max=200"`
	Link  string `json:"link" validate:"omitempty,url"`
}
