package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/internal/validators"
	"github.com/MKhiriev/go-lost-found/models"
)

const notesImageField = "notesImage"

// addNotes publishes a notes entry from a multipart form ("title", "link" and
// an optional "notesImage" file) or from a JSON body.
func (h *Handler) addNotes(w http.ResponseWriter, r *http.Request) {
	var (
		newNotes models.NewNotes
		image    *models.Upload
	)

	if isMultipart(r) {
		if err := h.parseMultipart(w, r, 1); err != nil {
			writeError(w, r, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		form := r.MultipartForm
		newNotes = models.NewNotes{
			Title: formString(form, "title"),
			Link:  formString(form, "link"),
		}

		files, closeFiles, err := formFiles(form, notesImageField)
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer closeFiles()

		switch len(files) {
		case 0:
		case 1:
			image = &files[0]
		default:
			writeError(w, r, validators.NewValidationError(notesImageField, "only one file is allowed"))
			return
		}
	} else if err := utils.DecodeJSON(r, &newNotes); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	notes, err := h.services.NotesService.AddNotes(r.Context(), newNotes, image)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NotesService.ListNotes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.Notes{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}
