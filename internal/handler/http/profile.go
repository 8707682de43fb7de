package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/internal/validators"
	"github.com/MKhiriev/go-lost-found/models"
)

const profilePictureField = "profilePic"

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrPreconditionFailed)
		return
	}

	user, err := h.services.AccountService.Profile(r.Context(), identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

// updateUser accepts either a JSON body {"payload": {"info": {...}}} or a
// multipart form with the same fields and an optional "profilePic" file.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrPreconditionFailed)
		return
	}

	var (
		update  models.UserUpdate
		picture *models.Upload
	)

	if isMultipart(r) {
		if err := h.parseMultipart(w, r, 1); err != nil {
			writeError(w, r, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		form := r.MultipartForm
		update = models.UserUpdate{
			Name:     formValue(form, "name"),
			Username: formValue(form, "username"),
			Email:    formValue(form, "email"),
			Gender:   formValue(form, "gender"),
			Contact:  formValue(form, "contact"),
		}

		files, closeFiles, err := formFiles(form, profilePictureField)
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer closeFiles()

		switch len(files) {
		case 0:
		case 1:
			picture = &files[0]
		default:
			writeError(w, r, validators.NewValidationError(profilePictureField, "only one file is allowed"))
			return
		}
	} else {
		var req models.UpdateUserRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
			return
		}
		if req.Payload == nil || req.Payload.Info == nil {
			writeError(w, r, validators.NewValidationError("payload.info", "is required"))
			return
		}
		update = *req.Payload.Info
	}

	user, err := h.services.AccountService.UpdateProfile(r.Context(), identity, update, picture)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: user}, http.StatusOK)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AccountService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if users == nil {
		users = []models.PublicUser{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
