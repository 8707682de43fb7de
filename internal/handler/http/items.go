package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/internal/validators"
	"github.com/MKhiriev/go-lost-found/models"
)

const (
	itemImagesField = "itemImages"
	maxItemImages   = 5
)

// addItem reports a lost or found item. The body is a multipart form with
// up to maxItemImages "itemImages" files, or plain JSON without images.
func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrPreconditionFailed)
		return
	}

	var (
		newItem models.NewItem
		images  []models.Upload
	)

	if isMultipart(r) {
		if err := h.parseMultipart(w, r, maxItemImages); err != nil {
			writeError(w, r, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		form := r.MultipartForm
		newItem = models.NewItem{
			ItemName:    formString(form, "itemName"),
			Description: formString(form, "description"),
			ItemType:    models.ItemType(formString(form, "itemType")),
			Question:    formString(form, "question"),
		}

		files, closeFiles, err := formFiles(form, itemImagesField)
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer closeFiles()

		if len(files) > maxItemImages {
			writeError(w, r, validators.NewValidationError(itemImagesField, fmt.Sprintf("at most %d files are allowed", maxItemImages)))
			return
		}
		images = files
	} else if err := utils.DecodeJSON(r, &newItem); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	item, err := h.services.ItemService.ReportItem(r.Context(), identity, newItem, images)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

// getItems lists items, optionally filtered by ?type= and ?status=.
func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.ItemFilter{
		Type:   models.ItemType(query.Get("type")),
		Status: models.ItemStatus(query.Get("status")),
	}

	items, err := h.services.ItemService.ListItems(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}
