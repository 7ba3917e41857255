package http

import (
	"net/http"

	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/internal/utils"
	"github.com/MKhiriev/go-app-kit/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subject, _ := utils.GetSubjectFromContext(ctx)

	items, err := h.services.ItemService.ListItems(ctx, subject)
	if err != nil {
		log.Err(err).Msg("listing items failed")
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	writeJSON(w, r, models.ItemList{Data: &items}, http.StatusOK)
}
