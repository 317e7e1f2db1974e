// AngelaMos | 2026
// handler.go

package catalog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/creatorcash/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/creators/{username}", h.GetCreator)
}

func (h *Handler) GetCreator(w http.ResponseWriter, r *http.Request) {
	username := CleanUsername(chi.URLParam(r, "username"))

	creator, err := h.service.GetCreator(r.Context(), username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "creator")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, creator)
}

// CleanUsername strips a single leading "@"; the store lookup itself is an
// exact match.
func CleanUsername(username string) string {
	return strings.TrimPrefix(username, "@")
}
