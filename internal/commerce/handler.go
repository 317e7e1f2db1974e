// AngelaMos | 2026
// handler.go

package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/creatorcash/internal/catalog"
	"github.com/carterperez-dev/creatorcash/internal/core"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/creators/{username}", func(r chi.Router) {
		r.Post("/questions", h.AskQuestion)
		r.Post("/calls", h.BookCall)
		r.Post("/tips", h.SendTip)
		r.Post("/purchases", h.PurchaseProduct)
		r.Post("/shoutouts", h.BookShoutout)
		r.Post("/hires", h.BookHireService)
		r.Post("/memberships", h.JoinGroup)
		r.Post("/waitlist", h.JoinWaitlist)

		r.Get("/questions", h.ListQuestions)
		r.Get("/calls", h.ListCallBookings)
		r.Get("/tips", h.ListTips)
		r.Get("/purchases", h.ListPurchases)
		r.Get("/shoutouts", h.ListShoutoutBookings)
		r.Get("/hires", h.ListHireBookings)
		r.Get("/memberships", h.ListMemberships)
	})
}

func (h *Handler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	var req AskQuestionRequest
	if !h.decode(w, r, &req) {
		return
	}

	record, err := h.service.AskQuestion(r.Context(), username(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, record)
}

func (h *Handler) BookCall(w http.ResponseWriter, r *http.Request) {
	var req BookCallRequest
	if !h.decode(w, r, &req) {
		return
	}

	record, err := h.service.BookCall(r.Context(), username(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, record)
}

func (h *Handler) SendTip(w http.ResponseWriter, r *http.Request) {
	var req SendTipRequest
	if !h.decode(w, r, &req) {
		return
	}

	record, err := h.service.SendTip(r.Context(), username(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, record)
}

func (h *Handler) PurchaseProduct(w http.ResponseWriter, r *http.Request) {
	var req PurchaseProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	record, err := h.service.PurchaseProduct(r.Context(), username(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, record)
}

func (h *Handler) BookShoutout(w http.ResponseWriter, r *http.Request) {
	var req BookShoutoutRequest
	if !h.decode(w, r, &req) {
		return
	}

	record, err := h.service.BookShoutout(r.Context(), username(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, record)
}

func (h *Handler) BookHireService(w http.ResponseWriter, r *http.Request) {
	var req BookHireServiceRequest
	if !h.decode(w, r, &req) {
		return
	}

	record, err := h.service.BookHireService(r.Context(), username(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, record)
}

func (h *Handler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	var req JoinGroupRequest
	if !h.decode(w, r, &req) {
		return
	}

	record, err := h.service.JoinGroup(r.Context(), username(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, record)
}

func (h *Handler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	var req JoinWaitlistRequest
	if !h.decode(w, r, &req) {
		return
	}

	record, err := h.service.JoinWaitlist(r.Context(), username(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, record)
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	list(w, r, h, h.service.Questions)
}

func (h *Handler) ListCallBookings(w http.ResponseWriter, r *http.Request) {
	list(w, r, h, h.service.CallBookings)
}

func (h *Handler) ListTips(w http.ResponseWriter, r *http.Request) {
	list(w, r, h, h.service.Tips)
}

func (h *Handler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	list(w, r, h, h.service.Purchases)
}

func (h *Handler) ListShoutoutBookings(w http.ResponseWriter, r *http.Request) {
	list(w, r, h, h.service.ShoutoutBookings)
}

func (h *Handler) ListHireBookings(w http.ResponseWriter, r *http.Request) {
	list(w, r, h, h.service.HireBookings)
}

func (h *Handler) ListMemberships(w http.ResponseWriter, r *http.Request) {
	list(w, r, h, h.service.Memberships)
}

func list[T any](
	w http.ResponseWriter,
	r *http.Request,
	h *Handler,
	fn func(ctx context.Context, username string) ([]T, error),
) {
	records, err := fn(r.Context(), username(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	if records == nil {
		records = []T{}
	}
	core.OK(w, records)
}

func username(r *http.Request) string {
	return catalog.CleanUsername(chi.URLParam(r, "username"))
}

func (h *Handler) decode(
	w http.ResponseWriter,
	r *http.Request,
	dst any,
) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		core.BadRequest(w, "invalid request body")
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		core.UnprocessableEntity(w, core.FormatValidationError(err))
		return false
	}

	return true
}

// writeError maps service errors onto the response envelope. Declines quote
// the gateway's message verbatim; recording failures get the contact-support
// text because the charge already went through.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		var missing *notFoundError
		if errors.As(err, &missing) {
			core.NotFound(w, missing.resource)
			return
		}
		core.NotFound(w, "creator")
	case errors.Is(err, core.ErrFeatureDisabled):
		core.Forbidden(w, "this feature is not enabled for this creator")
	case errors.Is(err, core.ErrPaymentDeclined):
		core.PaymentRequired(w, err.Error())
	case errors.Is(err, core.ErrRecordingFailed):
		core.BadGateway(w, "payment succeeded but the record could not be saved; please contact support")
	case errors.Is(err, core.ErrInvalidInput):
		core.UnprocessableEntity(w, userMessage(err))
	default:
		core.InternalServerError(w, err)
	}
}

// userMessage strips the sentinel prefix so the envelope carries only the
// human-readable part.
func userMessage(err error) string {
	msg := err.Error()
	if cut, ok := strings.CutPrefix(msg, core.ErrInvalidInput.Error()+": "); ok {
		return cut
	}
	return msg
}
