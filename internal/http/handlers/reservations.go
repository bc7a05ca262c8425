package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hongminglow/library-be/internal/auth"
	"github.com/hongminglow/library-be/internal/http/respond"
	"github.com/hongminglow/library-be/internal/library"
	"github.com/hongminglow/library-be/internal/middleware"
	"github.com/hongminglow/library-be/internal/models/dto"
)

// ReservationHandler serves the reservation ledger. Every route requires authentication.
type ReservationHandler struct {
	svc    *library.Service
	authn  middleware.Middleware
	logger *slog.Logger
}

// NewReservationHandler constructs the handler.
func NewReservationHandler(svc *library.Service, authn middleware.Middleware, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{svc: svc, authn: authn, logger: logger}
}

// Register attaches reservation routes to the mux.
func (h *ReservationHandler) Register(mux *http.ServeMux) {
	mux.Handle("POST /reservations", h.authn(http.HandlerFunc(h.handleCreate)))
	mux.Handle("GET /reservations/book/{bookId}", h.authn(http.HandlerFunc(h.handleByBook)))
	mux.Handle("GET /reservations/user/{userId}", h.authn(http.HandlerFunc(h.handleByUser)))
}

func (h *ReservationHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateReservationRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	reservation, err := h.svc.Reserve(r.Context(), caller, int64(req.BookID))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, reservation)
}

func (h *ReservationHandler) handleByBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "bookId")
	if !ok {
		respond.JSON(w, http.StatusOK, []any{})
		return
	}
	entries, err := h.svc.ReservationsByBook(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, entries)
}

func (h *ReservationHandler) handleByUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userId")
	if !ok {
		respond.JSON(w, http.StatusOK, []any{})
		return
	}
	entries, err := h.svc.ReservationsByUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, entries)
}
