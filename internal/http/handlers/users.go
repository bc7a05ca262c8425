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

// UserHandler serves user profiles.
type UserHandler struct {
	svc    *library.Service
	authn  middleware.Middleware
	logger *slog.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(svc *library.Service, authn middleware.Middleware, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, authn: authn, logger: logger}
}

// Register attaches user routes to the mux.
func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /users/{id}", h.handleGet)
	mux.Handle("PUT /users/{id}", h.authn(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /users/{id}", h.authn(http.HandlerFunc(h.handleDelete)))
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respond.Error(w, http.StatusNotFound, "User not found")
		return
	}
	user, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		respond.Error(w, http.StatusNotFound, "User not found")
		return
	}
	var req dto.UpdateUserRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	user, err := h.svc.UpdateUser(r.Context(), caller, id, req)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		respond.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err := h.svc.DeleteUser(r.Context(), caller, id); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.MessageResponse{Message: "User soft-deleted"})
}
