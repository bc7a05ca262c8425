package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hongminglow/library-be/internal/http/respond"
	"github.com/hongminglow/library-be/internal/library"
	"github.com/hongminglow/library-be/internal/middleware"
	"github.com/hongminglow/library-be/internal/models"
	"github.com/hongminglow/library-be/internal/models/dto"
)

// BookHandler serves the catalog.
type BookHandler struct {
	svc    *library.Service
	authn  middleware.Middleware
	logger *slog.Logger
}

// NewBookHandler constructs the handler. authn guards the mutating routes.
func NewBookHandler(svc *library.Service, authn middleware.Middleware, logger *slog.Logger) *BookHandler {
	return &BookHandler{svc: svc, authn: authn, logger: logger}
}

// Register attaches book routes to the mux.
func (h *BookHandler) Register(mux *http.ServeMux) {
	guarded := func(perm models.Permission, fn http.HandlerFunc) http.Handler {
		return middleware.Chain(fn, h.authn, middleware.RequirePermission(perm))
	}
	mux.Handle("POST /books", guarded(models.CanCreateBook, h.handleCreate))
	mux.HandleFunc("GET /books", h.handleList)
	mux.HandleFunc("GET /books/{id}", h.handleGet)
	mux.Handle("PUT /books/{id}", guarded(models.CanUpdateBook, h.handleUpdate))
	mux.Handle("DELETE /books/{id}", guarded(models.CanDeleteBook, h.handleDelete))
}

func (h *BookHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	book, err := h.svc.CreateBook(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusCreated, book)
}

func (h *BookHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respond.Error(w, http.StatusNotFound, "Book not found")
		return
	}
	book, err := h.svc.GetBook(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, book)
}

func (h *BookHandler) handleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListBooks(r.Context(), parseBookQuery(r.URL.Query()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, page)
}

func (h *BookHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respond.Error(w, http.StatusNotFound, "Book not found")
		return
	}
	var req dto.UpdateBookRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	book, err := h.svc.UpdateBook(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, book)
}

func (h *BookHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respond.Error(w, http.StatusNotFound, "Book not found")
		return
	}
	if err := h.svc.DeleteBook(r.Context(), id); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.MessageResponse{Message: "Book soft-deleted"})
}

// parseBookQuery reads catalog filters. Malformed page/limit values become 0 so the
// service rejects them; absent ones take the defaults.
func parseBookQuery(values url.Values) dto.BookQuery {
	q := dto.BookQuery{
		Genre:     values.Get("genre"),
		Publisher: values.Get("publisher"),
		Author:    values.Get("author"),
		Title:     values.Get("title"),
		FromDate:  values.Get("fromDate"),
		ToDate:    values.Get("toDate"),
		Page:      intParam(values, "page", library.DefaultPage),
		Limit:     intParam(values, "limit", library.DefaultLimit),
	}
	if values.Has("available") {
		available := strings.EqualFold(values.Get("available"), "true")
		q.Available = &available
	}
	return q
}

func intParam(values url.Values, key string, def int) int {
	if !values.Has(key) {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(values.Get(key)))
	if err != nil {
		return 0
	}
	return n
}
