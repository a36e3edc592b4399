package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"groupstudy/pkg/document"
)

const (
	lenID       int    = 24
	typeError   string = "error"
	typeMessage string = "message"
	muxVarID    string = "id"
	queryPage   string = "page"
	querySize   string = "size"
)

// DocumentHandler serves one collection; the assignment and submission
// surfaces are two instances of it.
type DocumentHandler struct {
	Service  document.ServiceDocument
	Logger   *slog.Logger
	Resource string
}

func NewDocumentHandler(service document.ServiceDocument, logger *slog.Logger, resource string) *DocumentHandler {
	return &DocumentHandler{
		Service:  service,
		Logger:   logger,
		Resource: resource,
	}
}

// List honors page/size query params when both parse as non-negative
// integers and degrades to listing the whole collection otherwise.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		docs []document.Document
		err  error
	)

	if page, size, ok := pageParams(r); ok {
		docs, err = h.Service.List(r.Context(), page, size)
	} else {
		docs, err = h.Service.ListAll(r.Context())
	}
	if err != nil {
		h.storeError(w, "list", err)
		return
	}

	writeJSON(w, h.Logger, docs)
}

func (h *DocumentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Service.ListAll(r.Context())
	if err != nil {
		h.storeError(w, "list", err)
		return
	}

	writeJSON(w, h.Logger, docs)
}

func (h *DocumentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := mux.Vars(r)[muxVarID]
	if !ok || len(id) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid "+h.Resource+" id")
		return
	}

	docs, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.storeError(w, "get", err)
		return
	}

	writeJSON(w, h.Logger, docs)
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var doc document.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	result, err := h.Service.Create(r.Context(), doc)
	if err != nil {
		h.storeError(w, "create", err)
		return
	}

	if ok := writeJSON(w, h.Logger, result); ok {
		h.Logger.Info("new "+h.Resource+" created", "id", result.InsertedID)
	}
}

func (h *DocumentHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, ok := mux.Vars(r)[muxVarID]
	if !ok || len(id) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid "+h.Resource+" id")
		return
	}

	var doc document.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	result, err := h.Service.Upsert(r.Context(), id, doc)
	if err != nil {
		h.storeError(w, "upsert", err)
		return
	}

	if ok := writeJSON(w, h.Logger, result); ok {
		h.Logger.Info(h.Resource+" upserted", "id", id, "upserted", result.UpsertedCount)
	}
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := mux.Vars(r)[muxVarID]
	if !ok || len(id) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid "+h.Resource+" id")
		return
	}

	result, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		h.storeError(w, "delete", err)
		return
	}

	if ok := writeJSON(w, h.Logger, result); ok {
		h.Logger.Info(h.Resource+" delete", "id", id, "deleted", result.DeletedCount)
	}
}

func (h *DocumentHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.Count(r.Context())
	if err != nil {
		h.storeError(w, "count", err)
		return
	}

	writeJSON(w, h.Logger, map[string]int64{"count": count})
}

func (h *DocumentHandler) storeError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, document.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid "+h.Resource+" id")
		return
	}
	h.Logger.Error(op+" "+h.Resource, "error", err)
	writeError(w, http.StatusInternalServerError, typeError, "store failure")
}

func pageParams(r *http.Request) (page, size int64, ok bool) {
	q := r.URL.Query()
	if !q.Has(queryPage) || !q.Has(querySize) {
		return 0, 0, false
	}

	page, errPage := strconv.ParseInt(q.Get(queryPage), 10, 64)
	size, errSize := strconv.ParseInt(q.Get(querySize), 10, 64)
	if errPage != nil || errSize != nil || page < 0 || size < 0 {
		return 0, 0, false
	}
	return page, size, true
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{field: msg}); err != nil {
		return
	}
}
