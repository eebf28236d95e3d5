package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"inputguard/internal/checks/service"
	httputil "inputguard/pkg/http"
	"inputguard/pkg/logger"
	"inputguard/pkg/model"
)

type CheckHandler struct {
	service service.CheckService
	log     *logger.Logger
}

func NewCheckHandler(service service.CheckService, log *logger.Logger) *CheckHandler {
	return &CheckHandler{
		service: service,
		log:     log,
	}
}

func (h *CheckHandler) Check(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.CheckRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Check", err)
		return
	}

	res, err := h.service.Check(r.Context(), ps.ByName("kind"), &req)
	if err != nil {
		h.writeError(w, "Check", err)
		return
	}

	if err := httputil.WriteSuccess(w, res); err != nil {
		h.log.Error("failed to write success response", "handler", "Check", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CheckHandler) CompareSequences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CompareRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "CompareSequences", err)
		return
	}

	res, err := h.service.CompareSequences(r.Context(), &req)
	if err != nil {
		h.writeError(w, "CompareSequences", err)
		return
	}

	if err := httputil.WriteSuccess(w, res); err != nil {
		h.log.Error("failed to write success response", "handler", "CompareSequences", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CheckHandler) CompareRecords(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CompareRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "CompareRecords", err)
		return
	}

	res, err := h.service.CompareRecords(r.Context(), &req)
	if err != nil {
		h.writeError(w, "CompareRecords", err)
		return
	}

	if err := httputil.WriteSuccess(w, res); err != nil {
		h.log.Error("failed to write success response", "handler", "CompareRecords", "operation", "WriteSuccess", "error", err)
	}
}

// Stringify takes Extended JSON rather than plain JSON so ObjectIDs and UUIDs
// survive the trip in.
func (h *CheckHandler) Stringify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body, err := httputil.ReadBody(r)
	if err != nil {
		h.writeError(w, "Stringify", err)
		return
	}

	out, err := h.service.Stringify(r.Context(), body)
	if err != nil {
		h.writeError(w, "Stringify", err)
		return
	}

	if err := httputil.WriteSuccess(w, json.RawMessage(out)); err != nil {
		h.log.Error("failed to write success response", "handler", "Stringify", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CheckHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *CheckHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/checks/:kind", h.Check)
	router.POST("/api/v1/compare/sequences", h.CompareSequences)
	router.POST("/api/v1/compare/records", h.CompareRecords)
	router.POST("/api/v1/documents/stringify", h.Stringify)
}
