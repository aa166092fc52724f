package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cantinadirect/shipping-backend/internal/http/response"
	"github.com/cantinadirect/shipping-backend/internal/modules/documents"
	pkgerrors "github.com/cantinadirect/shipping-backend/internal/pkg/errors"
	"github.com/cantinadirect/shipping-backend/internal/platform/apierr"
	"github.com/cantinadirect/shipping-backend/internal/platform/logger"
	"github.com/cantinadirect/shipping-backend/internal/services"
)

type DocumentHandler struct {
	log     *logger.Logger
	service services.DocumentService
}

func NewDocumentHandler(log *logger.Logger, svc services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		log:     log.With("handler", "DocumentHandler"),
		service: svc,
	}
}

// GET /api/shipments/:id/documents/:type?courier=...&tracking=...
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	shipmentID := c.Param("id")
	docType := c.Param("type")
	courier := c.Query("courier")
	tracking := c.Query("tracking")

	doc, err := h.service.GenerateDocument(c.Request.Context(), shipmentID, docType, courier, tracking)
	if err != nil {
		ae := mapServiceError(err)
		if ae.Status >= http.StatusInternalServerError {
			h.log.Error("GetDocument failed", "error", err, "shipment_id", shipmentID, "doc_type", docType)
		}
		response.RespondError(c, ae.Status, ae.Code, ae.Err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.HTML))
}

// GET /api/shipments/:id/packages.csv
func (h *DocumentHandler) GetPackagesCSV(c *gin.Context) {
	shipmentID := c.Param("id")

	csv, err := h.service.PackagesCSV(c.Request.Context(), shipmentID)
	if err != nil {
		ae := mapServiceError(err)
		if ae.Status >= http.StatusInternalServerError {
			h.log.Error("GetPackagesCSV failed", "error", err, "shipment_id", shipmentID)
		}
		response.RespondError(c, ae.Status, ae.Code, ae.Err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="packages.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

func mapServiceError(err error) *apierr.Error {
	var unsupported *documents.UnsupportedDocTypeError
	switch {
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		return apierr.New(http.StatusBadRequest, "invalid_request", err)
	case errors.Is(err, pkgerrors.ErrNotFound):
		return apierr.New(http.StatusNotFound, "shipment_not_found", err)
	case errors.As(err, &unsupported):
		return apierr.New(http.StatusBadRequest, "unsupported_doc_type", err)
	}
	return apierr.New(http.StatusInternalServerError, "document_generation_failed", err)
}
