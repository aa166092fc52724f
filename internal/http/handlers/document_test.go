package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantinadirect/shipping-backend/internal/data/fixtures"
	"github.com/cantinadirect/shipping-backend/internal/http/response"
	"github.com/cantinadirect/shipping-backend/internal/platform/logger"
	"github.com/cantinadirect/shipping-backend/internal/services"
	"github.com/cantinadirect/shipping-backend/internal/types"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := fixtures.New(
		[]types.Shipment{{
			ID:                 "ship-1",
			HumanID:            "SHP-2026-0042",
			Origin:             "wine_estate",
			Currency:           "EUR",
			ContentDescription: "Vino rosso in cartoni",
			TotalPackages:      1,
			SenderName:         "Cantina Alfa S.r.l.",
			RecipientName:      "Import Beta GmbH",
		}},
		[]types.Package{{ID: "p1", ShipmentID: "ship-1", Contents: "Barolo DOCG"}},
		nil,
		logger.NewNop(),
	)
	svc := services.NewDocumentService(logger.NewNop(), store)
	h := NewDocumentHandler(logger.NewNop(), svc)

	r := gin.New()
	r.GET("/api/shipments/:id/documents/:type", h.GetDocument)
	r.GET("/api/shipments/:id/packages.csv", h.GetPackagesCSV)
	return r
}

func TestGetDocumentServesHTML(t *testing.T) {
	r := testRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/shipments/SHP-2026-0042/documents/ddt?courier=UPS&tracking=1Z999", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Documento di Trasporto (DDT)")
	assert.Contains(t, w.Body.String(), "Cantina Alfa S.r.l.")
}

func TestGetDocumentUnknownShipment(t *testing.T) {
	r := testRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shipments/nope/documents/ddt", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var env response.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "shipment_not_found", env.Error.Code)
}

func TestGetDocumentUnsupportedType(t *testing.T) {
	r := testRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/shipments/SHP-2026-0042/documents/certificate_of_origin", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var env response.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "unsupported_doc_type", env.Error.Code)
}

func TestGetPackagesCSV(t *testing.T) {
	r := testRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shipments/ship-1/packages.csv", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "packages.csv")
	assert.Contains(t, w.Body.String(), "package_id;shipment_id")
	assert.Contains(t, w.Body.String(), "p1;ship-1;;;;;Barolo DOCG")
}
