package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/reporting"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/apiErrors"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// GetLedgerRange returns the daily ledger rows for a date range; the range
// defaults to the last 30 days.
func GetLedgerRange(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := projectIDParam(w, r)
		if !ok {
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date must be YYYY-MM-DD", nil)
			return
		}
		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must be YYYY-MM-DD", nil)
			return
		}

		if endDate.IsZero() {
			*endDate = time.Now().UTC()
		}
		if startDate.IsZero() {
			*startDate = endDate.AddDate(0, 0, -30)
		}

		ledgers, err := service.LedgerRange(r.Context(), projectID, *startDate, *endDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "loading ledger range", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ledgers)
	}
}

// GetSkuBreakdown returns the per-SKU rows for a single day.
func GetSkuBreakdown(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := projectIDParam(w, r)
		if !ok {
			return
		}

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be YYYY-MM-DD", nil)
			return
		}
		if date.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "date is required", nil)
			return
		}

		rows, err := service.SkuBreakdown(r.Context(), projectID, *date)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "loading sku breakdown", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rows)
	}
}

// GetProducts lists the project's catalog.
func GetProducts(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := projectIDParam(w, r)
		if !ok {
			return
		}

		products, err := service.Products(r.Context(), projectID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "loading products", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	}
}
