package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/cataloging"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/ingesting"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/apiErrors"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// TriggerSync runs the reconciliation for one project and one day. The date
// query parameter defaults to yesterday, the day the marketplace has fully
// settled.
func TriggerSync(service ingesting.Ingestor) http.HandlerFunc {
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
			*date = time.Now().UTC().AddDate(0, 0, -1)
		}

		result, err := service.SyncDay(r.Context(), projectID, *date)
		if err != nil {
			handleSyncError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// TriggerCatalogSync refreshes the product catalog from the marketplace
// offer mappings.
func TriggerCatalogSync(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := projectIDParam(w, r)
		if !ok {
			return
		}

		count, err := service.SyncCatalog(r.Context(), projectID)
		if err != nil {
			handleSyncError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int{
			"skus": count,
		})
	}
}

func projectIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid project id", nil)
		return 0, false
	}
	return id, true
}

func handleSyncError(w http.ResponseWriter, err error) {
	switch {
	case ingesting.IsConfigurationError(err):
		apiErrors.WriteError(w, apiErrors.ErrSyncConfiguration, err.Error(), nil)
	case ingesting.IsAuthenticationError(err):
		var authErr *ingesting.AuthenticationError
		errors.As(err, &authErr)
		apiErrors.WriteError(w, apiErrors.ErrSyncAuthFailed, err.Error(), authErr.Errors)
	case errors.Is(err, ingesting.ErrRunActive):
		apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyActive, err.Error(), nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "sync failed", nil)
	}
}
