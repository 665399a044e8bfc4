package server

import (
	"net/http"

	"github.com/ntuan2502/gold-tracker/internal/apperror"
	"github.com/ntuan2502/gold-tracker/internal/quote"
)

type handler struct {
	quoteSvc *quote.Service
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// status exposes the busy indicator so a presentation layer can observe
// an in-flight reconciliation without the core flow holding UI state.
func (h *handler) status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"busy": h.quoteSvc.Busy()})
}

func (h *handler) getQuotes(w http.ResponseWriter, r *http.Request) {
	req := quote.GetQuotesRequest{
		FromDate: r.URL.Query().Get("fromDate"),
		ToDate:   r.URL.Query().Get("toDate"),
	}

	if appErr := req.Validate(); appErr != nil {
		writeError(w, appErr.HTTPStatus(), appErr.Message())
		return
	}

	result, err := h.quoteSvc.GetQuotes(r.Context(), req)
	if err != nil {
		if ae, ok := err.(*apperror.AppError); ok {
			writeError(w, ae.HTTPStatus(), ae.Message())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if result.Outcome == quote.OutcomeFailed {
		writeError(w, http.StatusBadGateway, "quote sources unavailable")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, result.Quotes)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
