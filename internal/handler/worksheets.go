package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aontas/aontas/internal/export"
	"github.com/aontas/aontas/internal/model"
)

func (h *Handler) handleListWorksheets(w http.ResponseWriter, r *http.Request) {
	worksheets, err := h.store.ListWorksheets()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if worksheets == nil {
		worksheets = []model.Worksheet{}
	}
	writeJSON(w, http.StatusOK, worksheets)
}

func (h *Handler) handleGetWorksheet(w http.ResponseWriter, r *http.Request) {
	worksheet, ok := h.worksheetFromURL(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, worksheet)
}

func (h *Handler) handleDeleteWorksheet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "worksheetID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid worksheet ID")
		return
	}
	if err := h.store.DeleteWorksheet(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "worksheet not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleWorksheetXLSX(w http.ResponseWriter, r *http.Request) {
	worksheet, ok := h.worksheetFromURL(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="worksheet-%d.xlsx"`, worksheet.ID))
	if err := export.WriteXLSX(w, worksheet.Result); err != nil {
		h.logger.Error("xlsx export", "id", worksheet.ID, "error", err)
	}
}

func (h *Handler) handleWorksheetHTML(w http.ResponseWriter, r *http.Request) {
	worksheet, ok := h.worksheetFromURL(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := export.WriteHTML(w, worksheet.Result); err != nil {
		h.logger.Error("html export", "id", worksheet.ID, "error", err)
	}
}

// worksheetFromURL loads the worksheet named in the URL, writing the error
// response itself when that fails.
func (h *Handler) worksheetFromURL(w http.ResponseWriter, r *http.Request) (model.Worksheet, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "worksheetID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid worksheet ID")
		return model.Worksheet{}, false
	}
	worksheet, err := h.store.GetWorksheet(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "worksheet not found")
			return model.Worksheet{}, false
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return model.Worksheet{}, false
	}
	return worksheet, true
}
