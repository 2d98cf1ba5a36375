package handler

import (
	"errors"
	"net/http"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
	"github.com/deskops-tools/shift-planner/backend/internal/spreadsheet"
)

// ImportEmployees extracts employee names from an uploaded workbook so the
// client can assign them to shifts. The file must carry an "Employee"
// column; nothing is scheduled here.
func (h *Handler) ImportEmployees(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		h.errorResponse(w, r, "a workbook must be uploaded in the \"file\" field")
		return
	}
	defer file.Close()

	employees, err := spreadsheet.ReadEmployees(file)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingColumn):
			h.errorResponse(w, r, err.Error())
		default:
			h.errorResponse(w, r, "the uploaded file could not be read as a workbook")
		}
		return
	}

	h.successResponse(w, r, "employees imported", employees)
}
