package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/deskops-tools/shift-planner/backend/internal/domain"
	"github.com/deskops-tools/shift-planner/backend/internal/roster"
	"github.com/deskops-tools/shift-planner/backend/internal/spreadsheet"
)

// GenerateSchedule builds a fresh table for the session, replacing any
// previous one. The request carries either a headcount per shift or an
// explicit employee list per shift; the two modes are mutually exclusive.
func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Headcounts  map[string]int      `json:"headcounts"`
		Assignments map[string][]string `json:"assignments"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if req.Headcounts == nil && req.Assignments == nil {
		h.errorResponse(w, r, "either headcounts or assignments must be provided")
		return
	}
	if req.Headcounts != nil && req.Assignments != nil {
		h.errorResponse(w, r, "headcounts and assignments are mutually exclusive")
		return
	}

	// reject shift ids that are not in the catalog before generating anything
	for shiftID := range req.Headcounts {
		if _, err := h.registry.Lookup(shiftID); err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
	}
	for shiftID := range req.Assignments {
		if _, err := h.registry.Lookup(shiftID); err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
	}

	// an employee may appear under at most one shift in the same table
	if req.Assignments != nil {
		assigned := make(map[string]string)
		for _, shiftID := range h.registry.ShiftIDs() {
			for _, employee := range req.Assignments[shiftID] {
				if other, exists := assigned[employee]; exists && other != shiftID {
					h.errorResponse(w, r, fmt.Sprintf("employee %q is assigned to both %q and %q", employee, other, shiftID))
					return
				}
				assigned[employee] = shiftID
			}
		}
	}

	table := domain.ScheduleTable{}
	for _, shiftID := range h.registry.ShiftIDs() {
		var (
			rows domain.ScheduleTable
			err  error
		)

		switch {
		case req.Headcounts != nil:
			headcount, ok := req.Headcounts[shiftID]
			if !ok {
				continue
			}
			rows, err = h.registry.GenerateByHeadcount(shiftID, headcount)
		default:
			employees, ok := req.Assignments[shiftID]
			if !ok {
				continue
			}
			rows, err = h.registry.Generate(shiftID, employees)
		}

		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidHeadcount), errors.Is(err, domain.ErrUnknownShift):
				h.errorResponse(w, r, err.Error())
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		table = append(table, rows...)
	}

	sessionID := r.Context().Value(SessionIDCtx).(string)
	if err := h.store.Put(r.Context(), sessionID, table); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	rows, err := h.newTableView(table)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule generated", rows)
}

func (h *Handler) GetCurrentSchedule(w http.ResponseWriter, r *http.Request) {
	table := r.Context().Value(ScheduleTableCtx).(domain.ScheduleTable)

	rows, err := h.newTableView(table)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "schedule retrieved", rows)
}

// EditScheduleRow applies one slider movement to one row and returns the
// updated row together with the refreshed bounds for dependent controls.
func (h *Handler) EditScheduleRow(w http.ResponseWriter, r *http.Request) {
	indexParam := chi.URLParam(r, "index")
	index, err := strconv.Atoi(indexParam)
	if err != nil {
		h.errorResponse(w, r, "invalid row index")
		return
	}

	var req struct {
		Field string `json:"field" validate:"required,oneof=start end lunchStart"`
		Value string `json:"value" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	value, err := domain.ParseClock(req.Value)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	table := r.Context().Value(ScheduleTableCtx).(domain.ScheduleTable)

	bounds, err := h.registry.ApplyEdit(table, index, roster.EditField(req.Field), value)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOutOfRange):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	sessionID := r.Context().Value(SessionIDCtx).(string)
	if err := h.store.Put(r.Context(), sessionID, table); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	row, err := h.newRowView(index, table[index])
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	boundsViews := make([]fieldBoundsView, 0, len(bounds))
	for _, b := range bounds {
		boundsViews = append(boundsViews, fieldBoundsView{
			Field: string(b.Field),
			Min:   domain.FormatClock(b.Min),
			Max:   domain.FormatClock(b.Max),
		})
	}

	h.successResponse(w, r, "schedule updated", struct {
		Row    rowView           `json:"row"`
		Bounds []fieldBoundsView `json:"bounds"`
	}{
		Row:    row,
		Bounds: boundsViews,
	})
}

func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	table := r.Context().Value(ScheduleTableCtx).(domain.ScheduleTable)

	segments, err := h.registry.Project(table)
	if err != nil {
		// MalformedInterval here means a broken invariant, not bad user input
		h.internalServerError(w, r, err)
		return
	}

	views := make([]segmentView, 0, len(segments))
	for _, seg := range segments {
		views = append(views, segmentView{
			Subject:  seg.Subject,
			Start:    domain.FormatClock(seg.Start),
			End:      domain.FormatClock(seg.End),
			Category: string(seg.Category),
		})
	}

	h.successResponse(w, r, "timeline projected", views)
}

func (h *Handler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	table := r.Context().Value(ScheduleTableCtx).(domain.ScheduleTable)

	rows, err := h.registry.ExportRows(table)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	f, err := spreadsheet.WriteSchedule(roster.ExportHeader, rows)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.xlsx"`)

	if err := f.Write(w); err != nil {
		h.logInternalServerError(r, err)
	}
}
