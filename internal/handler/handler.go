package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/deskops-tools/shift-planner/backend/internal/config"
	"github.com/deskops-tools/shift-planner/backend/internal/roster"
	"github.com/deskops-tools/shift-planner/backend/internal/session"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	registry   *roster.Registry
	store      session.Store
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, registry *roster.Registry, store session.Store) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		registry:   registry,
		store:      store,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// the catalog is static configuration and needs no session
	h.Mux.Get("/shifts", h.ListShifts)

	// everything below operates on the session's schedule table
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Post("/employees/import", h.ImportEmployees)

		r.Route("/schedules", func(r chi.Router) {
			r.Post("/", h.GenerateSchedule)
			r.Route("/current", func(r chi.Router) {
				r.Use(h.currentSchedule)
				r.Get("/", h.GetCurrentSchedule)
				r.Patch("/rows/{index}", h.EditScheduleRow)
				r.Get("/timeline", h.GetTimeline)
				r.Get("/export", h.ExportSchedule)
			})
		})
	})
}
