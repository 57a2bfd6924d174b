package faq

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/argusintel/argus/internal/platform/request"
	"github.com/argusintel/argus/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listPublished)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listAll)
	router.Get("/{id}", handler.getByID)
	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)
	router.Put("/reorder", handler.reorder)
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	faqs, err := handler.service.ListFAQs(request.Context(), true)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, faqs)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	faqs, err := handler.service.ListFAQs(request.Context(), false)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, faqs)
}

func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	faq, err := handler.service.GetFAQ(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, faq)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input FAQ
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateFAQ(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input FAQ
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateFAQ(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeleteFAQ(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) reorder(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		IDs []string `json:"ids"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Reorder(request.Context(), input.IDs); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
