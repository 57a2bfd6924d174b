package page

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
	router.Get("/home", handler.getHome)
	router.Get("/about", handler.getAbout)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Route("/about-sections", func(r chi.Router) {
		r.Get("/", handler.listAboutSections)
		r.Put("/", handler.upsertAboutSection)
		r.Delete("/{id}", handler.deleteAboutSection)
	})
	router.Route("/features", func(r chi.Router) {
		r.Get("/", handler.listProductFeatures)
		r.Put("/", handler.upsertProductFeature)
		r.Delete("/{id}", handler.deleteProductFeature)
	})
	router.Route("/steps", func(r chi.Router) {
		r.Get("/", handler.listHowItWorksSteps)
		r.Put("/", handler.upsertHowItWorksStep)
		r.Delete("/{id}", handler.deleteHowItWorksStep)
	})
}

func (handler *Handler) getHome(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.GetHomeView(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) getAbout(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.GetAboutView(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) listAboutSections(writer http.ResponseWriter, request *http.Request) {
	sections, err := handler.service.ListAboutSections(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sections)
}

func (handler *Handler) upsertAboutSection(writer http.ResponseWriter, request *http.Request) {
	var input AboutSection
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpsertAboutSection(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteAboutSection(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteAboutSection(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listProductFeatures(writer http.ResponseWriter, request *http.Request) {
	features, err := handler.service.ListProductFeatures(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, features)
}

func (handler *Handler) upsertProductFeature(writer http.ResponseWriter, request *http.Request) {
	var input ProductFeature
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpsertProductFeature(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteProductFeature(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteProductFeature(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listHowItWorksSteps(writer http.ResponseWriter, request *http.Request) {
	steps, err := handler.service.ListHowItWorksSteps(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, steps)
}

func (handler *Handler) upsertHowItWorksStep(writer http.ResponseWriter, request *http.Request) {
	var input HowItWorksStep
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpsertHowItWorksStep(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteHowItWorksStep(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteHowItWorksStep(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
