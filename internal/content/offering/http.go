package offering

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/argusintel/argus/internal/platform/request"
	"github.com/argusintel/argus/internal/platform/respond"
	"github.com/argusintel/argus/pkg/convert"
	"github.com/argusintel/argus/pkg/pagination"
	"github.com/argusintel/argus/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the anonymous read surface. Only published
// offerings are visible here.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listPublished)
	router.Get("/{slug}", handler.getBySlug)
}

// RegisterAdminRoutes mounts the management surface. Role checks are
// applied by the parent router.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listAll)
	router.Get("/{id}", handler.getByID)
	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)
	router.Patch("/{id}/publish", handler.setPublished)
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Category:  request.URL.Query().Get("category"),
		Published: pointer.To(true),
	}

	offerings, total, err := handler.service.ListOfferings(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, offerings, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	offering, err := handler.service.GetOfferingBySlug(request.Context(), slug, true)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, offering)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Category: request.URL.Query().Get("category"),
	}
	if raw := request.URL.Query().Get("published"); raw != "" {
		filter.Published = pointer.To(convert.ToBool(raw))
	}

	offerings, total, err := handler.service.ListOfferings(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, offerings, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	offering, err := handler.service.GetOffering(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, offering)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Offering
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateOffering(request.Context(), &input, actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.Param(request, "id")

	var input Offering
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateOffering(request.Context(), id, &input, actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeleteOffering(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setPublished(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input struct {
		IsPublished bool `json:"is_published"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	offering, err := handler.service.SetPublished(request.Context(), id, input.IsPublished)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, offering)
}
