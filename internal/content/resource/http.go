package resource

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/argusintel/argus/internal/platform/request"
	"github.com/argusintel/argus/internal/platform/respond"
	"github.com/argusintel/argus/pkg/convert"
	"github.com/argusintel/argus/pkg/pagination"
	"github.com/argusintel/argus/pkg/pointer"
	"github.com/argusintel/argus/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listPublished)
	router.Get("/{slug}", handler.getDetail)
}

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

	// The library page filters by one or more comma-separated categories.
	filter := Filter{
		Categories: query.StringSlice(request.URL.Query().Get("category")),
		Published:  pointer.To(true),
	}

	resources, total, err := handler.service.ListResources(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, resources, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getDetail(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	detail, err := handler.service.GetResourceDetail(request.Context(), slug, true)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Categories: query.StringSlice(request.URL.Query().Get("category")),
	}
	if raw := request.URL.Query().Get("published"); raw != "" {
		filter.Published = pointer.To(convert.ToBool(raw))
	}

	resources, total, err := handler.service.ListResources(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, resources, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	resource, err := handler.service.GetResource(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, resource)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Resource
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateResource(request.Context(), &input, actorID); err != nil {
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

	var input Resource
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateResource(request.Context(), id, &input, actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeleteResource(request.Context(), id); err != nil {
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

	resource, err := handler.service.SetPublished(request.Context(), id, input.IsPublished)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, resource)
}
