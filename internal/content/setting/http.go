package setting

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
	router.Get("/", handler.list)
	router.Get("/{key}", handler.get)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Put("/", handler.set)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	settings, err := handler.service.ListSettings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, settings)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	key := requestutil.Param(request, "key")

	setting, err := handler.service.GetSetting(request.Context(), key)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, setting)
}

func (handler *Handler) set(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Setting
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetSetting(request.Context(), &input, actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}
