package picture

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/picture/model/dto"
	"innkeep/internal/domains/picture/service"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Picture
	otel    otel.Otel
}

func New(service service.Picture, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms/image", func(routerGroup chi.Router) {
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Post("/get", handler.GetImageURL)
		routerGroup.Post("/update", handler.UpdateImage)
		routerGroup.Post("/remove", handler.RemoveImage)
	})
}

// UploadImage attaches an image to a room that has none.
// @Summary Upload a room image
// @Description Upload an image for a room; rejected if the room already has one.
// @Tags RoomImage
// @Accept multipart/form-data
// @Produce json
// @Param roomName formData string true "Room name"
// @Param accommodationName formData string true "Accommodation name"
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]any "success flag"
// @Router /v1/rooms/image/upload [post]
func (handler *Handler) UploadImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	req, err := handler.parseUploadRequest(request)
	if err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to parse upload request")

		return
	}

	if err := handler.service.Upload(ctx, req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to upload room image")

		return
	}

	scope.AddEvent("Room image uploaded successfully")

	response.WithSuccess(writer)
}

// GetImageURL returns a signed URL for the room image.
// @Summary Get a room image URL
// @Description Fetch a time-limited URL for the image of a room.
// @Tags RoomImage
// @Accept json
// @Produce json
// @Param request body dto.GetPictureRequest true "Room to fetch the image for"
// @Success 200 {object} map[string]any "success flag plus imageUrl"
// @Router /v1/rooms/image/get [post]
func (handler *Handler) GetImageURL(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImageURL")
	defer scope.End()

	var req dto.GetPictureRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to validate request")

		return
	}

	resp, err := handler.service.GetURL(ctx, req)
	if err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to get room image url")

		return
	}

	response.WithPayload(writer, "imageUrl", resp.URL)
}

// UpdateImage replaces the existing room image with a new one.
// @Summary Replace a room image
// @Description Destroy the hosted image of a room and upload a replacement.
// @Tags RoomImage
// @Accept multipart/form-data
// @Produce json
// @Param roomName formData string true "Room name"
// @Param accommodationName formData string true "Accommodation name"
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]any "success flag"
// @Router /v1/rooms/image/update [post]
func (handler *Handler) UpdateImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateImage")
	defer scope.End()

	req, err := handler.parseUploadRequest(request)
	if err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to parse upload request")

		return
	}

	if err := handler.service.Replace(ctx, req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to replace room image")

		return
	}

	scope.AddEvent("Room image replaced successfully")

	response.WithSuccess(writer)
}

// RemoveImage detaches the image of a room.
// @Summary Remove a room image
// @Description Destroy the hosted image of a room and clear its reference.
// @Tags RoomImage
// @Accept json
// @Produce json
// @Param request body dto.RemovePictureRequest true "Room to remove the image from"
// @Success 200 {object} map[string]any "success flag"
// @Router /v1/rooms/image/remove [post]
func (handler *Handler) RemoveImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveImage")
	defer scope.End()

	var req dto.RemovePictureRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to validate request")

		return
	}

	if err := handler.service.Remove(ctx, req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to remove room image")

		return
	}

	scope.AddEvent("Room image removed successfully")

	response.WithSuccess(writer)
}

func (handler *Handler) parseUploadRequest(request *http.Request) (dto.UploadPictureRequest, error) {
	var req dto.UploadPictureRequest

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, failure.BadRequestFromString("failed to parse multipart form") //nolint:wrapcheck
	}

	req.RoomName = request.FormValue("roomName")
	req.AccommodationName = request.FormValue("accommodationName")

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err == nil {
		// Only the header is needed downstream; the service reopens the file.
		_ = file.Close()
		req.File = fileHeader
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return req, err //nolint:wrapcheck
	}

	return req, nil
}

func respondFailure(writer http.ResponseWriter, err error, msg string) {
	if failure.GetCode(err) < http.StatusInternalServerError {
		log.Warn().Err(err).Msg(msg)
	} else {
		log.Error().Err(err).Msg(msg)
	}

	response.WithFailure(writer)
}
