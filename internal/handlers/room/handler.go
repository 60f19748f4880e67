package room

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/service"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/list", handler.ListRooms)
		routerGroup.Post("/add", handler.AddRoom)
		routerGroup.Post("/edit", handler.EditRoom)
		routerGroup.Post("/delete", handler.DeleteRoom)
		routerGroup.Post("/archive", handler.ArchiveRoom)
		routerGroup.Post("/view", handler.ViewRoom)
	})
}

// ListRooms lists the active rooms of an accommodation.
// @Summary List rooms
// @Description List the non-archived rooms of an accommodation, addressed by name.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.ListRoomsRequest true "Accommodation to list"
// @Success 200 {object} map[string]any "success flag plus rooms"
// @Router /v1/rooms/list [post]
func (handler *Handler) ListRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRooms")
	defer scope.End()

	var req dto.ListRoomsRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to validate request")

		return
	}

	rooms, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to list rooms")

		return
	}

	response.WithPayload(writer, "rooms", rooms)
}

// AddRoom creates a room in an accommodation.
// @Summary Add a room
// @Description Create a room; the name must be unused within the accommodation.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room to create"
// @Success 200 {object} map[string]any "success flag"
// @Router /v1/rooms/add [post]
func (handler *Handler) AddRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	var req dto.CreateRoomRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to validate request")

		return
	}

	if _, err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to add room")

		return
	}

	scope.AddEvent("Room added successfully")

	response.WithSuccess(writer)
}

// EditRoom updates a room's name, capacity, and price.
// @Summary Edit a room
// @Description Update a room addressed by its current name within an accommodation.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.UpdateRoomRequest true "Room changes"
// @Success 200 {object} map[string]any "success flag"
// @Router /v1/rooms/edit [post]
func (handler *Handler) EditRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditRoom")
	defer scope.End()

	var req dto.UpdateRoomRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to validate request")

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to edit room")

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithSuccess(writer)
}

// DeleteRoom hard-deletes a room.
// @Summary Delete a room
// @Description Delete a room addressed by name within an accommodation.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.DeleteRoomRequest true "Room to delete"
// @Success 200 {object} map[string]any "success flag"
// @Router /v1/rooms/delete [post]
func (handler *Handler) DeleteRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	var req dto.DeleteRoomRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to validate request")

		return
	}

	if err := handler.service.Delete(ctx, req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to delete room")

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithSuccess(writer)
}

// ArchiveRoom sets or clears the archived flag of a room.
// @Summary Archive or unarchive a room
// @Description Toggle the archived flag; archived rooms are excluded from listings.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.ArchiveRoomRequest true "Room and desired archived state"
// @Success 200 {object} map[string]any "success flag"
// @Router /v1/rooms/archive [post]
func (handler *Handler) ArchiveRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ArchiveRoom")
	defer scope.End()

	var req dto.ArchiveRoomRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to validate request")

		return
	}

	if err := handler.service.Archive(ctx, req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to archive room")

		return
	}

	scope.AddEvent("Room archive flag updated successfully")

	response.WithSuccess(writer)
}

// ViewRoom returns the details of a single room.
// @Summary View a room
// @Description Fetch one room addressed by name within an accommodation.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.ViewRoomRequest true "Room to view"
// @Success 200 {object} map[string]any "success flag plus room"
// @Router /v1/rooms/view [post]
func (handler *Handler) ViewRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRoom")
	defer scope.End()

	var req dto.ViewRoomRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to validate request")

		return
	}

	room, err := handler.service.View(ctx, req)
	if err != nil {
		scope.TraceError(err)
		respondFailure(writer, err, "failed to view room")

		return
	}

	response.WithPayload(writer, "room", room)
}

// respondFailure collapses any failed outcome into {"success": false}. Business
// outcomes (not found, conflicts, bad input) are logged without operational alarm;
// everything else is an operational fault.
func respondFailure(writer http.ResponseWriter, err error, msg string) {
	if failure.GetCode(err) < http.StatusInternalServerError {
		log.Warn().Err(err).Msg(msg)
	} else {
		log.Error().Err(err).Msg(msg)
	}

	response.WithFailure(writer)
}
