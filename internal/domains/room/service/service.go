package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeep/infras/otel"
	accommodationService "innkeep/internal/domains/accommodation/service"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Room interface {
	List(ctx context.Context, req dto.ListRoomsRequest) ([]dto.RoomResponse, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest) error
	Delete(ctx context.Context, req dto.DeleteRoomRequest) error
	Archive(ctx context.Context, req dto.ArchiveRoomRequest) error
	View(ctx context.Context, req dto.ViewRoomRequest) (dto.RoomResponse, error)
}

type serviceImpl struct {
	rooms    repository.Room
	resolver accommodationService.Resolver
	otel     otel.Otel
}

func New(rooms repository.Room, resolver accommodationService.Resolver, otel otel.Otel) Room {
	return &serviceImpl{
		rooms:    rooms,
		resolver: resolver,
		otel:     otel,
	}
}

// List returns the active rooms of an accommodation. Archived rooms are filtered out.
func (s *serviceImpl) List(ctx context.Context, req dto.ListRoomsRequest) (rooms []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	accommodationID, err := s.resolver.ResolveAccommodationID(ctx, req.AccommodationName)
	if err != nil {
		return nil, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAccommodationID,
				Value:    accommodationID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldIsArchived,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.rooms.GetAll(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("accommodation", req.AccommodationName).Msg("failed to list rooms")

		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return dto.RoomsFromModels(models), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (room dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	accommodationID, err := s.resolver.ResolveAccommodationID(ctx, req.AccommodationName)
	if err != nil {
		return room, err
	}

	exist, err := s.rooms.Exist(ctx, filterByNameInAccommodation(req.Name, accommodationID))
	if err != nil {
		log.Error().Err(err).Str("room", req.Name).Msg("failed to check room name")

		return room, fmt.Errorf("failed to check room name: %w", err)
	}

	if exist {
		return room, failure.Conflict("room name already used in this accommodation") //nolint:wrapcheck
	}

	mod := req.ToModel(accommodationID)

	id, err := s.rooms.InsertRoom(ctx, mod)
	if err != nil {
		log.Error().Err(err).Str("room", req.Name).Msg("failed to create room")

		return room, fmt.Errorf("failed to create room: %w", err)
	}

	mod.ID = id
	room.FromModel(mod)

	return room, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomID, accommodationID, err := s.resolver.ResolveRoomID(ctx, req.Name, req.AccommodationName)
	if err != nil {
		return err
	}

	// A rename may not collide with another room of the same accommodation.
	if req.NewName != req.Name {
		other, err := s.rooms.Get(ctx, filterByNameInAccommodation(req.NewName, accommodationID))
		if err != nil {
			log.Error().Err(err).Str("room", req.NewName).Msg("failed to check room name")

			return fmt.Errorf("failed to check room name: %w", err)
		}

		if other.ID != 0 && other.ID != roomID {
			return failure.Conflict("room name already used in this accommodation") //nolint:wrapcheck
		}
	}

	// Every column is written on edit, so a zero price is applied rather than skipped.
	fields := map[string]any{
		model.FieldName:          req.NewName,
		model.FieldCapacity:      req.NewCapacity,
		model.FieldPrice:         req.NewPrice,
		constant.FieldModifiedAt: timezone.Now(),
	}

	err = s.rooms.UpdateRoom(ctx, fields, shared.FilterByID(roomID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomID, _, err := s.resolver.ResolveRoomID(ctx, req.Name, req.AccommodationName)
	if err != nil {
		return err
	}

	err = s.rooms.DeleteRoom(ctx, shared.FilterByID(roomID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

func (s *serviceImpl) Archive(ctx context.Context, req dto.ArchiveRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Archive")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomID, _, err := s.resolver.ResolveRoomID(ctx, req.Name, req.AccommodationName)
	if err != nil {
		return err
	}

	err = s.rooms.SetArchived(ctx, roomID, *req.IsArchived)
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to archive room")

		return fmt.Errorf("failed to archive room: %w", err)
	}

	return nil
}

func (s *serviceImpl) View(ctx context.Context, req dto.ViewRoomRequest) (room dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.View")
	defer scope.End()
	defer scope.TraceIfError(err)

	accommodationID, err := s.resolver.ResolveAccommodationID(ctx, req.AccommodationName)
	if err != nil {
		return room, err
	}

	mod, err := s.rooms.Get(ctx, filterByNameInAccommodation(req.RoomName, accommodationID))
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomName).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if mod.ID == 0 {
		return room, failure.NotFound("room not found") //nolint:wrapcheck
	}

	room.FromModel(mod)

	return room, nil
}

func filterByNameInAccommodation(name string, accommodationID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Value:    name,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldAccommodationID,
				Value:    accommodationID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
