package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeep/infras/otel"
	accommodationModel "innkeep/internal/domains/accommodation/model"
	accommodationRepository "innkeep/internal/domains/accommodation/repository"
	roomModel "innkeep/internal/domains/room/model"
	roomRepository "innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"

	"github.com/rs/zerolog/log"
)

// Resolver turns human-readable names into numeric identifiers. Every scoped read and
// every mutation resolves through it first. Absence is a not-found outcome, never a
// query fault: a zero-row lookup yields failure.NotFound and nothing is logged as an
// operational error.
type Resolver interface {
	ResolveAccommodationID(ctx context.Context, name string) (int64, error)
	ResolveRoomID(ctx context.Context, roomName, accommodationName string) (roomID, accommodationID int64, err error)
}

type resolverImpl struct {
	accommodations accommodationRepository.Accommodation
	rooms          roomRepository.Room
	otel           otel.Otel
}

func New(accommodations accommodationRepository.Accommodation, rooms roomRepository.Room, otel otel.Otel) Resolver {
	return &resolverImpl{
		accommodations: accommodations,
		rooms:          rooms,
		otel:           otel,
	}
}

func (s *resolverImpl) ResolveAccommodationID(ctx context.Context, name string) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveAccommodationID")
	defer scope.End()
	defer scope.TraceIfError(err)

	accommodation, err := s.accommodations.Get(ctx, shared.FilterByName(name, accommodationModel.FieldName, accommodationModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("accommodation", name).Msg("failed to look up accommodation")

		return 0, fmt.Errorf("failed to look up accommodation: %w", err)
	}

	if accommodation.ID == 0 {
		return 0, failure.NotFound("accommodation not found") //nolint:wrapcheck
	}

	return accommodation.ID, nil
}

func (s *resolverImpl) ResolveRoomID(ctx context.Context, roomName, accommodationName string) (roomID, accommodationID int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveRoomID")
	defer scope.End()
	defer scope.TraceIfError(err)

	accommodationID, err = s.ResolveAccommodationID(ctx, accommodationName)
	if err != nil {
		return 0, 0, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldName,
				Value:    roomName,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
			gDto.Filter{
				Field:    roomModel.FieldAccommodationID,
				Value:    accommodationID,
				Operator: gDto.FilterOperatorEq,
				Table:    roomModel.TableName,
			},
		},
	}

	room, err := s.rooms.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("room", roomName).Msg("failed to look up room")

		return 0, 0, fmt.Errorf("failed to look up room: %w", err)
	}

	if room.ID == 0 {
		return 0, 0, failure.NotFound("room not found") //nolint:wrapcheck
	}

	return room.ID, accommodationID, nil
}
