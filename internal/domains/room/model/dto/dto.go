package dto

import (
	"innkeep/internal/domains/room/model"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateRoomRequest struct {
	Name              string  `json:"name"              validate:"required,max=100"`
	Capacity          int     `json:"capacity"          validate:"required,min=1"`
	Price             float64 `json:"price"             validate:"min=0"`
	AccommodationName string  `json:"accommodationName" validate:"required,max=100"`
}

func (c *CreateRoomRequest) ToModel(accommodationID int64) model.Room {
	return model.Room{
		Name:            c.Name,
		Capacity:        c.Capacity,
		Price:           c.Price,
		AccommodationID: accommodationID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type UpdateRoomRequest struct {
	Name              string  `json:"name"              validate:"required,max=100"`
	NewName           string  `json:"newName"           validate:"required,max=100"`
	NewCapacity       int     `json:"newCapacity"       validate:"required,min=1"`
	NewPrice          float64 `json:"newPrice"          validate:"min=0"`
	AccommodationName string  `json:"accommodationName" validate:"required,max=100"`
}

type DeleteRoomRequest struct {
	Name              string `json:"name"              validate:"required,max=100"`
	AccommodationName string `json:"accommodationName" validate:"required,max=100"`
}

type ArchiveRoomRequest struct {
	Name              string `json:"name"              validate:"required,max=100"`
	IsArchived        *bool  `json:"isArchived"        validate:"required"`
	AccommodationName string `json:"accommodationName" validate:"required,max=100"`
}

type ViewRoomRequest struct {
	RoomName          string `json:"roomName"          validate:"required,max=100"`
	AccommodationName string `json:"accommodationName" validate:"required,max=100"`
}

type ListRoomsRequest struct {
	AccommodationName string `json:"accommodationName" validate:"required,max=100"`
}

type RoomResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Capacity   int     `json:"capacity"`
	Price      float64 `json:"price"`
	IsArchived bool    `json:"isArchived"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Price = model.Price
	r.IsArchived = model.IsArchived
	r.Metadata.FromModel(model.Metadata)
}

func RoomsFromModels(models []model.Room) []RoomResponse {
	rooms := make([]RoomResponse, len(models))
	for i, mod := range models {
		rooms[i].FromModel(mod)
	}

	return rooms
}
