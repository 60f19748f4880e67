package model

import "innkeep/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID              = "room_id"
	FieldName            = "name"
	FieldCapacity        = "capacity"
	FieldPrice           = "price"
	FieldIsArchived      = "is_archived"
	FieldAccommodationID = "accommodation_id"
)

type Room struct {
	ID              int64   `db:"room_id"`
	Name            string  `db:"name"`
	Capacity        int     `db:"capacity"`
	Price           float64 `db:"price"`
	IsArchived      bool    `db:"is_archived"`
	AccommodationID int64   `db:"accommodation_id"`
	model.Metadata
}
