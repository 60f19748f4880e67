package model

import (
	"database/sql"

	"innkeep/shared/model"
)

const (
	TableName  = "pictures"
	EntityName = "picture"

	FieldRoomID          = "room_id"
	FieldAccommodationID = "accommodation_id"
	FieldAssetID         = "asset_id"
)

// Picture is the single image slot of a room. The row survives a removal: the asset
// reference is cleared instead of the row being deleted.
type Picture struct {
	AssetID         sql.NullString `db:"asset_id"`
	AccommodationID int64          `db:"accommodation_id"`
	RoomID          int64          `db:"room_id"`
	model.Metadata
}
