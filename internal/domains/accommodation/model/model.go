package model

import "innkeep/shared/model"

const (
	TableName  = "accommodations"
	EntityName = "accommodation"

	FieldID   = "accommodation_id"
	FieldName = "name"
)

type Accommodation struct {
	ID   int64  `db:"accommodation_id"`
	Name string `db:"name"`
	model.Metadata
}
