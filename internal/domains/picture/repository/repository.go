package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/picture/model"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gRepo "innkeep/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Picture interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Picture, error)
	InsertPicture(ctx context.Context, picture model.Picture) error
	UpdatePicture(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Picture]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Picture {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Picture](model.EntityName, model.TableName, model.FieldRoomID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertPicture(ctx context.Context, picture model.Picture) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".picture.InsertPicture")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		return repo.InsertTx(ctx, tx, picture) //nolint:wrapcheck
	}) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdatePicture(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".picture.UpdatePicture")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		return repo.UpdateTx(ctx, tx, fields, filter) //nolint:wrapcheck
	}) //nolint:wrapcheck
}
