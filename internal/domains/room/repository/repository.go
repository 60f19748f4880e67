package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/room/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/logger"
	gRepo "innkeep/shared/repository"
	"innkeep/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertRoom(ctx context.Context, room model.Room) (int64, error)
	UpdateRoom(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	DeleteRoom(ctx context.Context, filter gDto.FilterGroup) error
	SetArchived(ctx context.Context, roomID int64, archived bool) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertRoom inserts a row and returns the generated identifier. The primary key column
// is left to the database; the generic insert would include it.
func (repo *repositoryImpl) InsertRoom(ctx context.Context, room model.Room) (id int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.InsertRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	columns := []string{}
	placeholders := []string{}

	for _, col := range repo.InsertColumns {
		if col == model.FieldID {
			continue
		}

		columns = append(columns, col)
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		model.TableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		prepare, err := tx.PrepareNamedContext(ctx, query)
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
		}
		defer prepare.Close()

		if err := prepare.GetContext(ctx, &id, room); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
		}

		return nil
	})
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return id, nil
}

func (repo *repositoryImpl) UpdateRoom(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.UpdateRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		return repo.UpdateTx(ctx, tx, fields, filter) //nolint:wrapcheck
	}) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteRoom(ctx context.Context, filter gDto.FilterGroup) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.DeleteRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		return repo.DeleteTx(ctx, tx, filter) //nolint:wrapcheck
	}) //nolint:wrapcheck
}

func (repo *repositoryImpl) SetArchived(ctx context.Context, roomID int64, archived bool) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.SetArchived")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields := map[string]any{
		model.FieldIsArchived:   archived,
		constant.FieldModifiedAt: timezone.Now(),
	}

	return repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		return repo.UpdateTx(ctx, tx, fields, shared.FilterByID(roomID, model.FieldID, model.TableName)) //nolint:wrapcheck
	}) //nolint:wrapcheck
}
