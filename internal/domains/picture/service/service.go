package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"innkeep/infras/imagehost"
	"innkeep/infras/otel"
	accommodationService "innkeep/internal/domains/accommodation/service"
	"innkeep/internal/domains/picture/model"
	"innkeep/internal/domains/picture/model/dto"
	"innkeep/internal/domains/picture/repository"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Picture interface {
	Upload(ctx context.Context, req dto.UploadPictureRequest) error
	GetURL(ctx context.Context, req dto.GetPictureRequest) (dto.PictureURLResponse, error)
	Replace(ctx context.Context, req dto.UploadPictureRequest) error
	Remove(ctx context.Context, req dto.RemovePictureRequest) error
}

type serviceImpl struct {
	pictures  repository.Picture
	resolver  accommodationService.Resolver
	imageHost imagehost.ImageHost
	otel      otel.Otel
}

func New(pictures repository.Picture, resolver accommodationService.Resolver, imageHost imagehost.ImageHost, otel otel.Otel) Picture {
	return &serviceImpl{
		pictures:  pictures,
		resolver:  resolver,
		imageHost: imageHost,
		otel:      otel,
	}
}

// Upload attaches an image to a room that has none. A room holds at most one image;
// attaching over an existing one is a conflict, the caller has to use Replace.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadPictureRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".picture.Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomID, accommodationID, err := s.resolver.ResolveRoomID(ctx, req.RoomName, req.AccommodationName)
	if err != nil {
		return err
	}

	picture, err := s.getPicture(ctx, roomID, accommodationID)
	if err != nil {
		return err
	}

	if picture.AssetID.Valid {
		return failure.Conflict("room already has an image") //nolint:wrapcheck
	}

	assetID, err := s.uploadAsset(ctx, req)
	if err != nil {
		return err
	}

	if picture.RoomID != 0 {
		err = s.pictures.UpdatePicture(ctx, assetFields(assetID), filterByRoom(roomID, accommodationID))
	} else {
		err = s.pictures.InsertPicture(ctx, model.Picture{
			AssetID:         sql.NullString{String: assetID, Valid: true},
			AccommodationID: accommodationID,
			RoomID:          roomID,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
			},
		})
	}

	if err != nil {
		// The asset is already hosted. A failed write here orphans it; log the
		// identifier so it can be reclaimed.
		log.Error().Err(err).Str("assetID", assetID).Int64("roomID", roomID).Msg("failed to store image reference, asset orphaned")

		return fmt.Errorf("failed to store image reference: %w", err)
	}

	return nil
}

// GetURL returns a signed, time-limited URL for the room image. A room without an
// image is a not-found outcome.
func (s *serviceImpl) GetURL(ctx context.Context, req dto.GetPictureRequest) (resp dto.PictureURLResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".picture.GetURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomID, accommodationID, err := s.resolver.ResolveRoomID(ctx, req.RoomName, req.AccommodationName)
	if err != nil {
		return resp, err
	}

	picture, err := s.getPicture(ctx, roomID, accommodationID)
	if err != nil {
		return resp, err
	}

	if !picture.AssetID.Valid {
		return resp, failure.NotFound("room image not found") //nolint:wrapcheck
	}

	url, err := s.imageHost.SignedURL(ctx, picture.AssetID.String)
	if err != nil {
		log.Error().Err(err).Str("assetID", picture.AssetID.String).Msg("failed to sign image url")

		return resp, fmt.Errorf("failed to sign image url: %w", err)
	}

	resp.URL = url

	return resp, nil
}

// Replace swaps the room image for a new one. The old asset is destroyed first, then
// the new one uploaded and recorded. The steps are not compensated: a failure after
// the destroy leaves the room without an image.
func (s *serviceImpl) Replace(ctx context.Context, req dto.UploadPictureRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".picture.Replace")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomID, accommodationID, err := s.resolver.ResolveRoomID(ctx, req.RoomName, req.AccommodationName)
	if err != nil {
		return err
	}

	picture, err := s.getPicture(ctx, roomID, accommodationID)
	if err != nil {
		return err
	}

	if !picture.AssetID.Valid {
		return failure.NotFound("room image not found") //nolint:wrapcheck
	}

	if err := s.imageHost.Destroy(ctx, picture.AssetID.String); err != nil {
		log.Error().Err(err).Str("assetID", picture.AssetID.String).Msg("failed to destroy image asset")

		return fmt.Errorf("failed to destroy image asset: %w", err)
	}

	assetID, err := s.uploadAsset(ctx, req)
	if err != nil {
		return err
	}

	err = s.pictures.UpdatePicture(ctx, assetFields(assetID), filterByRoom(roomID, accommodationID))
	if err != nil {
		log.Error().Err(err).Str("assetID", assetID).Int64("roomID", roomID).Msg("failed to store image reference, asset orphaned")

		return fmt.Errorf("failed to store image reference: %w", err)
	}

	return nil
}

// Remove detaches the room image. The picture row is kept with the asset reference
// cleared, so a later upload reuses it.
func (s *serviceImpl) Remove(ctx context.Context, req dto.RemovePictureRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".picture.Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomID, accommodationID, err := s.resolver.ResolveRoomID(ctx, req.RoomName, req.AccommodationName)
	if err != nil {
		return err
	}

	picture, err := s.getPicture(ctx, roomID, accommodationID)
	if err != nil {
		return err
	}

	if !picture.AssetID.Valid {
		return failure.NotFound("room image not found") //nolint:wrapcheck
	}

	if err := s.imageHost.Destroy(ctx, picture.AssetID.String); err != nil {
		log.Error().Err(err).Str("assetID", picture.AssetID.String).Msg("failed to destroy image asset")

		return fmt.Errorf("failed to destroy image asset: %w", err)
	}

	err = s.pictures.UpdatePicture(ctx, assetFields(""), filterByRoom(roomID, accommodationID))
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to clear image reference")

		return fmt.Errorf("failed to clear image reference: %w", err)
	}

	return nil
}

func (s *serviceImpl) getPicture(ctx context.Context, roomID, accommodationID int64) (model.Picture, error) {
	picture, err := s.pictures.Get(ctx, filterByRoom(roomID, accommodationID))
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to get picture")

		return picture, fmt.Errorf("failed to get picture: %w", err)
	}

	return picture, nil
}

func (s *serviceImpl) uploadAsset(ctx context.Context, req dto.UploadPictureRequest) (string, error) {
	file, err := req.File.Open()
	if err != nil {
		log.Error().Err(err).Str("file", req.File.Filename).Msg("failed to open uploaded file")

		return "", failure.BadRequest(fmt.Errorf("failed to open uploaded file: %w", err)) //nolint:wrapcheck
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Str("file", req.File.Filename).Msg("failed to read uploaded file")

		return "", failure.BadRequest(fmt.Errorf("failed to read uploaded file: %w", err)) //nolint:wrapcheck
	}

	assetID, err := s.imageHost.Upload(ctx, data, req.File.Header.Get(constant.RequestHeaderContentType))
	if err != nil {
		log.Error().Err(err).Str("file", req.File.Filename).Msg("failed to upload image asset")

		return "", fmt.Errorf("failed to upload image asset: %w", err)
	}

	return assetID, nil
}

func assetFields(assetID string) map[string]any {
	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
	}

	if assetID == "" {
		fields[model.FieldAssetID] = nil
	} else {
		fields[model.FieldAssetID] = assetID
	}

	return fields
}

func filterByRoom(roomID, accommodationID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
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
