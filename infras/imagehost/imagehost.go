package imagehost

//go:generate go run go.uber.org/mock/mockgen -source=./imagehost.go -destination=./mocks/imagehost_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrAssetID = "asset_id"
	otelAttrBucket  = "bucket"

	assetDirectory = "room_pictures"
)

// ImageHost is the external image-hosting service. Assets are addressed by an opaque
// identifier; URLs are presigned so images are served without exposing the bucket.
type ImageHost interface {
	Upload(ctx context.Context, data []byte, contentType string) (assetID string, err error)
	SignedURL(ctx context.Context, assetID string) (url string, err error)
	Destroy(ctx context.Context, assetID string) error
}

type imageHostImpl struct {
	client  *s3.Client
	presign *s3.PresignClient
	config  *config.Config
	otel    otel.Otel
}

func (svc *imageHostImpl) Upload(ctx context.Context, data []byte, contentType string) (assetID string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelImageHostScopeName, constant.OtelImageHostScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := svc.config.External.ImageHost.BucketName

	assetID = uuid.NewString()
	if ext := extensionFor(contentType); ext != constant.Empty {
		assetID = fmt.Sprintf("%s.%s", assetID, ext)
	}

	scope.SetAttributes(map[string]any{
		otelAttrAssetID: assetID,
		otelAttrBucket:  bucketName,
	})

	fileReader := bytes.NewReader(data)

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(path.Join(assetDirectory, assetID)),
		Body:          fileReader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileReader.Size()),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload asset: %w", err)
	}

	return assetID, nil
}

func (svc *imageHostImpl) SignedURL(ctx context.Context, assetID string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelImageHostScopeName, constant.OtelImageHostScopeName+".SignedURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := svc.config.External.ImageHost.BucketName
	expiry := time.Duration(svc.config.External.ImageHost.URLExpirySeconds) * time.Second

	scope.SetAttributes(map[string]any{
		otelAttrAssetID: assetID,
		otelAttrBucket:  bucketName,
	})

	req, err := svc.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(path.Join(assetDirectory, assetID)),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to presign asset URL: %w", err)
	}

	return req.URL, nil
}

func (svc *imageHostImpl) Destroy(ctx context.Context, assetID string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelImageHostScopeName, constant.OtelImageHostScopeName+".Destroy")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := svc.config.External.ImageHost.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrAssetID: assetID,
		otelAttrBucket:  bucketName,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(path.Join(assetDirectory, assetID)),
	})
	if err != nil {
		log.Error().Err(err).Str("assetID", assetID).Msg("failed to delete asset from image host")

		return fmt.Errorf("failed to delete asset: %w", err)
	}

	return nil
}

func extensionFor(contentType string) string {
	subtype, found := strings.CutPrefix(contentType, "image/")
	if !found {
		return constant.Empty
	}

	return subtype
}

func New(config *config.Config, otel otel.Otel) ImageHost {
	endpoint := config.External.ImageHost.APIEndpoint
	accessKeyID := config.External.ImageHost.AccessKeyID
	secretAccessKey := config.External.ImageHost.SecretAccessKey

	staticProvider := credentials.NewStaticCredentialsProvider(
		accessKeyID,
		secretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)

	if err != nil {
		log.Err(err).Msg("Error loading image host configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &imageHostImpl{
		client:  client,
		presign: s3.NewPresignClient(client),
		config:  config,
		otel:    otel,
	}
}
