package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"jamat/config"
	"jamat/infras/otel"
	"jamat/shared/constant"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"

	uriScheme = "s3://"
)

type S3 interface {
	GetObject(ctx context.Context, bucketName, objectKey string) (data []byte, err error)
	PutObject(ctx context.Context, bucketName, objectKey, contentType string, data []byte) (err error)
}

// ParseURI splits s3://bucket/key. ok is false for anything that is not an s3 URI.
func ParseURI(uri string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(uri, uriScheme) {
		return "", "", false
	}

	bucket, key, found := strings.Cut(strings.TrimPrefix(uri, uriScheme), "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}

	return bucket, key, true
}

type s3Impl struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) GetObject(ctx context.Context, bucketName, objectKey string) (data []byte, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".GetObject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if bucketName == "" {
		bucketName = svc.Config.External.S3.BucketName
	}

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucketName,
	})

	out, err := svc.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("bucket", bucketName).Str("key", objectKey).Msg("failed to get object from S3")

		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer out.Body.Close()

	data, err = io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}

	return data, nil
}

func (svc *s3Impl) PutObject(ctx context.Context, bucketName, objectKey, contentType string, data []byte) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".PutObject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if bucketName == "" {
		bucketName = svc.Config.External.S3.BucketName
	}

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucketName,
	})

	reader := bytes.NewReader(data)

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(objectKey),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("bucket", bucketName).Str("key", objectKey).Msg("failed to upload object to S3")

		return fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return nil
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(config.External.S3.Region),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := config.External.S3.APIEndpoint; endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Impl{
		Client: s3Client,
		Config: config,
		otel:   otel,
	}
}
