package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"luxhome/config"
	"luxhome/infras/otel"
	"luxhome/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// S3 stores panoramic images in an S3 compatible bucket and serves them
// through the configured public domain.
type S3 interface {
	UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
	GetObjectNameFromURL(bucketName, url string) (objectName string)
}

// objectAPI is the part of *s3.Client the store talks to.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type store struct {
	client objectAPI
	cfg    config.S3
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	node := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(node.AccessKeyID, node.SecretAccessKey, "")),
	)
	if err != nil {
		log.Err(err).Msg("failed to load object storage configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(node.APIEndpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &store{client: client, cfg: node, otel: otel}
}

func (s *store) bucket(name string) string {
	if name == constant.Empty {
		return s.cfg.BucketName
	}

	return name
}

func (s *store) span(ctx context.Context, op, bucket, object string) (context.Context, otel.Scope) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+"."+op)
	scope.SetAttributes(map[string]any{
		"bucket":    bucket,
		"file_name": object,
	})

	return ctx, scope
}

func (s *store) publicURL(key string) string {
	return strings.TrimSuffix(s.cfg.PublicDomain, "/") + "/" + key
}

// UploadFile puts the file under directory/fileName and returns its public URL.
// An empty bucket name means the configured bucket.
func (s *store) UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error) {
	bucket := s.bucket(bucketName)

	ctx, scope := s.span(ctx, "UploadFile", bucket, fileName)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	content, err := io.ReadAll(file)
	if err != nil {
		return constant.Empty, errors.Wrap(err, "failed to read file")
	}

	key := path.Join(directory, fileName)
	body := bytes.NewReader(content)

	if _, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(fileHeader.Header.Get(constant.RequestHeaderContentType)),
		ContentLength: aws.Int64(body.Size()),
	}); err != nil {
		return constant.Empty, errors.Wrap(err, "failed to upload file to S3")
	}

	return s.publicURL(key), nil
}

func (s *store) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	bucket := s.bucket(bucketName)

	ctx, scope := s.span(ctx, "DeleteFile", bucket, objectName)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(path.Join(directory, objectName)),
	}); err != nil {
		return errors.Wrap(err, "failed to delete file from S3")
	}

	return nil
}

// GetObjectNameFromURL returns the object file name behind a URL produced by
// UploadFile, or empty when the URL does not point into this storage.
func (s *store) GetObjectNameFromURL(bucketName, url string) (objectName string) {
	prefixes := []string{
		strings.TrimSuffix(s.cfg.PublicDomain, "/") + "/",
		strings.TrimSuffix(s.cfg.APIEndpoint, "/") + "/" + s.bucket(bucketName) + "/",
	}

	for _, prefix := range prefixes {
		if key, ok := strings.CutPrefix(url, prefix); ok && key != constant.Empty {
			return path.Base(key)
		}
	}

	return constant.Empty
}
