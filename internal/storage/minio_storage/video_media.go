package minio_storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// VideoMediaStorage holds video files and their thumbnails in two buckets.
// Object keys are prefixed so Delete can route a bare key back to the
// bucket it lives in.
type VideoMediaStorage struct {
	storage      *MinioStorage
	videoBucket  string
	imageBucket  string
	presignedTTL time.Duration
}

func NewVideoMediaStorage(storage *MinioStorage, videoBucket, imageBucket string, presignedTTL time.Duration) (*VideoMediaStorage, error) {
	for _, bucket := range []string{videoBucket, imageBucket} {
		exists, err := storage.client.BucketExists(context.Background(), bucket)
		if err != nil {
			return nil, err
		}
		if !exists {
			if err = storage.client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
				return nil, err
			}
		}
	}
	return &VideoMediaStorage{
		storage:      storage,
		videoBucket:  videoBucket,
		imageBucket:  imageBucket,
		presignedTTL: presignedTTL,
	}, nil
}

func (s *VideoMediaStorage) UploadVideo(
	ctx context.Context,
	videoID uuid.UUID,
	filename string,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	key := fmt.Sprintf("videos/%s/video%s", videoID.String(), extOrBin(filename))
	return s.put(ctx, s.videoBucket, key, filename, reader, size, contentType)
}

func (s *VideoMediaStorage) UploadThumbnail(
	ctx context.Context,
	videoID uuid.UUID,
	filename string,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	key := fmt.Sprintf("thumbnails/%s/thumb%s", videoID.String(), extOrBin(filename))
	return s.put(ctx, s.imageBucket, key, filename, reader, size, contentType)
}

func (s *VideoMediaStorage) put(
	ctx context.Context,
	bucket, objectKey, filename string,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(filename))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	_, err := s.storage.client.PutObject(
		ctx,
		bucket,
		objectKey,
		reader,
		size,
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (s *VideoMediaStorage) VideoURL(ctx context.Context, objectKey string) (string, error) {
	return s.presign(ctx, s.videoBucket, objectKey)
}

func (s *VideoMediaStorage) ThumbnailURL(ctx context.Context, objectKey string) (string, error) {
	return s.presign(ctx, s.imageBucket, objectKey)
}

func (s *VideoMediaStorage) presign(ctx context.Context, bucket, objectKey string) (string, error) {
	reqParams := make(url.Values)
	presignedURL, err := s.storage.client.PresignedGetObject(
		ctx,
		bucket,
		objectKey,
		s.presignedTTL,
		reqParams,
	)
	if err != nil {
		return "", err
	}
	return presignedURL.String(), nil
}

func (s *VideoMediaStorage) Delete(ctx context.Context, objectKey string) error {
	bucket := s.imageBucket
	if strings.HasPrefix(objectKey, "videos/") {
		bucket = s.videoBucket
	}
	return s.storage.client.RemoveObject(ctx, bucket, objectKey, minio.RemoveObjectOptions{})
}

func extOrBin(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".bin"
	}
	return ext
}
