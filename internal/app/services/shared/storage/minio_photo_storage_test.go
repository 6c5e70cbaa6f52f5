package storage

import (
	"context"
	"errors"
	"io"
	"posyandu-console/internal/app/models"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePutter struct {
	bucket, object, contentType string
	data                        []byte
	err                         error
}

func (f *fakePutter) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	f.bucket, f.object, f.contentType = bucketName, objectName, opts.ContentType
	f.data, _ = io.ReadAll(reader)
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func newTestStorage(putter *fakePutter) *minioPhotoStorage {
	storage := NewMinioPhotoStorage(putter, "kader-photos", zap.NewNop()).(*minioPhotoStorage)
	storage.now = func() time.Time { return time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC) }
	return storage
}

func TestArchiveKaderPhoto(t *testing.T) {
	t.Run("Stores Under Dated Prefix", func(t *testing.T) {
		putter := &fakePutter{}
		storage := newTestStorage(putter)

		objectName, err := storage.ArchiveKaderPhoto(context.Background(), &models.KaderPhoto{
			FileName:    "Ani.JPG",
			ContentType: "image/jpeg",
			Data:        []byte("jpeg-bytes"),
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(objectName, "kader/2025/09/"))
		assert.True(t, strings.HasSuffix(objectName, ".jpg"))
		assert.Equal(t, "kader-photos", putter.bucket)
		assert.Equal(t, objectName, putter.object)
		assert.Equal(t, "image/jpeg", putter.contentType)
		assert.Equal(t, []byte("jpeg-bytes"), putter.data)
	})

	t.Run("Missing Content Type Falls Back To Octet Stream", func(t *testing.T) {
		putter := &fakePutter{}
		storage := newTestStorage(putter)

		_, err := storage.ArchiveKaderPhoto(context.Background(), &models.KaderPhoto{FileName: "scan.png", Data: []byte{1}})

		require.NoError(t, err)
		assert.Equal(t, "application/octet-stream", putter.contentType)
	})

	t.Run("Upload Failure Is Wrapped", func(t *testing.T) {
		storage := newTestStorage(&fakePutter{err: errors.New("bucket missing")})

		_, err := storage.ArchiveKaderPhoto(context.Background(), &models.KaderPhoto{FileName: "a.png"})
		assert.Error(t, err)
	})
}
