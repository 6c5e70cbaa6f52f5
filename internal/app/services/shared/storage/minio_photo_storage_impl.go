package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectPutter is the part of *minio.Client the archive needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioPhotoStorage struct {
	client     ObjectPutter
	bucketName string
	now        func() time.Time
	Log        *zap.Logger
}

// NewMinioPhotoStorage archives uploaded kader photos before they are forwarded to the Posyandu API.
func NewMinioPhotoStorage(client ObjectPutter, bucketName string, logger *zap.Logger) contracts.PhotoStorage {
	return &minioPhotoStorage{
		client:     client,
		bucketName: bucketName,
		now:        time.Now,
		Log:        logger,
	}
}

func (m *minioPhotoStorage) ArchiveKaderPhoto(ctx context.Context, photo *models.KaderPhoto) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	contentType := photo.ContentType
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}
	objectName := m.objectName(photo.FileName, contentType)

	m.Log.Info("minioPhotoStorage.ArchiveKaderPhoto called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, m.bucketName),
		zap.String(constvars.LoggingObjectKey, objectName),
	)

	_, err := m.client.PutObject(ctx, m.bucketName, objectName, bytes.NewReader(photo.Data), int64(len(photo.Data)), minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-name": photo.FileName,
		},
	})
	if err != nil {
		m.Log.Error("minioPhotoStorage.ArchiveKaderPhoto error calling PutObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.bucketName)
	}

	m.Log.Info("minioPhotoStorage.ArchiveKaderPhoto succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return objectName, nil
}

// objectName is kader/YYYY/MM/<uuid><ext>, the extension taken from the file name or else the content type.
func (m *minioPhotoStorage) objectName(fileName, contentType string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if ext == "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	now := m.now()
	return fmt.Sprintf("kader/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.NewString(), ext)
}
