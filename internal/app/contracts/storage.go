package contracts

import (
	"context"
	"posyandu-console/internal/app/models"
)

type PhotoStorage interface {
	ArchiveKaderPhoto(ctx context.Context, photo *models.KaderPhoto) (objectName string, err error)
}
