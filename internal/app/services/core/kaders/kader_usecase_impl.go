package kaders

import (
	"context"
	"net/url"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/app/services/shared/events"
	"posyandu-console/internal/app/services/shared/posyanduapi"
	"posyandu-console/internal/app/services/shared/search"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/dto/requests"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

const photoField = "photo"

type kaderUsecase struct {
	ApiClient    contracts.PosyanduAPIClient
	Cache        contracts.EntityCache
	PhotoStorage contracts.PhotoStorage
	Announcer    *events.Announcer
	Search       *search.Coordinator
	Log          *zap.Logger
}

// NewKaderUsecase builds the kader usecase. photoStorage may be nil, in which case
// uploaded photos are forwarded without being archived.
func NewKaderUsecase(
	apiClient contracts.PosyanduAPIClient,
	entityCache contracts.EntityCache,
	photoStorage contracts.PhotoStorage,
	announcer *events.Announcer,
	searchCoordinator *search.Coordinator,
	logger *zap.Logger,
) contracts.KaderUsecase {
	return &kaderUsecase{
		ApiClient:    apiClient,
		Cache:        entityCache,
		PhotoStorage: photoStorage,
		Announcer:    announcer,
		Search:       searchCoordinator,
		Log:          logger,
	}
}

func (uc *kaderUsecase) List(ctx context.Context, query *requests.SearchQuery) ([]models.Kader, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("kaderUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query.Q),
	)

	var (
		kaders []models.Kader
		err    error
	)
	if q := strings.TrimSpace(query.Q); q != "" {
		err = uc.Search.Run(ctx, constvars.ResourceKader, func(ctx context.Context) error {
			return uc.ApiClient.Get(ctx, constvars.RemotePathKadersSearch, url.Values{constvars.QueryParamQ: {q}}, &kaders)
		})
	} else {
		kaders, err = uc.all(ctx)
	}
	if err != nil {
		uc.Log.Error("kaderUsecase.List error fetching kaders",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	filtered := make([]models.Kader, 0, len(kaders))
	for _, kader := range kaders {
		kader.ApplyListDefaults()
		if query.Status != "" && query.Status != "all" && kader.Status != query.Status {
			continue
		}
		filtered = append(filtered, kader)
	}

	uc.Log.Info("kaderUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(filtered)),
	)
	return filtered, nil
}

func (uc *kaderUsecase) all(ctx context.Context) ([]models.Kader, error) {
	var kaders []models.Kader
	if found, err := uc.Cache.GetList(ctx, constvars.ResourceKader, &kaders); err == nil && found {
		return kaders, nil
	}

	kaders = nil
	if err := uc.ApiClient.Get(ctx, constvars.RemotePathKaders, nil, &kaders); err != nil {
		return nil, err
	}
	if kaders == nil {
		kaders = []models.Kader{}
	}
	_ = uc.Cache.SetList(ctx, constvars.ResourceKader, kaders)
	return kaders, nil
}

func (uc *kaderUsecase) FindByID(ctx context.Context, kaderID string) (*models.Kader, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("kaderUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, kaderID),
	)

	kader := new(models.Kader)
	if found, err := uc.Cache.GetEntity(ctx, constvars.ResourceKader, kaderID, kader); err == nil && found {
		return kader, nil
	}

	if err := uc.ApiClient.Get(ctx, kaderPath(kaderID), nil, kader); err != nil {
		uc.Log.Error("kaderUsecase.FindByID error calling ApiClient.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, kaderID),
			zap.Error(err),
		)
		return nil, err
	}
	kader.ApplyListDefaults()
	_ = uc.Cache.SetEntity(ctx, constvars.ResourceKader, kaderID, kader)
	return kader, nil
}

func (uc *kaderUsecase) Create(ctx context.Context, request *requests.KaderForm) (*models.Kader, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("kaderUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if fields := utils.ValidateForm(request); fields != nil {
		return nil, exceptions.ErrFormValidation(fields)
	}

	kader := new(models.Kader)
	if err := uc.ApiClient.Post(ctx, constvars.RemotePathKaders, uc.payload(ctx, request), kader); err != nil {
		uc.Log.Error("kaderUsecase.Create error calling ApiClient.Post",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceKader, kader.ID.String())

	uc.Log.Info("kaderUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, kader.ID.String()),
	)
	return kader, nil
}

func (uc *kaderUsecase) Update(ctx context.Context, kaderID string, request *requests.KaderForm) (*models.Kader, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("kaderUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, kaderID),
	)

	if fields := utils.ValidateForm(request); fields != nil {
		return nil, exceptions.ErrFormValidation(fields)
	}

	kader := new(models.Kader)
	if err := uc.ApiClient.Put(ctx, kaderPath(kaderID), uc.payload(ctx, request), kader); err != nil {
		uc.Log.Error("kaderUsecase.Update error calling ApiClient.Put",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, kaderID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceKader, kaderID)

	uc.Log.Info("kaderUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, kaderID),
	)
	return kader, nil
}

func (uc *kaderUsecase) Delete(ctx context.Context, kaderID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("kaderUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, kaderID),
	)

	if err := uc.ApiClient.Delete(ctx, kaderPath(kaderID), nil); err != nil {
		uc.Log.Error("kaderUsecase.Delete error calling ApiClient.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityIDKey, kaderID),
			zap.Error(err),
		)
		return err
	}
	uc.Announcer.EntityChanged(ctx, constvars.ResourceKader, kaderID)

	uc.Log.Info("kaderUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntityIDKey, kaderID),
	)
	return nil
}

// payload is JSON unless a new photo was attached, in which case every field goes
// as multipart text next to the photo part. The photo is archived first; an archive
// failure is logged and does not block the upload.
func (uc *kaderUsecase) payload(ctx context.Context, request *requests.KaderForm) interface{} {
	if request.Photo == nil || len(request.Photo.Data) == 0 {
		return request
	}

	if uc.PhotoStorage != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		objectName, err := uc.PhotoStorage.ArchiveKaderPhoto(ctx, request.Photo)
		if err != nil {
			uc.Log.Warn("kaderUsecase.payload error archiving kader photo",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else {
			uc.Log.Debug("kaderUsecase.payload archived kader photo",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectKey, objectName),
			)
		}
	}

	return &posyanduapi.Form{
		Fields: request.Fields(),
		Files: map[string]posyanduapi.File{
			photoField: {
				FileName:    request.Photo.FileName,
				ContentType: request.Photo.ContentType,
				Data:        request.Photo.Data,
			},
		},
	}
}

func kaderPath(kaderID string) string {
	return constvars.RemotePathKaders + "/" + url.PathEscape(kaderID)
}
