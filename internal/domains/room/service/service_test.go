package service_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"luxhome/config"
	otelMocks "luxhome/infras/otel/mocks"
	postgresMocks "luxhome/infras/postgres/mocks"
	s3Mocks "luxhome/infras/s3/mocks"
	apartmentMocks "luxhome/internal/domains/apartment/mocks"
	apartmentModel "luxhome/internal/domains/apartment/model"
	roomMocks "luxhome/internal/domains/room/mocks"
	"luxhome/internal/domains/room/model"
	"luxhome/internal/domains/room/model/dto"
	"luxhome/internal/domains/room/service"
	cacheMocks "luxhome/shared/cache/mocks"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	apartmentID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	roomID      = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	bucket      = "luxhome"
	imageURL    = "https://cdn.example.com/virtual_tour/panoramas/new.png"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error {
	return nil
}

func panoramaUpload(t *testing.T, width, height int) (*multipart.FileHeader, multipart.File) {
	t.Helper()

	buf := bytes.Buffer{}
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, width, height))))

	header := &multipart.FileHeader{Filename: "living.png", Size: int64(buf.Len())}

	return header, memFile{bytes.NewReader(buf.Bytes())}
}

type fixture struct {
	repo          *roomMocks.MockRoom
	apartmentRepo *apartmentMocks.MockApartment
	cache         *cacheMocks.MockRedisCache
	s3            *s3Mocks.MockS3
	svc           service.Room
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:          roomMocks.NewMockRoom(ctrl),
		apartmentRepo: apartmentMocks.NewMockApartment(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
		s3:            s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = bucket
	cfg.Tour.Panorama.MaxSizeMB = 10
	cfg.Tour.Panorama.MinWidth = 2048
	cfg.Tour.Panorama.MinHeight = 1024
	cfg.Tour.Panorama.MinAspect = 1.8
	cfg.Tour.Panorama.MaxAspect = 2.2

	f.svc = service.New(f.repo, f.apartmentRepo, postgresMocks.NewTransactor(), cfg, f.cache, otelMocks.NewOtel(), f.s3)

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f fixture) expectApartmentLock(found bool) {
	apartment := apartmentModel.Apartment{}
	if found {
		apartment.ID = apartmentID
	}

	f.apartmentRepo.EXPECT().
		GetTx(gomock.Any(), gomock.Any(), gomock.Any(), apartmentModel.FieldID).
		Return(apartment, nil)
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		height    int
		noFile    bool
		starting  bool
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name:     "starting room demotes the previous one",
			width:    4096,
			height:   2048,
			starting: true,
			setupMock: func(f fixture) {
				f.s3.EXPECT().
					UploadFile(gomock.Any(), bucket, model.StorageDirectory, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(imageURL, nil)
				f.expectApartmentLock(true)
				f.repo.EXPECT().DemoteStartingTx(gomock.Any(), gomock.Any(), apartmentID, constant.Empty, "admin-id").Return(nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "regular room leaves the starting room alone",
			width:  4096,
			height: 2048,
			setupMock: func(f fixture) {
				f.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(imageURL, nil)
				f.expectApartmentLock(true)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "square image is rejected before upload",
			width:     1024,
			height:    1024,
			setupMock: func(fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "low resolution is rejected",
			width:     1024,
			height:    512,
			setupMock: func(fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing file",
			noFile:    true,
			setupMock: func(fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "unknown apartment removes the uploaded image",
			width:  4096,
			height: 2048,
			setupMock: func(f fixture) {
				f.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(imageURL, nil)
				f.expectApartmentLock(false)
				f.s3.EXPECT().DeleteFile(gomock.Any(), bucket, model.StorageDirectory, gomock.Any()).Return(nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "insert failure removes the uploaded image",
			width:  4096,
			height: 2048,
			setupMock: func(f fixture) {
				f.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(imageURL, nil)
				f.expectApartmentLock(true)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
				f.s3.EXPECT().DeleteFile(gomock.Any(), bucket, model.StorageDirectory, gomock.Any()).Return(nil)
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "upload failure",
			width:  4096,
			height: 2048,
			setupMock: func(f fixture) {
				f.s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 unavailable"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			req := dto.CreateRoomRequest{
				ApartmentID:    apartmentID,
				Name:           "Living Room",
				RoomType:       model.TypeLivingRoom,
				IsStartingRoom: tt.starting,
				InitialYaw:     180,
			}

			if !tt.noFile {
				req.PanoramicImage, req.PanoramicFile = panoramaUpload(t, tt.width, tt.height)
			}

			res, err := f.svc.Create(userContext(), req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, imageURL, res.PanoramicImage)
			assert.Equal(t, imageURL, res.PanoramicImageURL)
			assert.Equal(t, tt.starting, res.IsStartingRoom)
			assert.Equal(t, 180.0, res.InitialYaw)
		})
	}
}

func TestRoomService_SetStartingRoom(t *testing.T) {
	current := model.Room{ID: roomID, ApartmentID: apartmentID}

	t.Run("demotes the others then promotes the room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.expectApartmentLock(true)

		gomock.InOrder(
			f.repo.EXPECT().DemoteStartingTx(gomock.Any(), gomock.Any(), apartmentID, roomID, "admin-id").Return(nil),
			f.repo.EXPECT().
				UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
					assert.Equal(t, true, fields[model.FieldIsStartingRoom])
					assert.Equal(t, roomID, filter.Filters[0].(gDto.Filter).Value)

					return nil
				}),
		)

		err := f.svc.SetStartingRoom(userContext(), roomID)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		err := f.svc.SetStartingRoom(userContext(), roomID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("demote failure aborts", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.expectApartmentLock(true)
		f.repo.EXPECT().DemoteStartingTx(gomock.Any(), gomock.Any(), apartmentID, roomID, "admin-id").Return(errors.New("database error"))

		err := f.svc.SetStartingRoom(userContext(), roomID)

		assert.Error(t, err)
	})
}

func TestRoomService_Update(t *testing.T) {
	current := model.Room{ID: roomID, ApartmentID: apartmentID, PanoramicImage: "https://cdn.example.com/virtual_tour/panoramas/old.png"}

	t.Run("promoting keeps the room itself", func(t *testing.T) {
		f := newFixture(t)
		starting := true
		name := "Lounge"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.expectApartmentLock(true)
		f.repo.EXPECT().DemoteStartingTx(gomock.Any(), gomock.Any(), apartmentID, roomID, "admin-id").Return(nil)
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, fields[model.FieldIsStartingRoom])
				assert.Equal(t, name, fields[model.FieldName])
				assert.NotContains(t, fields, model.FieldApartmentID)

				return nil
			})

		err := f.svc.Update(userContext(), dto.UpdateRoomRequest{Name: name, IsStartingRoom: &starting}, roomID)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("new panorama replaces the old object", func(t *testing.T) {
		f := newFixture(t)
		header, file := panoramaUpload(t, 4096, 2048)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		f.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(imageURL, nil)
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, imageURL, fields[model.FieldPanoramicImage])

				return nil
			})
		f.s3.EXPECT().GetObjectNameFromURL(bucket, current.PanoramicImage).Return("old.png")
		f.s3.EXPECT().DeleteFile(gomock.Any(), bucket, model.StorageDirectory, "old.png").Return(nil)

		err := f.svc.Update(userContext(), dto.UpdateRoomRequest{PanoramicImage: header, PanoramicFile: file}, roomID)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("invalid panorama keeps the room untouched", func(t *testing.T) {
		f := newFixture(t)
		header, file := panoramaUpload(t, 1000, 1000)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)

		err := f.svc.Update(userContext(), dto.UpdateRoomRequest{PanoramicImage: header, PanoramicFile: file}, roomID)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	f := newFixture(t)
	current := model.Room{ID: roomID, ApartmentID: apartmentID, PanoramicImage: imageURL}

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.s3.EXPECT().GetObjectNameFromURL(bucket, imageURL).Return("new.png")
	f.s3.EXPECT().DeleteFile(gomock.Any(), bucket, model.StorageDirectory, "new.png").Return(nil)

	err := f.svc.Delete(context.Background(), roomID)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestRoomService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Equal(t, model.TourOrder, params.OrderBy)

			return []model.Room{{ID: "a", Order: 0}, {ID: "b", Order: 1}}, nil
		})

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 1, res.TotalPage)
}
