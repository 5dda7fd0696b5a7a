package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"luxhome/config"
	otelMocks "luxhome/infras/otel/mocks"
	apartmentMocks "luxhome/internal/domains/apartment/mocks"
	"luxhome/internal/domains/apartment/model"
	"luxhome/internal/domains/apartment/model/dto"
	"luxhome/internal/domains/apartment/service"
	cacheMocks "luxhome/shared/cache/mocks"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*apartmentMocks.MockApartment, *cacheMocks.MockRedisCache, service.Apartment) {
	ctrl := gomock.NewController(t)

	repo := apartmentMocks.NewMockApartment(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return repo, redisCache, service.New(repo, cfg, redisCache, otelMocks.NewOtel())
}

func TestApartmentService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateApartmentRequest
		setupMock func(repo *apartmentMocks.MockApartment)
		wantSlug  string
		wantCode  int
		wantErr   bool
	}{
		{
			name: "slug derived from the name",
			req:  dto.CreateApartmentRequest{Name: "Sea View Loft, Lisbon", PricePerNight: 180},
			setupMock: func(repo *apartmentMocks.MockApartment) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, apartment model.Apartment) error {
						assert.True(t, apartment.IsAvailable)
						assert.Equal(t, "admin-id", apartment.CreatedBy)

						return nil
					})
			},
			wantSlug: "sea-view-loft-lisbon",
		},
		{
			name: "explicit slug is normalized",
			req:  dto.CreateApartmentRequest{Name: "Loft", Slug: "Old Town Loft", PricePerNight: 90},
			setupMock: func(repo *apartmentMocks.MockApartment) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantSlug: "old-town-loft",
		},
		{
			name: "taken slug",
			req:  dto.CreateApartmentRequest{Name: "Loft", PricePerNight: 90},
			setupMock: func(repo *apartmentMocks.MockApartment) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "name without slug characters",
			req:       dto.CreateApartmentRequest{Name: "!!!", PricePerNight: 90},
			setupMock: func(*apartmentMocks.MockApartment) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "database error",
			req:  dto.CreateApartmentRequest{Name: "Loft", PricePerNight: 90},
			setupMock: func(repo *apartmentMocks.MockApartment) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, svc := newService(t)
			tt.setupMock(repo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantSlug, res.Slug)
			assert.Equal(t, 1, res.Bedrooms)
			assert.Equal(t, 1, res.Bathrooms)
			assert.Equal(t, 2, res.MaxGuests)
		})
	}
}

func TestApartmentService_GetBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, redisCache, svc := newService(t)

		redisCache.EXPECT().Get(gomock.Any(), "apartment:get:loft", gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Apartment{ID: "apt-1", Slug: "loft"}, nil)

		res, err := svc.GetBySlug(context.Background(), "loft")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "apt-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, redisCache, svc := newService(t)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Apartment{}, nil)

		_, err := svc.GetBySlug(context.Background(), "nowhere")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestApartmentService_Update(t *testing.T) {
	repo, _, svc := newService(t)
	price := 210.0

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Apartment{ID: "apt-1", Slug: "loft"}, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, &price, fields["price_per_night"])
			assert.NotContains(t, fields, model.FieldSlug)

			return nil
		})

	err := svc.Update(context.Background(), dto.UpdateApartmentRequest{PricePerNight: &price}, "loft")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestApartmentService_Delete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Apartment{ID: "apt-1", Slug: "loft"}, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "loft")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("unknown slug", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Apartment{}, nil)

		err := svc.Delete(context.Background(), "nowhere")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
