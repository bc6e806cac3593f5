package mosque_test

import (
	"errors"
	otelMocks "jamat/infras/otel/mocks"
	"jamat/internal/domains/mosque/mocks"
	"jamat/internal/domains/mosque/model/dto"
	"jamat/internal/handlers/mosque"
	"jamat/shared/constant"
	gDto "jamat/shared/dto"
	"jamat/shared/failure"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockMosqueService, chi.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockMosqueService(ctrl)
	handler := mosque.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return service, router
}

func TestGetMosques(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		params     gDto.QueryParams
		res        dto.GetMosquesResponse
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "paginated",
			target:     "/mosques?page=2&limit=1&sort_dir=desc",
			params:     gDto.QueryParams{Page: 2, Limit: 1, SortDir: gDto.SortDirDesc},
			res:        dto.GetMosquesResponse{Mosques: []dto.MosqueResponse{{ID: 4, Name: "Masjid Nur"}}, TotalPage: 3, TotalData: 3},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Masjid Nur"`,
		},
		{
			name:       "storage failure",
			target:     "/mosques",
			params:     gDto.QueryParams{},
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   constant.ResponseErrorInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := setup(t)
			service.EXPECT().List(gomock.Any(), tt.params).Return(tt.res, tt.err)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
		})
	}
}

func TestGetMosqueByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		service, router := setup(t)
		service.EXPECT().Get(gomock.Any(), int64(4)).Return(dto.MosqueDetailResponse{Mosque: dto.MosqueResponse{ID: 4, Name: "Masjid Nur"}}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/mosques/4", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"hosted_visits"`)
	})

	t.Run("missing", func(t *testing.T) {
		service, router := setup(t)
		service.EXPECT().Get(gomock.Any(), int64(9)).Return(dto.MosqueDetailResponse{}, failure.NotFound("mosque"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/mosques/9", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		_, router := setup(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/mosques/nur", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
