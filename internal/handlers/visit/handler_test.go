package visit_test

import (
	"encoding/json"
	"errors"
	otelMocks "jamat/infras/otel/mocks"
	"jamat/internal/domains/visit/mocks"
	"jamat/internal/domains/visit/model"
	"jamat/internal/domains/visit/model/dto"
	"jamat/internal/handlers/visit"
	"jamat/shared/date"
	"jamat/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	service *mocks.MockVisitService
	router  chi.Router
}

func newFixture(t *testing.T) handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockVisitService(ctrl)
	handler := visit.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return handlerFixture{service: service, router: router}
}

func (f handlerFixture) do(method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()

	f.router.ServeHTTP(recorder, request)

	return recorder
}

func TestRegisterVisit(t *testing.T) {
	t.Run("created with overlap warning", func(t *testing.T) {
		fixture := newFixture(t)
		visitingID := int64(2)

		fixture.service.EXPECT().
			Register(gomock.Any(), dto.RegisterVisitRequest{
				HostMosqueID:     1,
				VisitingMosqueID: &visitingID,
				StartDate:        "2025-03-01",
				EndDate:          "2025-03-03",
			}).
			Return(dto.RegisterVisitResponse{CreatedIDs: []int64{7}, Warning: dto.OverlapWarning, OverlappingIDs: []int64{3}}, nil)

		recorder := fixture.do(http.MethodPost, "/visits",
			`{"host_mosque_id":1,"visiting_mosque_id":2,"start_date":"2025-03-01","end_date":"2025-03-03"}`)

		require.Equal(t, http.StatusCreated, recorder.Code)

		var body struct {
			Data dto.RegisterVisitResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, []int64{7}, body.Data.CreatedIDs)
		assert.Equal(t, dto.OverlapWarning, body.Data.Warning)
		assert.Equal(t, []int64{3}, body.Data.OverlappingIDs)
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"host_mosque_id":`},
		{name: "missing host", body: `{"visiting_mosque_id":2,"start_date":"2025-03-01","end_date":"2025-03-03"}`},
		{name: "malformed date", body: `{"host_mosque_id":1,"visiting_mosque_id":2,"start_date":"03/01/2025","end_date":"2025-03-03"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newFixture(t)

			recorder := fixture.do(http.MethodPost, "/visits", tt.body)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}

	t.Run("service validation error", func(t *testing.T) {
		fixture := newFixture(t)

		fixture.service.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(dto.RegisterVisitResponse{}, failure.BadRequest(model.ErrAmbiguousVisitor))

		recorder := fixture.do(http.MethodPost, "/visits",
			`{"host_mosque_id":1,"visiting_mosque_id":2,"visiting_group_id":3,"start_date":"2025-03-01","end_date":"2025-03-03"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), model.ErrAmbiguousVisitor.Error())
	})

	t.Run("storage error", func(t *testing.T) {
		fixture := newFixture(t)

		fixture.service.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(dto.RegisterVisitResponse{}, errors.New("disk full"))

		recorder := fixture.do(http.MethodPost, "/visits",
			`{"host_mosque_id":1,"visiting_group_id":3,"start_date":"2025-03-01","end_date":"2025-03-03"}`)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestGetVisits(t *testing.T) {
	t.Run("window and filters", func(t *testing.T) {
		fixture := newFixture(t)
		hostID := int64(3)
		query := dto.VisitQuery{
			Window:       model.Period{Start: date.New(2025, 1, 1), End: date.New(2025, 1, 31)},
			HostMosqueID: &hostID,
			SortDir:      "DESC",
		}

		fixture.service.EXPECT().
			Window(gomock.Any()).
			DoAndReturn(func(req dto.VisitQueryRequest) (dto.VisitQuery, error) {
				assert.Equal(t, "2025-01-01", req.StartDate)
				assert.Equal(t, "2025-01-31", req.EndDate)
				assert.Equal(t, "3", req.HostFilter)
				assert.Equal(t, "all", req.VisitingFilter)
				assert.Equal(t, "DESC", req.SortDir)

				return query, nil
			})
		fixture.service.EXPECT().
			Query(gomock.Any(), query).
			Return(dto.GetVisitsResponse{Visits: []dto.VisitRowResponse{{ID: 1}}, TotalPage: 1, TotalData: 1}, nil)

		recorder := fixture.do(http.MethodGet,
			"/visits?start_date=2025-01-01&end_date=2025-01-31&host_filter=3&visiting_filter=all&sort_dir=desc", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"total_data":1`)
	})

	t.Run("malformed date never reaches the service", func(t *testing.T) {
		fixture := newFixture(t)

		recorder := fixture.do(http.MethodGet, "/visits?start_date=2025-02-30", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("non numeric filter", func(t *testing.T) {
		fixture := newFixture(t)

		recorder := fixture.do(http.MethodGet, "/visits?visiting_filter=abc", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("inverted window", func(t *testing.T) {
		fixture := newFixture(t)

		fixture.service.EXPECT().
			Window(gomock.Any()).
			Return(dto.VisitQuery{}, failure.BadRequest(model.ErrInvertedPeriod))

		recorder := fixture.do(http.MethodGet, "/visits?start_date=2025-02-01&end_date=2025-01-01", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetVisitByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fixture := newFixture(t)
		name := "Masjid A"

		fixture.service.EXPECT().Get(gomock.Any(), int64(5)).Return(dto.VisitRowResponse{ID: 5, HostName: &name}, nil)

		recorder := fixture.do(http.MethodGet, "/visits/5", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"host_name":"Masjid A"`)
	})

	t.Run("not found", func(t *testing.T) {
		fixture := newFixture(t)

		fixture.service.EXPECT().Get(gomock.Any(), int64(6)).Return(dto.VisitRowResponse{}, failure.NotFound("visit"))

		recorder := fixture.do(http.MethodGet, "/visits/6", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		fixture := newFixture(t)

		recorder := fixture.do(http.MethodGet, "/visits/abc", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
