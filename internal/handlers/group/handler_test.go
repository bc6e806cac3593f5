package group_test

import (
	otelMocks "jamat/infras/otel/mocks"
	"jamat/internal/domains/group/mocks"
	"jamat/internal/domains/group/model/dto"
	"jamat/internal/handlers/group"
	gDto "jamat/shared/dto"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockGroupService(ctrl)

	router := chi.NewRouter()
	handler := group.New(service, otelMocks.NewOtel())
	handler.Router(router)

	service.EXPECT().
		List(gomock.Any(), gDto.QueryParams{Limit: 10}).
		Return(dto.GetGroupsResponse{
			Groups:    []dto.GroupResponse{{ID: 1, Type: "University", Name: "Campus Jamat"}},
			TotalPage: 1,
			TotalData: 1,
		}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/groups?limit=10", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t,
		`{"data":{"groups":[{"id":1,"type":"University","name":"Campus Jamat"}],"total_page":1,"total_data":1}}`,
		recorder.Body.String())
}
