package service_test

import (
	"context"
	"errors"
	"fmt"
	"jamat/config"
	brokerMocks "jamat/infras/broker/mocks"
	"jamat/infras/otel/mocks"
	groupMocks "jamat/internal/domains/group/mocks"
	mosqueMocks "jamat/internal/domains/mosque/mocks"
	visitMocks "jamat/internal/domains/visit/mocks"
	"jamat/internal/domains/visit/model"
	"jamat/internal/domains/visit/model/dto"
	"jamat/internal/domains/visit/service"
	"jamat/shared/constant"
	"jamat/shared/date"
	"jamat/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *visitMocks.MockVisit
	mosques   *mosqueMocks.MockMosque
	groups    *groupMocks.MockGroup
	publisher *brokerMocks.MockPublisher
	published chan dto.RegisteredEvent
	svc       service.Visit
}

func newFixture(t *testing.T, granularity string) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.VisitGranularity = granularity
	cfg.App.Reporting.Epoch = "2025-01-01"
	cfg.Events.Topic = "visit.registered"

	f := &fixture{
		repo:      visitMocks.NewMockVisit(ctrl),
		mosques:   mosqueMocks.NewMockMosque(ctrl),
		groups:    groupMocks.NewMockGroup(ctrl),
		publisher: brokerMocks.NewMockPublisher(ctrl),
		published: make(chan dto.RegisteredEvent, 1),
	}

	today := func() date.Date { return date.MustParse("2025-06-30") }
	f.svc = service.New(f.repo, f.mosques, f.groups, f.publisher, cfg, mocks.NewOtel(), today)

	return f
}

// expectPublish captures the registered event published in the background.
func (f *fixture) expectPublish() {
	f.publisher.EXPECT().
		Publish(gomock.Any(), "visit.registered", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, payload any) error {
			f.published <- payload.(dto.RegisteredEvent)

			return nil
		})
}

func (f *fixture) waitPublished(t *testing.T) dto.RegisteredEvent {
	t.Helper()

	select {
	case event := <-f.published:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("visit registered event was not published")
	}

	return dto.RegisteredEvent{}
}

func (f *fixture) expectMosquesExist(exists ...bool) {
	for _, e := range exists {
		f.mosques.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(e, nil)
	}
}

func ptr(v int64) *int64 {
	return &v
}

func TestVisitService_Register(t *testing.T) {
	t.Run("range granularity stores one row", func(t *testing.T) {
		f := newFixture(t, config.GranularityRange)
		f.expectMosquesExist(true, true)
		f.repo.EXPECT().Overlapping(gomock.Any(), int64(1), model.Period{
			Start: date.MustParse("2025-03-06"),
			End:   date.MustParse("2025-03-06"),
		}).Return(nil, nil)
		f.repo.EXPECT().InsertVisits(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, visits []model.Visit) ([]int64, error) {
				require.Len(t, visits, 1)
				assert.Equal(t, int64(1), visits[0].HostMosqueID)
				assert.True(t, visits[0].VisitingMosqueID.Valid)
				assert.Equal(t, int64(2), visits[0].VisitingMosqueID.Int64)
				assert.False(t, visits[0].VisitingGroupID.Valid)
				assert.Equal(t, "admin", visits[0].CreatedBy)

				return []int64{7}, nil
			})
		f.expectPublish()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")
		res, err := f.svc.Register(ctx, dto.RegisterVisitRequest{
			HostMosqueID:     1,
			VisitingMosqueID: ptr(2),
			StartDate:        "2025-03-06",
			EndDate:          "2025-03-06",
		})

		require.NoError(t, err)
		assert.Equal(t, []int64{7}, res.CreatedIDs)
		assert.Empty(t, res.Warning)
		assert.Empty(t, res.OverlappingIDs)

		event := f.waitPublished(t)
		assert.Equal(t, []int64{7}, event.VisitIDs)
		assert.False(t, event.Overlap)
		assert.Equal(t, model.Visitor{Kind: model.VisitorMosque, ID: 2}, event.Visitor)
	})

	t.Run("overlap warns but still stores", func(t *testing.T) {
		f := newFixture(t, config.GranularityRange)
		f.expectMosquesExist(true)
		f.groups.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Overlapping(gomock.Any(), int64(1), gomock.Any()).Return([]int64{3}, nil)
		f.repo.EXPECT().InsertVisits(gomock.Any(), gomock.Len(1)).Return([]int64{8}, nil)
		f.expectPublish()

		res, err := f.svc.Register(context.Background(), dto.RegisterVisitRequest{
			HostMosqueID:    1,
			VisitingGroupID: ptr(4),
			StartDate:       "2025-03-02",
			EndDate:         "2025-03-04",
		})

		require.NoError(t, err)
		assert.Equal(t, []int64{8}, res.CreatedIDs)
		assert.Equal(t, dto.OverlapWarning, res.Warning)
		assert.Equal(t, []int64{3}, res.OverlappingIDs)
		assert.True(t, f.waitPublished(t).Overlap)
	})

	t.Run("daily granularity stores one row per day", func(t *testing.T) {
		f := newFixture(t, config.GranularityDaily)
		f.expectMosquesExist(true, true)
		f.repo.EXPECT().Overlapping(gomock.Any(), int64(1), gomock.Any()).Return(nil, nil)
		f.repo.EXPECT().InsertVisits(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, visits []model.Visit) ([]int64, error) {
				require.Len(t, visits, 3)

				for i, visit := range visits {
					day := date.MustParse("2025-03-02").AddDays(i)
					assert.Equal(t, day, visit.StartDate)
					assert.Equal(t, day, visit.EndDate)
					assert.Equal(t, "jamat of five", visit.Notes)
					assert.Equal(t, visits[0].VisitingMosqueID, visit.VisitingMosqueID)
				}

				return []int64{10, 11, 12}, nil
			})
		f.expectPublish()

		res, err := f.svc.Register(context.Background(), dto.RegisterVisitRequest{
			HostMosqueID:     1,
			VisitingMosqueID: ptr(2),
			StartDate:        "2025-03-02",
			EndDate:          "2025-03-04",
			Notes:            " jamat of five ",
		})

		require.NoError(t, err)
		assert.Equal(t, []int64{10, 11, 12}, res.CreatedIDs)
		assert.Equal(t, config.GranularityDaily, f.waitPublished(t).Granularity)
	})
}

func TestVisitService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   dto.RegisterVisitRequest
		setup func(f *fixture)
	}{
		{
			name: "inverted range",
			req:  dto.RegisterVisitRequest{HostMosqueID: 1, VisitingMosqueID: ptr(2), StartDate: "2025-03-05", EndDate: "2025-03-04"},
		},
		{
			name: "malformed date",
			req:  dto.RegisterVisitRequest{HostMosqueID: 1, VisitingMosqueID: ptr(2), StartDate: "2025-02-30", EndDate: "2025-03-04"},
		},
		{
			name: "both visitors",
			req:  dto.RegisterVisitRequest{HostMosqueID: 1, VisitingMosqueID: ptr(2), VisitingGroupID: ptr(3), StartDate: "2025-03-01", EndDate: "2025-03-01"},
		},
		{
			name: "no visitor",
			req:  dto.RegisterVisitRequest{HostMosqueID: 1, StartDate: "2025-03-01", EndDate: "2025-03-01"},
		},
		{
			name:  "unknown host",
			req:   dto.RegisterVisitRequest{HostMosqueID: 99, VisitingMosqueID: ptr(2), StartDate: "2025-03-01", EndDate: "2025-03-01"},
			setup: func(f *fixture) { f.expectMosquesExist(false) },
		},
		{
			name:  "unknown visiting mosque",
			req:   dto.RegisterVisitRequest{HostMosqueID: 1, VisitingMosqueID: ptr(99), StartDate: "2025-03-01", EndDate: "2025-03-01"},
			setup: func(f *fixture) { f.expectMosquesExist(true, false) },
		},
		{
			name: "unknown visiting group",
			req:  dto.RegisterVisitRequest{HostMosqueID: 1, VisitingGroupID: ptr(99), StartDate: "2025-03-01", EndDate: "2025-03-01"},
			setup: func(f *fixture) {
				f.expectMosquesExist(true)
				f.groups.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name: "reference removed before insert",
			req:  dto.RegisterVisitRequest{HostMosqueID: 1, VisitingMosqueID: ptr(2), StartDate: "2025-03-01", EndDate: "2025-03-01"},
			setup: func(f *fixture) {
				f.expectMosquesExist(true, true)
				f.repo.EXPECT().Overlapping(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

				fkErr := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
				f.repo.EXPECT().InsertVisits(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("failed to insert visits: %w", fkErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, config.GranularityRange)
			if tt.setup != nil {
				tt.setup(f)
			}

			res, err := f.svc.Register(context.Background(), tt.req)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Empty(t, res.CreatedIDs)
		})
	}
}

func TestVisitService_Register_StorageError(t *testing.T) {
	f := newFixture(t, config.GranularityRange)
	f.expectMosquesExist(true, true)
	f.repo.EXPECT().Overlapping(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().InsertVisits(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk I/O error"))

	_, err := f.svc.Register(context.Background(), dto.RegisterVisitRequest{
		HostMosqueID:     1,
		VisitingMosqueID: ptr(2),
		StartDate:        "2025-03-01",
		EndDate:          "2025-03-01",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestVisitService_Window(t *testing.T) {
	f := newFixture(t, config.GranularityRange)

	query, err := f.svc.Window(dto.VisitQueryRequest{HostFilter: "all", VisitingFilter: "4"})
	require.NoError(t, err)

	assert.Equal(t, date.MustParse("2025-01-01"), query.Window.Start)
	assert.Equal(t, date.MustParse("2025-06-30"), query.Window.End)
	assert.Nil(t, query.HostMosqueID)
	require.NotNil(t, query.VisitingMosqueID)
	assert.Equal(t, int64(4), *query.VisitingMosqueID)

	_, err = f.svc.Window(dto.VisitQueryRequest{HostFilter: "abc"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestVisitService_Query(t *testing.T) {
	f := newFixture(t, config.GranularityRange)

	rows := []model.VisitRow{{ID: 1, HostMosqueID: 1}, {ID: 2, HostMosqueID: 1}}
	f.repo.EXPECT().CountRows(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().GetRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(rows, nil)

	res, err := f.svc.Query(context.Background(), dto.VisitQuery{Window: model.Period{
		Start: date.MustParse("2025-01-01"),
		End:   date.MustParse("2025-03-04"),
	}})

	require.NoError(t, err)
	assert.Len(t, res.Visits, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestVisitService_Get(t *testing.T) {
	f := newFixture(t, config.GranularityRange)

	f.repo.EXPECT().GetRow(gomock.Any(), int64(5)).Return(model.VisitRow{ID: 5, HostMosqueID: 1}, nil)
	f.repo.EXPECT().GetRow(gomock.Any(), int64(6)).Return(model.VisitRow{}, nil)

	res, err := f.svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.ID)

	_, err = f.svc.Get(context.Background(), 6)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
