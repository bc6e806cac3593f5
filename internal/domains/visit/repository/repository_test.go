package repository_test

import (
	"context"
	"database/sql"
	"jamat/infras/database"
	"jamat/infras/database/databasetest"
	"jamat/infras/otel/mocks"
	"jamat/internal/domains/visit/model"
	"jamat/internal/domains/visit/model/dto"
	"jamat/internal/domains/visit/repository"
	"jamat/shared/date"
	gDto "jamat/shared/dto"
	gRepo "jamat/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mosqueA = int64(1)
	mosqueB = int64(2)
	mosqueC = int64(3)
	groupX  = int64(1)
)

func setup(t *testing.T) (*database.Connection, repository.Visit) {
	t.Helper()

	conn := databasetest.New(t)
	databasetest.Exec(t, conn,
		"INSERT INTO mosques (id, name) VALUES (1, 'Masjid A'), (2, 'Masjid B'), (3, 'Masjid C')",
		"INSERT INTO external_groups (id, type, name) VALUES (1, 'university', 'Group X')",
	)

	return conn, repository.New(conn, mocks.NewOtel())
}

func visit(host int64, visitingMosque, visitingGroup int64, start, end string) model.Visit {
	v := model.Visit{
		HostMosqueID: host,
		StartDate:    date.MustParse(start),
		EndDate:      date.MustParse(end),
	}

	if visitingMosque != 0 {
		v.VisitingMosqueID = sql.NullInt64{Int64: visitingMosque, Valid: true}
	}

	if visitingGroup != 0 {
		v.VisitingGroupID = sql.NullInt64{Int64: visitingGroup, Valid: true}
	}

	v.CreatedBy = "test"
	v.ModifiedBy = "test"

	return v
}

func period(start, end string) model.Period {
	return model.Period{Start: date.MustParse(start), End: date.MustParse(end)}
}

func countVisits(t *testing.T, conn *database.Connection) int {
	t.Helper()

	var n int
	require.NoError(t, conn.Read.Get(&n, "SELECT COUNT(*) FROM visits"))

	return n
}

func TestInsertVisits(t *testing.T) {
	conn, repo := setup(t)
	ctx := context.Background()

	ids, err := repo.InsertVisits(ctx, []model.Visit{
		visit(mosqueA, mosqueB, 0, "2025-03-01", "2025-03-01"),
		visit(mosqueA, mosqueB, 0, "2025-03-02", "2025-03-02"),
		visit(mosqueA, mosqueB, 0, "2025-03-03", "2025-03-03"),
	})
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])
	assert.Equal(t, 3, countVisits(t, conn))
}

func TestInsertVisits_AllOrNothing(t *testing.T) {
	conn, repo := setup(t)

	_, err := repo.InsertVisits(context.Background(), []model.Visit{
		visit(mosqueA, mosqueB, 0, "2025-03-01", "2025-03-01"),
		visit(mosqueA, 99, 0, "2025-03-02", "2025-03-02"),
	})

	require.Error(t, err)
	assert.True(t, gRepo.IsForeignKeyViolation(err))
	assert.Equal(t, 0, countVisits(t, conn))
}

func TestInsertVisits_CheckConstraints(t *testing.T) {
	conn, repo := setup(t)

	tests := []struct {
		name  string
		visit model.Visit
	}{
		{name: "inverted range", visit: visit(mosqueA, mosqueB, 0, "2025-03-05", "2025-03-04")},
		{name: "both visitors", visit: visit(mosqueA, mosqueB, groupX, "2025-03-01", "2025-03-01")},
		{name: "no visitor", visit: visit(mosqueA, 0, 0, "2025-03-01", "2025-03-01")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.InsertVisits(context.Background(), []model.Visit{tt.visit})

			require.Error(t, err)
			assert.True(t, gRepo.IsCheckViolation(err))
			assert.Equal(t, 0, countVisits(t, conn))
		})
	}
}

func TestOverlapping(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	ids, err := repo.InsertVisits(ctx, []model.Visit{
		visit(mosqueA, mosqueB, 0, "2025-03-01", "2025-03-03"),
		visit(mosqueA, 0, groupX, "2025-03-05", "2025-03-05"),
		visit(mosqueB, mosqueC, 0, "2025-03-02", "2025-03-04"),
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		host   int64
		period model.Period
		want   []int64
	}{
		{name: "intersects first visit", host: mosqueA, period: period("2025-03-02", "2025-03-04"), want: []int64{ids[0]}},
		{name: "free day", host: mosqueA, period: period("2025-03-06", "2025-03-06"), want: []int64{}},
		{name: "touching end boundary", host: mosqueA, period: period("2025-03-03", "2025-03-03"), want: []int64{ids[0]}},
		{name: "touching start boundary", host: mosqueA, period: period("2025-02-25", "2025-03-01"), want: []int64{ids[0]}},
		{name: "spans both", host: mosqueA, period: period("2025-02-01", "2025-04-01"), want: []int64{ids[0], ids[1]}},
		{name: "other host ignored", host: mosqueC, period: period("2025-03-01", "2025-03-31"), want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Overlapping(ctx, tt.host, tt.period)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetRows_Window(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	ids, err := repo.InsertVisits(ctx, []model.Visit{
		visit(mosqueA, mosqueB, 0, "2025-03-05", "2025-03-05"),
		visit(mosqueA, mosqueB, 0, "2025-03-01", "2025-03-03"),
		visit(mosqueA, 0, groupX, "2025-03-02", "2025-03-04"),
		visit(mosqueB, mosqueC, 0, "2025-03-04", "2025-03-04"),
		visit(mosqueA, mosqueC, 0, "2024-12-31", "2025-01-02"),
	})
	require.NoError(t, err)

	hostA := mosqueA
	query := dto.VisitQuery{Window: period("2025-01-01", "2025-03-04"), HostMosqueID: &hostA}

	rows, err := repo.GetRows(ctx, query.Params(), query.Filter())
	require.NoError(t, err)

	got := make([]int64, len(rows))
	for i, row := range rows {
		got[i] = row.ID
	}

	// 2025-03-05 is past the window end and 2024-12-31 starts before it
	assert.Equal(t, []int64{ids[1], ids[2]}, got)

	count, err := repo.CountRows(ctx, query.Filter())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, "Masjid A", rows[0].HostName.String)
	assert.Equal(t, "Masjid B", rows[0].VisitingMosqueName.String)
	assert.False(t, rows[0].VisitingGroupName.Valid)
	assert.Equal(t, "Group X", rows[1].VisitingGroupName.String)
	assert.Equal(t, "university", rows[1].VisitingGroupType.String)
	assert.False(t, rows[1].VisitingMosqueName.Valid)
	assert.Equal(t, date.MustParse("2025-03-02"), rows[1].StartDate)

	inclusive := dto.VisitQuery{Window: period("2025-03-04", "2025-03-05")}
	count, err = repo.CountRows(ctx, inclusive.Filter())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	visiting := mosqueC
	byVisitor := dto.VisitQuery{Window: period("2025-01-01", "2025-12-31"), VisitingMosqueID: &visiting, SortDir: gDto.SortDirDesc}
	rows, err = repo.GetRows(ctx, byVisitor.Params(), byVisitor.Filter())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ids[3], rows[0].ID)
}

func TestGetRows_DanglingReference(t *testing.T) {
	conn, repo := setup(t)

	databasetest.Exec(t, conn,
		"PRAGMA foreign_keys = OFF",
		"INSERT INTO visits (host_mosque_id, visiting_mosque_id, start_date, end_date) VALUES (42, 43, '2025-02-01', '2025-02-01')",
		"PRAGMA foreign_keys = ON",
	)

	query := dto.VisitQuery{Window: period("2025-01-01", "2025-12-31")}
	rows, err := repo.GetRows(context.Background(), query.Params(), query.Filter())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(42), rows[0].HostMosqueID)
	assert.False(t, rows[0].HostName.Valid)
	assert.False(t, rows[0].VisitingMosqueName.Valid)
}

func TestGetRow(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	ids, err := repo.InsertVisits(ctx, []model.Visit{visit(mosqueA, 0, groupX, "2025-03-01", "2025-03-02")})
	require.NoError(t, err)

	row, err := repo.GetRow(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[0], row.ID)
	assert.Equal(t, period("2025-03-01", "2025-03-02"), row.Period())
	assert.Equal(t, "test", row.CreatedBy)

	missing, err := repo.GetRow(ctx, 999)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)
}

func TestVisitingMosques(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	_, err := repo.InsertVisits(ctx, []model.Visit{
		visit(mosqueA, mosqueC, 0, "2025-03-01", "2025-03-01"),
		visit(mosqueB, mosqueC, 0, "2025-03-02", "2025-03-02"),
		visit(mosqueC, mosqueB, 0, "2025-03-03", "2025-03-03"),
		visit(mosqueA, 0, groupX, "2025-03-04", "2025-03-04"),
		visit(mosqueC, mosqueA, 0, "2025-06-01", "2025-06-01"),
	})
	require.NoError(t, err)

	query := dto.VisitQuery{Window: period("2025-03-01", "2025-03-31")}
	options, err := repo.VisitingMosques(ctx, query.Filter())
	require.NoError(t, err)

	assert.Equal(t, []model.MosqueOption{
		{ID: mosqueB, Name: "Masjid B"},
		{ID: mosqueC, Name: "Masjid C"},
	}, options)
}
