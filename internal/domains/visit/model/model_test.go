package model_test

import (
	"jamat/internal/domains/visit/model"
	"jamat/shared/date"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(start, end string) model.Period {
	return model.Period{Start: date.MustParse(start), End: date.MustParse(end)}
}

func TestPeriod_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b model.Period
		want bool
	}{
		{name: "contained", a: period("2025-03-01", "2025-03-03"), b: period("2025-03-02", "2025-03-02"), want: true},
		{name: "partial", a: period("2025-03-01", "2025-03-03"), b: period("2025-03-02", "2025-03-04"), want: true},
		{name: "shared boundary day", a: period("2025-03-01", "2025-03-03"), b: period("2025-03-03", "2025-03-05"), want: true},
		{name: "adjacent days", a: period("2025-03-01", "2025-03-03"), b: period("2025-03-04", "2025-03-04"), want: false},
		{name: "disjoint", a: period("2025-03-05", "2025-03-05"), b: period("2025-03-06", "2025-03-06"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestNewPeriod(t *testing.T) {
	p, err := model.NewPeriod(date.MustParse("2025-03-01"), date.MustParse("2025-03-01"))
	require.NoError(t, err)
	assert.Len(t, p.Days(), 1)
	assert.True(t, p.Contains(date.MustParse("2025-03-01")))
	assert.Equal(t, "2025-03-01..2025-03-01", p.String())

	_, err = model.NewPeriod(date.MustParse("2025-03-02"), date.MustParse("2025-03-01"))
	assert.ErrorIs(t, err, model.ErrInvertedPeriod)
}

func TestPeriod_Days(t *testing.T) {
	days := period("2025-02-27", "2025-03-02").Days()

	require.Len(t, days, 4)
	assert.Equal(t, "2025-02-27", days[0].String())
	assert.Equal(t, "2025-03-01", days[2].String())
	assert.Equal(t, "2025-03-02", days[3].String())
}

func TestNewVisitor(t *testing.T) {
	one, two := int64(1), int64(2)

	visitor, err := model.NewVisitor(&one, nil)
	require.NoError(t, err)
	assert.Equal(t, model.Visitor{Kind: model.VisitorMosque, ID: 1}, visitor)

	mosqueID, groupID := visitor.Columns()
	assert.True(t, mosqueID.Valid)
	assert.False(t, groupID.Valid)

	visitor, err = model.NewVisitor(nil, &two)
	require.NoError(t, err)
	assert.Equal(t, model.VisitorGroup, visitor.Kind)

	mosqueID, groupID = visitor.Columns()
	assert.False(t, mosqueID.Valid)
	assert.Equal(t, int64(2), groupID.Int64)

	_, err = model.NewVisitor(&one, &two)
	assert.ErrorIs(t, err, model.ErrAmbiguousVisitor)

	_, err = model.NewVisitor(nil, nil)
	assert.ErrorIs(t, err, model.ErrNoVisitor)
}
