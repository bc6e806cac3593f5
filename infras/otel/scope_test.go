package otel_test

import (
	"jamat/infras/otel"
	"jamat/shared/date"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestAttribute(t *testing.T) {
	id := int64(7)

	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "string", value: "masjid", want: attribute.StringValue("masjid")},
		{name: "int", value: 3, want: attribute.IntValue(3)},
		{name: "id filter", value: &id, want: attribute.Int64Value(7)},
		{name: "unset filter", value: (*int64)(nil), want: attribute.StringValue("all")},
		{name: "ids", value: []int64{1, 2}, want: attribute.Int64SliceValue([]int64{1, 2})},
		{name: "stringer", value: date.New(2025, 3, 1), want: attribute.StringValue("2025-03-01")},
		{name: "fallback", value: struct{ A int }{A: 1}, want: attribute.StringValue("{1}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := otel.Attribute("key", tt.value)

			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}
