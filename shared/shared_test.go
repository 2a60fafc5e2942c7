package shared_test

import (
	"casona/shared"
	"casona/shared/constant"
	"casona/shared/dto"
	"reflect"
	"testing"
	"time"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Errorf("expected %v, got nil", *tt.expected)

				return
			}

			if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "rounds up", total: 101, limit: 10, expected: 11},
		{name: "single page", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type payload struct {
		GuestName string `db:"guest_name"`
		Persons   int    `db:"persons"`
		Untagged  string
		Skipped   string `db:"skipped"`
	}

	fields := shared.TransformFields(payload{GuestName: "Ada", Persons: 2, Untagged: "x"}, "tester")

	if fields["guest_name"] != "Ada" {
		t.Errorf("expected guest_name to be Ada, got %v", fields["guest_name"])
	}

	if fields["persons"] != 2 {
		t.Errorf("expected persons to be 2, got %v", fields["persons"])
	}

	if _, ok := fields["skipped"]; ok {
		t.Error("expected zero-value field to be skipped")
	}

	if _, ok := fields["Untagged"]; ok {
		t.Error("expected untagged field to be skipped")
	}

	if fields[constant.FieldModifiedBy] != "tester" {
		t.Errorf("expected modified_by to be tester, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(7), "id", "bookings")

	if len(filter.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(filter.Filters))
	}

	got, ok := filter.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", filter.Filters[0])
	}

	expected := dto.Filter{
		Field:    "id",
		Value:    int64(7),
		Operator: dto.FilterOperatorEq,
		Table:    "bookings",
	}

	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "booking:get", parts: nil, expected: "booking:get"},
		{name: "single part", prefix: "booking:get", parts: []string{"7"}, expected: "booking:get:7"},
		{name: "multiple parts", prefix: "limiter", parts: []string{"1.2.3.4", "agent"}, expected: "limiter:1.2.3.4:agent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if first != second {
		t.Errorf("expected stable key, got %s and %s", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)

	if first == other {
		t.Error("expected different params to produce a different key")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
