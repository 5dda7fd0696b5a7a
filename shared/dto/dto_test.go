package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"luxhome/shared/constant"
	"luxhome/shared/dto"
	"luxhome/shared/model"
	"luxhome/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: createdAt.Add(time.Hour),
		CreatedBy:  "agent",
		ModifiedBy: "superadmin",
	})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(createdAt.Add(time.Hour), constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "agent", metadata.CreatedBy)
	assert.Equal(t, "superadmin", metadata.ModifiedBy)
}

func TestNewMetadata(t *testing.T) {
	meta := model.NewMetadata("agent")

	assert.Equal(t, meta.CreatedAt, meta.ModifiedAt)
	assert.False(t, meta.CreatedAt.IsZero())
	assert.Equal(t, "agent", meta.CreatedBy)
	assert.Equal(t, "agent", meta.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		want         dto.QueryParams
	}{
		{
			name:  "all parameters",
			query: "?page=2&limit=20&sort_by=name&sort_dir=asc",
			want:  dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "no defaults",
			want: dto.QueryParams{},
		},
		{
			name:         "invalid numbers fall back",
			query:        "?page=first&limit=-5",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:  "limit is capped",
			query: "?limit=5000",
			want:  dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:  "unknown direction is dropped",
			query: "?sort_by=created_at&sort_dir=sideways",
			want:  dto.QueryParams{SortBy: "created_at"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/tour-rooms/"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.want, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		clause    dto.Clause
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality",
			clause:    dto.Eq("tour_rooms", "apartment_id", "apt-1"),
			wantWhere: "tour_rooms.apartment_id = :apartment_id",
			wantArgs:  map[string]any{"apartment_id": "apt-1"},
		},
		{
			name:      "renamed argument",
			clause:    dto.Eq("tour_rooms", "is_starting_room", true).As("current_is_starting_room"),
			wantWhere: "tour_rooms.is_starting_room = :current_is_starting_room",
			wantArgs:  map[string]any{"current_is_starting_room": true},
		},
		{
			name:      "not equal without table",
			clause:    dto.NotEq("", "id", "room-1"),
			wantWhere: "id != :id",
			wantArgs:  map[string]any{"id": "room-1"},
		},
		{
			name:      "in expands every element",
			clause:    dto.In("room_connections", "from_room_id", []string{"living", "kitchen"}),
			wantWhere: "room_connections.from_room_id IN (:from_room_id_0, :from_room_id_1)",
			wantArgs:  map[string]any{"from_room_id_0": "living", "from_room_id_1": "kitchen"},
		},
		{
			name:      "empty in matches nothing",
			clause:    dto.In("room_connections", "from_room_id", []string{}),
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in needs a list",
			clause:    dto.In("room_connections", "from_room_id", "living"),
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			clause:    dto.Filter{Field: "name", Value: "loft", Operator: "like"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.clause.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("nested groups", func(t *testing.T) {
		group := dto.And(
			dto.Eq("tour_rooms", "apartment_id", "apt-1"),
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Eq("tour_rooms", "room_type", "bedroom"),
					dto.Eq("tour_rooms", "is_starting_room", true),
				},
			},
		)

		where, args := group.GetWhereClause()

		assert.Equal(t,
			"(tour_rooms.apartment_id = :apartment_id AND (tour_rooms.room_type = :room_type OR tour_rooms.is_starting_room = :is_starting_room))",
			where)
		assert.Len(t, args, 3)
	})

	t.Run("add appends", func(t *testing.T) {
		group := dto.And(dto.Eq("tour_hotspots", "room_id", "living"))
		group.Add(dto.NotEq("tour_hotspots", "id", "h-1"))

		where, _ := group.GetWhereClause()

		assert.Equal(t, "(tour_hotspots.room_id = :room_id AND tour_hotspots.id != :id)", where)
	})

	t.Run("empty group", func(t *testing.T) {
		where, args := dto.And().GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("missing operator defaults to AND", func(t *testing.T) {
		group := dto.FilterGroup{Filters: []any{dto.Eq("", "a", 1), dto.Eq("", "b", 2)}}

		where, _ := group.GetWhereClause()

		assert.Equal(t, "(a = :a AND b = :b)", where)
	})
}
