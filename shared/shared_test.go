package shared_test

import (
	"testing"
	"time"

	"luxhome/shared"
	"luxhome/shared/constant"
	"luxhome/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))

	starting := shared.ConvertStringToBool("true")
	require.NotNil(t, starting)
	assert.True(t, *starting)

	hidden := shared.ConvertStringToBool("0")
	require.NotNil(t, hidden)
	assert.False(t, *hidden)
}

func TestConvertStringToNumbers(t *testing.T) {
	order, err := shared.ConvertStringToInt(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, order)

	_, err = shared.ConvertStringToInt("first")
	assert.Error(t, err)

	yaw, err := shared.ConvertStringToFloat("182.5")
	require.NoError(t, err)
	assert.Equal(t, 182.5, yaw)

	_, err = shared.ConvertStringToFloat("north")
	assert.Error(t, err)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "no rows", total: 0, limit: 10, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "no limit", total: 21, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomPatch struct {
		Name        string   `db:"name"`
		RoomType    string   `db:"room_type"`
		Order       *int     `db:"sort_order"`
		InitialYaw  *float64 `db:"initial_yaw"`
		Description *string  `db:"description"`
		Upload      string
		Internal    string `db:"-"`
	}

	order := 0
	empty := ""

	fields := shared.TransformFields(roomPatch{
		Name:        "Master Bedroom",
		Order:       &order,
		Description: &empty,
		Upload:      "ignored",
		Internal:    "ignored",
	}, "user-1")

	assert.Equal(t, "Master Bedroom", fields["name"])
	assert.Equal(t, &order, fields["sort_order"], "pointer to zero is an explicit update")
	assert.Equal(t, &empty, fields["description"])
	assert.NotContains(t, fields, "room_type")
	assert.NotContains(t, fields, "initial_yaw")
	assert.NotContains(t, fields, "-")
	assert.Equal(t, "user-1", fields[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, fields[constant.FieldModifiedAt])
	assert.Len(t, fields, 5)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("room-1", "id", "tour_rooms")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(tour_rooms.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "room-1"}, args)
}

func TestFilterByFields(t *testing.T) {
	group := shared.FilterByFields("tour_rooms", map[string]any{
		"room_type":    "",
		"apartment_id": "apt-1",
		"name":         nil,
		"is_active":    true,
	})

	where, args := group.GetWhereClause()

	assert.Equal(t, "(tour_rooms.apartment_id = :apartment_id AND tour_rooms.is_active = :is_active)", where)
	assert.Equal(t, map[string]any{"apartment_id": "apt-1", "is_active": true}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "tour:get:apt-1", shared.BuildCacheKey(constant.CacheTourPrefix, "apt-1"))
	assert.Equal(t, "room:gets", shared.BuildCacheKey("room:gets"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByID("apt-1", "apartment_id", "tour_rooms")

	first := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	otherPage := shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	otherApartment := shared.BuildCacheKeyWithQuery("room:gets", params, shared.FilterByID("apt-2", "apartment_id", "tour_rooms"))

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, otherPage)
	assert.NotEqual(t, first, otherApartment)
	assert.Regexp(t, `^room:gets:[0-9a-f]{40}$`, first)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Sea View Loft":          "sea-view-loft",
		"  Penthouse #12 (Top) ": "penthouse-12-top",
		"---":                    "",
		"Already-slugged":        "already-slugged",
	}

	for input, want := range tests {
		assert.Equal(t, want, shared.Slugify(input), input)
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{"absolute ref untouched", "https://api.luxhome.test", "https://cdn.luxhome.test/a.jpg", "https://cdn.luxhome.test/a.jpg"},
		{"relative ref resolved", "https://api.luxhome.test", "/media/virtual_tour/panoramas/a.jpg", "https://api.luxhome.test/media/virtual_tour/panoramas/a.jpg"},
		{"empty base keeps ref", "", "/media/a.jpg", "/media/a.jpg"},
		{"empty ref", "https://api.luxhome.test", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.AbsoluteURL(tt.base, tt.ref))
		})
	}
}
