package shared

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"encoding/json"
	"fmt"
	"luxhome/shared/cache"
	"luxhome/shared/constant"
	"luxhome/shared/dto"
	"luxhome/shared/timezone"
	"maps"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt(value string) (int, error) {
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("failed to convert string to int: %w", err)
	}

	return intValue, nil
}

func ConvertStringToFloat(value string) (float64, error) {
	floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to convert string to float: %w", err)
	}

	return floatValue, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.And(dto.Eq(table, fieldID, id))
}

// FilterByFields builds an AND group of equality filters in key order, skipping empty values.
func FilterByFields(table string, fields map[string]any) dto.FilterGroup {
	group := dto.And()

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		value := fields[key]
		if value == nil || value == constant.Empty {
			continue
		}

		group.Add(dto.Eq(table, key, value))
	}

	return group
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from list parameters and filters.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	raw, err := json.Marshal(struct {
		Params dto.QueryParams
		Where  string
		Args   map[string]any
	}{params, where, args})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal cache key query")

		return BuildCacheKey(prefix, constant.Asterix)
	}

	sum := sha1.Sum(raw) //nolint:gosec

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key under prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, BuildCacheKey(prefix, constant.Asterix)); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// Slugify lowercases value and joins its alphanumeric runs with dashes.
func Slugify(value string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "-")

	return strings.Trim(slug, "-")
}

// AbsoluteURL resolves ref against base unless ref already carries a scheme.
func AbsoluteURL(base, ref string) string {
	if ref == constant.Empty {
		return ref
	}

	refURL, err := url.Parse(ref)
	if err != nil || refURL.IsAbs() || base == constant.Empty {
		return ref
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}

	return baseURL.ResolveReference(refURL).String()
}
