package impl

import (
	"strings"

	"authkit/internal/domain/entity"
	domainerrors "authkit/internal/domain/errors"
	"authkit/internal/domain/repository"

	"github.com/go-viper/mapstructure/v2"
)

var knownProfileFields = func() map[string]struct{} {
	known := make(map[string]struct{}, len(entity.ProfileFields))
	for _, field := range entity.ProfileFields {
		known[field] = struct{}{}
	}

	return known
}()

// checkProfileFields rejects unknown names and values that do not decode into the stored Profile type.
func checkProfileFields(fields repository.Fields) error {
	var unknown []string
	for _, key := range fields.Keys() {
		if _, ok := knownProfileFields[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("unknown profile fields: " + strings.Join(unknown, ", "))
	}

	var mistyped []string
	for _, key := range fields.Keys() {
		if !profileValueFits(key, fields[key]) {
			mistyped = append(mistyped, key)
		}
	}
	if len(mistyped) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("invalid value type for profile fields: " + strings.Join(mistyped, ", "))
	}

	return nil
}

func profileValueFits(key string, value any) bool {
	if value == nil {
		_, nullable := entity.NullableProfileFields[key]

		return nullable
	}

	var target entity.Profile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &target,
	})
	if err != nil {
		return false
	}

	return decoder.Decode(map[string]any{key: value}) == nil
}
