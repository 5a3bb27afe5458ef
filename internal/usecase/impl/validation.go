package impl

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
)

// requireCaller returns the caller's uid or Unauthenticated when no identity is present.
func requireCaller(caller *entity.Caller) (string, error) {
	if caller == nil || strings.TrimSpace(caller.UID) == "" {
		return "", domainerrors.ErrUnauthenticated
	}

	return caller.UID, nil
}

// requiredString returns the trimmed value or InvalidArgument naming the field.
func requiredString(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", domainerrors.InvalidArgument(fmt.Sprintf("%s is required.", field))
	}

	return trimmed, nil
}

// documentID returns the trimmed value when it can name a single document: not "." or "..",
// no "/" and not of the reserved __name__ form.
func documentID(value, field string) (string, error) {
	id, err := requiredString(value, field)
	if err != nil {
		return "", err
	}

	reserved := len(id) > 4 && strings.HasPrefix(id, "__") && strings.HasSuffix(id, "__")
	if strings.Contains(id, "/") || id == "." || id == ".." || reserved {
		return "", domainerrors.InvalidArgument(fmt.Sprintf("%s is not a valid id.", field))
	}

	return id, nil
}

// optionalString returns the trimmed value, empty when absent.
func optionalString(value string) string {
	return strings.TrimSpace(value)
}

// positiveInt coerces a JSON number or numeric string into an integer of at least 1.
// Fractions are truncated.
func positiveInt(value any, field string) (int, error) {
	invalid := domainerrors.InvalidArgument(fmt.Sprintf("%s must be a positive number", field))

	var f float64
	switch v := value.(type) {
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, invalid
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, invalid
		}
		f = parsed
	default:
		return 0, invalid
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid
	}
	n := math.Trunc(f)
	if n < 1 || n > math.MaxInt32 {
		return 0, invalid
	}

	return int(n), nil
}

// requiredBloodType validates a blood group that is about to be stored.
func requiredBloodType(value string) (entity.BloodType, error) {
	raw, err := requiredString(value, "bloodType")
	if err != nil {
		return "", err
	}

	bloodType, ok := entity.ParseBloodType(raw)
	if !ok {
		return "", domainerrors.ErrInvalidBloodType
	}

	return bloodType, nil
}

// filterBloodType normalizes an optional blood group filter. Unknown groups are kept as given.
func filterBloodType(value string) entity.BloodType {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if bloodType, ok := entity.ParseBloodType(trimmed); ok {
		return bloodType
	}

	return entity.BloodType(trimmed)
}
