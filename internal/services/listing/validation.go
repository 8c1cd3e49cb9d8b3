package listing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rajivgeraev/listings-api/internal/models"
)

// requiredFields are checked in this order; the first missing one is reported
var requiredFields = []string{"title", "price", "location", "description"}

// createListingInput is a validated and trimmed create payload
type createListingInput struct {
	Title       string
	Price       float64
	Location    string
	Description string
}

// parseCreateListing validates a decoded JSON object. Presence is checked for
// all fields before the price is parsed.
func parseCreateListing(payload map[string]any) (createListingInput, error) {
	for _, field := range requiredFields {
		if isBlank(payload[field]) {
			return createListingInput{}, missingField(field)
		}
	}

	price, err := parsePrice(payload["price"])
	if err != nil {
		return createListingInput{}, err
	}

	var input createListingInput
	input.Price = price

	texts := []struct {
		field string
		dst   *string
	}{
		{"title", &input.Title},
		{"location", &input.Location},
		{"description", &input.Description},
	}
	for _, t := range texts {
		value, err := textField(payload, t.field)
		if err != nil {
			return createListingInput{}, err
		}
		*t.dst = value
	}

	return input, nil
}

// isBlank reports whether v is absent or a zero value: null, "", 0, false,
// an empty array or an empty object.
func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0
	case bool:
		return !val
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}

// parsePrice accepts a JSON number or a numeric string and requires a finite
// value greater than zero
func parsePrice(v any) (float64, error) {
	var price float64
	switch val := v.(type) {
	case float64:
		price = val
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, models.NewValidationError("Price must be a valid number")
		}
		price = parsed
	default:
		return 0, models.NewValidationError("Price must be a valid number")
	}

	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, models.NewValidationError("Price must be a valid number")
	}
	if price <= 0 {
		return 0, models.NewValidationError("Price must be a positive number")
	}
	return price, nil
}

func textField(payload map[string]any, field string) (string, error) {
	raw, ok := payload[field].(string)
	if !ok {
		return "", models.NewValidationError(fmt.Sprintf("Field %s must be a string", field))
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return "", missingField(field)
	}
	return value, nil
}

func missingField(field string) error {
	return models.NewValidationError("Missing required field: " + field)
}
