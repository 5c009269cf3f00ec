package matrix

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Rating accepts a 1-5 fit rating from JSON as either a number or a numeric
// string, mirroring the coercion the form's script applies before preview.
type Rating struct {
	Value   float64
	Present bool
	Numeric bool
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	r.Present = true

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, parseErr := strconv.ParseFloat(strings.TrimSpace(asString), 64)
		if parseErr != nil {
			return nil
		}
		r.Value = parsed
		r.Numeric = true
		return nil
	}

	var asNumber float64
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return nil
	}
	r.Value = asNumber
	r.Numeric = true
	return nil
}

// CreateInput is the request body of the create operation. TimeCode and
// TimeLabel are decoded so client-supplied values can be ignored explicitly
// rather than silently.
type CreateInput struct {
	CustomerName       string `json:"customerName"`
	CustomerID         string `json:"customerId"`
	Category           string `json:"category"`
	Solution           string `json:"solution"`
	Vendor             string `json:"vendor"`
	Notes              string `json:"notes"`
	TechnicalFit       Rating `json:"technicalFit"`
	FunctionalFit      Rating `json:"functionalFit"`
	DateImplemented    string `json:"dateImplemented"`
	ContractExpiration string `json:"contractExpiration"`
	TimeCode           string `json:"timeCode"`
	TimeLabel          string `json:"timeLabel"`
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "validation failed"
	}
	return e.Message
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ParseCreate validates a create request and produces the record to persist:
// strings trimmed, ratings range-checked, quadrant derived, both timestamps
// set to now. The store fills in the identifier.
func ParseCreate(input CreateInput, now time.Time) (Record, error) {
	technicalFit, err := parseRating("technicalFit", input.TechnicalFit)
	if err != nil {
		return Record{}, err
	}
	functionalFit, err := parseRating("functionalFit", input.FunctionalFit)
	if err != nil {
		return Record{}, err
	}

	customerName := strings.TrimSpace(input.CustomerName)
	category := strings.TrimSpace(input.Category)
	solution := strings.TrimSpace(input.Solution)
	if customerName == "" || category == "" || solution == "" {
		return Record{}, validationErrorf("customerName, category, and solution are required")
	}
	if !IsValidCategory(category) {
		return Record{}, validationErrorf("category %q is not one of the configured categories", category)
	}

	quadrant := Classify(technicalFit, functionalFit)
	createdAt := now.UTC().Format(time.RFC3339)

	return Record{
		CustomerName:       customerName,
		CustomerID:         optionalString(input.CustomerID),
		Category:           category,
		Solution:           solution,
		Vendor:             strings.TrimSpace(input.Vendor),
		Notes:              strings.TrimSpace(input.Notes),
		TechnicalFit:       technicalFit,
		FunctionalFit:      functionalFit,
		TimeCode:           quadrant.Code,
		TimeLabel:          quadrant.Label,
		DateImplemented:    optionalString(input.DateImplemented),
		ContractExpiration: optionalString(input.ContractExpiration),
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
	}, nil
}

func parseRating(field string, r Rating) (int, error) {
	if !r.Present || !r.Numeric {
		return 0, validationErrorf("%s must be a number between 1 and 5", field)
	}
	if r.Value < 1 || r.Value > 5 || r.Value != math.Trunc(r.Value) {
		return 0, validationErrorf("%s must be a number between 1 and 5", field)
	}
	return int(r.Value), nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
