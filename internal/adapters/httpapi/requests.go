package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// saveLocationRequest uses pointer fields so "absent" and "zero" stay
// distinguishable; the declarative validate tags carry the field rules.
type saveLocationRequest struct {
	Tag       *string  `json:"tag" validate:"required,min=1"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	PlaceID   *string  `json:"placeId" validate:"required,min=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the wire field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var saveLocationRules = []struct {
	field           string
	requiredMessage string
	typeMessage     string
}{
	{"tag", "Tag is required", "Tag is required"},
	{"latitude", "Latitude is required", "Latitude must be a number"},
	{"longitude", "Longitude is required", "Longitude must be a number"},
	{"placeId", "Place ID is required", "Place ID is required"},
}

// decodeSaveLocationRequest decodes the body one field at a time so every
// violated field is reported, not only the first one a strict decoder would
// trip on. A non-empty error list means the request must be rejected before
// any storage call.
func decodeSaveLocationRequest(body io.Reader) (saveLocationRequest, []fieldError) {
	var req saveLocationRequest

	raw := map[string]json.RawMessage{}
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		raw = nil // unparseable body: every field rule below reports
	}

	typeErrs := map[string]bool{}
	unmarshalField := func(name string, dst any) {
		r, ok := raw[name]
		if !ok {
			return
		}
		if err := json.Unmarshal(r, dst); err != nil {
			typeErrs[name] = true
		}
	}
	unmarshalField("tag", &req.Tag)
	unmarshalField("latitude", &req.Latitude)
	unmarshalField("longitude", &req.Longitude)
	unmarshalField("placeId", &req.PlaceID)

	ruleErrs := map[string]bool{}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				ruleErrs[fe.Field()] = true
			}
		}
	}

	var out []fieldError
	for _, rule := range saveLocationRules {
		switch {
		case typeErrs[rule.field]:
			out = append(out, fieldError{Field: rule.field, Message: rule.typeMessage})
		case ruleErrs[rule.field]:
			out = append(out, fieldError{Field: rule.field, Message: rule.requiredMessage})
		}
	}
	return req, out
}
