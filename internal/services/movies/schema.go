package movies

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"

	"moviesapi/proj/internal/lib/validator"

	govalidator "github.com/go-playground/validator/v10"
)

const DefaultRate = 5.0

// MovieInput is a validated movie payload. A nil field was not supplied.
type MovieInput struct {
	Title    *string  `json:"title" validate:"required,min=1"`
	Year     *int     `json:"year" validate:"required,movieyear"`
	Duration *int     `json:"duration" validate:"required,gt=0"`
	Rate     *float64 `json:"rate" validate:"required,gte=0,lte=10"`
	Poster   *string  `json:"poster" validate:"required,url" errorMsg:"Poster must be a valid URL"`
	Genre    []string `json:"genre" validate:"required,min=1,dive,genre"`
}

// Result is returned by both validation entry points. Success is true
// exactly when Error is nil.
type Result struct {
	Success bool
	Data    *MovieInput
	Error   *validator.ValidationError
}

// Schema validates candidate movie objects. It is safe for concurrent use.
type Schema struct {
	validate *govalidator.Validate
	minYear  int
	maxYear  int
}

func NewSchema(minYear, maxYear int) *Schema {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("movieyear", validator.YearRange(minYear, maxYear)); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("genre", validator.ValidateGenre); err != nil {
		panic(err)
	}
	return &Schema{validate: v, minYear: minYear, maxYear: maxYear}
}

// ValidateMovie checks a full movie object. Every field but rate is
// required; rate defaults to DefaultRate.
func (s *Schema) ValidateMovie(obj map[string]json.RawMessage) Result {
	input, present, errs := s.decode(obj)
	if input.Rate == nil && !present["Rate"] {
		rate := DefaultRate
		input.Rate = &rate
	}
	errs.Merge(validator.ValidateStruct(s.validate, input, s.message))
	return newResult(input, errs)
}

// ValidatePartialMovie checks only the fields present in obj. An empty
// object is valid and no defaults are applied.
func (s *Schema) ValidatePartialMovie(obj map[string]json.RawMessage) Result {
	input, present, errs := s.decode(obj)
	fields := make([]string, 0, len(present))
	for f := range present {
		fields = append(fields, f)
	}
	if len(fields) > 0 {
		errs.Merge(validator.ValidateStruct(s.validate, input, s.message, fields...))
	}
	return newResult(input, errs)
}

func newResult(input *MovieInput, errs *validator.ValidationError) Result {
	if errs.HasErrors() {
		return Result{Success: false, Error: errs}
	}
	return Result{Success: true, Data: input}
}

// message overrides the generic validator messages. Fields that failed to
// decode keep their type error, Merge drops their validator errors.
func (s *Schema) message(field string, e govalidator.FieldError) string {
	switch e.Tag() {
	case "movieyear":
		return fmt.Sprintf("Year must be between %d and %d", s.minYear, s.maxYear)
	case "required":
		return requiredMessages[field]
	}
	return ""
}

var requiredMessages = map[string]string{
	"title":    "movie title is required",
	"year":     "Movie year is required",
	"duration": "Movie duration is required",
	"rate":     "Movie rate is required",
	"poster":   "Movie poster is required",
	"genre":    "Movie genre is required",
}

var typeMessages = map[string]string{
	"title":    "Movie title must be a string",
	"year":     "Movie year must be an integer",
	"duration": "Movie duration must be an integer",
	"rate":     "Movie rate must be a number",
	"poster":   "Movie poster must be a string",
	"genre":    "Movie genre must be an array of enum Genre",
}

// decode copies every known key of obj into a MovieInput. Unknown keys are
// dropped. present lists the struct fields of the keys that were supplied.
func (s *Schema) decode(obj map[string]json.RawMessage) (*MovieInput, map[string]bool, *validator.ValidationError) {
	input := &MovieInput{}
	present := make(map[string]bool)
	errs := validator.NewValidationError()

	t := reflect.TypeOf(*input)
	v := reflect.ValueOf(input).Elem()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := validator.FieldName(input, field.Name)
		raw, ok := obj[name]
		if !ok {
			continue
		}
		present[field.Name] = true
		if err := decodeField(raw, v.Field(i)); err != nil {
			msg := typeMessages[name]
			if errors.Is(err, errIntRange) {
				msg = fmt.Sprintf("Movie %s is out of range", name)
			}
			errs.Add(name, msg)
		}
	}
	return input, present, errs
}

var (
	errNull     = errors.New("null value")
	errIntRange = errors.New("integer out of range")
)

func decodeField(raw json.RawMessage, dst reflect.Value) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return errNull
	}
	switch dst.Interface().(type) {
	case *int:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return err
		}
		if f != math.Trunc(f) {
			return fmt.Errorf("%v is not an integer", f)
		}
		if f < math.MinInt || f >= -math.MinInt {
			return errIntRange
		}
		n := int(f)
		dst.Set(reflect.ValueOf(&n))
		return nil
	default:
		ptr := reflect.New(dst.Type())
		if err := json.Unmarshal(raw, ptr.Interface()); err != nil {
			return err
		}
		dst.Set(ptr.Elem())
		return nil
	}
}
