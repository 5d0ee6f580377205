package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"moviesapi/proj/internal/domain/fields"

	govalidator "github.com/go-playground/validator/v10"
)

func structType(obj any) reflect.Type {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// baseField strips the index suffix that dive rules add, e.g. "Genre[1]".
func baseField(name string) string {
	if i := strings.IndexByte(name, '['); i != -1 {
		return name[:i]
	}
	return name
}

func getFieldName(obj any, origFieldName string) (fieldName string) {
	origFieldName = baseField(origFieldName)
	t := structType(obj)
	field, found := t.FieldByName(origFieldName)
	if !found {
		panic(fmt.Sprintf("Field %s not found in type %s", origFieldName, t.Name()))
	}
	fieldName = strings.ToLower(origFieldName)
	if tag := field.Tag.Get("json"); tag != "" && tag != "-" {
		if jsonName := strings.Split(tag, ",")[0]; jsonName != "" {
			fieldName = jsonName
		}
	}
	return
}

// FieldName returns the name a struct field is known by in request bodies.
func FieldName(obj any, structField string) string {
	return getFieldName(obj, structField)
}

// fieldPath returns the request body path of a reported struct field,
// keeping the index that dive rules add: "Genre[1]" becomes "genre[1]".
func fieldPath(obj any, structField string) string {
	path := getFieldName(obj, structField)
	if i := strings.IndexByte(structField, '['); i != -1 {
		path += structField[i:]
	}
	return path
}

// MessageFunc replaces the default message of a field error. field is the
// request body name of the field; returning "" keeps the default.
type MessageFunc func(field string, err govalidator.FieldError) string

// ProcessValidationErrors reports every field error, one entry per
// violation and per invalid list entry.
func ProcessValidationErrors(obj any, errs govalidator.ValidationErrors, custom MessageFunc) *ValidationError {
	processedErrors := NewValidationError()
	for _, e := range errs {
		var msg string
		if custom != nil {
			msg = custom(getFieldName(obj, e.StructField()), e)
		}
		if msg == "" {
			msg = GetErrorMsgForField(obj, e)
		}
		processedErrors.Add(fieldPath(obj, e.StructField()), msg)
	}
	return processedErrors
}

// ValidateStruct validates obj, or only the struct fields named in only
// when any are given. It returns nil when obj is valid.
func ValidateStruct(validator *govalidator.Validate, obj any, custom MessageFunc, only ...string) *ValidationError {
	var err error
	if len(only) > 0 {
		err = validator.StructPartial(obj, only...)
	} else {
		err = validator.Struct(obj)
	}
	if err == nil {
		return nil
	}
	var validationErrs govalidator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		panic(err)
	}
	return ProcessValidationErrors(obj, validationErrs, custom)
}

func GetErrorMsgForField(obj any, err govalidator.FieldError) (errorMsg string) {
	t := structType(obj)
	field, found := t.FieldByName(baseField(err.StructField()))
	if !found {
		panic(fmt.Sprintf("Field %s not found in type %s", err.StructField(), t.Name()))
	}
	if err.Tag() != "required" {
		errorMsg = field.Tag.Get("errorMsg")
	}
	if errorMsg == "" {
		switch err.Tag() {
		case "required":
			errorMsg = "This field is required"
		case "max":
			if isCollection(err.Kind()) {
				errorMsg = fmt.Sprintf("Should contain at most %s items", err.Param())
			} else {
				errorMsg = fmt.Sprintf("The maximum value is %s", err.Param())
			}
		case "min":
			switch {
			case err.Kind() == reflect.String:
				errorMsg = fmt.Sprintf("Should be at least %s characters long", err.Param())
			case isCollection(err.Kind()):
				errorMsg = fmt.Sprintf("Should contain at least %s items", err.Param())
			default:
				errorMsg = fmt.Sprintf("The minimum value is %s", err.Param())
			}
		case "gte":
			errorMsg = fmt.Sprintf("Value should be greater than or equal to %s", err.Param())
		case "lte":
			errorMsg = fmt.Sprintf("Value should be less than or equal to %s", err.Param())
		case "lt":
			errorMsg = fmt.Sprintf("Value should be less than %s", err.Param())
		case "gt":
			errorMsg = fmt.Sprintf("Value should be greater than %s", err.Param())
		case "eqfield", "eq":
			errorMsg = fmt.Sprintf("Value should be equal to %s", err.Param())
		case "nefield", "ne":
			errorMsg = fmt.Sprintf("Value should not be equal to %s", err.Param())
		case "oneof":
			errorMsg = fmt.Sprintf("Value should be one of %s", err.Param())
		case "len":
			errorMsg = fmt.Sprintf("Length should be equal to %s", err.Param())
		case "url":
			errorMsg = "Value must be a valid URL"
		case "genre":
			errorMsg = fmt.Sprintf("Value should be one of %s", genreNames())
		case "movieyear":
			errorMsg = "Value is out of the accepted year range"
		default:
			errorMsg = "This field is invalid"
		}
	}
	return
}

func isCollection(kind reflect.Kind) bool {
	return kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map
}

func genreNames() string {
	names := make([]string, 0, len(fields.Genres))
	for _, g := range fields.Genres {
		names = append(names, g.String())
	}
	return strings.Join(names, " ")
}

// CUSTOM VALIDATORS

func ValidateGenre(fl govalidator.FieldLevel) bool {
	return fields.Genre(fl.Field().String()).IsValid()
}

// YearRange builds a validator accepting integers in [min, max].
func YearRange(min, max int) govalidator.Func {
	return func(fl govalidator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= int64(min) && year <= int64(max)
	}
}
