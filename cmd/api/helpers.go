package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1_048_576 // 1MB

// extractIDParam returns the {id} path segment as sent. Ids are matched
// exactly, so it is not trimmed or otherwise normalized.
func extractIDParam(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// readJSONObject decodes the request body into a JSON object. A missing
// body is read as an empty object.
func (app *Application) readJSONObject(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, error) {
	src := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer io.Copy(io.Discard, src)
	dec := json.NewDecoder(src)
	obj := make(map[string]json.RawMessage)
	err := dec.Decode(&obj)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return obj, nil
		}
		return nil, handleJsonErr(err)
	}
	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return nil, errors.New("body must only contain a single JSON value")
	}
	if obj == nil {
		return nil, errors.New("body must be a JSON object")
	}
	return obj, nil
}

func handleJsonErr(err error) error {
	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	var invalidUnmarshalError *json.InvalidUnmarshalError
	var maxBytesError *http.MaxBytesError
	switch {
	case errors.As(err, &syntaxError):
		return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("body contains badly-formed JSON")

	case errors.As(err, &unmarshalTypeError):
		if unmarshalTypeError.Field != "" {
			return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
		}
		return errors.New("body must be a JSON object")

	case errors.As(err, &maxBytesError):
		return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)

	case errors.As(err, &invalidUnmarshalError):
		panic(err)
	default:
		return err
	}
}
