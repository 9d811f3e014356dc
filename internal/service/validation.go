package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "balloon-flights-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Field messages reported in ValidationErrors
const (
	MsgRequired         = "required"
	MsgDoesNotExist     = "does not exist"
	MsgInvalidReference = "invalid reference"
	MsgTooLong          = "too long"
	MsgOutOfRange       = "out of range"
	MsgInvalid          = "invalid value"
)

// collectStructErrors runs struct validation on req and records one message per
// failing field, keyed by the field's json name. It returns a non-validation
// error only when req itself cannot be validated.
func collectStructErrors(v *validator.Validate, req interface{}, errs apperrors.ValidationErrors) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate request: %w", err)
	}

	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for _, fe := range fieldErrs {
		errs.Add(jsonName(t, fe.StructField()), messageFor(fe))
	}
	return nil
}

func jsonName(t reflect.Type, field string) string {
	if sf, ok := t.FieldByName(field); ok {
		if name := strings.Split(sf.Tag.Get("json"), ",")[0]; name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(field)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "max":
		return MsgTooLong
	case "gt", "gte", "lt", "lte", "min":
		return MsgOutOfRange
	default:
		return MsgInvalid
	}
}

// resolveRef parses raw as an id and checks it exists. Failures are recorded on
// field; an already failing field is left alone. The returned error is set only
// for lookup failures that are not the caller's fault.
func resolveRef(errs apperrors.ValidationErrors, field, raw string, exists func(uuid.UUID) (bool, error)) (uuid.UUID, error) {
	if errs.Has(field) {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		errs.Add(field, MsgInvalidReference)
		return uuid.Nil, nil
	}

	ok, err := exists(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve %s: %w", field, err)
	}
	if !ok {
		errs.Add(field, MsgDoesNotExist)
		return uuid.Nil, nil
	}
	return id, nil
}
