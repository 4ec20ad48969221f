package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
	"github.com/go-playground/validator/v10"
)

const (
	maxBodyBytes      = 1 << 20
	msgInvalidBody    = "Invalid request body."
	msgBodyTooLarge   = "Request body is too large."
	msgValidationFail = "Invalid request: %s."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeJSONBody decodes and validates a JSON request body. Unknown fields are
// ignored because the frontend posts whole objects. An empty body decodes to
// the zero value so optional fields behave like the original form posts.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()

	limited := &io.LimitedReader{R: r.Body, N: maxBodyBytes + 1}
	if err := json.NewDecoder(limited).Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return decodeError(err)
	}
	if limited.N <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, msgBodyTooLarge)
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func decodeError(err error) *pkgerrors.Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf(msgValidationFail, fmt.Sprintf("'%s' must be a %s", typeErr.Field, typeErr.Type.Kind()))).
			WithDetails(map[string]string{typeErr.Field: "has the wrong type"})
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, msgInvalidBody).WithDetails(map[string]any{"error": err.Error()})
}

// formatValidationErrors names the first offending field in the message and
// lists every violation in details.
func formatValidationErrors(err error) *pkgerrors.Error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, msgInvalidBody)
	}
	details := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		details[fieldErr.Field()] = validationMessage(fieldErr)
	}
	first := errs[0]
	msg := fmt.Sprintf(msgValidationFail, fmt.Sprintf("'%s' %s", first.Field(), validationMessage(first)))
	return pkgerrors.New(pkgerrors.CodeValidation, msg).WithDetails(details)
}

func validationMessage(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("must be at most %s%s", fe.Param(), unit)
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}
	return "is invalid"
}
