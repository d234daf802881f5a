package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/lendq/loan-intake/internal/domain"
	"github.com/lendq/loan-intake/pkg/apperr"
)

// MsgAtLeastOneField is the request-level message for an empty update.
const MsgAtLeastOneField = "At least one field must be provided for update"

// Validator wraps go-playground/validator and turns its output into the
// application's validation error, carrying every field violation rather than
// failing on the first.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so violations match the wire shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Let numeric comparison tags (gt, gte, lte) apply to decimal fields.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterStructValidation(updateCustomerStructLevel, domain.UpdateCustomerRequest{})

	return &Validator{v: v}
}

func updateCustomerStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(domain.UpdateCustomerRequest)
	if req.FullName == nil && req.Email == nil {
		sl.ReportError(req.FullName, "request", "FullName", "atleastone", "")
	}
}

// Struct validates s and returns nil or a validation error listing every
// violated field.
func (va *Validator) Struct(s interface{}) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Unexpected(err)
	}

	violations := make([]apperr.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, apperr.FieldViolation{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return apperr.Validation(violations...)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid4":
		return "must be a valid UUID"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "alpha":
		return "must contain only letters"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "atleastone":
		return MsgAtLeastOneField
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
