package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/trustbooks/go-trust-ledger/internal/models"
)

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = validator.New()

func init() {
	// register function to get tag name from json tags.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerDecimalType()
	registerNoSpecialCharacters()
	registerNoSpacesAtStartOrEnd()
	registerDate()
	registerDatetime()
	registerDecimalGreaterThan()
	registerMoneyPrecision()
	registerISO8601DateTme()
}

// ValidateStruct returns a *multierror.Error of ErrorValidateResponse, one per failed rule.
// Codes come from models.MapErrors keyed "<field>_<tag>".
func ValidateStruct(toValidate interface{}) error {
	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		var invalidErr *validator.InvalidValidationError
		if errors.As(err, &invalidErr) {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errs = multierror.Append(errs, toErrorResponse(valErr))
			}
		}
	}

	return errs.ErrorOrNil()
}

func toErrorResponse(valErr validator.FieldError) ErrorValidateResponse {
	for _, key := range []string{
		fmt.Sprintf("%s_%s", valErr.Namespace(), valErr.Tag()),
		fmt.Sprintf("%s_%s", valErr.Field(), valErr.Tag()),
	} {
		if data, found := models.MapErrors[key]; found {
			return ErrorValidateResponse{
				Code:    data.Code,
				Field:   valErr.Field(),
				Message: data.ErrorMessage.Error(),
			}
		}
	}

	return ErrorValidateResponse{
		Code:    "UNKNOWN",
		Field:   valErr.Field(),
		Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
	}
}

// registerDecimalType lets tags on models.Decimal fields see the decimal string.
func registerDecimalType() {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if valuer, ok := field.Interface().(models.Decimal); ok {
			return valuer.String()
		}
		return nil
	}, models.Decimal{})
}

func registerDecimalGreaterThan() {
	validate.RegisterValidation("decimalGreaterThan", func(fl validator.FieldLevel) bool {
		data, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		value, err := decimal.NewFromString(data)
		if err != nil {
			return false
		}
		inputUser := models.NewDecimalFromExternal(value)

		parameterValue, err := models.NewDecimal(fl.Param())
		if err != nil {
			return false
		}

		return inputUser.GreaterThan(parameterValue.Decimal)
	})
}

func registerMoneyPrecision() {
	validate.RegisterValidation("moneyPrecision", func(fl validator.FieldLevel) bool {
		data, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		value, err := decimal.NewFromString(data)
		if err != nil {
			return false
		}

		return models.NewDecimalFromExternal(value).HasMinorUnitPrecision()
	})
}

func registerNoSpecialCharacters() {
	validate.RegisterValidation("nospecial", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		// letters, digits and spaces only
		pattern := "^[a-zA-Z0-9 ]*$"
		return regexp.MustCompile(pattern).MatchString(input)
	})
}

func registerNoSpacesAtStartOrEnd() {
	validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}

func registerDate() {
	validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		pattern := `^\d{4}-\d{2}-\d{2}$`
		if !regexp.MustCompile(pattern).MatchString(input) {
			return false
		}
		_, err := time.Parse("2006-01-02", input)
		return err == nil
	})
}

func registerDatetime() {
	validate.RegisterValidation("datetime", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		pattern := `\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`
		return regexp.MustCompile(pattern).MatchString(input)
	})
}

func registerISO8601DateTme() {
	validate.RegisterValidation("iso8601datetime", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		if input != "" {
			_, err := time.Parse(time.RFC3339, input)
			return err == nil
		}

		return true
	})
}
