package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field formats carried over from the previous system. Note most patterns
// are anchored only at the start: trailing garbage is tolerated, e.g.
// "12345678C1" is an accepted nif. Tightening them would reject records
// that already exist in production.
var (
	telephoneRe  = regexp.MustCompile(`^(\+34|0034|34)?[ -]*(6|7)[ -]*([0-9][ -]*){8}`)
	nifRe        = regexp.MustCompile(`^[0-9]{8}[A-Za-z]`)
	cifRe        = regexp.MustCompile(`^[A-Za-z][0-9]{8}`)
	dimensionsRe = regexp.MustCompile(`^\d+x\d+x\d+`)
	emailRe      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	regexRule := func(re *regexp.Regexp) validator.Func {
		return func(fl validator.FieldLevel) bool { return re.MatchString(fl.Field().String()) }
	}
	_ = v.RegisterValidation("telephone", regexRule(telephoneRe))
	_ = v.RegisterValidation("nif", regexRule(nifRe))
	_ = v.RegisterValidation("cif", regexRule(cifRe))
	_ = v.RegisterValidation("dimensions", regexRule(dimensionsRe))
	_ = v.RegisterValidation("emailfmt", regexRule(emailRe))
	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "male", "female", "other":
			return true
		}
		return false
	})
	return v
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Path `%s` is required.", fe.Field())
	case "telephone":
		return "Telephone number format is not valid"
	case "nif":
		return "Invalid Nif"
	case "cif":
		return "Invalid Cif"
	case "alphanum":
		return "Only Alphanumeric characters are allowed"
	case "dimensions":
		return "Dimensions format not valid"
	case "emailfmt":
		return "Email format is not valid"
	case "gender":
		return fmt.Sprintf("`%v` is not a valid enum value for path `gender`", fe.Value())
	}
	return "Invalid value"
}

func validateEntity(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) {
		return err
	}
	ve := &ValidationError{Entity: entity}
	for _, fe := range ferrs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Reason: reasonFor(fe)})
	}
	return ve
}
