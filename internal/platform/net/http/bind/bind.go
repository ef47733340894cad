// Package bind decodes and validates request payloads and path ids
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	perr "qanda/internal/platform/errors"
	"qanda/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// NumericIDTag validates a decimal id of at most 18 digits
const NumericIDTag = "numeric_id"

var numericID = regexp.MustCompile(`^[0-9]{1,18}$`)

// ValidatorSvc holds the validator and its english translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Get returns the validator singleton, building it on first use
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		_ = v.RegisterValidation(NumericIDTag, func(fl validator.FieldLevel) bool {
			return IsNumericID(fl.Field().String())
		})

		for tag, text := range map[string]string{
			"required":   "{0} missing",
			"lt":         "{0} cannot exceed {1} characters",
			"max":        "{0} must be at most {1}",
			"min":        "{0} must be at least {1}",
			NumericIDTag: "{0} must be numeric",
		} {
			registerShort(v, trans, tag, text)
		}

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

func jsonName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "-" || tag == "" {
		return fld.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

// registerShort replaces the translation of tag with text; {0} is the field, {1} the param
func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// IsNumericID reports whether s is a decimal id of 1 to 18 digits
func IsNumericID(s string) bool { return numericID.MatchString(s) }

// ParseID validates a path id and converts it, without touching any store
func ParseID(raw, name string) (int64, error) {
	if !IsNumericID(raw) {
		return 0, perr.WithField(perr.Validationf("%s parameter must be numeric", name), name)
	}
	return strconv.ParseInt(raw, 10, 64)
}

// JSONOptions controls body decoding
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes the request body into T and validates it
// Decode failures are JSON errors; tag failures are validation errors naming the field
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Debug().Err(err).Msg("failed to close request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = io.LimitReader(r.Body, o.MaxBytes)
	}
	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Struct validates v and returns the first failure as a validation error
// The field is the json path below the root type, e.g. questions[3].answers[0].user.name
func Struct(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Internalf("validation error")
	}
	path, msg := FieldAndMessage(err)
	return perr.WithField(perr.Validationf("%s", msg), path)
}

// FieldAndMessage returns the path of the first failing field and its translated message
func FieldAndMessage(err error) (path, message string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		if err == nil {
			return "", ""
		}
		return "", err.Error()
	}
	fe := verrs[0]
	return trimRoot(fe.Namespace()), fe.Translate(Get().Translator)
}

// trimRoot drops the leading struct name from a validator namespace
func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// PathError prefixes a validation error message with its field path
func PathError(err error) error {
	e, ok := perr.As(err)
	if !ok || e.Field() == "" {
		return err
	}
	return perr.WithField(perr.Validationf("%s: %s", e.Field(), e.Message()), e.Field())
}
