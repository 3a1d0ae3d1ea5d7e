package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/kitchen-api/internal/api/shared"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// MessageProvider lets a request type replace default rule messages.
// Keys are "<field>.<tag>", e.g. "name.min"; "<field>.type" covers decode
// failures such as a string where a number belongs.
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// Validator decodes and validates request sections.
type Validator struct {
	validate *validator.Validate
	form     *form.Decoder
	logger   *slog.Logger
}

// NewValidator creates a Validator with the "price" rule registered.
func NewValidator(log *slog.Logger) *Validator {
	if log == nil {
		log = slog.Default()
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	if err := v.RegisterValidation("price", validPrice); err != nil {
		panic(err)
	}
	return &Validator{
		validate: v,
		form:     form.NewDecoder(),
		logger:   log.With(slog.String("component", "validator")),
	}
}

// RegisterStructRule adds a struct-level rule for the given types.
func (v *Validator) RegisterStructRule(fn validator.StructLevelFunc, types ...any) {
	v.validate.RegisterStructValidation(fn, types...)
}

// ValidateBody decodes the JSON body into T, which must be a struct. Each
// field decodes on its own so one mistyped field does not hide the rest.
// Unknown fields are dropped and an empty body validates as T's zero value.
func ValidateBody[T any](v *Validator) func(http.Handler) http.Handler {
	return gate[T](v, v.decodeJSON)
}

// ValidateQuery decodes the query string into T.
func ValidateQuery[T any](v *Validator) func(http.Handler) http.Handler {
	return gate[T](v, func(r *http.Request, dst any) ([]shared.FieldError, bool) {
		return v.decodeValues(r.URL.Query(), dst)
	})
}

// ValidateParams decodes the chi route parameters into T.
func ValidateParams[T any](v *Validator) func(http.Handler) http.Handler {
	return gate[T](v, func(r *http.Request, dst any) ([]shared.FieldError, bool) {
		return v.decodeValues(routeParams(r), dst)
	})
}

// decodeFunc fills dst and reports the fields that could not be decoded.
// ok is false when the request section is unusable as a whole.
type decodeFunc func(r *http.Request, dst any) (errs []shared.FieldError, ok bool)

func gate[T any](v *Validator, decode decodeFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var target T
			errs, ok := decode(r, &target)
			if ok {
				errs = mergeFieldErrors(&target, errs, v.check(&target))
			}
			if len(errs) > 0 {
				shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation failed", nil,
					shared.WithDetail(errs))
				return
			}
			next.ServeHTTP(w, r.WithContext(shared.WithValidated(r.Context(), target)))
		})
	}
}

func (v *Validator) decodeJSON(r *http.Request, dst any) ([]shared.FieldError, bool) {
	invalid := []shared.FieldError{{Field: "body", Message: "Request body must be valid JSON"}}
	if r.Body == nil {
		return nil, true
	}
	var raw map[string]json.RawMessage
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&raw)
	if errors.Is(err, io.EOF) {
		return nil, true
	}
	if err != nil {
		return invalid, false
	}

	rv := reflect.ValueOf(dst).Elem()
	if rv.Kind() != reflect.Struct {
		v.logger.Error("body target is not a struct", slog.String("type", rv.Type().String()))
		return invalid, false
	}
	rt := rv.Type()

	var out []shared.FieldError
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := fieldName(sf)
		if !sf.IsExported() || name == "" {
			continue
		}
		msg, found := jsonMember(raw, name)
		if !found {
			continue
		}
		if err := json.Unmarshal(msg, rv.Field(i).Addr().Interface()); err != nil {
			out = append(out, shared.FieldError{
				Field:   name,
				Message: messageFor(dst, name, "type", fmt.Sprintf("%q must be a %s", name, jsonKind(sf.Type))),
			})
		}
	}
	return out, true
}

// jsonMember looks a key up the way encoding/json matches struct fields:
// exact first, then case-insensitively.
func jsonMember(raw map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if msg, ok := raw[name]; ok {
		return msg, true
	}
	for key, msg := range raw {
		if strings.EqualFold(key, name) {
			return msg, true
		}
	}
	return nil, false
}

func (v *Validator) decodeValues(values url.Values, dst any) ([]shared.FieldError, bool) {
	err := v.form.Decode(dst, values)
	if err == nil {
		return nil, true
	}

	var decodeErrs form.DecodeErrors
	if !errors.As(err, &decodeErrs) {
		v.logger.Debug("form decode failed", slog.String("error", err.Error()))
		return []shared.FieldError{{Field: "query", Message: "Request parameters are invalid"}}, false
	}

	out := make([]shared.FieldError, 0, len(decodeErrs))
	for field := range decodeErrs {
		out = append(out, shared.FieldError{
			Field:   field,
			Message: messageFor(dst, field, "type", fmt.Sprintf("%q is invalid", field)),
		})
	}
	return out, true
}

// mergeFieldErrors adds rule violations to decode failures. A field that
// failed to decode keeps only its decode error, and struct-level rules are
// skipped when any field failed since a mistyped field still counts as sent.
// The result follows the declaration order of dst's fields.
func mergeFieldErrors(dst any, decoded, checked []shared.FieldError) []shared.FieldError {
	failed := make(map[string]bool, len(decoded))
	for _, fe := range decoded {
		failed[fe.Field] = true
	}
	out := append([]shared.FieldError(nil), decoded...)
	for _, fe := range checked {
		if failed[fe.Field] || (fe.Field == "" && len(decoded) > 0) {
			continue
		}
		out = append(out, fe)
	}

	pos := fieldPositions(dst)
	rank := func(field string) int {
		if i, ok := pos[field]; ok {
			return i
		}
		return len(pos)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i].Field), rank(out[j].Field)
		if ri != rj {
			return ri < rj
		}
		return out[i].Field < out[j].Field
	})
	return out
}

func fieldPositions(dst any) map[string]int {
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	pos := map[string]int{}
	if t == nil || t.Kind() != reflect.Struct {
		return pos
	}
	for i := 0; i < t.NumField(); i++ {
		pos[fieldName(t.Field(i))] = i
	}
	return pos
}

func (v *Validator) check(dst any) []shared.FieldError {
	err := v.validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		v.logger.Error("validation could not run", slog.String("error", err.Error()))
		return []shared.FieldError{{Field: "", Message: "Request could not be validated"}}
	}

	out := make([]shared.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		out = append(out, shared.FieldError{
			Field:   field,
			Message: messageFor(dst, field, fe.Tag(), defaultMessage(field, fe)),
		})
	}
	return out
}

func messageFor(dst any, field, tag, fallback string) string {
	if mp, ok := dst.(MessageProvider); ok {
		if msg, ok := mp.ValidationMessages()[field+"."+tag]; ok {
			return msg
		}
	}
	return fallback
}

func defaultMessage(field string, fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "url", "uri":
		return fmt.Sprintf("%q must be a valid uri", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("%q must be a valid GUID", field)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "min":
		if isString {
			return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%q must be less than or equal to %s", field, fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return fmt.Sprintf("%q must be a positive number", field)
		}
		return fmt.Sprintf("%q must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%q must be less than or equal to %s", field, fe.Param())
	case "price":
		return fmt.Sprintf("%q must have no more than 2 decimal places", field)
	case "atleastone":
		return "At least one field must be provided for update"
	default:
		return fmt.Sprintf("%q failed on the %s rule", field, fe.Tag())
	}
}

// validPrice accepts numbers with at most two decimal places.
func validPrice(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		cents := f.Float() * 100
		return math.Abs(cents-math.Round(cents)) < 1e-6
	case reflect.Int, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

// fieldName reports json names for bodies and form names for query and params.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return ""
	}
	return path
}

func routeParams(r *http.Request) url.Values {
	values := url.Values{}
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return values
	}
	for i, key := range rctx.URLParams.Keys {
		if key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		values.Set(key, rctx.URLParams.Values[i])
	}
	return values
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int32, reflect.Int64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "valid value"
	}
}
