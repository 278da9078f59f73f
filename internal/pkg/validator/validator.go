package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// enum tag -> allowed values, in declaration order
var enums = map[string][]string{}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonName)
	validate.RegisterCustomTypeFunc(inputValue, String{}, Number{}, Time{})
}

// Errors maps a JSON field path (orderItems[0].quantity) to its messages.
type Errors map[string][]string

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Details is the body placed under "details" in a validation failure.
func (e Errors) Details() map[string]any {
	return map[string]any{"fieldErrors": map[string][]string(e)}
}

// Fields returns the failing field paths, sorted.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// RegisterEnum adds a validation tag accepting only the given values.
// Must be called from init.
func RegisterEnum(tag string, values ...string) {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	enums[tag] = values

	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	})
	if err != nil {
		panic(fmt.Sprintf("validator: register enum %q: %v", tag, err))
	}
}

// Validate checks v and returns every failing field, or nil.
func Validate(v any) Errors {
	errs := Errors{}
	collectInputErrors(reflect.ValueOf(v), "", errs)

	if err := validate.Struct(v); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			errs.add("_", err.Error())
			return errs
		}
		for _, fe := range verrs {
			errs.Add(fieldPath(fe.Namespace()), message(fe))
		}
	}

	if ch, ok := v.(Checker); ok {
		ch.Check(errs)
	}
	return nilIfEmpty(errs)
}

// Checker is implemented by requests whose rules depend on runtime
// settings. Check runs after the tag rules.
type Checker interface {
	Check(errs Errors)
}

// Add records msg for field unless the field already failed.
func (e Errors) Add(field, msg string) {
	if _, seen := e[field]; seen {
		return
	}
	e.add(field, msg)
}

func nilIfEmpty(errs Errors) Errors {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func message(fe validator.FieldError) string {
	if values, ok := enums[fe.Tag()]; ok {
		return "must be one of: " + strings.Join(values, ", ")
	}

	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

// SalesOrderCreate.orderItems[0].quantity -> orderItems[0].quantity
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func inputValue(field reflect.Value) any {
	switch v := field.Interface().(type) {
	case String:
		if v.Valid() {
			return v.Value
		}
	case Number:
		if v.Valid() {
			return v.Value
		}
	case Time:
		if v.Valid() {
			return v.Value
		}
	}
	return nil
}

type inputError interface {
	InputError() string
}

type nullable interface {
	IsNull() bool
	Valid() bool
}

var inputErrorType = reflect.TypeOf((*inputError)(nil)).Elem()

// collectInputErrors walks v for decode errors recorded by the input types,
// null values in fields tagged input:"nonnull" and missing values in fields
// tagged input:"required". The latter lets a zero number count as present.
func collectInputErrors(v reflect.Value, prefix string, errs Errors) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			collectInputErrors(v.Index(i), fmt.Sprintf("%s[%d]", prefix, i), errs)
		}
	case reflect.Struct:
		if v.Type().Implements(inputErrorType) {
			return
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := jsonName(sf)
			if name == "" {
				continue
			}
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}

			fv := v.Field(i)
			if ie, ok := fv.Interface().(inputError); ok {
				if msg := ie.InputError(); msg != "" {
					errs.add(path, msg)
					continue
				}
				n, ok := fv.Interface().(nullable)
				if !ok {
					continue
				}
				switch sf.Tag.Get("input") {
				case "nonnull":
					if n.IsNull() {
						errs.add(path, "cannot be empty")
					}
				case "required":
					if !n.Valid() {
						errs.add(path, "is required")
					}
				}
				continue
			}
			collectInputErrors(fv, path, errs)
		}
	}
}
