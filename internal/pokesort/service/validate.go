package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// fieldMessages overrides the generic message for a "field.tag" pair.
var fieldMessages = map[string]string{
	"username.min":            "Username must be at least 3 characters",
	"username.max":            "Username must be at most 20 characters",
	"username.username_chars": "Username can only contain letters, numbers, underscores, and hyphens",
	"email.email":             "Invalid email address",
	"password.min":            "Password must be at least 8 characters",
	"types.min":               "At least one type is required",
	"generation.gte":          "Generation must be at least 1",
	"imageUrl.url":            "Invalid URL",
}

// Validator checks inputs declared with struct tags and reports every
// failing field at once, named by its JSON path.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("username_chars", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return &Validator{v: v}
}

// Rule is a cross-field check run after the per-field tags. It returns nil
// when the input passes.
type Rule[T any] func(T) *FieldError

// Validate runs the struct tags on in and then every rule, returning a
// *ValidationError listing all failures, or nil.
func Validate[T any](v *Validator, in T, rules ...Rule[T]) error {
	var fields []FieldError

	if err := v.v.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate: %w", err)
		}
		for _, fe := range verrs {
			fields = append(fields, toFieldError(fe))
		}
	}

	for _, rule := range rules {
		if fe := rule(in); fe != nil {
			fields = append(fields, *fe)
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func toFieldError(fe validator.FieldError) FieldError {
	// Namespace is "StructName.a.b"; drop the root.
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}

	return FieldError{Field: path, Message: messageFor(path, fe)}
}

func messageFor(path string, fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fieldMessages[path+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return "Required"
	case "oneof":
		return "Expected one of: " + strings.Join(oneOfValues(fe.Param()), ", ")
	case "min", "gte":
		return "Must be at least " + fe.Param()
	case "max", "lte":
		return "Must be at most " + fe.Param()
	case "email":
		return "Invalid email address"
	case "url":
		return "Invalid URL"
	default:
		return "Invalid value"
	}
}

// oneOfValues splits a oneof param, honouring single-quoted values with spaces.
func oneOfValues(param string) []string {
	var (
		out    []string
		cur    strings.Builder
		quoted bool
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range param {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == ' ' && !quoted:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

// passwordsMatch is the sign-up confirmation rule.
func passwordsMatch(in SignUpInput) *FieldError {
	if in.Password != in.ConfirmPassword {
		return &FieldError{Field: "confirmPassword", Message: "Passwords don't match"}
	}
	return nil
}
