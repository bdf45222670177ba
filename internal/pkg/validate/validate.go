package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// v is the shared validator instance. Custom type registrations, if ever
// needed, belong in an init() ahead of the first Struct call.
var v = validator.New()

// Struct runs the validate tags on s and flattens any violations into a
// single readable error, one clause per failing field.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	clauses := make([]string, 0, len(ve))
	for _, fe := range ve {
		clauses = append(clauses, fmt.Sprintf("%s does not satisfy '%s'", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(clauses, "; "))
}
