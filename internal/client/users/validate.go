package users

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/client/models"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their json name (first_name, ...).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateUpdate trims upd and checks that every field is filled in. The
// returned error wraps common.ErrValidation and names the missing fields.
func ValidateUpdate(upd models.UserUpdate) (models.UserUpdate, error) {
	upd = upd.Trimmed()

	err := validate.Struct(upd)
	if err == nil {
		return upd, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return upd, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return upd, fmt.Errorf("%w: missing %s", common.ErrValidation, strings.Join(fields, ", "))
}
