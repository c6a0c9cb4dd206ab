package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("travelstyle", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTravelStyle(fl.Field().String())
		return err == nil
	})
	return v
}

// checkStruct runs the struct tags of v and folds every failure into one
// error wrapping common.ErrorValidation.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", common.ErrorValidation, strings.Join(msgs, "; "))
}

// lookupID rejects ids that cannot name a stored row. Rows are keyed by UUID,
// so a malformed id is reported as common.ErrorNotFound.
func lookupID(id string) error {
	if err := validate.Var(id, "required,uuid"); err != nil {
		return fmt.Errorf("%w: malformed id %q", common.ErrorNotFound, id)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}

type credentialsInput struct {
	Username string `validate:"required,min=3,max=64"`
	Salt     []byte `validate:"required"`
	Verifier []byte `validate:"required"`
}

type tripInput struct {
	Title        string               `validate:"max=200"`
	Companions   string               `validate:"max=200"`
	TravelStyles []domain.TravelStyle `validate:"max=8,dive,travelstyle"`
}

type itemInput struct {
	ID       string   `validate:"omitempty,uuid"`
	Name     string   `validate:"required,max=200"`
	Time     string   `validate:"max=32"`
	Category string   `validate:"max=50"`
	Address  string   `validate:"max=500"`
	Lat      *float64 `validate:"omitnil,gte=-90,lte=90"`
	Lng      *float64 `validate:"omitnil,gte=-180,lte=180"`
	Memo     string   `validate:"max=2000"`
}

type checklistInput struct {
	Label    string `validate:"required,max=200"`
	Category string `validate:"max=50"`
}
