package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/desertthunder/falcon/internal/shared"
	"github.com/go-playground/validator/v10"
)

// DateKeyLayout is the time layout of a YYYY-MM-DD date key.
const DateKeyLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("datekey", isDateKey); err != nil {
		panic(fmt.Sprintf("failed to register datekey validation: %v", err))
	}
	return v
}

func isDateKey(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateKeyLayout, fl.Field().String())
	return err == nil
}

// Validate reports missing or malformed fields of the task input.
func (n NewTask) Validate() error { return check(validate.Struct(n)) }

// Validate reports missing or malformed fields of the goal input.
func (n NewGoal) Validate() error { return check(validate.Struct(n)) }

// Validate reports missing or malformed fields of the category input.
func (n NewCategory) Validate() error { return check(validate.Struct(n)) }

// Validate reports missing or malformed fields of the theme input, including every palette slot.
func (n NewTheme) Validate() error { return check(validate.Struct(n)) }

// Validate checks the supplied fields only.
func (p TaskPatch) Validate() error {
	var errs []error
	if p.Title != nil {
		errs = append(errs, checkVar("title", *p.Title, "required"))
	}
	if p.DueDate != nil {
		errs = append(errs, checkVar("dueDate", *p.DueDate, "required,datekey"))
	}
	if p.Priority != nil {
		errs = append(errs, checkVar("priority", string(*p.Priority), "required,oneof=low medium high"))
	}
	return errors.Join(errs...)
}

// Validate checks the supplied fields only.
func (p GoalPatch) Validate() error {
	var errs []error
	if p.Title != nil {
		errs = append(errs, checkVar("title", *p.Title, "required"))
	}
	if p.Level != nil {
		errs = append(errs, checkVar("level", string(*p.Level), "required,oneof=daily monthly yearly"))
	}
	if p.TargetDate != nil {
		errs = append(errs, checkVar("targetDate", *p.TargetDate, "omitempty,datekey"))
	}
	if p.Progress != nil {
		errs = append(errs, checkVar("progress", *p.Progress, "min=0,max=100"))
	}
	return errors.Join(errs...)
}

// Validate checks the supplied fields only.
func (p CategoryPatch) Validate() error {
	var errs []error
	if p.Name != nil {
		errs = append(errs, checkVar("name", *p.Name, "required"))
	}
	if p.Color != nil {
		errs = append(errs, checkVar("color", *p.Color, "required,hexcolor"))
	}
	return errors.Join(errs...)
}

// Validate checks the supplied fields only.
func (p ThemePatch) Validate() error {
	var errs []error
	if p.Name != nil {
		errs = append(errs, checkVar("name", *p.Name, "required"))
	}
	if p.Palette != nil {
		errs = append(errs, check(validate.Struct(*p.Palette)))
	}
	return errors.Join(errs...)
}

func checkVar(field string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s %s", shared.ErrInvalidInput, field, describe(verrs[0]))
		}
		return fmt.Errorf("%w: %s: %v", shared.ErrInvalidInput, field, err)
	}
	return nil
}

// check converts validator output into an [shared.ErrInvalidInput] listing each failing field.
func check(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" "+describe(fe))
	}
	return fmt.Errorf("%w: %s", shared.ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datekey":
		return "must be a YYYY-MM-DD date"
	case "hexcolor":
		return "must be a hex color"
	case "oneof":
		return "must be one of " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
