// ABOUTME: Add Lead form state machine and field validation
// ABOUTME: Validates submissions with go-playground/validator and maps failures to messages
package forms

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/harperreed/crmdash/models"
)

type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Field names as used in form posts and the error map.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldCompany = "company"
	FieldPhone   = "phone"
	FieldStatus  = "status"
	FieldValue   = "value"
	FieldSource  = "source"
)

// Fields lists form fields in display order.
var Fields = []string{FieldName, FieldEmail, FieldCompany, FieldPhone, FieldStatus, FieldValue, FieldSource}

var looseEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type submission struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"notblank,looseemail"`
	Company string `form:"company" validate:"required"`
	Phone   string `form:"phone" validate:"required"`
	Value   string `form:"value" validate:"required"`
	Source  string `form:"source" validate:"required"`
}

var messages = map[string]map[string]string{
	FieldName:    {"required": "Name is required"},
	FieldEmail:   {"notblank": "Email is required", "looseemail": "Invalid email format"},
	FieldCompany: {"required": "Company is required"},
	FieldPhone:   {"required": "Phone is required"},
	FieldValue:   {"required": "Value is required"},
	FieldSource:  {"required": "Source is required"},
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	})
	return v
}

var validate = newValidator()

// Validate checks a raw submission. Text fields are trimmed before the
// required check. Email is only trimmed for that check, so surrounding
// whitespace fails the format rule. The returned map is empty when the input
// is valid.
func Validate(values map[string]string) map[string]string {
	sub := submission{
		Name:    strings.TrimSpace(values[FieldName]),
		Email:   values[FieldEmail],
		Company: strings.TrimSpace(values[FieldCompany]),
		Phone:   strings.TrimSpace(values[FieldPhone]),
		Value:   strings.TrimSpace(values[FieldValue]),
		Source:  strings.TrimSpace(values[FieldSource]),
	}

	errs := map[string]string{}
	err := validate.Struct(sub)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		if msg, ok := messages[field][fe.Tag()]; ok {
			errs[field] = msg
		}
	}
	return errs
}

// AddLeadForm holds the modal's values and per-field errors.
type AddLeadForm struct {
	state  State
	values map[string]string
	errors map[string]string
}

func NewAddLeadForm() *AddLeadForm {
	f := &AddLeadForm{}
	f.reset()
	return f
}

func (f *AddLeadForm) reset() {
	f.values = map[string]string{FieldStatus: string(models.LeadNew)}
	f.errors = map[string]string{}
}

func (f *AddLeadForm) Open() {
	f.state = StateOpen
}

func (f *AddLeadForm) State() State {
	return f.state
}

// Set updates a field and clears that field's error.
func (f *AddLeadForm) Set(field, value string) {
	f.values[field] = value
	delete(f.errors, field)
}

func (f *AddLeadForm) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

func (f *AddLeadForm) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Submit validates the form. On success the form resets and closes, and the
// lead is returned for insertion. On failure the form stays open with errors.
func (f *AddLeadForm) Submit() (models.NewLead, bool) {
	f.errors = Validate(f.values)
	if len(f.errors) > 0 {
		return models.NewLead{}, false
	}
	lead := ToNewLead(f.values)
	f.reset()
	f.state = StateClosed
	return lead, true
}

// Cancel discards values and errors without validating.
func (f *AddLeadForm) Cancel() {
	f.reset()
	f.state = StateClosed
}

// ToNewLead converts already-validated values. Unknown statuses become New.
func ToNewLead(values map[string]string) models.NewLead {
	status, ok := models.ParseLeadStatus(values[FieldStatus])
	if !ok {
		status = models.LeadNew
	}
	return models.NewLead{
		Name:    strings.TrimSpace(values[FieldName]),
		Email:   strings.TrimSpace(values[FieldEmail]),
		Company: strings.TrimSpace(values[FieldCompany]),
		Phone:   strings.TrimSpace(values[FieldPhone]),
		Status:  status,
		Value:   strings.TrimSpace(values[FieldValue]),
		Source:  strings.TrimSpace(values[FieldSource]),
	}
}
