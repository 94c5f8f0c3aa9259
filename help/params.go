package help

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kisan-sahay/kisan-api/schema"
)

// CreateParams is the farmer's input for a new help request
type CreateParams struct {
	Title         string         `json:"title" validate:"required,max=200"`
	Description   string         `json:"description" validate:"required"`
	Category      string         `json:"category" validate:"required,max=64"`
	Urgency       schema.Urgency `json:"urgency" validate:"oneof=low medium high critical"`
	RequiredItems []string       `json:"required_items"`
	EstimatedCost *float64       `json:"estimated_cost" validate:"omitempty,gte=0"`
}

func (p *CreateParams) normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)
	if p.Urgency == "" {
		p.Urgency = schema.UrgencyMedium
	}
	p.RequiredItems = compactItems(p.RequiredItems)
}

// ResponseParams is a helper's offer. A nil ContactInfo is filled from the
// helper's profile.
type ResponseParams struct {
	Message       string              `json:"message" validate:"required"`
	OfferedItems  []string            `json:"offered_items"`
	OfferedAmount *float64            `json:"offered_amount" validate:"omitempty,gte=0"`
	ContactInfo   *schema.ContactInfo `json:"contact_info"`
}

func (p *ResponseParams) normalize() {
	p.Message = strings.TrimSpace(p.Message)
	p.OfferedItems = compactItems(p.OfferedItems)
}

// compactItems drops blank entries and keeps the order of the rest
func compactItems(items []string) []string {
	compact := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			compact = append(compact, item)
		}
	}
	return compact
}

type validate struct {
	v *validator.Validate
}

func newValidate() *validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &validate{v: v}
}

// check turns the first failed rule into a ValidationError
func (v *validate) check(params interface{}) error {
	err := v.v.Struct(params)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &ValidationError{Field: "params", Reason: err.Error()}
	}

	fe := errs[0]
	var reason string
	switch fe.Tag() {
	case "required":
		reason = "must not be empty"
	case "gte":
		reason = "must not be negative"
	case "oneof":
		reason = "must be one of " + fe.Param()
	case "max":
		reason = "is too long"
	default:
		reason = "failed " + fe.Tag()
	}
	return &ValidationError{Field: fe.Field(), Reason: reason}
}
