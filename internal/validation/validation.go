// Package validation runs the form rules the console checks before any
// request reaches the marketplace API.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"wrapads/internal/models"
)

const (
	MsgRequiredFields     = "Please fill in all required fields"
	MsgEndBeforeStart     = "End date must be after start date"
	MsgPaymentPositive    = "Payment per day must be greater than 0"
	MsgDriversAtLeastOne  = "Required drivers must be at least 1"
	MsgCampaignNameBlank  = "Campaign name cannot be empty"
	MsgReasonTooShort     = "Rejection reason must be at least 10 characters"
	MsgReasonTooLong      = "Rejection reason must be at most 500 characters"
	RejectionReasonMinLen = 10
	RejectionReasonMaxLen = 500
)

// Error is a validation failure tied to the offending form field.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

var (
	validate = validator.New()

	// requests reports JSON field names in its errors.
	requests = newRequestValidator()
)

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// campaignForm mirrors the creation form; field order is the rule order,
// so the first reported FieldError is the first failing rule.
type campaignForm struct {
	CampaignName    string    `validate:"required"`
	StartDate       time.Time `validate:"required"`
	EndDate         time.Time `validate:"required,gtfield=StartDate"`
	PaymentPerDay   float64   `validate:"gt=0"`
	RequiredDrivers int       `validate:"min=1"`
}

var campaignFields = map[string]string{
	"CampaignName":    "campaignName",
	"StartDate":       "startDate",
	"EndDate":         "endDate",
	"PaymentPerDay":   "paymentPerDay",
	"RequiredDrivers": "requiredDrivers",
}

// CampaignCreate checks a creation request. It returns the first failing
// rule as *Error, or nil.
func CampaignCreate(req *models.CreateCampaignRequest) error {
	form := campaignForm{
		CampaignName:    strings.TrimSpace(req.CampaignName),
		StartDate:       req.StartDate.Time,
		EndDate:         req.EndDate.Time,
		PaymentPerDay:   req.PaymentPerDay.Decimal().InexactFloat64(),
		RequiredDrivers: req.RequiredDrivers,
	}
	return firstError(validate.Struct(form))
}

type quoteForm struct {
	StartDate       time.Time `validate:"required"`
	EndDate         time.Time `validate:"required,gtfield=StartDate"`
	PaymentPerDay   float64   `validate:"gt=0"`
	RequiredDrivers int       `validate:"min=1"`
}

// Quote checks the inputs of a cost preview with the creation form's
// rules, minus the campaign name.
func Quote(paymentPerDay models.Amount, start, end time.Time, requiredDrivers int) error {
	return firstError(validate.Struct(quoteForm{
		StartDate:       start,
		EndDate:         end,
		PaymentPerDay:   paymentPerDay.Decimal().InexactFloat64(),
		RequiredDrivers: requiredDrivers,
	}))
}

type campaignUpdateForm struct {
	CampaignName    *string  `validate:"omitempty,min=1"`
	PaymentPerDay   *float64 `validate:"omitempty,gt=0"`
	RequiredDrivers *int     `validate:"omitempty,min=1"`
}

// CampaignUpdate checks the fields present in a partial update. Dates are
// compared against each other, or against the stored campaign when only
// one side changes.
func CampaignUpdate(req *models.UpdateCampaignRequest, current *models.Campaign) error {
	var form campaignUpdateForm
	if req.CampaignName != nil {
		name := strings.TrimSpace(*req.CampaignName)
		if name == "" {
			return &Error{Field: "campaignName", Message: MsgCampaignNameBlank}
		}
		form.CampaignName = &name
	}
	if req.PaymentPerDay != nil {
		f := req.PaymentPerDay.Decimal().InexactFloat64()
		form.PaymentPerDay = &f
	}
	form.RequiredDrivers = req.RequiredDrivers
	if err := firstError(validate.Struct(form)); err != nil {
		return err
	}

	start, end := time.Time{}, time.Time{}
	if current != nil {
		start, end = current.StartDate.Time, current.EndDate.Time
	}
	if req.StartDate != nil {
		start = req.StartDate.Time
	}
	if req.EndDate != nil {
		end = req.EndDate.Time
	}
	if (req.StartDate != nil || req.EndDate != nil) && !start.IsZero() && !end.IsZero() && !end.After(start) {
		return &Error{Field: "endDate", Message: MsgEndBeforeStart}
	}
	return nil
}

// RejectionReason accepts an empty reason; otherwise it must be 10 to 500
// characters long.
func RejectionReason(reason string) error {
	err := validate.Var(reason, fmt.Sprintf("omitempty,min=%d,max=%d", RejectionReasonMinLen, RejectionReasonMaxLen))
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "max" {
		return &Error{Field: "reason", Message: MsgReasonTooLong}
	}
	return &Error{Field: "reason", Message: MsgReasonTooShort}
}

// Struct validates a request model by its tags and reports the first
// failure as *Error named after the JSON field.
func Struct(v any) error {
	err := requests.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	field := fe.Field()
	return &Error{Field: field, Message: describe(field, fe)}
}

func firstError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	field := campaignFields[fe.Field()]
	switch {
	case fe.Tag() == "required":
		return &Error{Field: field, Message: MsgRequiredFields}
	case fe.Field() == "EndDate":
		return &Error{Field: field, Message: MsgEndBeforeStart}
	case fe.Field() == "PaymentPerDay":
		return &Error{Field: field, Message: MsgPaymentPositive}
	case fe.Field() == "RequiredDrivers":
		return &Error{Field: field, Message: MsgDriversAtLeastOne}
	case fe.Field() == "CampaignName":
		return &Error{Field: field, Message: MsgCampaignNameBlank}
	}
	return &Error{Field: field, Message: fe.Error()}
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}
