package helper

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"confgive/dto/model"
)

var (
	emailPattern       = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,4}$`)
	countryCodePattern = regexp.MustCompile(`^[0-9]{1,3}$`)
	phonePattern       = regexp.MustCompile(`^[0-9]{8,15}$`)
)

// Bilingual form messages.
const (
	MsgAmountInvalid      = "Amount must be greater than zero.\n金額必須大於 0"
	MsgEmailInvalid       = "Email invalid\n無效的電子信箱"
	MsgCountryCodeInvalid = "IDP invalid\n無效的國碼"
	MsgPhoneInvalid       = "Mobile Number invalid\n無效的手機號碼"
	MsgNoteTooLong        = "Note must be 200 characters or less\n備註最多 200 字"
)

var validate = validator.New()

// ValidateGiveForm is the field validation gate: it aggregates required-ness,
// pattern checks, the positive-amount check and privacy policy acceptance
// into per-field messages. An empty result means the form is valid.
func ValidateGiveForm(form model.GiveForm) map[string]string {
	fieldErrors := map[string]string{}

	if err := validate.Struct(form); err != nil {
		if invalid, ok := err.(*validator.InvalidValidationError); ok {
			fieldErrors["form"] = invalid.Error()
			return fieldErrors
		}
		for _, fieldErr := range err.(validator.ValidationErrors) {
			switch fieldErr.Field() {
			case "Amount":
				if fieldErr.Tag() == "required" && form.Amount == 0 {
					fieldErrors["amount"] = MsgFieldRequired
				} else {
					fieldErrors["amount"] = MsgAmountInvalid
				}
			case "Email":
				fieldErrors["email"] = MsgFieldRequired
			case "CountryCode":
				fieldErrors["countryCode"] = MsgFieldRequired
			case "PhoneNumber":
				fieldErrors["phone_number"] = MsgFieldRequired
			case "PaymentType":
				fieldErrors["paymentType"] = MsgFieldRequired
			case "Note":
				fieldErrors["note"] = MsgNoteTooLong
			}
		}
	}

	if form.Amount < 0 {
		fieldErrors["amount"] = MsgAmountInvalid
	}
	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		fieldErrors["email"] = MsgEmailInvalid
	}
	if form.CountryCode != "" && !countryCodePattern.MatchString(SanitizeCountryCode(form.CountryCode)) {
		fieldErrors["countryCode"] = MsgCountryCodeInvalid
	}
	if form.PhoneNumber != "" && !phonePattern.MatchString(form.PhoneNumber) {
		fieldErrors["phone_number"] = MsgPhoneInvalid
	}
	if !form.PrivacyPolicy {
		fieldErrors["privacyPolicy"] = MsgFieldRequired
	}

	return fieldErrors
}

// ValidateNote is the note dialog confirm check: notes over 200 characters
// are rejected and the dialog stays open.
func ValidateNote(note string) bool {
	return len([]rune(note)) <= 200
}
