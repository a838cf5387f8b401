package helper

import (
	"strings"
	"testing"

	"confgive/dto/model"
)

func validForm() model.GiveForm {
	return model.GiveForm{
		Amount:        1000,
		Email:         "donor@example.com",
		CountryCode:   "886",
		PhoneNumber:   "912345678",
		PaymentType:   model.PaymentTypeCreditCard,
		PrivacyPolicy: true,
	}
}

func TestValidateGiveFormValid(t *testing.T) {
	fieldErrors := ValidateGiveForm(validForm())
	if len(fieldErrors) != 0 {
		t.Fatalf("expected no field errors, got %v", fieldErrors)
	}
}

func TestValidateGiveFormAmount(t *testing.T) {
	form := validForm()

	form.Amount = 0
	fieldErrors := ValidateGiveForm(form)
	if fieldErrors["amount"] != MsgFieldRequired {
		t.Fatalf("amount=0: got %q, want %q", fieldErrors["amount"], MsgFieldRequired)
	}

	form.Amount = -500
	fieldErrors = ValidateGiveForm(form)
	if fieldErrors["amount"] != MsgAmountInvalid {
		t.Fatalf("amount=-500: got %q, want %q", fieldErrors["amount"], MsgAmountInvalid)
	}

	form.Amount = 1
	fieldErrors = ValidateGiveForm(form)
	if _, found := fieldErrors["amount"]; found {
		t.Fatalf("amount=1 should be valid, got %v", fieldErrors)
	}
}

func TestValidateGiveFormEmail(t *testing.T) {
	form := validForm()

	form.Email = ""
	fieldErrors := ValidateGiveForm(form)
	if fieldErrors["email"] != MsgFieldRequired {
		t.Fatalf("empty email: got %q, want %q", fieldErrors["email"], MsgFieldRequired)
	}

	form.Email = "not-an-email"
	fieldErrors = ValidateGiveForm(form)
	if fieldErrors["email"] != MsgEmailInvalid {
		t.Fatalf("bad email: got %q, want %q", fieldErrors["email"], MsgEmailInvalid)
	}

	form.Email = "Donor.Name+tag@give.example.org"
	fieldErrors = ValidateGiveForm(form)
	if _, found := fieldErrors["email"]; found {
		t.Fatalf("mixed case email should be valid, got %v", fieldErrors)
	}
}

func TestValidateGiveFormCountryCode(t *testing.T) {
	form := validForm()

	form.CountryCode = "+886"
	fieldErrors := ValidateGiveForm(form)
	if _, found := fieldErrors["countryCode"]; found {
		t.Fatalf("+886 should be valid after sanitizing, got %v", fieldErrors)
	}

	form.CountryCode = "8866"
	fieldErrors = ValidateGiveForm(form)
	if fieldErrors["countryCode"] != MsgCountryCodeInvalid {
		t.Fatalf("four digits: got %q, want %q", fieldErrors["countryCode"], MsgCountryCodeInvalid)
	}

	form.CountryCode = "88a"
	fieldErrors = ValidateGiveForm(form)
	if fieldErrors["countryCode"] != MsgCountryCodeInvalid {
		t.Fatalf("letters: got %q, want %q", fieldErrors["countryCode"], MsgCountryCodeInvalid)
	}
}

func TestValidateGiveFormPhone(t *testing.T) {
	form := validForm()

	form.PhoneNumber = "1234567"
	fieldErrors := ValidateGiveForm(form)
	if fieldErrors["phone_number"] != MsgPhoneInvalid {
		t.Fatalf("seven digits: got %q, want %q", fieldErrors["phone_number"], MsgPhoneInvalid)
	}

	form.PhoneNumber = "123456789012345"
	fieldErrors = ValidateGiveForm(form)
	if _, found := fieldErrors["phone_number"]; found {
		t.Fatalf("fifteen digits should be valid, got %v", fieldErrors)
	}

	form.PhoneNumber = "1234567890123456"
	fieldErrors = ValidateGiveForm(form)
	if fieldErrors["phone_number"] != MsgPhoneInvalid {
		t.Fatalf("sixteen digits: got %q, want %q", fieldErrors["phone_number"], MsgPhoneInvalid)
	}
}

func TestValidateGiveFormNote(t *testing.T) {
	form := validForm()

	form.Note = strings.Repeat("a", 200)
	fieldErrors := ValidateGiveForm(form)
	if _, found := fieldErrors["note"]; found {
		t.Fatalf("200 chars should be valid, got %v", fieldErrors)
	}

	form.Note = strings.Repeat("a", 201)
	fieldErrors = ValidateGiveForm(form)
	if fieldErrors["note"] != MsgNoteTooLong {
		t.Fatalf("201 chars: got %q, want %q", fieldErrors["note"], MsgNoteTooLong)
	}
}

func TestValidateGiveFormPrivacyPolicy(t *testing.T) {
	form := validForm()
	form.PrivacyPolicy = false

	fieldErrors := ValidateGiveForm(form)
	if fieldErrors["privacyPolicy"] != MsgFieldRequired {
		t.Fatalf("unchecked policy: got %q, want %q", fieldErrors["privacyPolicy"], MsgFieldRequired)
	}
}

func TestValidateNote(t *testing.T) {
	if !ValidateNote(strings.Repeat("字", 200)) {
		t.Fatal("200 runes should pass")
	}
	if ValidateNote(strings.Repeat("字", 201)) {
		t.Fatal("201 runes should fail")
	}
}
