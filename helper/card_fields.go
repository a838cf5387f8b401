package helper

// Card SDK hosted-field status codes.
const (
	CardFieldOK      = 0
	CardFieldEmpty   = 1
	CardFieldError   = 2
	CardFieldTyping  = 3
)

// Bilingual field messages, one per hosted field.
const (
	MsgFieldRequired       = "Required 必填"
	MsgInvalidCardNumber   = "Invalid Card Number\n卡號無效"
	MsgInvalidExpiry       = "Invalid Expiration Date\n到期日無效"
	MsgInvalidSecurityCode = "Invalid Security Code\n安全碼無效"
)

// CardFieldInvalid reports whether a status code means the field content is
// wrong (as opposed to merely empty).
func CardFieldInvalid(status int) bool {
	return status == CardFieldError || status == CardFieldTyping
}

// CardFieldRequired reports whether a status code means the field is empty.
func CardFieldRequired(status int) bool {
	return status == CardFieldEmpty
}

// CardFieldMessages maps the three status codes to their display messages.
// A valid field yields an empty string.
func CardFieldMessages(number, expiry, ccv int) map[string]string {
	messages := map[string]string{
		"number": "",
		"expiry": "",
		"ccv":    "",
	}

	if CardFieldRequired(number) {
		messages["number"] = MsgFieldRequired
	} else if CardFieldInvalid(number) {
		messages["number"] = MsgInvalidCardNumber
	}

	if CardFieldRequired(expiry) {
		messages["expiry"] = MsgFieldRequired
	} else if CardFieldInvalid(expiry) {
		messages["expiry"] = MsgInvalidExpiry
	}

	if CardFieldRequired(ccv) {
		messages["ccv"] = MsgFieldRequired
	} else if CardFieldInvalid(ccv) {
		messages["ccv"] = MsgInvalidSecurityCode
	}

	return messages
}

// CardFieldsValid reports whether all three hosted fields are valid.
func CardFieldsValid(number, expiry, ccv int) bool {
	return number == CardFieldOK && expiry == CardFieldOK && ccv == CardFieldOK
}
