package helper

import "testing"

func TestCardFieldMessages(t *testing.T) {
	messages := CardFieldMessages(CardFieldOK, CardFieldOK, CardFieldOK)
	for field, msg := range messages {
		if msg != "" {
			t.Fatalf("valid field %s should have no message, got %q", field, msg)
		}
	}

	messages = CardFieldMessages(CardFieldEmpty, CardFieldError, CardFieldTyping)
	if messages["number"] != MsgFieldRequired {
		t.Fatalf("empty number: got %q, want %q", messages["number"], MsgFieldRequired)
	}
	if messages["expiry"] != MsgInvalidExpiry {
		t.Fatalf("invalid expiry: got %q, want %q", messages["expiry"], MsgInvalidExpiry)
	}
	if messages["ccv"] != MsgInvalidSecurityCode {
		t.Fatalf("typing ccv: got %q, want %q", messages["ccv"], MsgInvalidSecurityCode)
	}

	messages = CardFieldMessages(CardFieldError, CardFieldEmpty, CardFieldEmpty)
	if messages["number"] != MsgInvalidCardNumber {
		t.Fatalf("invalid number: got %q, want %q", messages["number"], MsgInvalidCardNumber)
	}
}

func TestCardFieldsValid(t *testing.T) {
	if !CardFieldsValid(CardFieldOK, CardFieldOK, CardFieldOK) {
		t.Fatal("all ok should be valid")
	}
	if CardFieldsValid(CardFieldOK, CardFieldEmpty, CardFieldOK) {
		t.Fatal("empty expiry should not be valid")
	}
	if CardFieldsValid(CardFieldTyping, CardFieldOK, CardFieldOK) {
		t.Fatal("mid-typing number should not be valid")
	}
}
