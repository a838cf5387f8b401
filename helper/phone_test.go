package helper

import "testing"

func TestSanitizeCountryCode(t *testing.T) {
	cases := map[string]string{
		"+886":  "886",
		"+ 886": "886",
		"886":   "886",
		"+":     "",
		"":      "",
	}
	for input, want := range cases {
		if got := SanitizeCountryCode(input); got != want {
			t.Fatalf("SanitizeCountryCode(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestComposePhoneCode(t *testing.T) {
	cases := map[string]string{
		"886":  "+886",
		"+886": "+886",
		"1":    "+1",
		"":     "+886",
		"+":    "+886",
	}
	for input, want := range cases {
		if got := ComposePhoneCode(input); got != want {
			t.Fatalf("ComposePhoneCode(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBeautifyPhoneNumber(t *testing.T) {
	cases := map[string]string{
		"0912345678": "912345678",
		"+09123":     "9123",
		"912345678":  "912345678",
		"":           "",
	}
	for input, want := range cases {
		if got := BeautifyPhoneNumber(input); got != want {
			t.Fatalf("BeautifyPhoneNumber(%q) = %q, want %q", input, got, want)
		}
	}
}
