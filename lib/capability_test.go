package lib

import (
	"testing"

	"confgive/config"
	"confgive/dto/model"
)

type fakeCatalog map[string]bool

func (c fakeCatalog) Enabled(slug string) bool { return c[slug] }

const (
	iphoneAgent  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"
	galaxyAgent  = "Mozilla/5.0 (Linux; Android 14; SM-S918B)"
	pixelAgent   = "Mozilla/5.0 (Linux; Android 14; Pixel 8)"
	desktopAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
)

func TestProbeCapabilitiesDefaults(t *testing.T) {
	settings := config.PaymentSettings{
		ApplePayMerchant:  "merchant.apple",
		GooglePayMerchant: "merchant-google",
	}

	cases := []struct {
		userAgent string
		want      string
	}{
		{galaxyAgent, model.PaymentTypeSamsungPay},
		{iphoneAgent, model.PaymentTypeApplePay},
		{pixelAgent, model.PaymentTypeGooglePay},
		{desktopAgent, model.PaymentTypeCreditCard},
	}

	for _, c := range cases {
		probe := ProbeCapabilities(settings, c.userAgent, nil)
		if probe.DefaultPayment != c.want {
			t.Fatalf("agent %q: default = %q, want %q", c.userAgent, probe.DefaultPayment, c.want)
		}
	}
}

func TestProbeCapabilitiesMissingMerchant(t *testing.T) {
	// no merchant identifiers configured: wallets needing one fall back
	settings := config.PaymentSettings{}

	probe := ProbeCapabilities(settings, iphoneAgent, nil)
	if probe.DefaultPayment != model.PaymentTypeCreditCard {
		t.Fatalf("iOS without apple merchant: default = %q, want credit-card", probe.DefaultPayment)
	}

	probe = ProbeCapabilities(settings, pixelAgent, nil)
	if probe.DefaultPayment != model.PaymentTypeCreditCard {
		t.Fatalf("android without google merchant: default = %q, want credit-card", probe.DefaultPayment)
	}

	// samsung pay needs no merchant identifier
	probe = ProbeCapabilities(settings, galaxyAgent, nil)
	if probe.DefaultPayment != model.PaymentTypeSamsungPay {
		t.Fatalf("samsung handset: default = %q, want samsung-pay", probe.DefaultPayment)
	}
}

func TestProbeCapabilitiesCatalog(t *testing.T) {
	settings := config.PaymentSettings{
		ApplePayMerchant:  "merchant.apple",
		GooglePayMerchant: "merchant-google",
	}
	catalog := fakeCatalog{
		model.PaymentTypeApplePay:   false,
		model.PaymentTypeGooglePay:  true,
		model.PaymentTypeSamsungPay: false,
	}

	probe := ProbeCapabilities(settings, iphoneAgent, catalog)
	if probe.DefaultPayment != model.PaymentTypeCreditCard {
		t.Fatalf("disabled apple pay: default = %q, want credit-card", probe.DefaultPayment)
	}

	probe = ProbeCapabilities(settings, galaxyAgent, catalog)
	if probe.DefaultPayment != model.PaymentTypeCreditCard {
		t.Fatalf("disabled samsung pay: default = %q, want credit-card", probe.DefaultPayment)
	}

	if len(probe.ConfiguredWallets) != 1 || probe.ConfiguredWallets[0] != model.PaymentTypeGooglePay {
		t.Fatalf("wallets = %v, want [google-pay]", probe.ConfiguredWallets)
	}
}
