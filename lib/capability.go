package lib

import (
	"log"

	"confgive/config"
	"confgive/dto/model"
	"confgive/helper"
)

// MethodCatalog answers whether a payment method is enabled. Backed by the
// mongo catalog when configured; a nil catalog enables everything.
type MethodCatalog interface {
	Enabled(slug string) bool
}

// ProbeResult is the startup capability probe output for one session.
type ProbeResult struct {
	DeviceClass       string
	DefaultPayment    string
	ConfiguredWallets []string
}

// ProbeCapabilities classifies the device and resolves the default payment
// method: Samsung handset wins, then iOS with Apple Pay configured, then
// Android with Google Pay configured, else credit card. Missing merchant
// identifiers only disable the matching wallet.
func ProbeCapabilities(settings config.PaymentSettings, userAgent string, catalog MethodCatalog) ProbeResult {
	enabled := func(slug string) bool {
		if catalog == nil {
			return true
		}
		return catalog.Enabled(slug)
	}

	appleConfigured := settings.ApplePayMerchant != "" && enabled(model.PaymentTypeApplePay)
	googleConfigured := settings.GooglePayMerchant != "" && enabled(model.PaymentTypeGooglePay)
	samsungEnabled := enabled(model.PaymentTypeSamsungPay)

	deviceClass := helper.ClassifyDevice(userAgent)

	defaultPayment := model.PaymentTypeCreditCard
	switch {
	case deviceClass == helper.DeviceSamsung && samsungEnabled:
		defaultPayment = model.PaymentTypeSamsungPay
	case deviceClass == helper.DeviceIOS && appleConfigured:
		defaultPayment = model.PaymentTypeApplePay
	case deviceClass == helper.DeviceAndroid && googleConfigured:
		defaultPayment = model.PaymentTypeGooglePay
	}

	wallets := []string{}
	if appleConfigured {
		wallets = append(wallets, model.PaymentTypeApplePay)
	}
	if googleConfigured {
		wallets = append(wallets, model.PaymentTypeGooglePay)
	}
	if samsungEnabled {
		wallets = append(wallets, model.PaymentTypeSamsungPay)
	}

	log.Printf("capability probe: device=%s default=%s wallets=%v", deviceClass, defaultPayment, wallets)

	return ProbeResult{
		DeviceClass:       deviceClass,
		DefaultPayment:    defaultPayment,
		ConfiguredWallets: wallets,
	}
}
