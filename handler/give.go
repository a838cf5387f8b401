package handler

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.elastic.co/apm"

	"confgive/config"
	dtohttp "confgive/dto/http"
	"confgive/dto/model"
	"confgive/helper"
	"confgive/lib"
	"confgive/middleware"
	"confgive/pkg/response"
	"confgive/repository"
	"confgive/worker"
)

// Package-level collaborators, wired once from main via Init. Tests swap
// them for fakes.
var (
	Settings     config.PaymentSettings
	Orchestrator *lib.Orchestrator
	TapPay       *lib.TapPayClient
	Settlement   *lib.SettlementSubmitter
	Catalog      lib.MethodCatalog
)

// Init wires the payment stack.
func Init(settings config.PaymentSettings) {
	Settings = settings
	Orchestrator = lib.NewOrchestrator()
	TapPay = lib.NewTapPayClient(settings)
	Settlement = lib.NewSettlementSubmitter(settings)
	Catalog = repository.MethodCatalog{}
}

// providerFor builds the adapter for the selected payment type.
func providerFor(paymentType, deviceClass string) lib.Provider {
	switch paymentType {
	case model.PaymentTypeApplePay:
		return lib.NewApplePayProvider(TapPay, Settings.ApplePayMerchant, deviceClass)
	case model.PaymentTypeGooglePay:
		return lib.NewGooglePayProvider(TapPay, Settings.GooglePayMerchant, deviceClass)
	case model.PaymentTypeSamsungPay:
		return lib.NewSamsungPayProvider(TapPay, deviceClass)
	default:
		return lib.NewCreditCardProvider(TapPay)
	}
}

// CreateGiveSession runs the capability probe once and mints the session.
func CreateGiveSession(c *fiber.Ctx) error {
	span, _ := apm.StartSpan(c.Context(), "CreateGiveSession", "handler")
	defer span.End()

	var input dtohttp.CreateSessionRequest
	// body is optional; embedded webviews may forward the original agent
	_ = c.BodyParser(&input)

	userAgent := input.UserAgent
	if userAgent == "" {
		userAgent = c.Get("User-Agent")
	}

	probe := lib.ProbeCapabilities(Settings, userAgent, Catalog)
	state := Orchestrator.NewSession(probe)

	form := model.DefaultGiveForm()
	form.PaymentType = probe.DefaultPayment

	return response.Success(c, fiber.StatusOK, dtohttp.CreateSessionResponse{
		Token:             state.Token,
		DefaultPayment:    probe.DefaultPayment,
		DeviceClass:       probe.DeviceClass,
		Form:              form,
		ConfiguredWallets: probe.ConfiguredWallets,
	})
}

// EvaluateReadiness re-derives the readiness flags for a session. An
// invalid form forces every flag false without touching any provider.
func EvaluateReadiness(c *fiber.Ctx) error {
	span, spanCtx := apm.StartSpan(c.Context(), "EvaluateReadiness", "handler")
	defer span.End()

	var input dtohttp.ReadinessRequest
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid input")
	}
	if input.Token == "" {
		return response.Error(c, fiber.StatusBadRequest, "Missing session token")
	}

	state, err := Orchestrator.Session(input.Token)
	if err != nil {
		return response.Error(c, fiber.StatusNotFound, "Session not found or expired")
	}

	fieldErrors := helper.ValidateGiveForm(input.Form)
	valid := len(fieldErrors) == 0

	provider := providerFor(input.Form.PaymentType, state.DeviceClass)
	if cc, ok := provider.(*lib.CreditCardProvider); ok {
		cc.UpdateFieldStatus(input.CardFields.Number, input.CardFields.Expiry, input.CardFields.CCV)
	}

	state, alert := Orchestrator.EvaluateReadiness(spanCtx, state, valid, input.Form.Amount, provider)

	resp := dtohttp.ReadinessResponse{
		ApplePayReady:   state.Readiness.ApplePay,
		GooglePayReady:  state.Readiness.GooglePay,
		SamsungPayReady: state.Readiness.SamsungPay,
	}
	if alert != nil {
		resp.Alert = alert.Alert()
	}

	return response.Success(c, fiber.StatusOK, resp)
}

// Pay drives one submission end to end: validation gate, token acquisition
// through the selected adapter, settlement, reconciliation.
func Pay(c *fiber.Ctx) error {
	span, spanCtx := apm.StartSpan(c.Context(), "Pay", "handler")
	defer span.End()

	var input dtohttp.PayRequest
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid input")
	}
	if input.Token == "" {
		return response.Error(c, fiber.StatusBadRequest, "Missing session token")
	}

	state, err := Orchestrator.BeginSubmit(input.Token)
	switch {
	case errors.Is(err, lib.ErrSessionNotFound):
		return response.Error(c, fiber.StatusNotFound, "Session not found or expired")
	case errors.Is(err, lib.ErrSessionClosed):
		return response.Error(c, fiber.StatusConflict, "Session already completed")
	case errors.Is(err, lib.ErrSubmitInFlight):
		return response.Error(c, fiber.StatusTooManyRequests, "A submission is already in progress")
	case err != nil:
		return response.Error(c, fiber.StatusInternalServerError, "Session error")
	}

	// immutable form snapshot for this attempt
	form := input.Form

	fieldErrors := helper.ValidateGiveForm(form)
	if len(fieldErrors) > 0 {
		Orchestrator.Resolve(state, model.GiveStatusForm)
		return c.Status(fiber.StatusBadRequest).JSON(dtohttp.PayResponse{
			Status:      model.GiveStatusForm,
			FieldErrors: fieldErrors,
		})
	}

	provider := providerFor(form.PaymentType, state.DeviceClass)
	if cc, ok := provider.(*lib.CreditCardProvider); ok {
		cc.UpdateFieldStatus(input.CardFields.Number, input.CardFields.Expiry, input.CardFields.CCV)
	}

	provider.PrepareRequest(form.Amount)

	// wallets confirm availability right before acquisition; credit card
	// has no separate gesture
	if form.PaymentType != model.PaymentTypeCreditCard {
		if _, err := provider.CheckAvailability(spanCtx); err != nil {
			Orchestrator.Resolve(state, model.GiveStatusForm)
			var alertErr *lib.AlertError
			if errors.As(err, &alertErr) {
				middleware.PaymentCount.WithLabelValues(provider.Name(), "alert").Inc()
				return response.Alert(c, alertErr.Alert())
			}
			return response.Error(c, fiber.StatusBadGateway, "Provider unavailable")
		}
	}

	token, err := provider.AcquireToken(spanCtx)
	if err != nil {
		return resolveAcquireFailure(c, state, provider, err)
	}

	attemptID := uuid.New().String()
	recordAttempt(spanCtx, attemptID, state, form, token.LastFour)

	payload := lib.BuildPayload(token.Prime, form)
	result := Settlement.Submit(spanCtx, payload)

	if !result.Success {
		Orchestrator.Resolve(state, model.GiveStatusFail)
		finishAttempt(attemptID, state, form, token.LastFour, model.GiveStatusFail, result.FailReason)
		return c.Status(fiber.StatusOK).JSON(dtohttp.PayResponse{Status: model.GiveStatusFail})
	}

	Orchestrator.Resolve(state, model.GiveStatusSuccess)
	finishAttempt(attemptID, state, form, token.LastFour, model.GiveStatusSuccess, "")

	return c.Status(fiber.StatusOK).JSON(dtohttp.PayResponse{
		Status:               model.GiveStatusSuccess,
		RedirectURL:          Settings.RedirectURL,
		RedirectDelaySeconds: lib.RedirectDelaySeconds,
	})
}

// resolveAcquireFailure maps a token acquisition error to its outcome:
// invalid card fields and provider alerts keep the form recoverable, a
// rejected card prime is terminal.
func resolveAcquireFailure(c *fiber.Ctx, state lib.SessionState, provider lib.Provider, err error) error {
	var fieldErr *lib.FieldStatusError
	if errors.As(err, &fieldErr) {
		Orchestrator.Resolve(state, model.GiveStatusForm)
		return c.Status(fiber.StatusBadRequest).JSON(dtohttp.PayResponse{
			Status:      model.GiveStatusForm,
			FieldErrors: fieldErr.Messages,
		})
	}

	var alertErr *lib.AlertError
	if errors.As(err, &alertErr) {
		Orchestrator.Resolve(state, model.GiveStatusForm)
		middleware.PaymentCount.WithLabelValues(provider.Name(), "alert").Inc()
		return response.Alert(c, alertErr.Alert())
	}

	Orchestrator.Resolve(state, model.GiveStatusFail)
	middleware.PaymentCount.WithLabelValues(provider.Name(), "fail").Inc()
	return c.Status(fiber.StatusOK).JSON(dtohttp.PayResponse{Status: model.GiveStatusFail})
}

func recordAttempt(ctx context.Context, attemptID string, state lib.SessionState, form model.GiveForm, lastFour string) {
	now := time.Now()
	attempt := model.GiveAttempt{
		ID:           attemptID,
		SessionToken: state.Token,
		PaymentType:  helper.NormalizePaymentType(form.PaymentType),
		Amount:       form.Amount,
		Email:        form.Email,
		Phone:        helper.ComposePhoneCode(form.CountryCode) + form.PhoneNumber,
		CardLastFour: lastFour,
		Status:       model.GiveStatusForm,
		DeviceClass:  state.DeviceClass,
		RequestDate:  &now,
	}
	if err := repository.InsertGiveAttempt(ctx, attempt); err != nil {
		log.Println("failed to record give attempt:", err)
	}
}

func finishAttempt(attemptID string, state lib.SessionState, form model.GiveForm, lastFour, status, failReason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repository.UpdateGiveAttemptStatus(ctx, attemptID, status, failReason); err != nil {
		log.Println("failed to finish give attempt:", err)
	}

	middleware.PaymentCount.WithLabelValues(helper.NormalizePaymentType(form.PaymentType), status).Inc()

	worker.EnqueueNotify(worker.NotifyJob{
		AttemptID:    attemptID,
		PaymentType:  helper.NormalizePaymentType(form.PaymentType),
		Amount:       form.Amount,
		Status:       status,
		CardLastFour: lastFour,
		FailReason:   failReason,
	})
}
