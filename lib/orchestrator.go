package lib

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"confgive/dto/model"
)

var (
	ErrSessionNotFound = errors.New("give session not found or expired")
	ErrSessionClosed   = errors.New("give session already reached a terminal state")
	ErrSubmitInFlight  = errors.New("a submission is already in progress for this session")
)

// Readiness holds the three wallet readiness flags. At most the selected
// provider's flag may be true at any instant.
type Readiness struct {
	ApplePay   bool
	GooglePay  bool
	SamsungPay bool
}

// SessionState is the full state of one give session. All mutation goes
// through Transition so the rules stay in one place.
type SessionState struct {
	Token           string
	DeviceClass     string
	Status          string
	SelectedPayment string
	Amount          int
	FormValid       bool
	Readiness       Readiness
	InFlight        bool
}

// Event is a state machine input.
type Event interface{ isEvent() }

// FormChanged fires whenever validity, the selected provider or the amount
// changes. Readiness is always reset before being re-derived.
type FormChanged struct {
	Valid       bool
	PaymentType string
	Amount      int
}

// SetupResolved is the asynchronous outcome of a provider readiness setup.
type SetupResolved struct {
	PaymentType string
	Ready       bool
}

// SubmitStarted marks the beginning of a token acquisition attempt.
type SubmitStarted struct{}

// SubmitResolved ends an attempt: success and fail are terminal, form means
// a recoverable provider alert.
type SubmitResolved struct {
	Status string
}

func (FormChanged) isEvent()    {}
func (SetupResolved) isEvent()  {}
func (SubmitStarted) isEvent()  {}
func (SubmitResolved) isEvent() {}

// Transition is the pure state transition function. It never touches the
// cache or any provider; callers persist the returned state.
func Transition(state SessionState, event Event) SessionState {
	switch e := event.(type) {
	case FormChanged:
		state.FormValid = e.Valid
		state.SelectedPayment = e.PaymentType
		state.Amount = e.Amount
		state.Readiness = Readiness{}

	case SetupResolved:
		if !state.FormValid || e.PaymentType != state.SelectedPayment {
			return state
		}
		state.Readiness = Readiness{}
		switch e.PaymentType {
		case model.PaymentTypeApplePay:
			state.Readiness.ApplePay = e.Ready
		case model.PaymentTypeGooglePay:
			state.Readiness.GooglePay = e.Ready
		case model.PaymentTypeSamsungPay:
			state.Readiness.SamsungPay = e.Ready
		}

	case SubmitStarted:
		if state.Status != model.GiveStatusForm || state.InFlight {
			return state
		}
		state.InFlight = true

	case SubmitResolved:
		state.InFlight = false
		if state.Status != model.GiveStatusForm {
			return state
		}
		if e.Status == model.GiveStatusSuccess || e.Status == model.GiveStatusFail {
			state.Status = e.Status
		}
	}

	return state
}

// Orchestrator owns the session store and runs provider readiness setup.
type Orchestrator struct {
	mu       sync.Mutex
	sessions *cache.Cache
}

func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		sessions: cache.New(30*time.Minute, 35*time.Minute),
	}
}

// NewSession mints a session from a capability probe result. Runs once per
// donor session.
func (o *Orchestrator) NewSession(probe ProbeResult) SessionState {
	state := SessionState{
		Token:           uuid.New().String(),
		DeviceClass:     probe.DeviceClass,
		Status:          model.GiveStatusForm,
		SelectedPayment: probe.DefaultPayment,
		Amount:          1000,
	}
	o.sessions.Set(state.Token, state, cache.DefaultExpiration)
	return state
}

// Session loads a session by token.
func (o *Orchestrator) Session(token string) (SessionState, error) {
	cached, found := o.sessions.Get(token)
	if !found {
		return SessionState{}, ErrSessionNotFound
	}
	return cached.(SessionState), nil
}

// Save persists a session state back to the store.
func (o *Orchestrator) Save(state SessionState) {
	o.sessions.Set(state.Token, state, cache.DefaultExpiration)
}

// BeginSubmit applies the in-flight guard atomically: the second caller
// gets ErrSubmitInFlight until the first attempt resolves.
func (o *Orchestrator) BeginSubmit(token string) (SessionState, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.Session(token)
	if err != nil {
		return SessionState{}, err
	}
	if state.Status != model.GiveStatusForm {
		return state, ErrSessionClosed
	}
	if state.InFlight {
		return state, ErrSubmitInFlight
	}

	state = Transition(state, SubmitStarted{})
	o.Save(state)
	return state, nil
}

// Resolve applies a submission outcome and persists it.
func (o *Orchestrator) Resolve(state SessionState, status string) SessionState {
	state = Transition(state, SubmitResolved{Status: status})
	o.Save(state)
	return state
}

// EvaluateReadiness re-derives the readiness flags for the session. An
// invalid form forces everything false without touching the provider;
// otherwise the selected provider's setup runs and resolves Ready or an
// alert. Re-running with an unchanged input yields the same flags.
func (o *Orchestrator) EvaluateReadiness(ctx context.Context, state SessionState, valid bool, amount int, provider Provider) (SessionState, *AlertError) {
	state = Transition(state, FormChanged{
		Valid:       valid,
		PaymentType: provider.Name(),
		Amount:      amount,
	})

	if !valid {
		o.Save(state)
		return state, nil
	}

	// credit card has no separate ready gesture; the pay button submit is
	// the trigger
	if provider.Name() == model.PaymentTypeCreditCard {
		o.Save(state)
		return state, nil
	}

	provider.PrepareRequest(state.Amount)
	availability, err := provider.CheckAvailability(ctx)

	ready := err == nil && availability.Supported && availability.Payable
	state = Transition(state, SetupResolved{PaymentType: provider.Name(), Ready: ready})
	o.Save(state)

	if err != nil {
		var alert *AlertError
		if errors.As(err, &alert) {
			return state, alert
		}
	}
	return state, nil
}
