package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.elastic.co/apm"

	"confgive/dto/model"
	"confgive/helper"
	"confgive/lib"
)

// Background color cues for the terminal views.
const (
	successBackground = "#F1D984"
	failBackground    = "#227A85"
)

// StatusPage renders the view matching the session's give status: the form,
// the success page (with the delayed redirect baked in) or the fail page.
func StatusPage(c *fiber.Ctx) error {
	span, _ := apm.StartSpan(c.Context(), "StatusPage", "handler")
	defer span.End()

	token := c.Params("token")

	state, err := Orchestrator.Session(token)
	if err != nil {
		return c.Render("notfound", fiber.Map{})
	}

	switch state.Status {
	case model.GiveStatusSuccess:
		return c.Render("success", fiber.Map{
			"Background":   successBackground,
			"RedirectURL":  Settings.RedirectURL,
			"RedirectWait": lib.RedirectDelaySeconds,
		})
	case model.GiveStatusFail:
		return c.Render("fail", fiber.Map{
			"Background": failBackground,
		})
	}

	return c.Render("give", fiber.Map{
		"Token":          state.Token,
		"PaymentType":    state.SelectedPayment,
		"PaymentTypeStr": helper.PaymentTypeLabel(state.SelectedPayment),
		"Amount":         state.Amount,
	})
}
