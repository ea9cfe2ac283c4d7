package registration

import (
	"net/url"
	"strings"

	webtemplates "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/templates"
)

// choice pairs a short query code with the stored display value.
type choice struct {
	code  string
	value string
}

var interestAreas = []choice{
	{code: "agriculture", value: "Agriculture"},
	{code: "renewable", value: "Renewable Energy"},
	{code: "business", value: "Small Business"},
	{code: "property", value: "Property Development"},
	{code: "commercial_agriculture", value: "Commercial Agriculture"},
	{code: "industrial", value: "Industrial Development"},
}

var investmentLevels = []choice{
	{code: "starter", value: "Starter ($10 - $100)"},
	{code: "growth", value: "Growth ($100 - $1,000)"},
	{code: "diaspora", value: "Diaspora ($1,000+)"},
}

var workshopTypes = []choice{
	{code: "basic", value: "Basic Financial Literacy - $15"},
	{code: "agriculture", value: "Agricultural Investment Basics - $25"},
	{code: "advanced", value: "Advanced Investment Strategies - $50"},
}

var paymentMethods = []choice{
	{code: "ecocash", value: "EcoCash"},
	{code: "bank", value: "Bank Transfer"},
	{code: "card", value: "Card"},
	{code: "cash", value: "Cash on Arrival"},
}

// registerPrefill maps ?interest= and ?type=diaspora to preselected values.
func registerPrefill(query url.Values) (interest string, level string) {
	interest = lookupChoice(interestAreas, query.Get("interest"))
	if strings.EqualFold(strings.TrimSpace(query.Get("type")), "diaspora") {
		level = lookupChoice(investmentLevels, "diaspora")
	}
	return interest, level
}

// workshopPrefill maps ?workshop= to a preselected workshop.
func workshopPrefill(query url.Values) string {
	return lookupChoice(workshopTypes, query.Get("workshop"))
}

func lookupChoice(choices []choice, code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	for _, c := range choices {
		if c.code == code {
			return c.value
		}
	}
	return ""
}

func options(choices []choice, selected string) []webtemplates.Option {
	out := make([]webtemplates.Option, 0, len(choices))
	for _, c := range choices {
		out = append(out, webtemplates.Option{Value: c.value, Label: c.value, Selected: c.value == selected})
	}
	return out
}

func registerFormView(action string, query url.Values) webtemplates.FormView {
	interest, level := registerPrefill(query)
	return webtemplates.FormView{
		HeadingKey: "register.heading",
		Action:     action,
		Fields: []webtemplates.Field{
			{Name: "first_name", LabelKey: "form.first_name"},
			{Name: "last_name", LabelKey: "form.last_name"},
			{Name: "email", LabelKey: "form.email", Type: "email"},
			{Name: "phone", LabelKey: "form.phone", Type: "tel"},
			{Name: "location", LabelKey: "form.location"},
			{Name: "interest_area", LabelKey: "form.interest_area", Options: options(interestAreas, interest)},
			{Name: "investment_level", LabelKey: "form.investment_level", Options: options(investmentLevels, level)},
		},
	}
}

func workshopFormView(action string, query url.Values) webtemplates.FormView {
	return webtemplates.FormView{
		HeadingKey: "register_workshop.heading",
		Action:     action,
		Fields: []webtemplates.Field{
			{Name: "first_name", LabelKey: "form.first_name"},
			{Name: "last_name", LabelKey: "form.last_name"},
			{Name: "email", LabelKey: "form.email", Type: "email"},
			{Name: "phone", LabelKey: "form.phone", Type: "tel"},
			{Name: "workshop_type", LabelKey: "form.workshop_type", Options: options(workshopTypes, workshopPrefill(query))},
			{Name: "payment_method", LabelKey: "form.payment_method", Options: options(paymentMethods, "")},
		},
	}
}
