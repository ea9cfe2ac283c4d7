package templates

import (
	"strconv"
	"time"

	routepath "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/routepath"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage"
)

const registeredAtLayout = "2006-01-02 15:04"

// AdminView carries both registration listings, newest first.
type AdminView struct {
	Registrants         []storage.Registrant
	WorkshopRegistrants []storage.WorkshopRegistrant
}

// listingView is one admin table, flattened for rendering.
type listingView struct {
	anchor     string
	heading    string
	exportHref string
	columnKeys []string
	rows       []rowView
}

type rowView struct {
	id             string
	name           string
	values         []string
	registeredISO  string
	registeredText string
	deleteAction   string
}

func registrantListing(registrants []storage.Registrant, loc Localizer) listingView {
	listing := listingView{
		anchor:     "registrants",
		heading:    T(loc, "admin.registrants", len(registrants)),
		exportHref: routepath.AdminExportRegistrants,
		columnKeys: []string{"form.email", "form.phone", "form.location", "form.interest_area", "form.investment_level"},
	}
	for _, r := range registrants {
		listing.rows = append(listing.rows, newRowView(
			r.ID, r.FirstName+" "+r.LastName, r.RegistrationDate, routepath.AdminDeleteUser(r.ID),
			r.Email, r.Phone, r.Location, r.InterestArea, r.InvestmentLevel,
		))
	}
	return listing
}

func workshopListing(registrants []storage.WorkshopRegistrant, loc Localizer) listingView {
	listing := listingView{
		anchor:     "workshop-registrants",
		heading:    T(loc, "admin.workshop_registrants", len(registrants)),
		exportHref: routepath.AdminExportWorkshops,
		columnKeys: []string{"form.email", "form.phone", "form.workshop_type", "form.payment_method"},
	}
	for _, r := range registrants {
		listing.rows = append(listing.rows, newRowView(
			r.ID, r.FirstName+" "+r.LastName, r.RegistrationDate, routepath.AdminDeleteWorkshop(r.ID),
			r.Email, r.Phone, r.WorkshopType, r.PaymentMethod,
		))
	}
	return listing
}

func newRowView(id int64, name string, registeredAt time.Time, deleteAction string, values ...string) rowView {
	row := rowView{
		id:           strconv.FormatInt(id, 10),
		name:         name,
		values:       values,
		deleteAction: deleteAction,
	}
	if !registeredAt.IsZero() {
		row.registeredISO = registeredAt.UTC().Format(time.RFC3339)
		row.registeredText = registeredAt.UTC().Format(registeredAtLayout)
	}
	return row
}
