// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "strconv"

const (
	Root                       = "/"
	About                      = "/about"
	Education                  = "/education"
	MicroInvesting             = "/micro-investing"
	Diaspora                   = "/diaspora"
	Health                     = "/up"
	Register                   = "/register"
	RegisterWorkshop           = "/register-workshop"
	Admin                      = "/admin"
	AdminDeletePrefix          = "/admin/delete/"
	AdminDeleteUserPattern     = AdminDeletePrefix + "user/{id}"
	AdminDeleteWorkshopPattern = AdminDeletePrefix + "workshop/{id}"
	AdminExportPrefix          = "/admin/export/"
	AdminExportRegistrants     = AdminExportPrefix + "registrants.csv"
	AdminExportWorkshops       = AdminExportPrefix + "workshop-registrations.csv"

	// IDPathValue names the wildcard in the admin delete patterns.
	IDPathValue = "id"
)

// AdminDeleteUser returns the delete route for one registrant.
func AdminDeleteUser(id int64) string {
	return AdminDeletePrefix + "user/" + strconv.FormatInt(id, 10)
}

// AdminDeleteWorkshop returns the delete route for one workshop sign-up.
func AdminDeleteWorkshop(id int64) string {
	return AdminDeletePrefix + "workshop/" + strconv.FormatInt(id, 10)
}
