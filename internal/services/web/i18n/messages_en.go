package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "site.name", "Cyntas Wealth Tech")
	message.SetString(lang, "title.page", "%s | Cyntas Wealth Tech")
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.about", "About")
	message.SetString(lang, "nav.education", "Education")
	message.SetString(lang, "nav.micro_investing", "Micro-Investing")
	message.SetString(lang, "nav.diaspora", "Diaspora")
	message.SetString(lang, "nav.register", "Register")
	message.SetString(lang, "footer.copyright", "Cyntas Wealth Tech, Zimbabwe")

	// Informational pages
	message.SetString(lang, "home.title", "Home")
	message.SetString(lang, "home.heading", "Building wealth in Zimbabwe, one investment at a time")
	message.SetString(lang, "home.lead", "Cyntas connects local and diaspora investors with vetted opportunities in agriculture, renewable energy, small business and property.")
	message.SetString(lang, "home.cta", "Register your interest")
	message.SetString(lang, "about.title", "About")
	message.SetString(lang, "about.heading", "About Cyntas")
	message.SetString(lang, "about.lead", "We make investing accessible through financial education, micro-investing and diaspora partnerships.")
	message.SetString(lang, "education.title", "Education")
	message.SetString(lang, "education.heading", "Financial education workshops")
	message.SetString(lang, "education.lead", "Learn the fundamentals before you invest. Workshops run in person and online.")
	message.SetString(lang, "education.cta", "Register for a workshop")
	message.SetString(lang, "micro_investing.title", "Micro-Investing")
	message.SetString(lang, "micro_investing.heading", "Start small, grow steadily")
	message.SetString(lang, "micro_investing.lead", "Pool modest contributions into productive local ventures.")
	message.SetString(lang, "micro_investing.cta", "Start micro-investing")
	message.SetString(lang, "diaspora.title", "Diaspora")
	message.SetString(lang, "diaspora.heading", "Invest back home from anywhere")
	message.SetString(lang, "diaspora.lead", "Diaspora investors can back Zimbabwean projects with transparent reporting.")
	message.SetString(lang, "diaspora.cta", "Register as a diaspora investor")

	// Forms
	message.SetString(lang, "register.title", "Register")
	message.SetString(lang, "register.heading", "Register your interest")
	message.SetString(lang, "register_workshop.title", "Workshop Registration")
	message.SetString(lang, "register_workshop.heading", "Register for a workshop")
	message.SetString(lang, "form.first_name", "First name")
	message.SetString(lang, "form.last_name", "Last name")
	message.SetString(lang, "form.email", "Email")
	message.SetString(lang, "form.phone", "Phone")
	message.SetString(lang, "form.location", "Location")
	message.SetString(lang, "form.interest_area", "Interest area")
	message.SetString(lang, "form.investment_level", "Investment level")
	message.SetString(lang, "form.workshop_type", "Workshop")
	message.SetString(lang, "form.payment_method", "Payment method")
	message.SetString(lang, "form.choose", "Choose one")
	message.SetString(lang, "form.submit", "Submit")

	// Admin
	message.SetString(lang, "admin.title", "Admin")
	message.SetString(lang, "admin.heading", "Registrations")
	message.SetString(lang, "admin.registrants", "Registrants (%d)")
	message.SetString(lang, "admin.workshop_registrants", "Workshop registrations (%d)")
	message.SetString(lang, "admin.empty", "No records yet.")
	message.SetString(lang, "admin.id", "ID")
	message.SetString(lang, "admin.name", "Name")
	message.SetString(lang, "admin.registered", "Registered")
	message.SetString(lang, "admin.actions", "Actions")
	message.SetString(lang, "admin.delete", "Delete")
	message.SetString(lang, "admin.export_csv", "Export CSV")

	// Errors
	message.SetString(lang, "error.not_found.title", "Page not found")
	message.SetString(lang, "error.not_found.body", "The page you requested does not exist.")
	message.SetString(lang, "error.generic.title", "Something went wrong")
	message.SetString(lang, "error.generic.body", "Please try again later.")

	// Flash notices
	message.SetString(lang, "flash.register.success", "Registration successful! We will contact you with opportunities matching your profile.")
	message.SetString(lang, "flash.register_workshop.success", "Workshop registration successful! We will send you details shortly.")
	message.SetString(lang, "flash.registration.missing_field", "Registration failed: %s is required")
	message.SetString(lang, "flash.registration.failed", "Registration failed: please try again later")
	message.SetString(lang, "flash.admin.load_failed", "Error loading admin page")
	message.SetString(lang, "flash.admin.registrant_deleted", "User %s deleted successfully")
	message.SetString(lang, "flash.admin.workshop_registrant_deleted", "Workshop registration %s deleted successfully")
	message.SetString(lang, "flash.admin.registrant_delete_failed", "Error deleting user")
	message.SetString(lang, "flash.admin.workshop_registrant_delete_failed", "Error deleting workshop")
	message.SetString(lang, "flash.admin.export_failed", "Error exporting registrations")
}
