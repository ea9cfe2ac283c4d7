package templates

// InfoView describes a fixed informational page.
type InfoView struct {
	HeadingKey string
	LeadKey    string
	CTAKey     string
	CTAHref    string
}
