package templates

// Option is one choice in a select field.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field is one form control. Options turn it into a select.
type Field struct {
	Name     string
	LabelKey string
	Type     string
	Options  []Option
}

// FormView describes a POST form.
type FormView struct {
	HeadingKey string
	Action     string
	Fields     []Field
}

func inputType(field Field) string {
	if field.Type == "" {
		return "text"
	}
	return field.Type
}
