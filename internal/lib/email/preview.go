package email

import "fmt"

// PreviewData contains sample template data for local preview/testing.
var PreviewData = map[Template]any{
	TemplateContact: NewContactData(
		"3f1c1f0e-8d5b-4a59-9f0e-2b1f8c6d7a10",
		"John",
		"Doe",
		"john@example.com",
		"+1 555 010 0000",
		"Hi!\nI enjoyed your talk and would like to chat.",
	),
}

// Preview renders name with its PreviewData sample.
func Preview(name Template) (html string, text string, err error) {
	data, ok := PreviewData[name]
	if !ok {
		return "", "", fmt.Errorf("no preview data for template %q", name)
	}
	return render(name, data)
}
