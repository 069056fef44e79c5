package prompt

import "text/template"

// DefaultPolicy is the built-in HR knowledge base included in every
// composed prompt. Deployments override it via configuration.
const DefaultPolicy = `• Employees get 24 paid leave days per year.
• Remote work is allowed up to 2 days per week.
• Working hours are 9 AM-6 PM, Monday to Friday.
• UK public holidays are observed.
• Leave eligibility starts after 3 months.
• Health insurance is provided by Bupa.
• For support, contact hr@konantech.com or your manager.`

var systemTemplate = template.Must(template.New("system").Parse(`You are an HR assistant.
Use the HR policy and resume (if any) to answer clearly and professionally.

HR POLICY:
{{.Policy}}
{{- if .Resume}}

RESUME:
{{.Resume}}
{{- end}}`))
