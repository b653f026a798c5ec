package vanilla

// ChromeClass is a semantic CSS class applied by the default templates.
type ChromeClass string

const (
	ClassApp             ChromeClass = "formdesk"
	ClassMessage         ChromeClass = "formdesk-message"
	ClassSelector        ChromeClass = "formdesk-selector"
	ClassForm            ChromeClass = "formdesk-form"
	ClassField           ChromeClass = "formdesk-field"
	ClassFieldError      ChromeClass = "formdesk-field--error"
	ClassLabel           ChromeClass = "formdesk-label"
	ClassMarker          ChromeClass = "formdesk-marker"
	ClassInput           ChromeClass = "formdesk-input"
	ClassSelect          ChromeClass = "formdesk-select"
	ClassHelp            ChromeClass = "formdesk-help"
	ClassError           ChromeClass = "formdesk-error"
	ClassProgress        ChromeClass = "formdesk-progress"
	ClassProgressBar     ChromeClass = "formdesk-progress__bar"
	ClassProgressLabel   ChromeClass = "formdesk-progress__label"
	ClassActions         ChromeClass = "formdesk-actions"
	ClassButton          ChromeClass = "formdesk-button"
	ClassButtonSecondary ChromeClass = "formdesk-button--secondary"
	ClassButtonDanger    ChromeClass = "formdesk-button--danger"
	ClassTable           ChromeClass = "formdesk-table"
	ClassRowEditing      ChromeClass = "formdesk-row--editing"
)

// ClassTokenPrefix marks theme tokens that override a chrome class, for
// example "class.fieldError".
const ClassTokenPrefix = "class."

// DefaultClasses returns the chrome classes keyed by the names templates use.
func DefaultClasses() map[string]string {
	return map[string]string{
		"app":             string(ClassApp),
		"message":         string(ClassMessage),
		"selector":        string(ClassSelector),
		"form":            string(ClassForm),
		"field":           string(ClassField),
		"fieldError":      string(ClassFieldError),
		"label":           string(ClassLabel),
		"marker":          string(ClassMarker),
		"input":           string(ClassInput),
		"select":          string(ClassSelect),
		"help":            string(ClassHelp),
		"error":           string(ClassError),
		"progress":        string(ClassProgress),
		"progressBar":     string(ClassProgressBar),
		"progressLabel":   string(ClassProgressLabel),
		"actions":         string(ClassActions),
		"button":          string(ClassButton),
		"buttonSecondary": string(ClassButtonSecondary),
		"buttonDanger":    string(ClassButtonDanger),
		"table":           string(ClassTable),
		"rowEditing":      string(ClassRowEditing),
	}
}
