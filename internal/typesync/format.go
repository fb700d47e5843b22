package typesync

import "strings"

const (
	fullyInstalledHeading = "The following packages were fully installed"
	lackTypesHeading      = "The following packages were installed, but lack types"
)

// FormatMessage renders heading followed by one bullet per name.
func FormatMessage(heading string, names []ModuleName) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(heading)
	b.WriteString(":\n")
	for _, n := range names {
		b.WriteString("  * ")
		b.WriteString(n)
		b.WriteString("\n")
	}
	return b.String()
}
