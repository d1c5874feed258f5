package schema

import (
	"regexp"
)

const (
	componentPrefix    = "Component_"
	subcomponentPrefix = "Subcomponent_"
)

// componentStartRegex matches component and subcomponent declarations at the start of a line.
// Captures the keyword and the name, which must be a valid GraphQL identifier.
var componentStartRegex = regexp.MustCompile(`(?m)^(component|subcomponent)\s+(\w+)`)

// PreprocessGraphQL rewrites `component X` and `subcomponent X` blocks into valid
// GraphQL `input` definitions so their arguments may carry default values.
func PreprocessGraphQL(input string) string {
	return componentStartRegex.ReplaceAllStringFunc(input, func(match string) string {
		groups := componentStartRegex.FindStringSubmatch(match)
		prefix := componentPrefix
		if groups[1] == "subcomponent" {
			prefix = subcomponentPrefix
		}
		return "input " + prefix + groups[2]
	})
}
