package evidence

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes every element and attribute; search APIs embed <b> and
// friends inside titles and descriptions.
var stripPolicy = bluemonday.StrictPolicy()

// StripMarkup removes HTML markup and entity escapes from provider text.
func StripMarkup(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}
