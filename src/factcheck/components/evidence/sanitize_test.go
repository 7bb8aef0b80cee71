package evidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"tags removed", "<b>속보</b> 대통령 발언", "속보 대통령 발언"},
		{"entities decoded", "&quot;인용&quot; &amp; 보도", `"인용" & 보도`},
		{"script dropped", `<script>alert(1)</script>제목`, "제목"},
		{"whitespace trimmed", "  제목  ", "제목"},
		{"plain text untouched", "그대로", "그대로"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripMarkup(tc.in))
		})
	}
}
