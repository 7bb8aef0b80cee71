package judgment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/factlens/factscore/src/factcheck/types"
)

func TestBuildContextSectionOrder(t *testing.T) {
	set := types.EvidenceSet{
		types.CategoryNews:         {{Category: types.CategoryNews, Title: "뉴스 제목"}},
		types.CategoryEncyclopedia: {{Category: types.CategoryEncyclopedia, Title: "백과 항목"}},
		types.CategoryVideo:        {{Category: types.CategoryVideo, Title: "영상 제목", Outlet: "채널"}},
		types.CategoryFactCheck:    {{Category: types.CategoryFactCheck, Title: "검증된 주장", Publisher: "검증기관", Rating: "False"}},
	}

	out := BuildContext(set)

	encyc := strings.Index(out, "Encyclopedia results")
	news := strings.Index(out, "News search results")
	video := strings.Index(out, "Video search results")
	registry := strings.Index(out, "Fact-check registry results")
	assert.True(t, encyc >= 0 && encyc < news, "encyclopedia before news")
	assert.True(t, news < video, "news before video")
	assert.True(t, video < registry, "video before fact-check")

	assert.Contains(t, out, "뉴스 제목")
	assert.Contains(t, out, "Rating: False")
	assert.Contains(t, out, "Channel: 채널")
}

func TestBuildContextOmitsEmptyCategories(t *testing.T) {
	set := types.EvidenceSet{
		types.CategoryNews: {{Category: types.CategoryNews, Title: "뉴스 제목"}},
	}

	out := BuildContext(set)
	assert.Contains(t, out, "News search results")
	assert.NotContains(t, out, "Encyclopedia results")
	assert.NotContains(t, out, "Video search results")
	assert.NotContains(t, out, "Fact-check registry results")
}

func TestBuildContextCapsRegistryEntries(t *testing.T) {
	var items []types.EvidenceItem
	for i := 0; i < 8; i++ {
		items = append(items, types.EvidenceItem{
			Category: types.CategoryFactCheck,
			Title:    fmt.Sprintf("주장 %d", i+1),
		})
	}
	out := BuildContext(types.EvidenceSet{types.CategoryFactCheck: items})

	assert.Contains(t, out, "[Fact-check 5]")
	assert.NotContains(t, out, "[Fact-check 6]")
}
