package judgment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/factlens/factscore/src/factcheck/types"
)

func backfillSet() types.EvidenceSet {
	return types.EvidenceSet{
		types.CategoryNews: {
			{Category: types.CategoryNews, Title: "대통령 발언 전문 공개", URL: "https://news.example.com/a1", Outlet: ""},
		},
		types.CategoryEncyclopedia: {
			{Category: types.CategoryEncyclopedia, Title: "서울신학대학교", URL: "https://encyc.example.com/e1"},
		},
		types.CategoryVideo: {
			{Category: types.CategoryVideo, Title: "발언 분석 영상", URL: "https://www.youtube.com/watch?v=abc", Outlet: "뉴스채널"},
		},
	}
}

func TestReconcileSourcesBackfillsByTitle(t *testing.T) {
	j := &types.Judgment{Sources: []types.Source{
		{Title: "대통령 발언 전문", URL: "#"},
		{Title: "서울신학대학교", URL: ""},
		{Title: "발언 분석 영상", URL: ""},
	}}

	ReconcileSources(j, backfillSet())

	assert.Equal(t, "https://news.example.com/a1", j.Sources[0].URL)
	assert.Equal(t, "news", j.Sources[0].Type)
	assert.Equal(t, "https://encyc.example.com/e1", j.Sources[1].URL)
	assert.Equal(t, "encyclopedia", j.Sources[1].Type)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", j.Sources[2].URL)
	assert.Equal(t, "뉴스채널", j.Sources[2].Outlet)
}

func TestReconcileSourcesPrefersNewsOrder(t *testing.T) {
	set := types.EvidenceSet{
		types.CategoryNews: {
			{Category: types.CategoryNews, Title: "공통 제목", URL: "https://news.example.com/n"},
		},
		types.CategoryEncyclopedia: {
			{Category: types.CategoryEncyclopedia, Title: "공통 제목", URL: "https://encyc.example.com/e"},
		},
	}
	j := &types.Judgment{Sources: []types.Source{{Title: "공통 제목"}}}

	ReconcileSources(j, set)
	assert.Equal(t, "https://news.example.com/n", j.Sources[0].URL)
}

func TestReconcileSourcesLeavesResolvedAndUnmatched(t *testing.T) {
	j := &types.Judgment{Sources: []types.Source{
		{Title: "대통령 발언 전문", URL: "https://already.example.com/x"},
		{Title: "전혀 무관한 제목", URL: ""},
		{Title: "", URL: ""},
	}}

	ReconcileSources(j, backfillSet())

	assert.Equal(t, "https://already.example.com/x", j.Sources[0].URL)
	assert.Equal(t, "", j.Sources[1].URL)
	assert.Equal(t, "", j.Sources[2].URL)
}
