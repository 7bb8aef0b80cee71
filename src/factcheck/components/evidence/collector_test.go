package evidence

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/factlens/factscore/src/factcheck/types"
)

type fixedAdmitter bool

func (a fixedAdmitter) Admit(context.Context) bool { return bool(a) }

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

const newsBody = `{"total":2,"items":[
	{"title":"<b>연합뉴스</b> 단독 보도","originallink":"https://news.example.com/1","link":"https://mirror.example.com/1","pubDate":"Mon, 01 Sep 2025 09:00:00 +0900"},
	{"title":"후속 보도","link":"https://mirror.example.com/2"}
]}`

func TestCollectNewsFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusInternalServerError, `{}`))
	defer srv.Close()

	rc := resty.New()
	news := NewNewsClient(rc, srv.URL, "id", "secret")
	c := NewCollector(news, nil, nil, nil, nil, zap.NewNop().Sugar())

	set, degraded, err := c.Collect(context.Background(), "테스트 주장", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary provider")
	assert.Nil(t, set)
	assert.Nil(t, degraded)
}

func TestCollectOptionalFailuresDegrade(t *testing.T) {
	newsSrv := httptest.NewServer(jsonHandler(http.StatusOK, newsBody))
	defer newsSrv.Close()
	brokenSrv := httptest.NewServer(jsonHandler(http.StatusBadGateway, `{}`))
	defer brokenSrv.Close()

	rc := resty.New()
	news := NewNewsClient(rc, newsSrv.URL, "id", "secret")
	encyc := NewEncyclopediaClient(rc, brokenSrv.URL, "id", "secret")
	registry := NewRegistryClient(rc, brokenSrv.URL, "key")
	c := NewCollector(news, encyc, registry, nil, nil, zap.NewNop().Sugar())

	set, degraded, err := c.Collect(context.Background(), "테스트 주장", false)
	require.NoError(t, err)

	require.Len(t, set[types.CategoryNews], 2)
	assert.Equal(t, "연합뉴스 단독 보도", set[types.CategoryNews][0].Title)
	assert.Equal(t, "https://news.example.com/1", set[types.CategoryNews][0].URL)
	assert.Equal(t, "https://mirror.example.com/2", set[types.CategoryNews][1].URL)

	require.Len(t, degraded, 2)
	cats := map[types.Category]bool{}
	for _, d := range degraded {
		cats[d.Category] = true
	}
	assert.True(t, cats[types.CategoryEncyclopedia])
	assert.True(t, cats[types.CategoryFactCheck])
}

func TestCollectQuotaDeniedSkipsVideoCall(t *testing.T) {
	newsSrv := httptest.NewServer(jsonHandler(http.StatusOK, newsBody))
	defer newsSrv.Close()

	var videoCalls int64
	videoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&videoCalls, 1)
		jsonHandler(http.StatusOK, `{"items":[]}`)(w, r)
	}))
	defer videoSrv.Close()

	rc := resty.New()
	news := NewNewsClient(rc, newsSrv.URL, "id", "secret")
	video := NewVideoClient(rc, videoSrv.URL, videoSrv.URL, "key", 0)
	c := NewCollector(news, nil, nil, video, fixedAdmitter(false), zap.NewNop().Sugar())

	set, degraded, err := c.Collect(context.Background(), "테스트 주장", true)
	require.NoError(t, err)
	assert.Zero(t, atomic.LoadInt64(&videoCalls))
	assert.Nil(t, set[types.CategoryVideo])

	require.Len(t, degraded, 1)
	assert.Equal(t, types.CategoryVideo, degraded[0].Category)
	assert.Equal(t, "daily video quota exhausted", degraded[0].Reason)
}

func TestCollectVideoExcludedWhenNotRequested(t *testing.T) {
	newsSrv := httptest.NewServer(jsonHandler(http.StatusOK, newsBody))
	defer newsSrv.Close()

	var videoCalls int64
	videoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&videoCalls, 1)
		jsonHandler(http.StatusOK, `{"items":[]}`)(w, r)
	}))
	defer videoSrv.Close()

	rc := resty.New()
	news := NewNewsClient(rc, newsSrv.URL, "id", "secret")
	video := NewVideoClient(rc, videoSrv.URL, videoSrv.URL, "key", 0)
	c := NewCollector(news, nil, nil, video, fixedAdmitter(true), zap.NewNop().Sugar())

	set, degraded, err := c.Collect(context.Background(), "테스트 주장", false)
	require.NoError(t, err)
	assert.Zero(t, atomic.LoadInt64(&videoCalls))
	assert.Empty(t, degraded)
	_, ok := set[types.CategoryVideo]
	assert.False(t, ok)
}
