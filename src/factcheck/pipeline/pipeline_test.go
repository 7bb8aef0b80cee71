package pipeline

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

	"github.com/factlens/factscore/src/ai/core"
	"github.com/factlens/factscore/src/factcheck/components/evidence"
	"github.com/factlens/factscore/src/factcheck/components/judgment"
	"github.com/factlens/factscore/src/factcheck/types"
)

type stubClient struct {
	calls int64
	raw   string
	err   error
}

func (s *stubClient) Complete(context.Context, string, string, core.Options) (string, error) {
	atomic.AddInt64(&s.calls, 1)
	return s.raw, s.err
}

func newsServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func newPipeline(t *testing.T, newsBody string, primary, crossCheck core.Client) (*Pipeline, func()) {
	t.Helper()
	srv := newsServer(t, newsBody)
	log := zap.NewNop().Sugar()
	news := evidence.NewNewsClient(resty.New(), srv.URL, "id", "secret")
	collector := evidence.NewCollector(news, nil, nil, nil, nil, log)
	requester := judgment.NewRequester(primary, crossCheck, log)
	return New(collector, requester, log), srv.Close
}

const someNews = `{"total":2,"items":[
	{"title":"연합뉴스 단독 보도","originallink":"https://news.example.com/1","pubDate":"Mon, 01 Sep 2025 09:00:00 +0900"},
	{"title":"후속 보도","link":"https://news.example.com/2"}
]}`

func TestRunShortCircuitsOnEmptyEvidence(t *testing.T) {
	primary := &stubClient{raw: `{"verdict":"fact","confidence":90}`}
	cross := &stubClient{raw: `{"verdict":"fact","confidence":90}`}
	p, done := newPipeline(t, `{"total":0,"items":[]}`, primary, cross)
	defer done()

	res, err := p.Run(context.Background(), "근거 없는 주장", false)
	require.NoError(t, err)

	assert.Zero(t, atomic.LoadInt64(&primary.calls))
	assert.Zero(t, atomic.LoadInt64(&cross.calls))

	assert.Equal(t, types.VerdictUnverifiable, res.Verdict)
	assert.Equal(t, 0, res.Confidence)
	assert.Equal(t, 5, res.PoliticalBias)
	assert.Equal(t, 100, res.CredibilityScore.Unverified)
	assert.False(t, res.CrossVerification.Used)
	assert.Equal(t, "no search results", res.CrossVerification.Reason)
	assert.Equal(t, 0, res.FactScore.Total)
	assert.NotNil(t, res.Sources)
	assert.Empty(t, res.Sources)
}

func TestRunAgreementAveragesConfidence(t *testing.T) {
	primary := &stubClient{raw: `{
		"verdict":"fact","confidence":85,"summary":"요약","details":"상세",
		"politicalBias":4,
		"credibilityScore":{"fact":80,"misinformation":5,"partialTruth":10,"unverified":5},
		"sources":[{"title":"연합뉴스 단독 보도","url":"https://news.example.com/1","outlet":"연합뉴스"}],
		"reasoning":"근거"}`}
	cross := &stubClient{raw: `{"verdict":"fact","confidence":91,"summary":"다른 요약"}`}
	p, done := newPipeline(t, someNews, primary, cross)
	defer done()

	res, err := p.Run(context.Background(), "검증 대상 주장", false)
	require.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(&primary.calls))
	assert.Equal(t, int64(1), atomic.LoadInt64(&cross.calls))

	assert.Equal(t, types.VerdictFact, res.Verdict)
	assert.Equal(t, 88, res.Confidence)
	assert.False(t, res.ConfidenceFloored)
	assert.Equal(t, "요약", res.Summary)
	assert.True(t, res.CrossVerification.Used)
	assert.True(t, res.CrossVerification.Agreement)
	assert.Equal(t, 85, res.CrossVerification.Primary.Confidence)
	assert.Equal(t, 91, res.CrossVerification.CrossCheck.Confidence)
	assert.Positive(t, res.FactScore.Total)
	require.Len(t, res.Sources, 1)
	assert.Equal(t, "연합뉴스", res.Sources[0].Outlet)
}

func TestRunDisagreementFloorsConfidence(t *testing.T) {
	primary := &stubClient{raw: `{"verdict":"fact","confidence":10,"summary":"요약"}`}
	cross := &stubClient{raw: `{"verdict":"false","confidence":5,"summary":"반박"}`}
	p, done := newPipeline(t, someNews, primary, cross)
	defer done()

	res, err := p.Run(context.Background(), "논쟁적 주장", false)
	require.NoError(t, err)

	assert.Equal(t, types.VerdictNeedsVerification, res.Verdict)
	assert.Equal(t, 0, res.Confidence)
	assert.True(t, res.ConfidenceFloored)
	// The raw penalized value stays visible in the reconciliation record.
	assert.Equal(t, -15, res.CrossVerification.FinalConfidence)
	assert.False(t, res.CrossVerification.Agreement)
}

func TestRunWithoutCrossCheck(t *testing.T) {
	primary := &stubClient{raw: `{"verdict":"partial_fact","confidence":60,"summary":"요약"}`}
	p, done := newPipeline(t, someNews, primary, nil)
	defer done()

	res, err := p.Run(context.Background(), "주장", false)
	require.NoError(t, err)

	assert.Equal(t, types.VerdictPartialFact, res.Verdict)
	assert.Equal(t, 60, res.Confidence)
	assert.False(t, res.CrossVerification.Used)
	assert.Equal(t, "cross-verification provider disabled", res.CrossVerification.Reason)
	assert.NotNil(t, res.Sources)
}

func TestRunPrimaryJudgmentFailureIsFatal(t *testing.T) {
	primary := &stubClient{raw: "this is not json at all"}
	p, done := newPipeline(t, someNews, primary, nil)
	defer done()

	res, err := p.Run(context.Background(), "주장", false)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "primary judgment provider")
}
