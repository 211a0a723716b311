package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"calc-suite/domain"
	"calc-suite/repository"
)

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, bool) { return "", false }
func (failingCache) Set(context.Context, string, string) error  { return errors.New("cache down") }

type failingRepo struct{}

func (failingRepo) Save(context.Context, domain.Calculation) error { return errors.New("db down") }
func (failingRepo) Recent(context.Context, domain.Tool, int) ([]domain.Calculation, error) {
	return nil, errors.New("db down")
}

// staticCache always returns the same payload.
type staticCache struct{ payload string }

func (c staticCache) Get(context.Context, string) (string, bool) { return c.payload, true }
func (staticCache) Set(context.Context, string, string) error    { return nil }

func TestCalculatorService_MemoizesAndRecords(t *testing.T) {
	ctx := context.Background()
	cache, err := repository.NewLRUCache(8)
	require.NoError(t, err)
	repo := repository.NewCalculationRepositoryMemory(0)
	svc := NewCalculatorService(cache, repo, zap.NewNop())

	in := domain.HELOCInput{HelocAmount: "250000", InterestRate: "8.5", DrawYears: "10", RepayYears: "20"}
	first := svc.HELOC(ctx, in)
	second := svc.HELOC(ctx, in)

	assert.Equal(t, first, second)
	assert.Equal(t, DeriveHELOC(in), first)
	assert.Equal(t, 1, cache.Len())

	history, err := svc.History(ctx, domain.ToolHELOC, 10)
	require.NoError(t, err)
	require.Len(t, history, 1, "a cache hit is not recorded again")
	assert.Regexp(t, regexp.MustCompile(`^heloc:[0-9a-f]{16}$`), history[0].Key)
	assert.Contains(t, history[0].Input, `"heloc_amount":"250000"`)
	assert.False(t, history[0].CreatedAt.IsZero())
}

func TestCalculatorService_CacheKeyDependsOnToolAndInput(t *testing.T) {
	a := cacheKey(domain.ToolMortgage, []byte(`{"x":1}`))
	assert.Equal(t, a, cacheKey(domain.ToolMortgage, []byte(`{"x":1}`)))
	assert.NotEqual(t, a, cacheKey(domain.ToolMortgage, []byte(`{"x":2}`)))
	assert.NotEqual(t, a, cacheKey(domain.ToolHELOC, []byte(`{"x":1}`)))
}

func TestCalculatorService_InfrastructureFailuresAreLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	svc := NewCalculatorService(failingCache{}, failingRepo{}, zap.New(core))

	in := domain.AntlerInput{InsideSpread: "18"}
	got := svc.Antler(context.Background(), in)

	assert.Equal(t, DeriveAntler(in), got)
	assert.Equal(t, 1, logs.FilterMessage("failed to cache calculation").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to save calculation").Len())

	_, err := svc.History(context.Background(), domain.ToolAntler, 5)
	assert.ErrorContains(t, err, "load history")
}

func TestCalculatorService_CorruptCacheEntryIsRecomputed(t *testing.T) {
	svc := NewCalculatorService(staticCache{payload: "not json"}, nil, nil)
	in := domain.FSWPInput{Age: "30"}
	assert.Equal(t, DeriveFSWP(in), svc.FSWP(context.Background(), in))
}

func TestCalculatorService_History(t *testing.T) {
	svc := NewCalculatorService(nil, nil, nil)

	calcs, err := svc.History(context.Background(), domain.ToolCRS, 10)
	require.NoError(t, err)
	assert.Empty(t, calcs)

	_, err = svc.History(context.Background(), "lottery", 10)
	assert.Error(t, err)
}

func TestCalculatorService_AllTools(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCalculationRepositoryMemory(0)
	svc := NewCalculatorService(nil, repo, nil)

	svc.Mortgage(ctx, domain.MortgageInput{HomePrice: "1"})
	svc.Antler(ctx, domain.AntlerInput{})
	svc.StockOption(ctx, domain.StockOptionInput{})
	svc.CRS(ctx, domain.CRSInput{})
	svc.FSWP(ctx, domain.FSWPInput{})
	svc.HELOC(ctx, domain.HELOCInput{})
	svc.Sonnet(ctx, domain.SonnetInput{})
	svc.AnalyzeSonnet(ctx, domain.SonnetAnalysisInput{Text: "one line"})
	svc.Supplement(ctx, domain.SupplementInput{})

	for _, tool := range domain.Tools() {
		calcs, err := svc.History(ctx, tool, 5)
		require.NoError(t, err)
		assert.Len(t, calcs, 1, string(tool))
	}
}
