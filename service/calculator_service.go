package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"calc-suite/domain"
	"calc-suite/repository"
)

// CalculatorService fronts the derivation engines with memoization and an
// optional calculation history. Engines never fail, so neither does the
// service: cache and history errors are logged and skipped.
type CalculatorService struct {
	cache  repository.CacheRepository
	repo   repository.CalculationRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewCalculatorService creates a CalculatorService. Nil dependencies are
// replaced with no-op implementations.
func NewCalculatorService(
	cache repository.CacheRepository,
	repo repository.CalculationRepository,
	logger *zap.Logger,
) *CalculatorService {
	if cache == nil {
		cache = repository.NoopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculatorService{
		cache:  cache,
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// cacheKey identifies an input by tool and the xxhash of its JSON encoding.
func cacheKey(tool domain.Tool, encoded []byte) string {
	return fmt.Sprintf("%s:%016x", tool, xxhash.Sum64(encoded))
}

func run[I any, R any](ctx context.Context, s *CalculatorService, tool domain.Tool, in I, derive func(I) R) R {
	encoded, err := json.Marshal(in)
	if err != nil {
		s.logger.Warn("encode input", zap.String("tool", string(tool)), zap.Error(err))
		return derive(in)
	}
	key := cacheKey(tool, encoded)
	log := s.logger.With(zap.String("tool", string(tool)), zap.String("key", key))

	if cached, ok := s.cache.Get(ctx, key); ok {
		var out R
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			log.Debug("cache hit")
			return out
		}
		log.Warn("discarding undecodable cache entry")
	}

	out := derive(in)
	result, err := json.Marshal(out)
	if err != nil {
		log.Warn("encode result", zap.Error(err))
		return out
	}
	if err := s.cache.Set(ctx, key, string(result)); err != nil {
		log.Warn("failed to cache calculation", zap.Error(err))
	}
	if s.repo != nil {
		calc := domain.Calculation{
			Tool:      tool,
			Key:       key,
			Input:     string(encoded),
			Result:    string(result),
			CreatedAt: s.now(),
		}
		if err := s.repo.Save(ctx, calc); err != nil {
			log.Warn("failed to save calculation", zap.Error(err))
		}
	}
	return out
}

func (s *CalculatorService) Mortgage(ctx context.Context, in domain.MortgageInput) domain.MortgageResult {
	return run(ctx, s, domain.ToolMortgage, in, DeriveMortgage)
}

func (s *CalculatorService) Antler(ctx context.Context, in domain.AntlerInput) domain.AntlerResult {
	return run(ctx, s, domain.ToolAntler, in, DeriveAntler)
}

func (s *CalculatorService) StockOption(ctx context.Context, in domain.StockOptionInput) domain.StockOptionResult {
	return run(ctx, s, domain.ToolStockOption, in, DeriveStockOption)
}

func (s *CalculatorService) CRS(ctx context.Context, in domain.CRSInput) domain.CRSResult {
	return run(ctx, s, domain.ToolCRS, in, DeriveCRS)
}

func (s *CalculatorService) FSWP(ctx context.Context, in domain.FSWPInput) domain.FSWPResult {
	return run(ctx, s, domain.ToolFSWP, in, DeriveFSWP)
}

func (s *CalculatorService) HELOC(ctx context.Context, in domain.HELOCInput) domain.HELOCResult {
	return run(ctx, s, domain.ToolHELOC, in, DeriveHELOC)
}

func (s *CalculatorService) Sonnet(ctx context.Context, in domain.SonnetInput) domain.SonnetResult {
	return run(ctx, s, domain.ToolSonnet, in, GenerateSonnet)
}

func (s *CalculatorService) AnalyzeSonnet(ctx context.Context, in domain.SonnetAnalysisInput) domain.SonnetAnalysis {
	return run(ctx, s, domain.ToolSonnetScan, in, AnalyzeSonnet)
}

func (s *CalculatorService) Supplement(ctx context.Context, in domain.SupplementInput) domain.SupplementResult {
	return run(ctx, s, domain.ToolSupplement, in, DeriveSupplementLabel)
}

// History returns recent calculations for a tool. It is empty when no
// history store is configured.
func (s *CalculatorService) History(ctx context.Context, tool domain.Tool, limit int) ([]domain.Calculation, error) {
	if !tool.Valid() {
		return nil, fmt.Errorf("unknown tool %q", tool)
	}
	if s.repo == nil {
		return []domain.Calculation{}, nil
	}
	calcs, err := s.repo.Recent(ctx, tool, limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return calcs, nil
}
