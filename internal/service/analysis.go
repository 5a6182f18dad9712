package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/razanodeh01/Huffman-Text-Compression/internal/model"
	"github.com/razanodeh01/Huffman-Text-Compression/internal/notify"
	"github.com/razanodeh01/Huffman-Text-Compression/internal/repo"
	"github.com/razanodeh01/Huffman-Text-Compression/pkg/huffman"
	"github.com/razanodeh01/Huffman-Text-Compression/pkg/logger"
	"github.com/razanodeh01/Huffman-Text-Compression/pkg/textsource"
)

type AnalysisService struct {
	repo   repo.AnalysisRepo
	pub    notify.Publisher
	cache  *lru.Cache[string, *model.Analysis]
	logger logger.Logger
	now    func() time.Time
}

func NewAnalysisService(r repo.AnalysisRepo, p notify.Publisher, l logger.Logger, cacheSize int) (*AnalysisService, error) {
	cache, err := lru.New[string, *model.Analysis](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("analysis cache: %w", err)
	}
	return &AnalysisService{repo: r, pub: p, cache: cache, logger: l, now: time.Now}, nil
}

type AnalyzeRequest struct {
	Text   string
	Source string
	Policy textsource.Policy
}

// ID is the content address of a normalized symbol sequence.
func ID(symbols []rune) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(string(symbols)))
}

// Analyze normalizes the request text and returns its analysis. Analyses
// are content-addressed: identical normalized inputs share one ID and are
// computed and stored once, so a repeat request gets the stored analysis,
// Source and CreatedAt included. created is false in that case.
func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (a *model.Analysis, created bool, err error) {
	symbols := textsource.Normalize(req.Text, req.Policy)
	if len(symbols) == 0 {
		return nil, false, huffman.ErrEmptyAlphabet
	}
	id := ID(symbols)

	if a, ok := s.cache.Get(id); ok {
		return a, false, nil
	}
	if a, err := s.repo.FindByID(ctx, id); err == nil {
		s.cache.Add(id, a)
		return a, false, nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, false, err
	}

	res, err := huffman.AnalyzeTable(huffman.CountParallel(symbols, runtime.GOMAXPROCS(0)))
	if err != nil {
		return nil, false, err
	}
	rows, err := res.Rows()
	if err != nil {
		return nil, false, err
	}
	a = &model.Analysis{
		ID:        id,
		Source:    req.Source,
		CreatedAt: s.now().UTC(),
		Stats:     model.NewStatistics(res.Stats),
		Rows:      model.NewSymbolRows(rows),
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, false, err
	}
	s.cache.Add(id, a)
	s.logger.Infof("analysis %s: %d symbols, %d distinct, %.4f%% compression",
		id, a.Stats.TotalSymbols, a.Stats.DistinctSymbols, a.Stats.CompressionPercentage)

	if err := s.pub.Publish(ctx, a); err != nil {
		s.logger.Errorf("notify %s: %v", id, err)
	}
	return a, true, nil
}

func (s *AnalysisService) GetByID(ctx context.Context, id string) (*model.Analysis, error) {
	if a, ok := s.cache.Get(id); ok {
		return a, nil
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, a)
	return a, nil
}

func (s *AnalysisService) List(ctx context.Context) ([]*model.Analysis, error) {
	return s.repo.List(ctx)
}

// Subset returns the rows of the requested symbols in code point order.
// A symbol absent from the analysis fails with *huffman.UnknownSymbolError
// unless skipUnknown is set, in which case it is returned in skipped.
func (s *AnalysisService) Subset(ctx context.Context, id string, symbols []rune, skipUnknown bool) (rows []model.SymbolRow, skipped []string, err error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return SubsetRows(a, symbols, skipUnknown)
}

// SubsetRows selects rows of a with huffman.SelectSymbols.
func SubsetRows(a *model.Analysis, symbols []rune, skipUnknown bool) ([]model.SymbolRow, []string, error) {
	bySymbol := make(map[string]model.SymbolRow, len(a.Rows))
	for _, r := range a.Rows {
		bySymbol[r.Symbol] = r
	}
	known := func(s rune) bool {
		_, ok := bySymbol[string(s)]
		return ok
	}

	selected, unknown, err := huffman.SelectSymbols(symbols, known, skipUnknown)
	if err != nil {
		return nil, nil, err
	}
	rows := make([]model.SymbolRow, 0, len(selected))
	for _, s := range selected {
		rows = append(rows, bySymbol[string(s)])
	}
	var skipped []string
	for _, s := range unknown {
		skipped = append(skipped, string(s))
	}
	return rows, skipped, nil
}
