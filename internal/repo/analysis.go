package repo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/razanodeh01/Huffman-Text-Compression/internal/model"
)

var ErrNotFound = errors.New("not found")

type AnalysisRepo interface {
	Save(ctx context.Context, a *model.Analysis) error
	FindByID(ctx context.Context, id string) (*model.Analysis, error)
	// List returns the stored analyses, newest first.
	List(ctx context.Context) ([]*model.Analysis, error)
}

type analysisRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.Analysis
}

func NewAnalysisRepoInMemory() AnalysisRepo {
	return &analysisRepoInMemory{store: make(map[string]*model.Analysis)}
}

func (r *analysisRepoInMemory) Save(_ context.Context, a *model.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[a.ID] = a
	return nil
}

func (r *analysisRepoInMemory) FindByID(_ context.Context, id string) (*model.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func (r *analysisRepoInMemory) List(_ context.Context) ([]*model.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Analysis, 0, len(r.store))
	for _, a := range r.store {
		out = append(out, a)
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(as []*model.Analysis) {
	sort.Slice(as, func(i, j int) bool {
		if !as[i].CreatedAt.Equal(as[j].CreatedAt) {
			return as[i].CreatedAt.After(as[j].CreatedAt)
		}
		return as[i].ID < as[j].ID
	})
}
