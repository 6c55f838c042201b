package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/membank/internal/core/domain"
	"github.com/custodia-labs/membank/internal/core/ports/driven"
	"github.com/custodia-labs/membank/internal/core/ports/driving"
)

// TableLister reports the configured source tables with live record counts.
type TableLister struct {
	registry *domain.Registry
	store    driven.RecordStore
}

// NewTableLister creates a lister over the registry and record store.
func NewTableLister(registry *domain.Registry, store driven.RecordStore) *TableLister {
	return &TableLister{registry: registry, store: store}
}

var _ driving.TableService = (*TableLister)(nil)

// ListTables returns every registry entry in priority order.
func (l *TableLister) ListTables(ctx context.Context) ([]driving.TableInfo, error) {
	tables := l.registry.Tables()
	out := make([]driving.TableInfo, 0, len(tables))

	for _, tbl := range tables {
		count, err := l.store.Count(ctx, tbl.Name)
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", tbl.Name, err)
		}
		out = append(out, driving.TableInfo{
			Name:    tbl.Name,
			Tag:     tbl.Tag,
			Rank:    tbl.Rank,
			Records: count,
		})
	}
	return out, nil
}
