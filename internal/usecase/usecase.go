package usecase

import (
	"context"

	"github.com/DRSN-tech/sneakers-store/internal/domain"
)

type ReportUC interface {
	Items(ctx context.Context) []*domain.Item
	SortedByPrice(ctx context.Context) []*domain.Item
	SortedByQuantity(ctx context.Context) []*domain.Item
	SortedBy(ctx context.Context, field domain.SortField) ([]*domain.Item, error)
	MostPopular(ctx context.Context) []RankedItem
}
