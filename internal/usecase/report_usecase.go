package usecase

import (
	"context"

	"github.com/DRSN-tech/sneakers-store/internal/domain"
	"github.com/DRSN-tech/sneakers-store/pkg/e"
	"github.com/DRSN-tech/sneakers-store/pkg/logger"
	"github.com/DRSN-tech/sneakers-store/pkg/sorter"
)

// ReportUseCase строит отчёты по товарам магазина.
type ReportUseCase struct {
	itemRepo ItemRepository
	logger   logger.Logger
}

func NewReportUC(itemRepo ItemRepository, logger logger.Logger) *ReportUseCase {
	return &ReportUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// Items возвращает товары в порядке добавления.
func (r *ReportUseCase) Items(_ context.Context) []*domain.Item {
	return r.itemRepo.GetAll()
}

// SortedByPrice возвращает товары по возрастанию цены.
func (r *ReportUseCase) SortedByPrice(_ context.Context) []*domain.Item {
	return r.itemRepo.SortBy(domain.PriceKey)
}

// SortedByQuantity возвращает товары по возрастанию остатка.
// При равном остатке сохраняется порядок добавления.
func (r *ReportUseCase) SortedByQuantity(_ context.Context) []*domain.Item {
	return r.itemRepo.SortBy(domain.QuantityKey)
}

// SortedBy возвращает товары по возрастанию выбранного поля.
func (r *ReportUseCase) SortedBy(_ context.Context, field domain.SortField) ([]*domain.Item, error) {
	const op = "ReportUseCase.SortedBy"

	key, err := field.Key()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	r.logger.Debugf("sorting items by %s", field)
	return r.itemRepo.SortBy(key), nil
}

// MostPopular возвращает рейтинг товаров по убыванию количества продаж.
func (r *ReportUseCase) MostPopular(_ context.Context) []RankedItem {
	bySales := sorter.Reverse(r.itemRepo.SortBy(domain.SalesKey))

	ranked := make([]RankedItem, 0, len(bySales))
	for i, item := range bySales {
		ranked = append(ranked, NewRankedItem(i+1, item))
	}

	return ranked
}
