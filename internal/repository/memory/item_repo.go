package memory

import (
	"slices"

	"github.com/DRSN-tech/sneakers-store/internal/domain"
	"github.com/DRSN-tech/sneakers-store/pkg/sorter"
	"github.com/shopspring/decimal"
)

// ItemRepo хранит товары в памяти в порядке добавления.
// Удаления нет; сортировка возвращает новый срез и не трогает хранилище.
type ItemRepo struct {
	items []*domain.Item
}

func NewItemRepo() *ItemRepo {
	return &ItemRepo{}
}

// Add добавляет товар в конец списка
func (r *ItemRepo) Add(item *domain.Item) {
	r.items = append(r.items, item)
}

// AddBulk добавляет товары, сохраняя их порядок
func (r *ItemRepo) AddBulk(items []*domain.Item) {
	for _, item := range items {
		r.Add(item)
	}
}

// GetAll возвращает копию списка товаров.
func (r *ItemRepo) GetAll() []*domain.Item {
	return slices.Clone(r.items)
}

func (r *ItemRepo) Len() int {
	return len(r.items)
}

// SortBy возвращает товары по возрастанию key. Товары с равным ключом
// остаются в порядке добавления.
func (r *ItemRepo) SortBy(key domain.KeyFunc) []*domain.Item {
	return sorter.ByKey(r.items, key, decimal.Decimal.LessThan)
}
