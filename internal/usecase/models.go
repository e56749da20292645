package usecase

import "github.com/DRSN-tech/sneakers-store/internal/domain"

// RankedItem описывает позицию товара в рейтинге продаж, нумерация с 1.
type RankedItem struct {
	Rank int
	Item *domain.Item
}

func NewRankedItem(rank int, item *domain.Item) RankedItem {
	return RankedItem{
		Rank: rank,
		Item: item,
	}
}
