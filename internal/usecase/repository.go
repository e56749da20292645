package usecase

import "github.com/DRSN-tech/sneakers-store/internal/domain"

type ItemRepository interface {
	GetAll() []*domain.Item
	SortBy(key domain.KeyFunc) []*domain.Item
}
