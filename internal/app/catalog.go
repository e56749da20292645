package app

import (
	"github.com/DRSN-tech/sneakers-store/internal/domain"
	"github.com/shopspring/decimal"
)

// defaultCatalog возвращает ассортимент, с которым стартует приложение.
func defaultCatalog() []*domain.Item {
	return []*domain.Item{
		domain.NewItem("Nike", 9, "Red", decimal.NewFromInt(100), 50, 1, "Leather"),
		domain.NewItem("Adidas", 10, "Blue", decimal.NewFromInt(80), 40, 8, "Mesh"),
		domain.NewItem("Reebok", 8, "Black", decimal.NewFromInt(90), 60, 6, "Synthetic"),
		domain.NewItem("Rick Owens", 10, "Blue", decimal.NewFromInt(1100), 40, 10, "Mesh"),
		domain.NewItem("Jordan", 8, "Black", decimal.NewFromInt(30), 210, 0, "Synthetic"),
	}
}
