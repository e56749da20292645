package domain

import (
	"strings"

	"github.com/DRSN-tech/sneakers-store/pkg/e"
	"github.com/shopspring/decimal"
)

// KeyFunc извлекает значение, по которому упорядочиваются товары.
// Все ключи приводятся к decimal, чтобы хватало одного компаратора.
type KeyFunc func(item *Item) decimal.Decimal

func PriceKey(item *Item) decimal.Decimal {
	return item.Price
}

func QuantityKey(item *Item) decimal.Decimal {
	return decimal.NewFromInt(int64(item.Quantity))
}

func SalesKey(item *Item) decimal.Decimal {
	return decimal.NewFromInt(int64(item.NumberOfSales))
}

// SortField перечисляет поля сортировки для внешних интерфейсов
type SortField string

const (
	SortByPrice    SortField = "price"
	SortByQuantity SortField = "quantity"
	SortBySales    SortField = "sales"
)

// ParseSortField возвращает поле сортировки по его имени.
func ParseSortField(s string) (SortField, error) {
	field := SortField(strings.ToLower(strings.TrimSpace(s)))
	if _, err := field.Key(); err != nil {
		return "", err
	}

	return field, nil
}

// Key возвращает функцию извлечения ключа для поля.
func (f SortField) Key() (KeyFunc, error) {
	switch f {
	case SortByPrice:
		return PriceKey, nil
	case SortByQuantity:
		return QuantityKey, nil
	case SortBySales:
		return SalesKey, nil
	default:
		return nil, e.Wrap(string(f), e.ErrUnknownSortField)
	}
}
