package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item описывает пару кроссовок на складе
type Item struct {
	Brand         string
	Size          int // размер EU
	Color         string
	Price         decimal.Decimal // цена за одну пару
	Quantity      int             // количество пар в наличии
	NumberOfSales int
	Material      string
}

func NewItem(brand string, size int, color string, price decimal.Decimal, quantity int, numberOfSales int, material string) *Item {
	return &Item{
		Brand:         brand,
		Size:          size,
		Color:         color,
		Price:         price,
		Quantity:      quantity,
		NumberOfSales: numberOfSales,
		Material:      material,
	}
}

// Verbose возвращает полное описание товара для построчного вывода.
func (i *Item) Verbose() string {
	return fmt.Sprintf(
		"Brand: %s, Price: %s, Size: %d, Color: %s, Quantity: %d, Number of sales: %d, Material: %s",
		i.Brand, i.Price.String(), i.Size, i.Color, i.Quantity, i.NumberOfSales, i.Material,
	)
}

// Compact возвращает краткое описание товара для вывода внутри списка.
func (i *Item) Compact() string {
	return fmt.Sprintf("{ Brand: %s; Price: %s; Quantity: %d; }", i.Brand, i.Price.String(), i.Quantity)
}
