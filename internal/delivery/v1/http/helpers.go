package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DRSN-tech/sneakers-store/internal/domain"
	"github.com/DRSN-tech/sneakers-store/internal/usecase"
	"github.com/DRSN-tech/sneakers-store/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemResponse описывает товар в JSON. Цена сериализуется строкой.
type ItemResponse struct {
	Brand         string          `json:"brand"`
	Size          int             `json:"size"`
	Color         string          `json:"color"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	NumberOfSales int             `json:"number_of_sales"`
	Material      string          `json:"material"`
}

type RankedItemResponse struct {
	Rank int          `json:"rank"`
	Item ItemResponse `json:"item"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func NewItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		Brand:         item.Brand,
		Size:          item.Size,
		Color:         item.Color,
		Price:         item.Price,
		Quantity:      item.Quantity,
		NumberOfSales: item.NumberOfSales,
		Material:      item.Material,
	}
}

func NewItemsResponse(items []*domain.Item) []ItemResponse {
	res := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, NewItemResponse(item))
	}
	return res
}

func NewRankingResponse(ranked []usecase.RankedItem) []RankedItemResponse {
	res := make([]RankedItemResponse, 0, len(ranked))
	for _, ri := range ranked {
		res = append(res, RankedItemResponse{Rank: ri.Rank, Item: NewItemResponse(ri.Item)})
	}
	return res
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrUnknownSortField):
		return http.StatusBadRequest, e.ErrUnknownSortField.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, e.ErrNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
