package http

import (
	"net/http"

	"github.com/DRSN-tech/sneakers-store/internal/domain"
	"github.com/DRSN-tech/sneakers-store/internal/usecase"
	"github.com/DRSN-tech/sneakers-store/pkg/logger"
)

type ItemHandler struct {
	reportUsecase usecase.ReportUC
	logger        logger.Logger
}

func NewItemHandler(reportUsecase usecase.ReportUC, logger logger.Logger) *ItemHandler {
	return &ItemHandler{reportUsecase: reportUsecase, logger: logger}
}

// listItems отдаёт товары в порядке добавления.
func (h *ItemHandler) listItems(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewItemsResponse(h.reportUsecase.Items(r.Context())))
}

// sortedItems отдаёт товары по возрастанию поля из параметра by
// (price, quantity или sales).
func (h *ItemHandler) sortedItems(w http.ResponseWriter, r *http.Request) {
	field, err := domain.ParseSortField(r.URL.Query().Get("by"))
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	items, err := h.reportUsecase.SortedBy(r.Context(), field)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewItemsResponse(items))
}

// mostPopular отдаёт рейтинг товаров по убыванию продаж.
func (h *ItemHandler) mostPopular(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewRankingResponse(h.reportUsecase.MostPopular(r.Context())))
}
