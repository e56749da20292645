package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DRSN-tech/sneakers-store/internal/domain"
	"github.com/DRSN-tech/sneakers-store/internal/usecase"
	"github.com/DRSN-tech/sneakers-store/pkg/e"
)

// длина строки-разделителя между блоками отчёта
const separatorWidth = 100

// Renderer печатает отчёты магазина в текстовом виде.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderReport печатает список по цене, список по остатку и рейтинг продаж,
// разделяя блоки строкой из дефисов.
func (r *Renderer) RenderReport(ctx context.Context, uc usecase.ReportUC) error {
	const op = "Renderer.RenderReport"

	if err := r.RenderCollection(uc.SortedByPrice(ctx)); err != nil {
		return e.Wrap(op, err)
	}
	if err := r.RenderSeparator(); err != nil {
		return e.Wrap(op, err)
	}
	if err := r.RenderCollection(uc.SortedByQuantity(ctx)); err != nil {
		return e.Wrap(op, err)
	}
	if err := r.RenderSeparator(); err != nil {
		return e.Wrap(op, err)
	}
	if err := r.RenderRanking(uc.MostPopular(ctx)); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// RenderCollection печатает товары одной строкой в виде списка кратких описаний.
func (r *Renderer) RenderCollection(items []*domain.Item) error {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.Compact())
	}

	return r.writeLine("[" + strings.Join(parts, ", ") + "]")
}

func (r *Renderer) RenderSeparator() error {
	return r.writeLine(strings.Repeat("-", separatorWidth))
}

// RenderRanking печатает по строке на товар: "{место}. {полное описание}".
func (r *Renderer) RenderRanking(ranked []usecase.RankedItem) error {
	for _, ri := range ranked {
		if err := r.writeLine(fmt.Sprintf("%d. %s", ri.Rank, ri.Item.Verbose())); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) writeLine(s string) error {
	if _, err := io.WriteString(r.out, s+"\n"); err != nil {
		return e.Wrap(err.Error(), e.ErrWriteReport)
	}

	return nil
}
