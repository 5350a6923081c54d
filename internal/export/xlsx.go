package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jogos-org/jogos/internal/models"
)

const SheetName = "Games"

var header = []any{
	"Title",
	"Platform",
	"Developer",
	"Publisher",
	"Release Year",
	"Certification",
	"Storage Media",
	"Condition",
	"Favorite",
	"Wishlist",
	"Bought",
	"Store",
	"Price",
	"Barcode",
}

// Options control how derived fields are formatted. Nothing here changes
// which games are written or in which order.
type Options struct {
	Language   language.Tag
	DateLayout string
}

// WriteXLSX writes games, in the given order, as a single-sheet workbook.
func WriteXLSX(w io.Writer, games []models.Game, opts Options) error {
	if opts.DateLayout == "" {
		opts.DateLayout = "01/02/2006"
	}
	printer := message.NewPrinter(opts.Language)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}

	for i, g := range games {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			g.Title,
			models.PlatformName(g.Platform),
			g.Developer,
			g.Publisher,
			g.ReleaseYear,
			models.CertificationName(g.Certification),
			models.StorageMediaName(g.StorageMedia),
			models.ConditionName(g.Condition),
			yesNo(g.Favorite),
			yesNo(g.Wishlist),
			formatDate(g, opts.DateLayout),
			deref(g.Store),
			formatPrice(printer, g),
			deref(g.Barcode),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 40); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", "D", 20); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func formatDate(g models.Game, layout string) string {
	if g.BoughtDate == nil {
		return ""
	}
	return g.BoughtDate.Format(layout)
}

func formatPrice(p *message.Printer, g models.Game) string {
	symbol := g.PaidPriceCurrency
	if c, ok := models.GetCurrency(g.PaidPriceCurrency); ok {
		symbol = c.Symbol
	}
	return p.Sprintf("%s %.2f", symbol, g.PaidPriceAmount)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
