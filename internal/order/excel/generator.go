// Package excel renders order submissions into two-sheet xlsx workbooks: one
// sheet of scalar fields, one of line items.
package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"puramente/internal/domain"
	"puramente/internal/errors"
)

const (
	detailsSheet = "Order Details"
	itemsSheet   = "Order Items"
)

type Generator struct {
	logger *zap.Logger
}

func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{logger: logger}
}

// OrderFields is what lands on the details sheet, in this exact row order.
// OrderDetails feeds the items sheet instead.
type OrderFields struct {
	FirstName      string
	Email          string
	ContactNumber  string
	CompanyName    string
	Country        string
	CompanyWebsite string
	Message        string
	OrderDetails   string
}

// Generate writes the workbook to path. The file is fully written when
// Generate returns, so callers may persist a record referencing it. A
// malformed OrderDetails encoding degrades to an empty items sheet by policy;
// only I/O failures are errors.
func (g *Generator) Generate(fields OrderFields, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := g.writeDetailsSheet(f, fields); err != nil {
		return errors.NewGenerationError("building order details sheet", err)
	}

	items := g.parseItems(fields.OrderDetails)
	if err := g.writeItemsSheet(f, items); err != nil {
		return errors.NewGenerationError("building order items sheet", err)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewGenerationError("writing workbook", err)
	}

	return nil
}

func (g *Generator) writeDetailsSheet(f *excelize.File, fields OrderFields) error {
	// The default sheet becomes the details sheet.
	if err := f.SetSheetName("Sheet1", detailsSheet); err != nil {
		return err
	}
	if err := f.SetColWidth(detailsSheet, "A", "A", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(detailsSheet, "B", "B", 50); err != nil {
		return err
	}

	rows := [][2]string{
		{"Field", "Value"},
		{"firstName", fields.FirstName},
		{"email", fields.Email},
		{"contactNumber", fields.ContactNumber},
		{"companyName", fields.CompanyName},
		{"country", fields.Country},
		{"companyWebsite", fields.CompanyWebsite},
		{"message", fields.Message},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(detailsSheet, cell, &[]any{row[0], row[1]}); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) parseItems(encoded string) []domain.LineItem {
	items, err := domain.ParseLineItems(encoded)
	if err != nil {
		g.logger.Warn("orderDetails is not valid JSON, items sheet will be empty",
			zap.Error(err))
		return nil
	}
	return items
}

func (g *Generator) writeItemsSheet(f *excelize.File, items []domain.LineItem) error {
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return err
	}

	widths := []struct {
		col   string
		width float64
	}{{"A", 5}, {"B", 30}, {"C", 20}, {"D", 15}}
	for _, w := range widths {
		if err := f.SetColWidth(itemsSheet, w.col, w.col, w.width); err != nil {
			return err
		}
	}

	extraKeys := collectExtraKeys(items)

	header := []any{"#", "Product Name", "SKU", "Quantity"}
	for _, key := range extraKeys {
		header = append(header, key)
	}
	if err := f.SetSheetRow(itemsSheet, "A1", &header); err != nil {
		return err
	}

	for i, item := range items {
		row := []any{i + 1, item.Name, item.SKU, item.Quantity}
		for _, key := range extraKeys {
			if v, ok := item.Extra[key]; ok {
				row = append(row, fmt.Sprint(v))
			} else {
				row = append(row, "")
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(itemsSheet, cell, &row); err != nil {
			return err
		}
	}

	return nil
}

// collectExtraKeys gathers passthrough column names across all items so
// unknown item fields get their own columns.
func collectExtraKeys(items []domain.LineItem) []string {
	var keys []string
	seen := map[string]bool{}
	for _, item := range items {
		for key := range item.Extra {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	// Map iteration order is random, so order the columns alphabetically.
	sort.Strings(keys)
	return keys
}
