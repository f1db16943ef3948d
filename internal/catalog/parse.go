package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Required menu columns, matched by name.
const (
	ColumnCategory = "Category"
	ColumnItem     = "Item"
	ColumnPrice    = "Price"
)

const utf8BOM = "\ufeff"

type columns struct {
	category int
	item     int
	price    int
}

func (c columns) width() int {
	return max(c.category, c.item, c.price) + 1
}

// Parse reads a CSV menu. The first record must be a header naming the
// Category, Item and Price columns in any order. Rows with an unusable price
// are logged, recorded in Skipped and left out. An empty input yields an
// empty catalog.
func Parse(ctx context.Context, r io.Reader, logger zerolog.Logger) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		logger.Warn().Msg("menu source is empty")
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read menu header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	c := New()
	rows := 0
	for {
		if rows%1000 == 0 {
			if err := ctx.Err(); err != nil {
				logger.Warn().Int("rows_read", rows).Msg("menu parsing cancelled")
				return nil, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read menu row: %w", err)
		}
		rows++
		line, _ := reader.FieldPos(0)

		if len(record) < cols.width() {
			rowErr := RowError{Line: line, Err: ErrMissingFields}
			if cols.item < len(record) {
				rowErr.Item = strings.TrimSpace(record[cols.item])
			}
			c.skip(rowErr, logger)
			continue
		}

		category := strings.TrimSpace(record[cols.category])
		item := strings.TrimSpace(record[cols.item])
		rawPrice := record[cols.price]

		price, err := decimal.NewFromString(strings.TrimSpace(rawPrice))
		if err != nil {
			c.skip(RowError{Line: line, Item: item, RawPrice: rawPrice, Err: ErrMalformedPrice}, logger)
			continue
		}
		if err := checkPrice(price); err != nil {
			c.skip(RowError{Line: line, Item: item, RawPrice: rawPrice, Err: err}, logger)
			continue
		}

		c.set(category, item, price)
	}

	logger.Debug().
		Int("rows", rows).
		Int("categories", len(c.categories)).
		Int("items", c.Len()).
		Int("skipped", len(c.skipped)).
		Msg("menu parsed")

	return c, nil
}

func (c *Catalog) skip(rowErr RowError, logger zerolog.Logger) {
	logger.Warn().
		Int("line", rowErr.Line).
		Str("item", rowErr.Item).
		Str("raw_price", rowErr.RawPrice).
		Err(rowErr.Err).
		Msg("invalid menu row, skipping")
	c.skipped = append(c.skipped, rowErr)
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{category: -1, item: -1, price: -1}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		switch strings.TrimSpace(name) {
		case ColumnCategory:
			cols.category = i
		case ColumnItem:
			cols.item = i
		case ColumnPrice:
			cols.price = i
		}
	}

	var missing []string
	if cols.category < 0 {
		missing = append(missing, ColumnCategory)
	}
	if cols.item < 0 {
		missing = append(missing, ColumnItem)
	}
	if cols.price < 0 {
		missing = append(missing, ColumnPrice)
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}
