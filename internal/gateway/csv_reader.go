package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cart-pricer/internal/domain"
	"cart-pricer/internal/money"
)

// itemColumns is the expected CSV header, in order.
var itemColumns = []string{"product_id", "name", "brand", "category", "unit_price", "quantity"}

// GetCartItems reads and parses a CSV file of cart lines.
func (r *FileRepository) GetCartItems(ctx context.Context, path string) ([]domain.CartItem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cart items file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(itemColumns)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	for i, col := range itemColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return nil, fmt.Errorf("%w: %s column %d is %q, want %q", ErrMalformedFile, path, i+1, header[i], col)
		}
	}

	items := make([]domain.CartItem, 0)
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		unitPrice, err := money.Parse(record[4])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}

		quantity, err := strconv.Atoi(record[5])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: could not parse quantity '%s': %w", path, line, record[5], err)
		}

		item, err := domain.NewCartItem(record[0], record[1], record[2], record[3], unitPrice, quantity)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		items = append(items, item)
	}

	r.logger.Debug().Str("path", path).Int("items", len(items)).Msg("cart_items_loaded")
	return items, nil
}
