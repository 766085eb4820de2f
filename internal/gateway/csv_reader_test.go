package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"cart-pricer/internal/domain"
	"cart-pricer/internal/money"
)

func TestFileRepository_GetCartItems(t *testing.T) {
	header := []string{"product_id", "name", "brand", "category", "unit_price", "quantity"}

	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.CartItem
		wantErr  bool
	}{
		{
			name: "valid cart items",
			csvData: [][]string{
				header,
				{"PUMA-001", "PUMA T-shirt", "PUMA", "T-shirts", "999", "2"},
				{"NIKE-001", "Nike Shoes", "Nike", "Footwear", "4999.50", "1"},
			},
			expected: []domain.CartItem{
				{
					ProductID: "PUMA-001",
					Name:      "PUMA T-shirt",
					Brand:     "PUMA",
					Category:  "T-shirts",
					UnitPrice: money.MustParse("999"),
					Quantity:  2,
				},
				{
					ProductID: "NIKE-001",
					Name:      "Nike Shoes",
					Brand:     "Nike",
					Category:  "Footwear",
					UnitPrice: money.MustParse("4999.50"),
					Quantity:  1,
				},
			},
		},
		{
			name: "brand and category may be blank",
			csvData: [][]string{
				header,
				{"GIFT-1", "Gift card", "", "", "500", "1"},
			},
			expected: []domain.CartItem{
				{ProductID: "GIFT-1", Name: "Gift card", UnitPrice: money.MustParse("500"), Quantity: 1},
			},
		},
		{
			name:     "empty file with header only",
			csvData:  [][]string{header},
			expected: []domain.CartItem{},
		},
		{
			name: "invalid price format",
			csvData: [][]string{
				header,
				{"PUMA-001", "PUMA T-shirt", "PUMA", "T-shirts", "invalid_amount", "2"},
			},
			wantErr: true,
		},
		{
			name: "invalid quantity format",
			csvData: [][]string{
				header,
				{"PUMA-001", "PUMA T-shirt", "PUMA", "T-shirts", "999", "two"},
			},
			wantErr: true,
		},
		{
			name: "zero quantity rejected",
			csvData: [][]string{
				header,
				{"PUMA-001", "PUMA T-shirt", "PUMA", "T-shirts", "999", "0"},
			},
			wantErr: true,
		},
		{
			name: "wrong header",
			csvData: [][]string{
				{"sku", "name", "brand", "category", "unit_price", "quantity"},
				{"PUMA-001", "PUMA T-shirt", "PUMA", "T-shirts", "999", "2"},
			},
			wantErr: true,
		},
		{
			name: "missing column",
			csvData: [][]string{
				header,
				{"PUMA-001", "PUMA T-shirt", "PUMA", "T-shirts", "999"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary CSV file
			tmpFile, err := createTempCSV(tt.csvData)
			if err != nil {
				t.Fatalf("Failed to create temp CSV file: %v", err)
			}
			defer os.Remove(tmpFile)

			repo := NewFileRepository()
			ctx := context.Background()

			got, err := repo.GetCartItems(ctx, tmpFile)
			if tt.wantErr {
				assert.Error(t, err, "Expected error but got nil")
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestFileRepository_GetCartItems_FileErrors(t *testing.T) {
	repo := NewFileRepository()
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.GetCartItems(ctx, "nonexistent_file.csv")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("file with no header", func(t *testing.T) {
		// Create empty file
		tmpFile, err := os.CreateTemp("", "empty_*.csv")
		if err != nil {
			t.Fatalf("Failed to create temp file: %v", err)
		}
		defer os.Remove(tmpFile.Name())
		tmpFile.Close()

		_, err = repo.GetCartItems(ctx, tmpFile.Name())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		tmpFile, err := createTempCSV([][]string{
			{"product_id", "name", "brand", "category", "unit_price", "quantity"},
			{"PUMA-001", "PUMA T-shirt", "PUMA", "T-shirts", "999", "2"},
		})
		if err != nil {
			t.Fatalf("Failed to create temp CSV file: %v", err)
		}
		defer os.Remove(tmpFile)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err = repo.GetCartItems(cancelled, tmpFile)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// Helper functions

func createTempCSV(data [][]string) (string, error) {
	tmpFile, err := os.CreateTemp("", "test_*.csv")
	if err != nil {
		return "", err
	}

	writer := csv.NewWriter(tmpFile)

	for _, record := range data {
		if err := writer.Write(record); err != nil {
			tmpFile.Close()
			os.Remove(tmpFile.Name())
			return "", err
		}
	}

	// Flush the writer to ensure data is written to the file
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", err
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}

	return tmpFile.Name(), nil
}

func createTempYAML(content string) (string, error) {
	tmpFile, err := os.CreateTemp("", "test_*.yaml")
	if err != nil {
		return "", err
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}
	return tmpFile.Name(), nil
}

// Benchmark tests

func BenchmarkGetCartItems(b *testing.B) {
	// Create a large CSV file for benchmarking
	data := [][]string{{"product_id", "name", "brand", "category", "unit_price", "quantity"}}
	for i := 0; i < 1000; i++ {
		data = append(data, []string{"PUMA-001", "PUMA T-shirt", "PUMA", "T-shirts", "999.99", "3"})
	}

	tmpFile, err := createTempCSV(data)
	if err != nil {
		b.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile)

	repo := NewFileRepository()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := repo.GetCartItems(ctx, tmpFile)
		if err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
