package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults on zero", 0, 0, 1, 10},
		{"defaults on negative", -3, -1, 1, 10},
		{"valid values pass through", 4, 25, 4, 25},
		{"pageSize capped at max", 1, 500, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestOffsetAndLimit(t *testing.T) {
	p := Normalize(3, 20)
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())

	p = Normalize(0, 0)
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, 10, p.Limit())
}

func TestNewResult(t *testing.T) {
	p := Normalize(1, 2)

	result := NewResult([]string{"a", "b"}, 5, p)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 2, result.PageSize)
	assert.Equal(t, 3, result.TotalPages)

	empty := NewResult[string](nil, 0, p)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)

	exact := NewResult([]string{"a", "b"}, 4, p)
	assert.Equal(t, 2, exact.TotalPages)
}
