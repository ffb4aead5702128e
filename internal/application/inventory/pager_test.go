package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPager(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		wantPage  int
		wantCount int
		wantOff   int
		wantPages []int
	}{
		{name: "empty listing has one page", total: 0, page: 1, wantPage: 1, wantCount: 1, wantOff: 0, wantPages: []int{1}},
		{name: "page below one is clamped", total: 45, page: -3, wantPage: 1, wantCount: 3, wantOff: 0, wantPages: []int{1, 2, 3}},
		{name: "page past the end is clamped", total: 45, page: 9, wantPage: 3, wantCount: 3, wantOff: 40, wantPages: []int{1, 2, 3}},
		{name: "exact multiple", total: 40, page: 2, wantPage: 2, wantCount: 2, wantOff: 20, wantPages: []int{1, 2}},
		{name: "window centred on page", total: 200, page: 6, wantPage: 6, wantCount: 10, wantOff: 100, wantPages: []int{4, 5, 6, 7, 8}},
		{name: "window pinned to last page", total: 200, page: 10, wantPage: 10, wantCount: 10, wantOff: 180, wantPages: []int{6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(tt.total, tt.page, 20)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantCount, p.PageCount)
			assert.Equal(t, tt.wantOff, p.Offset)
			assert.Equal(t, tt.wantPages, p.Pages)
		})
	}
}

func TestPager_PrevNext(t *testing.T) {
	p := NewPager(45, 2, 20)
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())

	p = NewPager(5, 1, 20)
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
}
