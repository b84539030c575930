package models

import "testing"

func TestPaginationQueryNormalize(t *testing.T) {
	cases := []struct {
		name         string
		in           PaginationQuery
		wantPage     int
		wantPageSize int
	}{
		{"零值回落默认", PaginationQuery{}, 1, 10},
		{"负数回落默认", PaginationQuery{Page: -3, PageSize: -1}, 1, 10},
		{"超上限回落默认", PaginationQuery{Page: 2, PageSize: 500}, 2, 10},
		{"合法值保持", PaginationQuery{Page: 3, PageSize: 20}, 3, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Normalize()
			if tc.in.Page != tc.wantPage || tc.in.PageSize != tc.wantPageSize {
				t.Fatalf("期望 page=%d page_size=%d，实际 page=%d page_size=%d",
					tc.wantPage, tc.wantPageSize, tc.in.Page, tc.in.PageSize)
			}
		})
	}
}

func TestNewPaginationResult(t *testing.T) {
	query := PaginationQuery{Page: 2, PageSize: 10}
	data := []string{"a", "b"}

	result := NewPaginationResult(21, query, data)
	if result.Total != 21 || result.Page != 2 || result.PageSize != 10 {
		t.Fatalf("期望 total=21 page=2 page_size=10，实际 %+v", result)
	}
	// 不足一页的部分向上取整
	if result.TotalPages != 3 {
		t.Fatalf("期望 total_pages=3，实际 %d", result.TotalPages)
	}

	empty := NewPaginationResult(0, query, nil)
	if empty.TotalPages != 0 {
		t.Fatalf("期望空结果 total_pages=0，实际 %d", empty.TotalPages)
	}
}
