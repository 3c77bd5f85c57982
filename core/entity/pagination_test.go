package entity

import "testing"

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name      string
		page      int
		size      int
		wantItems []int
		wantPages int
	}{
		{name: "first page", page: 1, size: 3, wantItems: []int{1, 2, 3}, wantPages: 3},
		{name: "last partial page", page: 3, size: 3, wantItems: []int{7}, wantPages: 3},
		{name: "past the end", page: 5, size: 3, wantItems: []int{}, wantPages: 3},
		{name: "single page", page: 1, size: 20, wantItems: items, wantPages: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Paginate(items, tc.page, tc.size)
			if got.TotalItems != len(items) || got.TotalPages != tc.wantPages {
				t.Fatalf("unexpected totals %+v", got)
			}
			if len(got.Items) != len(tc.wantItems) {
				t.Fatalf("expected %v, got %v", tc.wantItems, got.Items)
			}
			for i := range tc.wantItems {
				if got.Items[i] != tc.wantItems[i] {
					t.Fatalf("expected %v, got %v", tc.wantItems, got.Items)
				}
			}
		})
	}
}
