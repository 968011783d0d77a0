package pagination

import "testing"

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, DefaultLimit},
		{"negative uses default", -5, DefaultLimit},
		{"within bounds", 75, 75},
		{"above max is capped", 500, MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLimit(tt.limit); got != tt.want {
				t.Fatalf("NormalizeLimit(%d) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}

func TestParamsOffset(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   int
	}{
		{"first page", Params{Page: 1, Limit: 50}, 0},
		{"third page", Params{Page: 3, Limit: 20}, 40},
		{"zero page clamps to first", Params{Page: 0, Limit: 20}, 0},
		{"oversized limit capped before offset", Params{Page: 2, Limit: 1000}, MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Offset(); got != tt.want {
				t.Fatalf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"empty", 0, 50, 0},
		{"exact multiple", 100, 50, 2},
		{"partial last page", 101, 50, 3},
		{"single row", 1, 50, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pages(tt.total, tt.limit); got != tt.want {
				t.Fatalf("Pages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}
