package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(t *testing.T, query string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(newContext(t, ""))
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContext_Explicit(t *testing.T) {
	p := FromContext(newContext(t, "limit=5&offset=10"))
	if p.Limit != 5 || p.Offset != 10 {
		t.Errorf("expected 5/10, got %d/%d", p.Limit, p.Offset)
	}
}

func TestFromContext_ClampsLimit(t *testing.T) {
	p := FromContext(newContext(t, "limit=500"))
	if p.Limit != MaxLimit {
		t.Errorf("expected max limit %d, got %d", MaxLimit, p.Limit)
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		total      int
		start, end int
	}{
		{"first page", 10, 0, 25, 0, 10},
		{"last partial page", 10, 20, 25, 20, 25},
		{"offset beyond total", 10, 30, 25, 25, 25},
		{"empty collection", 10, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Limit: tt.limit, Offset: tt.offset}
			start, end := p.Slice(tt.total)
			if start != tt.start || end != tt.end {
				t.Errorf("Slice(%d) = %d,%d; want %d,%d", tt.total, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestHasNext(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		offset int
		total  int
		want   bool
	}{
		{"middle page", 10, 10, 30, true},
		{"last full page", 10, 20, 30, false},
		{"single short page", 10, 0, 3, false},
		{"empty collection", 10, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Limit: tt.limit, Offset: tt.offset}
			if got := p.HasNext(tt.total); got != tt.want {
				t.Errorf("HasNext(%d) = %v; want %v", tt.total, got, tt.want)
			}
		})
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse(nil, 30, 10, 10)
	if !r.HasMore {
		t.Error("expected HasMore true at offset 10 of 30")
	}
	r = NewResponse(nil, 30, 10, 20)
	if r.HasMore {
		t.Error("expected HasMore false on the last page")
	}
}
