package dto

import (
	"net/url"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "title", Message: "is required"}
	if err.Error() != "title: is required" {
		t.Errorf("Error() = %q, want %q", err.Error(), "title: is required")
	}
}

func TestValidationError_ToMap(t *testing.T) {
	err := ValidationError{Field: "title", Message: "is required"}
	m := err.ToMap()
	if m["title"] != "is required" {
		t.Errorf("ToMap() = %v, want {title: is required}", m)
	}
}

func TestToMap(t *testing.T) {
	errs := []ValidationError{
		{Field: "rating", Message: "is required"},
		{Field: "review", Message: "must be at most 250 characters"},
	}
	m := ToMap(errs)
	if len(m) != 2 {
		t.Errorf("ToMap() returned %d items, want 2", len(m))
	}
	if m["rating"] != "is required" {
		t.Errorf("ToMap()[rating] = %q, want %q", m["rating"], "is required")
	}
}

func TestToResponse(t *testing.T) {
	errs := []ValidationError{
		{Field: "rating", Message: "is required"},
		{Field: "review", Message: "invalid"},
	}
	resp := ToResponse(errs)
	expected := "rating: is required; review: invalid"
	if resp != expected {
		t.Errorf("ToResponse() = %q, want %q", resp, expected)
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"7.5", 7.5, true},
		{" 8 ", 8, true},
		{"0", 0, true},
		{"10", 10, true},
		{"10.1", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseRating(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseRating(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDecodeAddForm(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		wantTitle string
		wantField string
	}{
		{"valid", url.Values{"title": {"Inception"}}, "Inception", ""},
		{"trimmed", url.Values{"title": {"  Inception "}}, "Inception", ""},
		{"missing", url.Values{}, "", "title"},
		{"blank", url.Values{"title": {"   "}}, "", "title"},
		{"too long", url.Values{"title": {strings.Repeat("a", 251)}}, strings.Repeat("a", 251), "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, errs := DecodeAddForm(tt.values)
			if req.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", req.Title, tt.wantTitle)
			}
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("Expected no errors, got %v", errs)
				}
				return
			}
			if _, ok := ToMap(errs)[tt.wantField]; !ok {
				t.Errorf("Expected error on %s, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestDecodeEditForm(t *testing.T) {
	tests := []struct {
		name       string
		values     url.Values
		wantRating float64
		wantFields []string
	}{
		{"valid", url.Values{"rating": {"7.5"}, "review": {"Great"}}, 7.5, nil},
		{"integer rating", url.Values{"rating": {"9"}, "review": {"Great"}}, 9, nil},
		{"missing both", url.Values{}, 0, []string{"rating", "review"}},
		{"not a number", url.Values{"rating": {"abc"}, "review": {"Great"}}, 0, []string{"rating"}},
		{"out of range", url.Values{"rating": {"11"}, "review": {"Great"}}, 0, []string{"rating"}},
		{"blank review", url.Values{"rating": {"5"}, "review": {"  "}}, 5, []string{"review"}},
		{"review too long", url.Values{"rating": {"5"}, "review": {strings.Repeat("r", 251)}}, 5, []string{"review"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, errs := DecodeEditForm(tt.values)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Expected %d errors, got %v", len(tt.wantFields), errs)
			}
			m := ToMap(errs)
			for _, f := range tt.wantFields {
				if _, ok := m[f]; !ok {
					t.Errorf("Expected error on %s, got %v", f, errs)
				}
			}
			if got := req.RatingValue(); got != tt.wantRating {
				t.Errorf("RatingValue() = %v, want %v", got, tt.wantRating)
			}
		})
	}
	_, errs := DecodeEditForm(url.Values{"rating": {"42"}, "review": {"x"}})
	if len(errs) != 1 || errs[0].Message != "must be a number from 0 to 10 inclusive, e.g. 7.5" {
		t.Errorf("Unexpected rating message: %v", errs)
	}
}
