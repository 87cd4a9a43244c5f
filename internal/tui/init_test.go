package tui

import "testing"

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"site root gets collection path", "https://example.com", "https://example.com/wp-json/wp/v2", false},
		{"trailing slash trimmed", "https://example.com/", "https://example.com/wp-json/wp/v2", false},
		{"full collection URL kept", "https://example.com/wp-json/wp/v2", "https://example.com/wp-json/wp/v2", false},
		{"subsite kept", "https://example.com/blog/wp-json/wp/v2", "https://example.com/blog/wp-json/wp/v2", false},
		{"http allowed", "http://localhost:8080", "http://localhost:8080/wp-json/wp/v2", false},
		{"empty", "", "", true},
		{"missing scheme", "example.com", "", true},
		{"bad scheme", "ftp://example.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("normalizeBaseURL(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeBaseURL(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("normalizeBaseURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
