package blocks

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLen  int
		wantText []string
	}{
		{
			name:     "two paragraphs",
			content:  "<p>First paragraph.</p>\n<p>Second paragraph.</p>",
			wantLen:  2,
			wantText: []string{"First paragraph.", "Second paragraph."},
		},
		{
			name:     "heading list and figure",
			content:  `<h2>Title</h2><ul><li>one</li><li>two</li></ul><figure><img src="x.jpg"></figure>`,
			wantLen:  3,
			wantText: []string{"Title", "one two", ""},
		},
		{
			name:     "nested markup stays one block",
			content:  `<div><p>Inner <strong>bold</strong> text</p><p>more</p></div>`,
			wantLen:  1,
			wantText: []string{"Inner bold text more"},
		},
		{
			name:     "bare text",
			content:  "Just plain text with no tags.",
			wantLen:  1,
			wantText: []string{"Just plain text with no tags."},
		},
		{
			name:     "unclosed tag recovers",
			content:  "<p>First<p>Second",
			wantLen:  2,
			wantText: []string{"First", "Second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.content)
			if len(got) != tt.wantLen {
				t.Fatalf("Split returned %d blocks, want %d: %+v", len(got), tt.wantLen, got)
			}
			for i, want := range tt.wantText {
				if got[i].Text != want {
					t.Errorf("block %d text = %q, want %q", i, got[i].Text, want)
				}
			}
		})
	}
}

func TestSplitEmpty(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t\n"} {
		if got := Split(content); got != nil {
			t.Errorf("Split(%q) = %+v, want nil", content, got)
		}
	}
}

func TestSplitKeepsMarkup(t *testing.T) {
	got := Split(`<p>Hello <em>world</em></p>`)
	if len(got) != 1 {
		t.Fatalf("got %d blocks, want 1", len(got))
	}
	if got[0].HTML != `<p>Hello <em>world</em></p>` {
		t.Errorf("HTML = %q, want the original fragment", got[0].HTML)
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{"entities decoded", "<p>Fish &amp; chips &#8211; tonight</p>", "Fish & chips – tonight"},
		{"whitespace collapsed", "<p>  spaced \n\n out  </p>", "spaced out"},
		{"tags stripped", `<a href="x">link</a> and <code>code</code>`, "link and code"},
		{"plain text unchanged", "already plain", "already plain"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.fragment); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.fragment, got, tt.want)
			}
		})
	}
}
