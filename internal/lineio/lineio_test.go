package lineio_test

import (
	"reflect"
	"testing"

	"catgedit/internal/lineio"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantLines  []string
		wantEnding string
	}{
		{
			name:       "plain LF",
			content:    "a\nb\nc\n",
			wantLines:  []string{"a", "b", "c", ""},
			wantEnding: "\n",
		},
		{
			name:       "CRLF strips carriage returns",
			content:    "a\r\nb\r\n",
			wantLines:  []string{"a", "b", ""},
			wantEnding: "\r\n",
		},
		{
			name:       "no trailing newline",
			content:    "a\nb",
			wantLines:  []string{"a", "b"},
			wantEnding: "\n",
		},
		{
			name:       "single line without newline",
			content:    "only",
			wantLines:  []string{"only"},
			wantEnding: "\n",
		},
		{
			name:       "empty content",
			content:    "",
			wantLines:  []string{""},
			wantEnding: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := lineio.Decode([]byte(tt.content))
			if !reflect.DeepEqual(doc.Lines, tt.wantLines) {
				t.Errorf("Lines = %q, want %q", doc.Lines, tt.wantLines)
			}
			if doc.Ending() != tt.wantEnding {
				t.Errorf("Ending() = %q, want %q", doc.Ending(), tt.wantEnding)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	// Unmodified lines must re-encode to the original bytes exactly.
	tests := []string{
		"a\nb\nc\n",
		"a\r\nb\r\nc\r\n",
		"a\nb",
		"a\r\nb",
		"",
		"single\n",
	}

	for _, content := range tests {
		doc := lineio.Decode([]byte(content))
		got := string(doc.Encode(doc.Lines))
		if got != content {
			t.Errorf("round trip of %q produced %q", content, got)
		}
	}
}

func TestEncodeEditedLinesKeepsConvention(t *testing.T) {
	doc := lineio.Decode([]byte("one\r\ntwo\r\n"))
	lines := []string{"ONE", "TWO", ""}
	got := string(doc.Encode(lines))
	want := "ONE\r\nTWO\r\n"
	if got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}
