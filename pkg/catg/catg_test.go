package catg_test

import (
	"testing"

	"catgedit/pkg/catg"
)

func TestParseSection(t *testing.T) {
	tests := []struct {
		in      string
		want    catg.Section
		wantErr bool
	}{
		{"NODES", catg.Nodes, false},
		{"nodes", catg.Nodes, false},
		{"Reaches", catg.Reaches, false},
		{"REACHES", catg.Reaches, false},
		{"LINKS", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := catg.ParseSection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSection(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSectionHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"C #NODES", true},
		{"C #REACHES", true},
		{"C #INTERSTATION AREAS", true},
		{"C 1 100.0 200.0", false},
		{"#NODES", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := catg.IsSectionHeader(tt.line); got != tt.want {
			t.Errorf("IsSectionHeader(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
