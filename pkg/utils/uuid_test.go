package utils

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Spanish Latte", "spanish-latte"},
		{"Iced Caramel Macchiato", "iced-caramel-macchiato"},
		{"Brewed Coffee (House)", "brewed-coffee-house"},
		{"  Tuna   Melt  ", "tuna-melt"},
		{"Halo-Halo", "halo-halo"},
		{"100% Arabica!", "100-arabica"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateRestockNo(t *testing.T) {
	no := GenerateRestockNo()
	if !strings.HasPrefix(no, "RST-") {
		t.Errorf("restock no %q missing RST- prefix", no)
	}
	if len(no) != len("RST-")+8 {
		t.Errorf("restock no %q has unexpected length", no)
	}
	if no == GenerateRestockNo() {
		t.Error("two generated restock numbers collided")
	}
}
