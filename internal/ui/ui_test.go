package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	got := ProgressBar(1, 2, 10)
	if got != "█████░░░░░  50%" {
		t.Fatalf("unexpected bar: %q", got)
	}
	if got := ProgressBar(0, 0, 2); got != "░░░░░   0%" {
		t.Fatalf("expected clamped empty bar, got %q", got)
	}
	if got := ProgressBar(9, 3, 5); !strings.HasPrefix(got, "█████ ") {
		t.Fatalf("expected full bar, got %q", got)
	}
}

func TestThemes(t *testing.T) {
	defer SetTheme("classic")
	for _, name := range Themes {
		if err := SetTheme(name); err != nil {
			t.Fatalf("theme %s: %v", name, err)
		}
		if Current().Name != name {
			t.Fatalf("expected current theme %s, got %s", name, Current().Name)
		}
	}
	if err := SetTheme("solarized"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if Current().Name != "mono" {
		t.Fatalf("failed SetTheme must keep the previous theme, got %s", Current().Name)
	}
}

func TestPanelAndPrinters(t *testing.T) {
	defer SetTheme("classic")
	if err := SetTheme("mono"); err != nil {
		t.Fatal(err)
	}
	out := Panel([]string{"one", "three"})
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "+-------+" || lines[1] != "| one   |" {
		t.Fatalf("unexpected frame: %q", out)
	}

	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "nope")
	if buf.String() != "x added\n✖ nope\n" {
		t.Fatalf("unexpected printer output: %q", buf.String())
	}
}
