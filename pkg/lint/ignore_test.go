package lint

import (
	"strings"
	"testing"
)

func TestSuppressorOffOnSpan(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"<div>",                   // 1
		"<!-- gotplfmt:off -->",   // 2
		"<p>",                     // 3
		"<!-- gotplfmt:on -->",    // 4
		"<span>",                  // 5
	}, "\n")

	s := newSuppressor(src)

	if s.suppressed("T025", 1) {
		t.Error("line before span suppressed")
	}
	if !s.suppressed("T025", 2) || !s.suppressed("T025", 3) || !s.suppressed("T025", 4) {
		t.Error("span lines not suppressed")
	}
	if s.suppressed("T025", 5) {
		t.Error("line after span suppressed")
	}
}

func TestSuppressorOffWithCodes(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"{# gotplfmt:off t025, t005 #}",
		"<p>",
		"{# gotplfmt:on #}",
	}, "\n")

	s := newSuppressor(src)

	if !s.suppressed("T025", 2) {
		t.Error("listed code not suppressed")
	}
	if !s.suppressed("T005", 2) {
		t.Error("second listed code not suppressed")
	}
	if s.suppressed("T006", 2) {
		t.Error("unlisted code suppressed")
	}
}

func TestSuppressorUnclosedOffRunsToEOF(t *testing.T) {
	t.Parallel()

	src := "a\n<!-- gotplfmt:off -->\nb\nc\n"
	s := newSuppressor(src)

	if s.suppressed("T001", 1) {
		t.Error("line before directive suppressed")
	}
	for line := 2; line <= 5; line++ {
		if !s.suppressed("T001", line) {
			t.Errorf("line %d not suppressed", line)
		}
	}
}

func TestSuppressorIgnoreLine(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"<img> <!-- gotplfmt:ignore -->",
		"<img> <!-- gotplfmt:ignore T013 -->",
		"<img>",
	}, "\n")

	s := newSuppressor(src)

	if !s.suppressed("T006", 1) || !s.suppressed("T013", 1) {
		t.Error("bare ignore should silence every rule on its line")
	}
	if !s.suppressed("T013", 2) {
		t.Error("listed code not suppressed on line 2")
	}
	if s.suppressed("T006", 2) {
		t.Error("unlisted code suppressed on line 2")
	}
	if s.suppressed("T013", 3) {
		t.Error("directive leaked to the next line")
	}
}

func TestCodeSet(t *testing.T) {
	t.Parallel()

	if got := codeSet(""); got != nil {
		t.Errorf("empty list = %v, want nil", got)
	}

	got := codeSet(" t025, T005")
	if len(got) != 2 || !got["T025"] || !got["T005"] {
		t.Errorf("codeSet = %v", got)
	}
}
