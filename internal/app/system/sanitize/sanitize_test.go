package sanitize_test

import (
	"testing"

	"github.com/dalemusser/rollcall/internal/app/system/sanitize"
)

func TestText_Empty(t *testing.T) {
	if got := sanitize.Text(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestText_PlainTextUnchanged(t *testing.T) {
	if got := sanitize.Text("arrived late, traffic on I-70"); got != "arrived late, traffic on I-70" {
		t.Errorf("plain text changed: %q", got)
	}
}

func TestText_StripsTags(t *testing.T) {
	if got := sanitize.Text("<b>late</b> again"); got != "late again" {
		t.Errorf("expected tags stripped, got %q", got)
	}
}

func TestText_RemovesScript(t *testing.T) {
	got := sanitize.Text(`ok<script>alert("xss")</script>`)
	if got != "ok" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestText_TrimsWhitespace(t *testing.T) {
	if got := sanitize.Text("  note  "); got != "note" {
		t.Errorf("expected trimmed text, got %q", got)
	}
}
