package pdf

import (
	"bytes"
	"testing"
	"time"
)

func TestRenderer_ProducesPDF(t *testing.T) {
	r := NewRenderer()
	start := time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	narrative := "# Summary\n\nThe patient reported **mild headaches** on three occasions.\n\n---\n\n## Recommendations\n\n- Keep a hydration log\n- Follow up in 30 days"

	data, err := r.Render(narrative, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a pdf, starts with %q", data[:min(8, len(data))])
	}
}

func TestRenderer_EmptyNarrative(t *testing.T) {
	r := NewRenderer()

	data, err := r.Render("", time.Now(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("empty narrative must still produce a valid document")
	}
}
