package analysis

import (
	"testing"

	"irecore/internal/attribute"
)

func TestStreamAttributesPerToken(t *testing.T) {
	s := NewStream([]Token{
		{Term: "quick", Position: 0, StartByte: 0, EndByte: 5},
		{Term: "fox", Position: 2, StartByte: 10, EndByte: 13}, // a stopword skipped position 1
	})

	if !s.Next() {
		t.Fatal("expected a first token")
	}
	term := attribute.ViewGet(s.Attributes(), attribute.TermAttributeKey)
	if term == nil || term.Value.String() != "quick" {
		t.Fatalf("term = %+v, want quick", term)
	}
	inc := attribute.ViewGet(s.Attributes(), attribute.IncrementKey)
	if inc == nil || inc.Value != 0 {
		t.Fatalf("first token increment = %+v, want 0", inc)
	}
	off := attribute.ViewGet(s.Attributes(), attribute.OffsetKey)
	if off == nil || off.Start != 0 || off.End != 5 {
		t.Fatalf("offset = %+v, want {0,5}", off)
	}

	if !s.Next() {
		t.Fatal("expected a second token")
	}
	term = attribute.ViewGet(s.Attributes(), attribute.TermAttributeKey)
	if term == nil || term.Value.String() != "fox" {
		t.Fatalf("term = %+v, want fox", term)
	}
	inc = attribute.ViewGet(s.Attributes(), attribute.IncrementKey)
	if inc == nil || inc.Value != 2 {
		t.Fatalf("second token increment = %+v, want 2 (one position skipped)", inc)
	}

	if s.Next() {
		t.Fatal("expected the stream to be exhausted")
	}
}

func TestAnalyzeWithRegisteredAnalyzer(t *testing.T) {
	r := NewRegistry()
	s, err := Analyze(r, "body", "standard", "The Quick Fox")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var terms []string
	for s.Next() {
		term := attribute.ViewGet(s.Attributes(), attribute.TermAttributeKey)
		terms = append(terms, term.Value.String())
	}
	want := []string{"the", "quick", "fox"}
	if len(terms) != len(want) {
		t.Fatalf("terms = %v, want %v", terms, want)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Fatalf("terms = %v, want %v", terms, want)
		}
	}
}

func TestAnalyzeUnknownAnalyzerErrors(t *testing.T) {
	r := NewRegistry()
	if _, err := Analyze(r, "body", "nonexistent", "text"); err == nil {
		t.Fatal("expected an error for an unregistered analyzer name")
	}
}
