package index

import (
	"errors"
	"strings"
	"testing"
)

const sampleIndex = `Plan index for the widget project.

Entries
=======

- Plan: 2025-06-01-9am_older.txt
  status: done
  follow-up in the retro notes

- Plan: 2026-01-28-1pm_example.txt
  status: active
`

func mustParse(t *testing.T, content string) *Document {
	t.Helper()
	doc, err := Parse(content, DefaultHeading, DefaultPlanPrefix)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestParse(t *testing.T) {
	t.Run("splits header and blocks", func(t *testing.T) {
		doc := mustParse(t, sampleIndex)

		if len(doc.Header) != 4 {
			t.Fatalf("expected 4 header lines (through underline), got %d: %q", len(doc.Header), doc.Header)
		}
		if doc.Header[2] != "Entries" {
			t.Errorf("expected heading in header, got %q", doc.Header[2])
		}
		if len(doc.Blocks) != 2 {
			t.Fatalf("expected 2 blocks, got %d", len(doc.Blocks))
		}
	})

	t.Run("blocks keep continuation lines", func(t *testing.T) {
		doc := mustParse(t, sampleIndex)

		first := doc.Blocks[0]
		if first.Plan != "2025-06-01-9am_older.txt" {
			t.Errorf("unexpected plan identifier: %q", first.Plan)
		}
		if !strings.Contains(first.Text(), "follow-up in the retro notes") {
			t.Errorf("continuation line lost: %q", first.Text())
		}
		if first.Index != 0 || doc.Blocks[1].Index != 1 {
			t.Errorf("original indices wrong: %d, %d", first.Index, doc.Blocks[1].Index)
		}
	})

	t.Run("heading without underline", func(t *testing.T) {
		doc := mustParse(t, "Entries\n\n- Plan: 2026-01-28-1pm_x\n")
		if len(doc.Header) != 1 {
			t.Fatalf("expected 1 header line, got %d", len(doc.Header))
		}
		if len(doc.Blocks) != 1 {
			t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
		}
	})

	t.Run("stray lines before first block dropped", func(t *testing.T) {
		doc := mustParse(t, "Entries\n\nstray note\n\n- Plan: 2026-01-28-1pm_x\n")
		if len(doc.Blocks) != 1 {
			t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
		}
		if strings.Contains(doc.Render(), "stray note") {
			t.Error("stray pre-block line should not survive rendering")
		}
	})

	t.Run("missing heading fails", func(t *testing.T) {
		_, err := Parse("just some text\nno heading here\n", DefaultHeading, DefaultPlanPrefix)
		if !errors.Is(err, ErrMissingHeading) {
			t.Fatalf("expected ErrMissingHeading, got %v", err)
		}
	})

	t.Run("custom markers", func(t *testing.T) {
		doc, err := Parse("Log\n\n* Entry: 2026-01-28-1pm_x\n", "Log", "* Entry: ")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(doc.Blocks) != 1 {
			t.Fatalf("expected 1 block with custom prefix, got %d", len(doc.Blocks))
		}
	})
}

func TestDocumentInvalid(t *testing.T) {
	doc := mustParse(t, "Entries\n\n- Plan: weird_name\n\n- Plan: 2026-01-28-1pm_ok\n\n- Plan: 2026-02-30-13pm_x\n")

	invalid := doc.Invalid()
	if len(invalid) != 2 {
		t.Fatalf("expected 2 invalid plans, got %d: %v", len(invalid), invalid)
	}
	if invalid[0] != "weird_name" || invalid[1] != "2026-02-30-13pm_x" {
		t.Errorf("invalid plans out of order or wrong: %v", invalid)
	}
}

func TestDocumentSort(t *testing.T) {
	t.Run("most recent first", func(t *testing.T) {
		doc := mustParse(t, sampleIndex)
		doc.Sort()

		if doc.Blocks[0].Plan != "2026-01-28-1pm_example.txt" {
			t.Errorf("expected 2026 plan first, got %q", doc.Blocks[0].Plan)
		}
		if doc.Blocks[1].Plan != "2025-06-01-9am_older.txt" {
			t.Errorf("expected 2025 plan second, got %q", doc.Blocks[1].Plan)
		}
	})

	t.Run("equal timestamps keep input order", func(t *testing.T) {
		doc := mustParse(t, "Entries\n\n- Plan: 2026-01-28-1pm_first\n\n- Plan: 2026-01-28-1pm_second\n")
		doc.Sort()

		if doc.Blocks[0].Plan != "2026-01-28-1pm_first" {
			t.Errorf("stable sort violated: %q came first", doc.Blocks[0].Plan)
		}
	})

	t.Run("hour breaks same-day ties", func(t *testing.T) {
		doc := mustParse(t, "Entries\n\n- Plan: 2026-01-28-9am_morning\n\n- Plan: 2026-01-28-12am_midnight\n\n- Plan: 2026-01-28-11pm_night\n")
		doc.Sort()

		want := []string{"2026-01-28-11pm_night", "2026-01-28-9am_morning", "2026-01-28-12am_midnight"}
		for i, plan := range want {
			if doc.Blocks[i].Plan != plan {
				t.Errorf("position %d: got %q, want %q", i, doc.Blocks[i].Plan, plan)
			}
		}
	})
}

func TestDocumentRender(t *testing.T) {
	t.Run("canonical shape", func(t *testing.T) {
		doc := mustParse(t, sampleIndex)
		doc.Sort()
		got := doc.Render()

		want := `Plan index for the widget project.

Entries
=======

- Plan: 2026-01-28-1pm_example.txt
  status: active

- Plan: 2025-06-01-9am_older.txt
  status: done
  follow-up in the retro notes
`
		if got != want {
			t.Errorf("Render mismatch:\ngot:\n%q\nwant:\n%q", got, want)
		}
	})

	t.Run("render is a fixpoint", func(t *testing.T) {
		doc := mustParse(t, sampleIndex)
		doc.Sort()
		first := doc.Render()

		doc2 := mustParse(t, first)
		doc2.Sort()
		if second := doc2.Render(); second != first {
			t.Errorf("second render differs:\n%q\nvs\n%q", second, first)
		}
	})

	t.Run("trailing whitespace trimmed", func(t *testing.T) {
		doc := mustParse(t, "Entries   \n\n- Plan: 2026-01-28-1pm_x  \n   \n")
		got := doc.Render()
		if strings.Contains(got, " \n") {
			t.Errorf("trailing whitespace survived: %q", got)
		}
		if !strings.HasSuffix(got, "_x\n") || strings.HasSuffix(got, "\n\n") {
			t.Errorf("expected exactly one trailing newline: %q", got)
		}
	})
}
