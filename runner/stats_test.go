package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jeffrom/cmsg/model"
	"github.com/jeffrom/cmsg/vcs"
)

func TestStats(t *testing.T) {
	tio, _, _ := mockTermIO(nil)
	cfg := newTestConfig(nil, &tio)
	m := vcs.NewMock().SetCommits(
		&model.Commit{ID: "deadbeef", Subject: "feat(parser): add things"},
		&model.Commit{ID: "12345678", Subject: "FEAT(Parser): add more things"},
		&model.Commit{ID: "87654321", Subject: "fix: thing", Body: "BREAKING CHANGE: oops"},
		&model.Commit{ID: "abcdef12", Subject: "not conventional at all"},
	)
	rnr := New(cfg, m)

	stats, err := rnr.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Commits != 4 {
		t.Errorf("expected 4 commits, got %d", stats.Commits)
	}
	if stats.Invalid != 1 {
		t.Errorf("expected 1 unparseable commit, got %d", stats.Invalid)
	}
	if stats.Breaking != 1 {
		t.Errorf("expected 1 breaking commit, got %d", stats.Breaking)
	}

	types, ok := stats.Counts["commit_type"]
	if !ok {
		t.Fatal("expected commit_type counter")
	}
	// differently-cased types fold into one counter
	var featCount int64
	for _, c := range types {
		if c.label == "feat" {
			featCount = c.n
		}
	}
	if featCount != 2 {
		t.Errorf("expected 2 feat commits, got %d", featCount)
	}

	b := &bytes.Buffer{}
	if err := stats.TextSummary(b, false); err != nil {
		t.Fatal(err)
	}
	res := b.String()
	if !strings.Contains(res, "4 commits") {
		t.Errorf("expected summary to contain totals, got:\n%s", res)
	}
	if !strings.Contains(res, "Commit Type:") {
		t.Errorf("expected summary to contain bucket headings, got:\n%s", res)
	}
}
