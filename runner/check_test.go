package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jeffrom/cmsg/config"
	"github.com/jeffrom/cmsg/model"
	"github.com/jeffrom/cmsg/vcs"
)

func mockTermIO(stdin io.Reader) (config.TerminalIO, *bytes.Buffer, *bytes.Buffer) {
	ob := &bytes.Buffer{}
	eb := &bytes.Buffer{}
	tio := config.TerminalIO{Stdin: stdin, Stdout: ob, Stderr: eb}
	return tio, ob, eb
}

func newTestConfig(overrides *config.Config, tio *config.TerminalIO) config.Config {
	return config.NewWithTerminalIO(overrides, tio)
}

var conventionalCommit = &model.Commit{ID: "deadbeef", Subject: "fix: cool fix"}
var conventionalBodyCommit = &model.Commit{ID: "deadbeef", Subject: "feat: cool feature", Body: "BREAKING CHANGE: nice breakin change"}
var plainCommit = &model.Commit{ID: "deadbeef", Subject: "cool subject"}

func TestCheckMessages(t *testing.T) {
	tio, _, _ := mockTermIO(nil)
	cfg := newTestConfig(nil, &tio)
	rnr := New(cfg, vcs.NewMock())

	if err := rnr.CheckMessages(context.Background(), []string{"fix: thing", "feat(scope)!: other"}); err != nil {
		t.Fatal(err)
	}

	err := rnr.CheckMessages(context.Background(), []string{"fix: thing", "not conventional", "feat:bad"})
	if err == nil {
		t.Fatal("expected a check failure")
	}
	cf := CheckFailure{}
	if !errors.As(err, &cf) {
		t.Fatalf("expected a CheckFailure, got %T", err)
	}
	if len(cf.Failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(cf.Failures))
	}

	b := &bytes.Buffer{}
	if err := cf.WriteFailure(b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "not conventional") {
		t.Errorf("expected failure output to cite the bad message, got:\n%s", out)
	}
	if !strings.Contains(out, "malformed header") {
		t.Errorf("expected failure output to describe the error, got:\n%s", out)
	}
}

func TestCheckReader(t *testing.T) {
	tio, _, _ := mockTermIO(nil)
	cfg := newTestConfig(nil, &tio)
	rnr := New(cfg, vcs.NewMock())

	msg := "fix: correct minor typos in code\n\nsee the issue for details\n\nReviewed-by: Z\n"
	if err := rnr.CheckReader(context.Background(), strings.NewReader(msg)); err != nil {
		t.Fatal(err)
	}

	if err := rnr.CheckReader(context.Background(), strings.NewReader("nope\n")); err == nil {
		t.Fatal("expected a check failure")
	}
}

func TestCheckCommitsFromGit(t *testing.T) {
	tcs := []struct {
		name        string
		commits     []*model.Commit
		expectFails int
	}{
		{
			name:    "ok",
			commits: []*model.Commit{conventionalCommit, conventionalBodyCommit},
		},
		{
			name:        "one-bad",
			commits:     []*model.Commit{conventionalCommit, plainCommit},
			expectFails: 1,
		},
		{
			name:        "all-bad",
			commits:     []*model.Commit{plainCommit, plainCommit},
			expectFails: 2,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			tio, _, _ := mockTermIO(nil)
			cfg := newTestConfig(nil, &tio)
			m := vcs.NewMock().SetCommits(tc.commits...)
			rnr := New(cfg, m)

			err := rnr.CheckCommitsFromGit(context.Background(), "")
			if tc.expectFails == 0 {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			cf := CheckFailure{}
			if !errors.As(err, &cf) {
				t.Fatalf("expected a CheckFailure, got %v", err)
			}
			if len(cf.Failures) != tc.expectFails {
				t.Fatalf("expected %d failures, got %d", tc.expectFails, len(cf.Failures))
			}
		})
	}
}
