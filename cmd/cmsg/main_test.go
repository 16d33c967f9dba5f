package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"testing"

	"github.com/jeffrom/cmsg/vcs/gitcli"
)

type testOperation struct {
	Commit     string
	CmsgArgs   []string
	ShouldFail bool
}

type checkTestCase struct {
	name string
	ops  []testOperation
}

func TestCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("-short")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Fatal(err)
	}

	tcs := []checkTestCase{
		{
			name: "basic",
			ops: []testOperation{
				{Commit: "feat: cool thing"},
				{Commit: "fix(scope): cool fix"},
				{CmsgArgs: strs("--check")},
			},
		},
		{
			name: "fail-plain-subject",
			ops: []testOperation{
				{Commit: "feat: cool thing"},
				{Commit: "cool thing"},
				{CmsgArgs: strs("--check"), ShouldFail: true},
			},
		},
		{
			name: "fail-missing-space",
			ops: []testOperation{
				{Commit: "feat:cool thing"},
				{CmsgArgs: strs("--check"), ShouldFail: true},
			},
		},
		{
			name: "breaking-change-body",
			ops: []testOperation{
				{Commit: "feat: cool thing\n\nBREAKING CHANGE: the whole api"},
				{CmsgArgs: strs("--check")},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, runCheckTest(tc))
	}
}

func runCheckTest(tc checkTestCase) func(t *testing.T) {
	return func(t *testing.T) {
		ctx := context.Background()
		currDir, err := os.Getwd()
		die(err)
		defer os.Chdir(currDir)

		tmpDir, err := ioutil.TempDir("", fmt.Sprintf("cmsg-%s", tc.name))
		die(err)
		defer cleanupTempdir(t, tmpDir)
		die(os.Chdir(tmpDir))

		call(ctx, t, "git", "init")
		call(ctx, t, "git", "config", "--local", "user.email", "cmsg-test@example.com")
		call(ctx, t, "git", "config", "--local", "user.name", "cmsg-test")

		for _, op := range tc.ops {
			runOp(ctx, t, op)
		}
	}
}

func TestCheckCommitFlag(t *testing.T) {
	if err := run(strs("cmsg", "--check-commit", "feat(parser): add ability to parse arrays")); err != nil {
		t.Fatal(err)
	}
	if err := run(strs("cmsg", "--check-commit", "no conventional format here")); err == nil {
		t.Fatal("expected check to fail")
	}
}

func TestParseArg(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		if err := run(strs("cmsg", "--format", format, "feat(parser)!: add ability to parse arrays")); err != nil {
			t.Fatal(err)
		}
	}
	if err := run(strs("cmsg", "--format", "xml", "feat: nope")); err == nil {
		t.Fatal("expected invalid format error")
	}
	if err := run(strs("cmsg", "feat:  too many spaces")); err == nil {
		t.Fatal("expected parse error")
	}
}

func runOp(ctx context.Context, t *testing.T, op testOperation) {
	t.Helper()
	if op.Commit != "" {
		call(ctx, t, "git", "commit", "--allow-empty", "-m", op.Commit)
	}
	if op.CmsgArgs != nil {
		err := run(append([]string{"cmsg"}, op.CmsgArgs...))
		if op.ShouldFail {
			if err == nil {
				t.Fatal("expected command to fail")
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}
	}
}

func call(ctx context.Context, t *testing.T, arg string, args ...string) {
	t.Helper()
	t.Logf("+ %s %s", arg, gitcli.ArgsString(args))
	cmd := exec.CommandContext(ctx, arg, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if arg == "git" {
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=cmsg-test",
			"GIT_AUTHOR_EMAIL=cmsg-test@example.com",
			"GIT_COMMITTER_NAME=cmsg-test",
			"GIT_COMMITTER_EMAIL=cmsg-test@example.com",
		)
	}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
}

func cleanupTempdir(t *testing.T, dir string) {
	t.Helper()
	if t.Failed() {
		t.Logf("Test failed. Leaving temp dir: %s", dir)
		return
	}
	os.RemoveAll(dir)
}

func strs(args ...string) []string { return args }
