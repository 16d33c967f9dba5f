package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/jeffrom/cmsg/commit"
)

type CheckFailure struct {
	Failures []FailureEntry
}

type FailureEntry struct {
	commitID    string
	commitTitle string
	err         error
}

func (cf CheckFailure) Error() string {
	return fmt.Sprintf("%d check(s) failed", len(cf.Failures))
}

func (cf CheckFailure) Is(other error) bool {
	_, ok := other.(CheckFailure)
	return ok
}

func (cf CheckFailure) WriteFailure(w io.Writer) error {
	if len(cf.Failures) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)

	for _, failure := range cf.Failures {
		title := failure.commitTitle
		if failure.commitID != "" {
			title = fmt.Sprintf("%s (%s)", title, failure.commitID)
		}
		bw.WriteString(title)
		bw.WriteString("\n")
		bw.WriteString("  ")
		bw.WriteString(failure.err.Error())
		bw.WriteString("\n")
	}

	return bw.Flush()
}

// CheckMessages validates each message as a full conventional commit.
// It returns a CheckFailure carrying one entry per invalid message.
func (r *Runner) CheckMessages(ctx context.Context, messages []string) error {
	var failures []FailureEntry
	for _, msg := range messages {
		if _, err := commit.Parse(msg); err != nil {
			failures = append(failures, FailureEntry{commitTitle: firstLine(msg), err: err})
		}
	}
	if len(failures) > 0 {
		return CheckFailure{Failures: failures}
	}
	return nil
}

// CheckReader validates the contents of rd as a single commit message.
func (r *Runner) CheckReader(ctx context.Context, rd io.Reader) error {
	b, err := ioutil.ReadAll(rd)
	if err != nil {
		return err
	}
	return r.CheckMessages(ctx, []string{string(b)})
}

// CheckCommitsFromGit validates the messages of the commits matching
// query, e.g. "HEAD" or "v1.0.0..HEAD".
func (r *Runner) CheckCommitsFromGit(ctx context.Context, query string) error {
	if query == "" {
		query = "HEAD"
	}
	commits, err := r.vcs.ReadCommits(ctx, query)
	if err != nil {
		return err
	}

	var failures []FailureEntry
	for _, c := range commits {
		if _, err := commit.Parse(c.Message()); err != nil {
			failures = append(failures, FailureEntry{
				commitID:    c.ShortID(),
				commitTitle: c.Subject,
				err:         err,
			})
		}
	}
	if len(failures) > 0 {
		return CheckFailure{Failures: failures}
	}
	r.cfg.Debugf("checked %d commits", len(commits))
	return nil
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
