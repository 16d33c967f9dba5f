package vcs

import (
	"context"
	"time"

	"github.com/jeffrom/cmsg/model"
)

type Mock struct {
	t       time.Time
	branch  string
	commits []*model.Commit
}

func NewMock() *Mock {
	return &Mock{
		t:      time.Now(),
		branch: "main",
	}
}

func (m *Mock) SetBranch(name string) *Mock {
	m.branch = name
	return m
}

func (m *Mock) SetCommits(commits ...*model.Commit) *Mock {
	finalCommits := make([]*model.Commit, len(commits))
	for i, commit := range commits {
		c := *commit
		if c.CommitterDate.IsZero() {
			c.CommitterDate = m.t
			m.t = m.t.Add(-time.Minute)
		}
		finalCommits[i] = &c
	}
	m.commits = finalCommits
	return m
}

func (m *Mock) ReadCommits(ctx context.Context, query string) ([]*model.Commit, error) {
	return m.commits, nil
}

func (m *Mock) CurrentBranch(ctx context.Context) (string, error) {
	return m.branch, nil
}
