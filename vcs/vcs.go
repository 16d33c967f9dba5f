// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"
	"fmt"

	"github.com/jeffrom/cmsg/model"
)

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

// Interface is the set of version control operations message checking
// needs. Reading only; cmsg never writes to the repository.
type Interface interface {
	ReadCommits(ctx context.Context, query string) ([]*model.Commit, error)
	CurrentBranch(ctx context.Context) (string, error)
}
