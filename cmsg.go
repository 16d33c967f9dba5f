// Package cmsg parses Conventional Commit messages into structured,
// strongly typed values.
//
// Related packages: commit, config, runner, model, vcs, vcs/gitcli
package cmsg

import "github.com/jeffrom/cmsg/commit"

// Commit is a parsed conventional commit message. All of its fields are
// views into the message string it was parsed from.
//
// See "go doc github.com/jeffrom/cmsg/commit Commit" for more information.
type Commit = commit.Commit

// Parse parses a full conventional commit message.
func Parse(message string) (*Commit, error) { return commit.Parse(message) }
