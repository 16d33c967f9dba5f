package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeffrom/cmsg/commit"
)

// Stats counts parsed commits by type, scope, and footer token, plus
// breaking and unparseable tallies.
type Stats struct {
	Commits  int64
	Breaking int64
	Invalid  int64
	Counts   map[string][]*statCount
}

func (s *Stats) Add(bucket, name string, n int64) {
	counts := s.Counts[bucket]
	count, found := s.findCount(name, counts)
	if !found {
		counts = append(counts, count)
	}
	count.Add(n)

	s.Counts[bucket] = counts
}

func (s *Stats) findCount(name string, counts []*statCount) (*statCount, bool) {
	for _, c := range counts {
		if c.label == name {
			return c, true
		}
	}
	return &statCount{label: name}, false
}

func (s *Stats) sortedBuckets() []string {
	buckets := make([]string, len(s.Counts))
	i := 0
	for name := range s.Counts {
		buckets[i] = name
		i++
	}
	sort.Strings(buckets)
	return buckets
}

type statCount struct {
	label string
	n     int64
}

func (c *statCount) Add(n int64) {
	c.n += n
}

func (s *Stats) TextSummary(w io.Writer, all bool) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fmt.Sprintf("%d commits (%d breaking, %d unparseable)\n\n", s.Commits, s.Breaking, s.Invalid))

	buckets := s.sortedBuckets()
	for _, name := range buckets {
		counts := s.Counts[name]
		sort.Slice(counts, func(i, j int) bool {
			return counts[i].n > counts[j].n
		})
		if !all && len(counts) > 10 {
			counts = counts[:10]
		}
		bw.WriteString(fmt.Sprintf("%s:\n", toTitle(name)))
		for _, count := range counts {
			label := count.label
			if label == "" {
				label = "n/a"
			}
			bw.WriteString(fmt.Sprintf("  %20s\t\t%d\n", label, count.n))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Stats reads the repository's commits and tallies their conventional
// commit fields. Identifier counts use case-folded keys, so "Feat" and
// "feat" land in the same counter.
func (r *Runner) Stats(ctx context.Context) (*Stats, error) {
	branch, err := r.vcs.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}
	commits, err := r.vcs.ReadCommits(ctx, branch)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Commits: int64(len(commits)),
		Counts:  make(map[string][]*statCount),
	}
	for _, c := range commits {
		parsed, err := commit.Parse(c.Message())
		if err != nil {
			stats.Invalid++
			continue
		}
		if parsed.Breaking() {
			stats.Breaking++
		}

		stats.Add("commit_type", parsed.Type().Key(), 1)
		if scope, ok := parsed.Scope(); ok {
			stats.Add("scope", scope.Key(), 1)
		} else {
			stats.Add("scope", "", 1)
		}
		for _, f := range parsed.Footers() {
			stats.Add("footer_token", f.Token().Key(), 1)
		}
	}
	return stats, nil
}

var nonAlphaRE = regexp.MustCompile(`[^A-Za-z]`)

func toTitle(s string) string {
	s = nonAlphaRE.ReplaceAllLiteralString(s, " ")
	return cases.Title(language.Und).String(s)
}
