package gitrepo

import (
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// fieldSeparator keeps git log fields split-safe since subjects may contain
// any printable character.
const fieldSeparator = "\x1f"

// Log lists commits reachable from upper and not from lower, in
// reverse-chronological order. An empty lower starts at the root.
func (g *realGit) Log(repoPath, lower, upper string) ([]CommitInfo, error) {
	revRange := upper
	if lower != "" {
		revRange = lower + ".." + upper
	}

	format := strings.Join([]string{"%H", "%s", "%an", "%aI"}, fieldSeparator)
	cmd := exec.Command("git", "log", "--format="+format, revRange)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w (range: %s, output: %s)", err, revRange, string(output))
	}

	return parseLog(string(output))
}

// parseLog parses the output of git log with the Log format string.
func parseLog(output string) ([]CommitInfo, error) {
	var commits []CommitInfo
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.SplitN(line, fieldSeparator, 4)
		if len(fields) != 4 {
			return nil, fmt.Errorf("unexpected git log line: %q", line)
		}

		date, err := time.Parse(time.RFC3339, fields[3])
		if err != nil {
			return nil, fmt.Errorf("failed to parse commit date %q: %w", fields[3], err)
		}

		commits = append(commits, CommitInfo{
			Hash:    fields[0],
			Subject: fields[1],
			Author:  fields[2],
			Date:    date,
		})
	}

	return commits, nil
}
