// Package pathparse normalizes the path strings captured during a tree test.
// Participant paths arrive in several delimiter conventions ("A -> B",
// "A > B", "A/B"); everything downstream works on the parsed node sequence.
package pathparse

import (
	"regexp"
	"strings"
)

// DisplayDelimiter joins node names when a path is re-rendered for humans.
const DisplayDelimiter = " -> "

// internalDelimiter is what all accepted delimiters collapse to.
const internalDelimiter = "/"

// delimiterPattern matches any accepted delimiter with optional surrounding
// whitespace. "->" must be tried before ">" so the arrow is not split.
var delimiterPattern = regexp.MustCompile(`\s*(?:->|>|/)\s*`)

// Normalize collapses every accepted delimiter convention into the internal
// one and trims the ends. It never fails; garbage in, garbage string out.
func Normalize(raw string) string {
	return strings.TrimSpace(delimiterPattern.ReplaceAllString(raw, internalDelimiter))
}

// ParsePath splits a raw path into its ordered node names. Each segment is
// trimmed and empty segments are dropped, so "Home//Products/" parses the
// same as "Home/Products". Empty or unparseable input yields an empty slice,
// never an error; one malformed path must not fail a whole analysis run.
func ParsePath(raw string) []string {
	normalized := Normalize(raw)
	if normalized == "" {
		return []string{}
	}
	parts := strings.Split(normalized, internalDelimiter)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// NodeAtLevel returns the node at the given depth level (1, 2 or 3), where
// the root at index 0 is level zero and excluded from levels. Returns
// ok=false when the path is too short.
func NodeAtLevel(path []string, level int) (string, bool) {
	if level < 1 || level >= len(path) {
		return "", false
	}
	return path[level], true
}

// PathUpToLevel re-parses raw and returns the path truncated to the given
// level, root included, rejoined with the display delimiter. Returns "" when
// nothing parses.
func PathUpToLevel(raw string, level int) string {
	segments := ParsePath(raw)
	if len(segments) == 0 {
		return ""
	}
	end := level + 1
	if end > len(segments) {
		end = len(segments)
	}
	return strings.Join(segments[:end], DisplayDelimiter)
}

// PathContainsNode reports whether the participant's path passes through the
// target node anywhere, case-insensitively. This is deliberately a membership
// test, not a prefix test: it tracks visits to a node even when the
// participant reached it off the expected branch or backtracked away from it.
func PathContainsNode(participantPath, targetNode string) bool {
	for _, segment := range ParsePath(participantPath) {
		if strings.EqualFold(segment, targetNode) {
			return true
		}
	}
	return false
}

// FinalSegment returns the last node of the parsed path, or "" for an empty
// path. Destination grouping in the statistics engine keys off this.
func FinalSegment(raw string) string {
	segments := ParsePath(raw)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}
