package navgraph

import (
	"strings"

	"github.com/canopyux/canopy/internal/models"
	"github.com/canopyux/canopy/internal/pathparse"
)

// DefaultRootName labels the root node when no tree structure is supplied.
const DefaultRootName = "Home"

// Build walks every participant's path for the given task and accumulates
// the traffic graph. Empty paths attribute a skip to the root node only.
// Building twice over an unchanged dataset yields structurally identical
// graphs.
func Build(task models.Task, participants []models.Participant, tree []models.TreeNode) *Graph {
	rootName := DefaultRootName
	if len(tree) > 0 && tree[0].Name != "" {
		rootName = tree[0].Name
	}
	g := newGraph(rootName)
	matcher := newAnswerMatcher(task)

	for _, p := range participants {
		for _, r := range p.TaskResults {
			if r.TaskIndex != task.Index {
				continue
			}
			g.addResult(r, matcher)
		}
	}
	return g
}

func (g *Graph) addResult(r models.TaskResult, matcher answerMatcher) {
	segments := pathparse.ParsePath(r.PathTaken)
	if len(segments) == 0 {
		root := g.Root()
		root.Stats.Skipped++
		root.Stats.Total++
		return
	}

	prev := ""
	prefix := ""
	for i, segment := range segments {
		parent := prefix
		prefix += "/" + segment

		node := g.node(prefix, segment, parent)
		node.Stats.Total++

		if i == len(segments)-1 {
			if r.Skipped {
				node.Stats.Skipped++
			} else {
				node.Stats.Nominated++
			}
		} else if matcher.onExpectedPrefix(prefix) {
			node.Stats.RightPath++
		} else {
			node.Stats.WrongPath++
		}

		if prev != "" {
			e := g.edge(prev, prefix)
			e.Value++
			e.IsCorrectPath = matcher.onExpectedPrefix(prefix)
		}
		prev = prefix
	}
}

// answerMatcher answers case-insensitive "is this prefix on an expected
// answer" queries. Each expected answer is normalized to its slash-keyed
// form once; the trailing slash keeps the comparison on segment boundaries,
// so "/Home/Pro" does not count as a prefix of "/Home/Products".
type answerMatcher struct {
	answerKeys []string
}

func newAnswerMatcher(task models.Task) answerMatcher {
	var keys []string
	for _, answer := range task.ExpectedAnswers() {
		segments := pathparse.ParsePath(answer)
		if len(segments) == 0 {
			continue
		}
		keys = append(keys, strings.ToLower("/"+strings.Join(segments, "/")+"/"))
	}
	return answerMatcher{answerKeys: keys}
}

func (m answerMatcher) onExpectedPrefix(prefix string) bool {
	want := strings.ToLower(prefix) + "/"
	for _, key := range m.answerKeys {
		if strings.HasPrefix(key, want) {
			return true
		}
	}
	return false
}
