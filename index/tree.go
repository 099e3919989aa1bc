
package index

import (
	"log"

	"github.com/google/uuid"

	"examgen-server/models"
)

// TopicNode is one node of the topic hierarchy. Questions holds the questions
// filed directly under this node; the root node additionally aggregates every
// question in the tree.
type TopicNode struct {
	ID        string
	Name      string
	Children  []*TopicNode
	Questions []models.Question
}

// TopicTree is an auxiliary hierarchical view over the question bank: a root
// labeled "All Topics" with one child per fixed topic, plus any custom nodes
// added later. It holds non-owning copies of repository questions; callers
// keep it consistent with the repository on insert and remove.
//
// Like the repository, the tree has no internal locking.
type TopicTree struct {
	Root *TopicNode
}

// TreeCounts reports per-node direct question counts (keyed by node name,
// root excluded) and difficulty totals over the root aggregate.
type TreeCounts struct {
	Total        int
	ByNode       map[string]int
	ByDifficulty map[models.Difficulty]int
}

// NewTopicTree builds the fixed hierarchy: the "All Topics" root with one
// child per topic enumeration value.
func NewTopicTree() *TopicTree {
	root := &TopicNode{
		ID:   uuid.NewString(),
		Name: "All Topics",
	}
	for _, t := range models.AllTopics {
		root.Children = append(root.Children, &TopicNode{
			ID:   uuid.NewString(),
			Name: string(t),
		})
	}
	return &TopicTree{Root: root}
}

// AddTopicNode appends a new child node under the parent with the given ID
// and returns it. An unknown parent ID is logged and ignored (nil return).
func (tr *TopicTree) AddTopicNode(name, parentID string) *TopicNode {
	parent := tr.FindNodeByID(parentID)
	if parent == nil {
		log.Printf("topic tree: parent node %s not found, not adding %q", parentID, name)
		return nil
	}
	node := &TopicNode{
		ID:   uuid.NewString(),
		Name: name,
	}
	parent.Children = append(parent.Children, node)
	return node
}

// FindNodeByID searches the whole tree for a node ID, depth-first pre-order.
func (tr *TopicTree) FindNodeByID(id string) *TopicNode {
	return FindNodeByIDFrom(tr.Root, id)
}

// FindNodeByIDFrom searches depth-first pre-order starting at the given node.
func FindNodeByIDFrom(start *TopicNode, id string) *TopicNode {
	if start == nil {
		return nil
	}
	if start.ID == id {
		return start
	}
	for _, child := range start.Children {
		if found := FindNodeByIDFrom(child, id); found != nil {
			return found
		}
	}
	return nil
}

// FindNodeByName searches the tree breadth-first from the root for a node
// with the given name.
func (tr *TopicTree) FindNodeByName(name string) *TopicNode {
	queue := []*TopicNode{tr.Root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.Name == name {
			return node
		}
		queue = append(queue, node.Children...)
	}
	return nil
}

// AddQuestion files a question under the node named after its topic.
func (tr *TopicTree) AddQuestion(q models.Question) bool {
	return tr.AddQuestionTo(q, string(q.Topic))
}

// AddQuestionTo files a question under the named node and mirrors it into the
// root aggregate list. It returns false if the node does not exist or the
// question ID is already filed there.
func (tr *TopicTree) AddQuestionTo(q models.Question, topicName string) bool {
	node := tr.FindNodeByName(topicName)
	if node == nil {
		log.Printf("topic tree: node %q not found, question %s not filed", topicName, q.ID)
		return false
	}
	for _, existing := range node.Questions {
		if existing.ID == q.ID {
			return false
		}
	}
	node.Questions = append(node.Questions, q)
	if node != tr.Root {
		tr.Root.Questions = append(tr.Root.Questions, q)
	}
	return true
}

// RemoveQuestion strips the question with the given ID from the root
// aggregate and from every node's direct list. The traversal visits all
// descendants even after a match. Returns whether anything was removed.
func (tr *TopicTree) RemoveQuestion(id string) bool {
	removed := removeFromList(&tr.Root.Questions, id)
	for _, child := range tr.Root.Children {
		if removeFromNode(child, id) {
			removed = true
		}
	}
	return removed
}

func removeFromNode(node *TopicNode, id string) bool {
	removed := removeFromList(&node.Questions, id)
	for _, child := range node.Children {
		if removeFromNode(child, id) {
			removed = true
		}
	}
	return removed
}

func removeFromList(list *[]models.Question, id string) bool {
	for i, q := range *list {
		if q.ID == id {
			*list = append((*list)[:i:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

// QuestionCounts walks the tree tallying each non-root node's direct question
// list, then tallies difficulty totals over the root aggregate.
func (tr *TopicTree) QuestionCounts() TreeCounts {
	counts := TreeCounts{
		ByNode:       make(map[string]int),
		ByDifficulty: make(map[models.Difficulty]int, len(models.AllDifficulties)),
	}
	for _, d := range models.AllDifficulties {
		counts.ByDifficulty[d] = 0
	}
	var walk func(n *TopicNode)
	walk = func(n *TopicNode) {
		if n != tr.Root {
			counts.ByNode[n.Name] = len(n.Questions)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(tr.Root)

	counts.Total = len(tr.Root.Questions)
	for _, q := range tr.Root.Questions {
		counts.ByDifficulty[q.Difficulty]++
	}
	return counts
}
