
package index

import (
	"math/rand"
	"sort"
	"time"

	"examgen-server/models"
)

// DefaultRelatedDepth is the neighbor expansion depth used by callers that
// have no reason to pick their own.
const DefaultRelatedDepth = 2

// RelationGraph is an auxiliary undirected graph over question IDs whose
// edges denote same-topic relatedness. On insertion a question is linked to
// up to 3 randomly sampled existing questions of its topic; only that initial
// degree is bounded — reciprocal edges from later insertions can push a
// node's degree past 3.
//
// The graph holds non-owning question copies and has no internal locking.
type RelationGraph struct {
	nodes map[string]models.Question
	adj   map[string][]string
	rng   *rand.Rand
}

const maxInitialLinks = 3

// NewRelationGraph creates an empty graph with a time-seeded random source
// for peer sampling.
func NewRelationGraph() *RelationGraph {
	return NewSeededRelationGraph(time.Now().UnixNano())
}

// NewSeededRelationGraph creates an empty graph with deterministic peer
// sampling.
func NewSeededRelationGraph(seed int64) *RelationGraph {
	return &RelationGraph{
		nodes: make(map[string]models.Question),
		adj:   make(map[string][]string),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// AddQuestion inserts a node for the question and links it symmetrically to
// up to 3 random same-topic peers. Returns false if the ID is already a node.
func (g *RelationGraph) AddQuestion(q models.Question) bool {
	if _, exists := g.nodes[q.ID]; exists {
		return false
	}
	g.nodes[q.ID] = q
	g.adj[q.ID] = []string{}

	peers := []string{}
	for id, other := range g.nodes {
		if id != q.ID && other.Topic == q.Topic {
			peers = append(peers, id)
		}
	}
	// sort before shuffling so a seeded graph links deterministically
	sort.Strings(peers)
	g.rng.Shuffle(len(peers), func(i, j int) { peers[i], peers[j] = peers[j], peers[i] })
	if len(peers) > maxInitialLinks {
		peers = peers[:maxInitialLinks]
	}
	for _, peer := range peers {
		g.addEdge(q.ID, peer)
	}
	return true
}

func (g *RelationGraph) addEdge(a, b string) {
	if !containsID(g.adj[a], b) {
		g.adj[a] = append(g.adj[a], b)
	}
	if !containsID(g.adj[b], a) {
		g.adj[b] = append(g.adj[b], a)
	}
}

// RemoveQuestion deletes the node and strips its ID from every other node's
// adjacency list. Returns false if the ID is not a node.
func (g *RelationGraph) RemoveQuestion(id string) bool {
	if _, exists := g.nodes[id]; !exists {
		return false
	}
	delete(g.nodes, id)
	delete(g.adj, id)
	for other, neighbors := range g.adj {
		for i, n := range neighbors {
			if n == id {
				g.adj[other] = append(neighbors[:i:i], neighbors[i+1:]...)
				break
			}
		}
	}
	return true
}

// Neighbors returns a copy of the node's direct adjacency list; empty for an
// unknown ID.
func (g *RelationGraph) Neighbors(id string) []string {
	return append([]string{}, g.adj[id]...)
}

// GetRelated walks breadth-first from the given question up to maxDepth hops
// and returns the questions discovered, in discovery order, excluding the
// start question itself. Each question appears at most once. An unknown ID
// or maxDepth of 0 yields an empty result.
func (g *RelationGraph) GetRelated(id string, maxDepth int) []models.Question {
	related := []models.Question{}
	if _, exists := g.nodes[id]; !exists {
		return related
	}

	type visit struct {
		id    string
		depth int
	}
	visited := map[string]bool{id: true}
	queue := []visit{{id: id, depth: 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.depth > 0 {
			related = append(related, g.nodes[current.id])
		}
		if current.depth < maxDepth {
			for _, neighbor := range g.adj[current.id] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, visit{id: neighbor, depth: current.depth + 1})
				}
			}
		}
	}
	return related
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
