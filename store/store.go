
package store

import (
	"examgen-server/models"
)

// Repository is the canonical in-memory question bank, bucketed by topic and
// difficulty for O(1) category lookup. A separate ID set enforces uniqueness
// without scanning buckets on insert.
//
// Repository carries no internal locking; concurrent callers must serialize
// access externally. Query methods return independent copies, never live
// references into the buckets.
type Repository struct {
	buckets map[models.Topic]map[models.Difficulty][]models.Question
	seen    map[string]struct{}
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{
		buckets: make(map[models.Topic]map[models.Difficulty][]models.Question),
		seen:    make(map[string]struct{}),
	}
}

// Add files a question under its (topic, difficulty) bucket. It returns false
// without storing anything if the question ID is already present.
func (r *Repository) Add(q models.Question) bool {
	if _, dup := r.seen[q.ID]; dup {
		return false
	}
	byDiff, ok := r.buckets[q.Topic]
	if !ok {
		byDiff = make(map[models.Difficulty][]models.Question)
		r.buckets[q.Topic] = byDiff
	}
	byDiff[q.Difficulty] = append(byDiff[q.Difficulty], q)
	r.seen[q.ID] = struct{}{}
	return true
}

// Get returns a copy of the (topic, difficulty) bucket, in insertion order.
func (r *Repository) Get(topic models.Topic, difficulty models.Difficulty) []models.Question {
	byDiff, ok := r.buckets[topic]
	if !ok {
		return []models.Question{}
	}
	return append([]models.Question{}, byDiff[difficulty]...)
}

// GetByTopic returns every question filed under topic: the Easy bucket, then
// Medium, then Hard, each in insertion order.
func (r *Repository) GetByTopic(topic models.Topic) []models.Question {
	byDiff, ok := r.buckets[topic]
	if !ok {
		return []models.Question{}
	}
	out := []models.Question{}
	for _, d := range models.AllDifficulties {
		out = append(out, byDiff[d]...)
	}
	return out
}

// GetByDifficulty returns every question of the given difficulty across all
// topics, in topic enumeration order.
func (r *Repository) GetByDifficulty(difficulty models.Difficulty) []models.Question {
	out := []models.Question{}
	for _, t := range models.AllTopics {
		if byDiff, ok := r.buckets[t]; ok {
			out = append(out, byDiff[difficulty]...)
		}
	}
	return out
}

// GetAll returns every stored question, topic-major, difficulty-minor.
func (r *Repository) GetAll() []models.Question {
	out := []models.Question{}
	for _, t := range models.AllTopics {
		byDiff, ok := r.buckets[t]
		if !ok {
			continue
		}
		for _, d := range models.AllDifficulties {
			out = append(out, byDiff[d]...)
		}
	}
	return out
}

// Remove deletes the question with the given ID, scanning every bucket. It
// returns false if no stored question has that ID.
func (r *Repository) Remove(id string) bool {
	if _, ok := r.seen[id]; !ok {
		return false
	}
	for _, byDiff := range r.buckets {
		for d, bucket := range byDiff {
			for i, q := range bucket {
				if q.ID == id {
					byDiff[d] = append(bucket[:i:i], bucket[i+1:]...)
					delete(r.seen, id)
					return true
				}
			}
		}
	}
	// unreachable: the seen-set guarantees the scan finds the ID
	return false
}

// Counts reports the total question count plus per-topic and per-difficulty
// breakdowns. All 10 topics and all 3 difficulties are present in the maps,
// zero-defaulted.
func (r *Repository) Counts() models.BankCounts {
	counts := models.BankCounts{
		ByTopic:      make(map[models.Topic]int, len(models.AllTopics)),
		ByDifficulty: make(map[models.Difficulty]int, len(models.AllDifficulties)),
	}
	for _, t := range models.AllTopics {
		counts.ByTopic[t] = 0
	}
	for _, d := range models.AllDifficulties {
		counts.ByDifficulty[d] = 0
	}
	for t, byDiff := range r.buckets {
		for d, bucket := range byDiff {
			counts.ByTopic[t] += len(bucket)
			counts.ByDifficulty[d] += len(bucket)
			counts.Total += len(bucket)
		}
	}
	return counts
}
