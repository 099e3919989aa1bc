
package exam

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"examgen-server/models"
	"examgen-server/store"
)

// ErrInvalidConfig marks a rejected exam configuration. Callers can test for
// it with errors.Is.
var ErrInvalidConfig = errors.New("invalid exam config")

// Generator assembles exams from a question repository. It owns its random
// source so tests can make selection deterministic via NewSeededGenerator.
type Generator struct {
	repo *store.Repository
	rng  *rand.Rand
}

// NewGenerator creates a generator with a time-seeded random source.
func NewGenerator(repo *store.Repository) *Generator {
	return NewSeededGenerator(repo, time.Now().UnixNano())
}

// NewSeededGenerator creates a generator with a deterministic random source.
func NewSeededGenerator(repo *store.Repository, seed int64) *Generator {
	return &Generator{
		repo: repo,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Generate builds an exam for the given config: it gathers the topic-filtered
// candidate pool, apportions the question count across difficulties by weight,
// and fills each difficulty's share with a diversity-aware random selection.
//
// The result can be shorter than cfg.NumQuestions when the pool runs dry;
// that is not an error and callers surface it to the user themselves.
func (g *Generator) Generate(cfg models.ExamConfig) (*models.ExamResult, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	pool := g.candidatePool(cfg)
	targets := apportion(cfg, pool)

	selected := make([]models.Question, 0, cfg.NumQuestions)
	for _, d := range models.AllDifficulties {
		if targets[d] <= 0 {
			continue
		}
		subset := filterByDifficulty(pool, d)
		selected = append(selected, g.selectWithDiversity(subset, targets[d], cfg.Topics)...)
	}

	if len(selected) < cfg.NumQuestions {
		log.Printf("exam generation short: requested %d questions, selected %d", cfg.NumQuestions, len(selected))
	}
	return &models.ExamResult{
		Questions: selected,
		Config:    cfg,
		CreatedAt: time.Now(),
	}, nil
}

func validateConfig(cfg models.ExamConfig) error {
	if cfg.NumQuestions <= 0 {
		return fmt.Errorf("%w: num_questions must be positive, got %d", ErrInvalidConfig, cfg.NumQuestions)
	}
	for d, w := range cfg.Weights {
		if w < 0 {
			return fmt.Errorf("%w: negative weight %d for difficulty %s", ErrInvalidConfig, w, d)
		}
	}
	if cfg.WeightSum() <= 0 {
		return fmt.Errorf("%w: at least one difficulty weight must be positive", ErrInvalidConfig)
	}
	for _, t := range cfg.Topics {
		if !knownTopic(t) {
			return fmt.Errorf("%w: unknown topic %q", ErrInvalidConfig, t)
		}
	}
	return nil
}

func knownTopic(t models.Topic) bool {
	for _, known := range models.AllTopics {
		if t == known {
			return true
		}
	}
	return false
}

// candidatePool returns the questions eligible under the config's topic
// filter. An empty filter means the whole bank. Repeated filter entries are
// collapsed so no question enters the pool twice.
func (g *Generator) candidatePool(cfg models.ExamConfig) []models.Question {
	if len(cfg.Topics) == 0 {
		return g.repo.GetAll()
	}
	pool := []models.Question{}
	requested := make(map[models.Topic]bool, len(cfg.Topics))
	for _, t := range cfg.Topics {
		if requested[t] {
			continue
		}
		requested[t] = true
		pool = append(pool, g.repo.GetByTopic(t)...)
	}
	return pool
}

// apportion splits cfg.NumQuestions across difficulties proportionally to the
// configured weights, rounding to nearest, then clamps each share down to what
// the pool actually holds. A clamped sum below the target is accepted as a
// shortfall; a rounding overshoot is trimmed one unit at a time starting from
// Hard, then Medium, then Easy, until the sum matches.
func apportion(cfg models.ExamConfig, pool []models.Question) map[models.Difficulty]int {
	available := make(map[models.Difficulty]int, len(models.AllDifficulties))
	for _, q := range pool {
		available[q.Difficulty]++
	}

	weightSum := cfg.WeightSum()
	targets := make(map[models.Difficulty]int, len(models.AllDifficulties))
	total := 0
	for _, d := range models.AllDifficulties {
		share := float64(cfg.Weights[d]) / float64(weightSum) * float64(cfg.NumQuestions)
		target := int(math.Round(share))
		if target > available[d] {
			target = available[d]
		}
		targets[d] = target
		total += target
	}

	trimOrder := []models.Difficulty{models.DifficultyHard, models.DifficultyMedium, models.DifficultyEasy}
	for total > cfg.NumQuestions {
		for _, d := range trimOrder {
			if total == cfg.NumQuestions {
				break
			}
			if targets[d] > 0 {
				targets[d]--
				total--
			}
		}
	}
	return targets
}

// selectWithDiversity picks count questions from the given pool, spreading
// picks across the explicitly requested topics via floor+remainder quotas
// before falling back to flat random sampling for any remaining gap. When no
// topics were requested the quota pass has nothing to iterate and the whole
// count comes from the flat pass.
func (g *Generator) selectWithDiversity(pool []models.Question, count int, topics []models.Topic) []models.Question {
	if len(pool) <= count {
		return append([]models.Question{}, pool...)
	}

	byTopic := make(map[models.Topic][]models.Question)
	for _, q := range pool {
		byTopic[q.Topic] = append(byTopic[q.Topic], q)
	}

	// eligible topics keep the order they were requested in
	eligible := []models.Topic{}
	seenTopic := make(map[models.Topic]bool)
	for _, t := range topics {
		if !seenTopic[t] && len(byTopic[t]) > 0 {
			seenTopic[t] = true
			eligible = append(eligible, t)
		}
	}

	selected := []models.Question{}
	picked := make(map[string]bool, count)

	if len(eligible) > 0 {
		base := count / len(eligible)
		remainder := count % len(eligible)
		for _, t := range eligible {
			available := byTopic[t]
			take := base
			if remainder > 0 && len(available) > base {
				take++
				remainder--
			}
			if take > len(available) {
				take = len(available)
			}
			for _, q := range g.sample(available, take) {
				selected = append(selected, q)
				picked[q.ID] = true
			}
		}
	}

	// fill any gap from the not-yet-selected rest of the pool, ignoring
	// topic balance
	if len(selected) < count {
		leftover := []models.Question{}
		for _, q := range pool {
			if !picked[q.ID] {
				leftover = append(leftover, q)
			}
		}
		selected = append(selected, g.sample(leftover, count-len(selected))...)
	}
	return selected
}

// sample draws up to n questions uniformly without replacement: repeatedly
// pick a random index into a shrinking candidate list and swap-remove it.
func (g *Generator) sample(pool []models.Question, n int) []models.Question {
	candidates := append([]models.Question{}, pool...)
	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]models.Question, 0, n)
	for len(out) < n && len(candidates) > 0 {
		i := g.rng.Intn(len(candidates))
		out = append(out, candidates[i])
		candidates[i] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}
	return out
}

func filterByDifficulty(pool []models.Question, d models.Difficulty) []models.Question {
	out := []models.Question{}
	for _, q := range pool {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}
