package exam_test

import (
	"errors"
	"fmt"
	"testing"

	"examgen-server/bank"
	"examgen-server/exam"
	"examgen-server/models"
	"examgen-server/store"
)

func seedRepo(t *testing.T, questions []models.Question) *store.Repository {
	t.Helper()
	repo := store.NewRepository()
	for _, q := range questions {
		if !repo.Add(q) {
			t.Fatalf("Add(%s) = false during seeding", q.ID)
		}
	}
	return repo
}

// bulkQuestions builds n questions of the given topic and difficulty with
// unique IDs derived from the prefix.
func bulkQuestions(prefix string, topic models.Topic, difficulty models.Difficulty, n int) []models.Question {
	out := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Question{
			ID:         fmt.Sprintf("%s-%d", prefix, i),
			Text:       fmt.Sprintf("%s question %d", prefix, i),
			Topic:      topic,
			Difficulty: difficulty,
		})
	}
	return out
}

func difficultyCounts(questions []models.Question) map[models.Difficulty]int {
	counts := make(map[models.Difficulty]int)
	for _, q := range questions {
		counts[q.Difficulty]++
	}
	return counts
}

func evenWeights() map[models.Difficulty]int {
	return map[models.Difficulty]int{
		models.DifficultyEasy:   1,
		models.DifficultyMedium: 1,
		models.DifficultyHard:   1,
	}
}

func TestGenerate_EvenApportionment(t *testing.T) {
	var pool []models.Question
	pool = append(pool, bulkQuestions("e", models.TopicArrays, models.DifficultyEasy, 10)...)
	pool = append(pool, bulkQuestions("m", models.TopicStrings, models.DifficultyMedium, 10)...)
	pool = append(pool, bulkQuestions("h", models.TopicGraphs, models.DifficultyHard, 10)...)
	repo := seedRepo(t, pool)

	gen := exam.NewSeededGenerator(repo, 42)
	result, err := gen.Generate(models.ExamConfig{NumQuestions: 9, Weights: evenWeights()})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Questions) != 9 {
		t.Fatalf("Generate() returned %d questions, want 9", len(result.Questions))
	}
	counts := difficultyCounts(result.Questions)
	for _, d := range models.AllDifficulties {
		if counts[d] != 3 {
			t.Errorf("difficulty %s count = %d, want 3", d, counts[d])
		}
	}
}

func TestGenerate_ResultOrderIsEasyMediumHard(t *testing.T) {
	var pool []models.Question
	pool = append(pool, bulkQuestions("e", models.TopicArrays, models.DifficultyEasy, 5)...)
	pool = append(pool, bulkQuestions("m", models.TopicArrays, models.DifficultyMedium, 5)...)
	pool = append(pool, bulkQuestions("h", models.TopicArrays, models.DifficultyHard, 5)...)
	repo := seedRepo(t, pool)

	gen := exam.NewSeededGenerator(repo, 7)
	result, err := gen.Generate(models.ExamConfig{NumQuestions: 6, Weights: evenWeights()})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	rank := map[models.Difficulty]int{
		models.DifficultyEasy:   0,
		models.DifficultyMedium: 1,
		models.DifficultyHard:   2,
	}
	for i := 1; i < len(result.Questions); i++ {
		prev, curr := result.Questions[i-1], result.Questions[i]
		if rank[prev.Difficulty] > rank[curr.Difficulty] {
			t.Fatalf("question %d (%s) precedes question %d (%s); difficulties out of order",
				i-1, prev.Difficulty, i, curr.Difficulty)
		}
	}
}

func TestGenerate_SampleBankScenario(t *testing.T) {
	repo := seedRepo(t, bank.SampleQuestions())

	gen := exam.NewSeededGenerator(repo, 99)
	result, err := gen.Generate(models.ExamConfig{NumQuestions: 5, Weights: evenWeights()})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Questions) != 5 {
		t.Fatalf("Generate() returned %d questions, want 5", len(result.Questions))
	}

	// round(5/3) gives 2 per difficulty, then the overshoot is trimmed from Hard
	counts := difficultyCounts(result.Questions)
	want := map[models.Difficulty]int{
		models.DifficultyEasy:   2,
		models.DifficultyMedium: 2,
		models.DifficultyHard:   1,
	}
	for d, n := range want {
		if counts[d] != n {
			t.Errorf("difficulty %s count = %d, want %d", d, counts[d], n)
		}
	}

	seen := make(map[string]bool)
	for _, q := range result.Questions {
		if seen[q.ID] {
			t.Errorf("duplicate question id %s in result", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestGenerate_GracefulShortfall(t *testing.T) {
	repo := seedRepo(t, bank.SampleQuestions())

	gen := exam.NewSeededGenerator(repo, 3)
	result, err := gen.Generate(models.ExamConfig{NumQuestions: 100, Weights: evenWeights()})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Questions) != 10 {
		t.Errorf("Generate() returned %d questions, want all 10 available", len(result.Questions))
	}
}

func TestGenerate_TopicFilterRespected(t *testing.T) {
	var pool []models.Question
	pool = append(pool, bulkQuestions("arr", models.TopicArrays, models.DifficultyEasy, 6)...)
	pool = append(pool, bulkQuestions("str", models.TopicStrings, models.DifficultyEasy, 6)...)
	pool = append(pool, bulkQuestions("grp", models.TopicGraphs, models.DifficultyEasy, 6)...)
	repo := seedRepo(t, pool)

	requested := []models.Topic{models.TopicArrays, models.TopicStrings}
	gen := exam.NewSeededGenerator(repo, 11)
	result, err := gen.Generate(models.ExamConfig{
		NumQuestions: 6,
		Weights:      map[models.Difficulty]int{models.DifficultyEasy: 1},
		Topics:       requested,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Questions) != 6 {
		t.Fatalf("Generate() returned %d questions, want 6", len(result.Questions))
	}
	for _, q := range result.Questions {
		if q.Topic != models.TopicArrays && q.Topic != models.TopicStrings {
			t.Errorf("question %s has topic %s, outside the requested filter", q.ID, q.Topic)
		}
	}
}

func TestGenerate_DiversitySpreadsAcrossRequestedTopics(t *testing.T) {
	var pool []models.Question
	pool = append(pool, bulkQuestions("arr", models.TopicArrays, models.DifficultyEasy, 8)...)
	pool = append(pool, bulkQuestions("str", models.TopicStrings, models.DifficultyEasy, 8)...)
	repo := seedRepo(t, pool)

	gen := exam.NewSeededGenerator(repo, 5)
	result, err := gen.Generate(models.ExamConfig{
		NumQuestions: 4,
		Weights:      map[models.Difficulty]int{models.DifficultyEasy: 1},
		Topics:       []models.Topic{models.TopicArrays, models.TopicStrings},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	topicCounts := make(map[models.Topic]int)
	for _, q := range result.Questions {
		topicCounts[q.Topic]++
	}
	if topicCounts[models.TopicArrays] != 2 || topicCounts[models.TopicStrings] != 2 {
		t.Errorf("topic spread = %v, want 2 from each requested topic", topicCounts)
	}
}

func TestGenerate_DiversityRemainderAndGapFill(t *testing.T) {
	// Trees has only 1 easy question, so its quota cannot be met and the
	// gap is filled from the remaining topics.
	var pool []models.Question
	pool = append(pool, bulkQuestions("arr", models.TopicArrays, models.DifficultyEasy, 6)...)
	pool = append(pool, bulkQuestions("str", models.TopicStrings, models.DifficultyEasy, 6)...)
	pool = append(pool, bulkQuestions("tre", models.TopicTrees, models.DifficultyEasy, 1)...)
	repo := seedRepo(t, pool)

	gen := exam.NewSeededGenerator(repo, 21)
	result, err := gen.Generate(models.ExamConfig{
		NumQuestions: 9,
		Weights:      map[models.Difficulty]int{models.DifficultyEasy: 1},
		Topics:       []models.Topic{models.TopicArrays, models.TopicStrings, models.TopicTrees},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Questions) != 9 {
		t.Fatalf("Generate() returned %d questions, want 9", len(result.Questions))
	}

	topicCounts := make(map[models.Topic]int)
	seen := make(map[string]bool)
	for _, q := range result.Questions {
		topicCounts[q.Topic]++
		if seen[q.ID] {
			t.Errorf("duplicate question id %s in result", q.ID)
		}
		seen[q.ID] = true
	}
	if topicCounts[models.TopicTrees] != 1 {
		t.Errorf("Trees count = %d, want its single available question", topicCounts[models.TopicTrees])
	}
	if topicCounts[models.TopicArrays] < 3 || topicCounts[models.TopicStrings] < 3 {
		t.Errorf("topic spread = %v, want at least the base quota of 3 from Arrays and Strings", topicCounts)
	}
}

func TestGenerate_ZeroWeightDifficultyExcluded(t *testing.T) {
	var pool []models.Question
	pool = append(pool, bulkQuestions("e", models.TopicArrays, models.DifficultyEasy, 5)...)
	pool = append(pool, bulkQuestions("h", models.TopicArrays, models.DifficultyHard, 5)...)
	repo := seedRepo(t, pool)

	gen := exam.NewSeededGenerator(repo, 13)
	result, err := gen.Generate(models.ExamConfig{
		NumQuestions: 4,
		Weights: map[models.Difficulty]int{
			models.DifficultyEasy: 1,
			models.DifficultyHard: 0,
		},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, q := range result.Questions {
		if q.Difficulty == models.DifficultyHard {
			t.Errorf("question %s is Hard despite a zero Hard weight", q.ID)
		}
	}
	if len(result.Questions) != 4 {
		t.Errorf("Generate() returned %d questions, want 4", len(result.Questions))
	}
}

func TestGenerate_EmptyRepository(t *testing.T) {
	gen := exam.NewSeededGenerator(store.NewRepository(), 1)
	result, err := gen.Generate(models.ExamConfig{NumQuestions: 5, Weights: evenWeights()})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Questions) != 0 {
		t.Errorf("Generate() returned %d questions from an empty bank, want 0", len(result.Questions))
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	repo := seedRepo(t, bank.SampleQuestions())
	gen := exam.NewSeededGenerator(repo, 1)

	tests := []struct {
		name string
		cfg  models.ExamConfig
	}{
		{
			name: "zero question count",
			cfg:  models.ExamConfig{NumQuestions: 0, Weights: evenWeights()},
		},
		{
			name: "negative question count",
			cfg:  models.ExamConfig{NumQuestions: -3, Weights: evenWeights()},
		},
		{
			name: "all weights zero",
			cfg: models.ExamConfig{
				NumQuestions: 5,
				Weights:      map[models.Difficulty]int{models.DifficultyEasy: 0},
			},
		},
		{
			name: "nil weights",
			cfg:  models.ExamConfig{NumQuestions: 5},
		},
		{
			name: "negative weight",
			cfg: models.ExamConfig{
				NumQuestions: 5,
				Weights: map[models.Difficulty]int{
					models.DifficultyEasy: 2,
					models.DifficultyHard: -1,
				},
			},
		},
		{
			name: "unknown topic",
			cfg: models.ExamConfig{
				NumQuestions: 5,
				Weights:      evenWeights(),
				Topics:       []models.Topic{"Quantum Computing"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.Generate(tt.cfg)
			if !errors.Is(err, exam.ErrInvalidConfig) {
				t.Errorf("Generate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGenerate_DeterministicWithSameSeed(t *testing.T) {
	questions := bank.SampleQuestions()
	cfg := models.ExamConfig{NumQuestions: 5, Weights: evenWeights()}

	first, err := exam.NewSeededGenerator(seedRepo(t, questions), 1234).Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := exam.NewSeededGenerator(seedRepo(t, questions), 1234).Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(first.Questions) != len(second.Questions) {
		t.Fatalf("selection lengths differ: %d vs %d", len(first.Questions), len(second.Questions))
	}
	for i := range first.Questions {
		if first.Questions[i].ID != second.Questions[i].ID {
			t.Errorf("question %d differs: %s vs %s", i, first.Questions[i].ID, second.Questions[i].ID)
		}
	}
}

func TestGenerate_ResultCarriesConfig(t *testing.T) {
	repo := seedRepo(t, bank.SampleQuestions())
	cfg := models.ExamConfig{NumQuestions: 3, Weights: evenWeights()}

	result, err := exam.NewSeededGenerator(repo, 8).Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.Config.NumQuestions != cfg.NumQuestions {
		t.Errorf("result config NumQuestions = %d, want %d", result.Config.NumQuestions, cfg.NumQuestions)
	}
	if result.CreatedAt.IsZero() {
		t.Error("result CreatedAt is zero")
	}
}
