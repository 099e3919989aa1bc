
package main

import (
	"crypto/sha256"
	"encoding/json"
	"log"
	"os"
	"time"

	"examgen-server/bank"
	"examgen-server/config"
	"examgen-server/exam"
	"examgen-server/index"
	"examgen-server/models"
	"examgen-server/store"
	"examgen-server/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Load the question bank (built-in sample set when no file is configured)
	var questions []models.Question
	if cfg.BankPath != "" {
		questions, err = bank.Load(cfg.BankPath)
		if err != nil {
			log.Fatalf("Error loading question bank: %v", err)
		}
	} else {
		questions = bank.SampleQuestions()
		log.Printf("No bank path configured, using the built-in sample set (%d questions)", len(questions))
	}

	// Derive the random seed: deterministic from the configured seed string,
	// otherwise time-based
	seed := time.Now().UnixNano()
	if cfg.Seed != "" {
		sum := sha256.Sum256([]byte(cfg.Seed))
		seed = utils.BytesToInt(sum[:])
		log.Printf("Using deterministic seed derived from %q", cfg.Seed)
	}

	// Populate the repository and both auxiliary indices
	repo := store.NewRepository()
	tree := index.NewTopicTree()
	graph := index.NewSeededRelationGraph(seed)
	for _, q := range questions {
		if !repo.Add(q) {
			log.Printf("Skipping duplicate question id %s", q.ID)
			continue
		}
		tree.AddQuestion(q)
		graph.AddQuestion(q)
	}
	counts := repo.Counts()
	log.Printf("Question bank ready: %d questions across %d topics", counts.Total, len(nonEmptyTopics(counts)))

	examCfg, err := buildExamConfig(cfg.Exam)
	if err != nil {
		log.Fatalf("Invalid exam settings: %v", err)
	}

	generator := exam.NewSeededGenerator(repo, seed)
	result, err := generator.Generate(examCfg)
	if err != nil {
		log.Fatalf("Error generating exam: %v", err)
	}
	if len(result.Questions) < examCfg.NumQuestions {
		log.Printf("Warning: bank could only supply %d of %d requested questions", len(result.Questions), examCfg.NumQuestions)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("Error encoding exam result: %v", err)
	}
}

// buildExamConfig converts the flat CLI settings into a models.ExamConfig,
// resolving the configured topic names against the fixed enumeration.
func buildExamConfig(settings config.ExamConfig) (models.ExamConfig, error) {
	examCfg := models.ExamConfig{
		NumQuestions: settings.NumQuestions,
		Weights: map[models.Difficulty]int{
			models.DifficultyEasy:   settings.EasyWeight,
			models.DifficultyMedium: settings.MediumWeight,
			models.DifficultyHard:   settings.HardWeight,
		},
	}
	for _, name := range settings.Topics {
		topic, err := models.ParseTopic(name)
		if err != nil {
			return models.ExamConfig{}, err
		}
		examCfg.Topics = append(examCfg.Topics, topic)
	}
	return examCfg, nil
}

func nonEmptyTopics(counts models.BankCounts) []models.Topic {
	topics := []models.Topic{}
	for _, t := range models.AllTopics {
		if counts.ByTopic[t] > 0 {
			topics = append(topics, t)
		}
	}
	return topics
}
