
package models

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is one of the three fixed question difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties fixes the canonical iteration order: Easy, Medium, Hard.
var AllDifficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty converts a case-insensitive name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (expected easy, medium or hard)", s)
}

// Topic is one of the ten fixed subject-matter categories.
type Topic string

const (
	TopicArrays             Topic = "Arrays"
	TopicStrings            Topic = "Strings"
	TopicLinkedLists        Topic = "Linked Lists"
	TopicTrees              Topic = "Trees"
	TopicGraphs             Topic = "Graphs"
	TopicDynamicProgramming Topic = "Dynamic Programming"
	TopicSorting            Topic = "Sorting"
	TopicSearching          Topic = "Searching"
	TopicRecursion          Topic = "Recursion"
	TopicGreedyAlgorithms   Topic = "Greedy Algorithms"
)

// AllTopics fixes the enumeration order used for topic-major iteration.
var AllTopics = []Topic{
	TopicArrays,
	TopicStrings,
	TopicLinkedLists,
	TopicTrees,
	TopicGraphs,
	TopicDynamicProgramming,
	TopicSorting,
	TopicSearching,
	TopicRecursion,
	TopicGreedyAlgorithms,
}

// ParseTopic converts a case-insensitive name into a Topic.
func ParseTopic(s string) (Topic, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllTopics {
		if strings.ToLower(string(t)) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown topic %q", s)
}

// Question struct represents a single bank question. Questions are immutable
// once stored; an update is modeled as remove followed by re-add.
type Question struct {
	ID          string     `json:"id" yaml:"id"`
	Text        string     `json:"text" yaml:"text"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Topic       Topic      `json:"topic" yaml:"topic"`
	Options     []string   `json:"options,omitempty" yaml:"options,omitempty"` // empty means free-response
	Answer      string     `json:"answer,omitempty" yaml:"answer,omitempty"`
	Explanation string     `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// ExamConfig describes a requested exam: how many questions, the relative
// per-difficulty weights, and an optional topic filter (empty means all topics).
type ExamConfig struct {
	NumQuestions int                `json:"num_questions"`
	Weights      map[Difficulty]int `json:"difficulty_weights"`
	Topics       []Topic            `json:"topics,omitempty"`
}

// WeightSum returns the total of all difficulty weights.
func (c ExamConfig) WeightSum() int {
	sum := 0
	for _, w := range c.Weights {
		sum += w
	}
	return sum
}

// ExamResult is a generated exam: the selected questions in exam order, the
// config that produced them, and the generation timestamp. The result may hold
// fewer questions than requested when the bank cannot satisfy the config;
// callers detect that by comparing len(Questions) against Config.NumQuestions.
type ExamResult struct {
	Questions []Question `json:"questions"`
	Config    ExamConfig `json:"config"`
	CreatedAt time.Time  `json:"created_at"`
}

// BankCounts summarizes repository contents. Every topic and difficulty key is
// always present, zero-defaulted.
type BankCounts struct {
	Total        int                `json:"total"`
	ByTopic      map[Topic]int      `json:"by_topic"`
	ByDifficulty map[Difficulty]int `json:"by_difficulty"`
}

// BankFile is the YAML question-bank document parsed by the bank loader.
type BankFile struct {
	Questions []BankQuestion `yaml:"questions"`
}

// BankQuestion is one raw bank-file record before validation.
type BankQuestion struct {
	ID          string   `yaml:"id"`
	Text        string   `yaml:"text"`
	Difficulty  string   `yaml:"difficulty"`
	Topic       string   `yaml:"topic"`
	Options     []string `yaml:"options"`
	Answer      string   `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
}
