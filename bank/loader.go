
package bank

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"examgen-server/models"
)

// Load reads and validates a YAML question bank. Every record needs non-empty
// text and known topic/difficulty values; records without an ID get a fresh
// UUID; duplicate IDs across the file are rejected.
func Load(path string) ([]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank %s: %w", path, err)
	}

	var file models.BankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse question bank %s: %w", path, err)
	}
	if len(file.Questions) == 0 {
		return nil, fmt.Errorf("question bank %s contains no questions", path)
	}

	questions := make([]models.Question, 0, len(file.Questions))
	seen := make(map[string]bool, len(file.Questions))
	for i, record := range file.Questions {
		q, err := validateRecord(record)
		if err != nil {
			return nil, fmt.Errorf("question bank %s, question %d: %w", path, i+1, err)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("question bank %s, question %d: duplicate id %q", path, i+1, q.ID)
		}
		seen[q.ID] = true
		questions = append(questions, q)
	}

	log.Printf("Loaded %d questions from %s", len(questions), path)
	return questions, nil
}

func validateRecord(record models.BankQuestion) (models.Question, error) {
	if strings.TrimSpace(record.Text) == "" {
		return models.Question{}, fmt.Errorf("question text must not be empty")
	}
	difficulty, err := models.ParseDifficulty(record.Difficulty)
	if err != nil {
		return models.Question{}, err
	}
	topic, err := models.ParseTopic(record.Topic)
	if err != nil {
		return models.Question{}, err
	}
	id := strings.TrimSpace(record.ID)
	if id == "" {
		id = uuid.NewString()
	}
	return models.Question{
		ID:          id,
		Text:        record.Text,
		Difficulty:  difficulty,
		Topic:       topic,
		Options:     record.Options,
		Answer:      record.Answer,
		Explanation: record.Explanation,
	}, nil
}

// SampleQuestions returns the fixed ten-question starter set used when no
// bank file is configured: three Easy, four Medium and three Hard questions
// spread over distinct topics.
func SampleQuestions() []models.Question {
	return []models.Question{
		{
			ID:          "1",
			Text:        "What is the time complexity of accessing an element in an array by index?",
			Difficulty:  models.DifficultyEasy,
			Topic:       models.TopicArrays,
			Options:     []string{"O(1)", "O(log n)", "O(n)", "O(n^2)"},
			Answer:      "O(1)",
			Explanation: "Arrays store elements contiguously, so an index maps directly to an address.",
		},
		{
			ID:          "2",
			Text:        "Which method checks whether a string contains only digit characters?",
			Difficulty:  models.DifficultyEasy,
			Topic:       models.TopicStrings,
			Answer:      "Iterate the characters and test each for being a digit.",
			Explanation: "A single pass over the characters suffices; no extra storage is needed.",
		},
		{
			ID:          "3",
			Text:        "What distinguishes a singly linked list from a doubly linked list?",
			Difficulty:  models.DifficultyEasy,
			Topic:       models.TopicLinkedLists,
			Answer:      "Doubly linked nodes also hold a pointer to their predecessor.",
			Explanation: "The extra pointer allows backward traversal at the cost of memory per node.",
		},
		{
			ID:          "4",
			Text:        "How do you find the height of a binary tree?",
			Difficulty:  models.DifficultyMedium,
			Topic:       models.TopicTrees,
			Answer:      "Recursively take 1 plus the larger of the two subtree heights.",
			Explanation: "The height of an empty tree is -1 (or 0 by convention); recursion handles the rest.",
		},
		{
			ID:          "5",
			Text:        "Which traversal visits graph vertices level by level from a source?",
			Difficulty:  models.DifficultyMedium,
			Topic:       models.TopicGraphs,
			Options:     []string{"Depth-first search", "Breadth-first search", "Topological sort", "Dijkstra's algorithm"},
			Answer:      "Breadth-first search",
			Explanation: "BFS expands a frontier queue, so vertices are discovered in distance order.",
		},
		{
			ID:          "6",
			Text:        "What is the optimal substructure property in dynamic programming?",
			Difficulty:  models.DifficultyMedium,
			Topic:       models.TopicDynamicProgramming,
			Answer:      "An optimal solution is composed of optimal solutions to its subproblems.",
			Explanation: "Together with overlapping subproblems, it justifies memoization or tabulation.",
		},
		{
			ID:          "7",
			Text:        "What is the average-case time complexity of quicksort?",
			Difficulty:  models.DifficultyMedium,
			Topic:       models.TopicSorting,
			Options:     []string{"O(n)", "O(n log n)", "O(n^2)", "O(log n)"},
			Answer:      "O(n log n)",
			Explanation: "Random pivots split the input roughly in half on average.",
		},
		{
			ID:          "8",
			Text:        "Implement binary search on a rotated sorted array.",
			Difficulty:  models.DifficultyHard,
			Topic:       models.TopicSearching,
			Answer:      "At each step decide which half is sorted and whether the target lies inside it.",
			Explanation: "One of the two halves around the midpoint is always sorted, preserving O(log n).",
		},
		{
			ID:          "9",
			Text:        "Count the number of ways to partition a set into k non-empty subsets.",
			Difficulty:  models.DifficultyHard,
			Topic:       models.TopicRecursion,
			Answer:      "S(n,k) = k*S(n-1,k) + S(n-1,k-1) (Stirling numbers of the second kind).",
			Explanation: "The nth element either joins one of k existing subsets or starts a new one.",
		},
		{
			ID:          "10",
			Text:        "Prove that the greedy choice is safe for the activity selection problem.",
			Difficulty:  models.DifficultyHard,
			Topic:       models.TopicGreedyAlgorithms,
			Answer:      "Exchanging any optimal solution's first activity for the earliest-finishing one keeps it optimal.",
			Explanation: "The earliest finish time leaves the most room for the remaining activities.",
		},
	}
}
