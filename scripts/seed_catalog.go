// Seeds the quiz catalog from scripts/seed_data.yaml.
//
// The service exposes no catalog write endpoints; quizzes, questions and
// options are provisioned out of band with this script, typically once per
// environment or after content updates.
//
// Usage: go run scripts/seed_catalog.go

package main

import (
	"log"
	"os"

	"signoria_backend/internal/config"
	"signoria_backend/internal/model"
	"signoria_backend/pkg/database"

	"gopkg.in/yaml.v3"
)

type seedOption struct {
	Content   string `yaml:"content"`
	IsCorrect bool   `yaml:"isCorrect"`
}

type seedQuestion struct {
	Text        string       `yaml:"text"`
	Category    string       `yaml:"category"`
	Explanation string       `yaml:"explanation"`
	Options     []seedOption `yaml:"options"`
}

type seedQuiz struct {
	Title           string         `yaml:"title"`
	Description     string         `yaml:"description"`
	DifficultyLevel string         `yaml:"difficultyLevel"`
	TimeLimit       int            `yaml:"timeLimit"`
	Level           int            `yaml:"level"`
	Questions       []seedQuestion `yaml:"questions"`
}

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	seedFile, err := os.ReadFile("scripts/seed_data.yaml")
	if err != nil {
		log.Fatalf("Failed to read seed data: %v", err)
	}

	var quizzes []seedQuiz
	if err := yaml.Unmarshal(seedFile, &quizzes); err != nil {
		log.Fatalf("Failed to parse seed data: %v", err)
	}

	for _, sq := range quizzes {
		quiz := model.Quiz{
			Title:           sq.Title,
			Description:     sq.Description,
			DifficultyLevel: sq.DifficultyLevel,
			TimeLimit:       sq.TimeLimit,
			Level:           sq.Level,
		}
		if err := db.Create(&quiz).Error; err != nil {
			log.Fatalf("Failed to create quiz %q: %v", sq.Title, err)
		}

		for _, qn := range sq.Questions {
			question := model.QuizQuestion{
				QuizID:           quiz.ID,
				QuestionText:     qn.Text,
				QuestionCategory: qn.Category,
				Explanation:      qn.Explanation,
			}
			if err := db.Create(&question).Error; err != nil {
				log.Fatalf("Failed to create question %q: %v", qn.Text, err)
			}

			if question.IsCameraBased() && len(qn.Options) > 0 {
				log.Fatalf("Question %q is camera based but declares options", qn.Text)
			}
			for _, op := range qn.Options {
				option := model.QuizOption{
					QuestionID: question.ID,
					Content:    op.Content,
					Category:   "option",
					IsCorrect:  op.IsCorrect,
				}
				if err := db.Create(&option).Error; err != nil {
					log.Fatalf("Failed to create option %q: %v", op.Content, err)
				}
			}
		}
		log.Printf("Seeded quiz %q with %d questions", sq.Title, len(sq.Questions))
	}
}
