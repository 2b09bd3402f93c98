package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prepnaija/prepnaija-backend/internal/config"
	"github.com/prepnaija/prepnaija-backend/internal/database"
	"github.com/prepnaija/prepnaija-backend/internal/logger"
	"github.com/prepnaija/prepnaija-backend/internal/model"
	"github.com/prepnaija/prepnaija-backend/internal/repository"
	"github.com/prepnaija/prepnaija-backend/internal/service"
)

// Seeds a Mathematics subject with four topics and 20 published questions
// per topic, so a fresh install has something to practise against.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	subjectRepo := repository.NewSubjectRepository(pool)
	topicRepo := repository.NewTopicRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)

	subjectService := service.NewSubjectService(subjectRepo, log)
	topicService := service.NewTopicService(topicRepo, log)

	fmt.Println("=== Seeding demo content ===")

	// Subject
	var subjectID int
	err = pool.QueryRow(ctx, "SELECT id FROM subjects WHERE code = $1", "MTH").Scan(&subjectID)
	if err != nil {
		if err != pgx.ErrNoRows {
			log.Fatal().Err(err).Msg("Failed to check existing subject")
		}
		fmt.Println("Subject MTH not found. Creating it...")
		subject := &model.Subject{
			Name:        "Mathematics",
			Code:        "MTH",
			Description: "General Mathematics for WAEC, JAMB, NECO and GCE.",
		}
		if err := subjectService.Create(ctx, subject); err != nil {
			log.Fatal().Err(err).Msg("Failed to create subject")
		}
		subjectID = subject.ID
	}
	fmt.Printf("Subject ID: %d\n", subjectID)

	topicNames := []string{"Algebra", "Geometry", "Trigonometry", "Statistics"}
	boards := []string{"WAEC", "JAMB", "NECO", "GCE"}

	totalQuestions := 0
	for pos, name := range topicNames {
		topic := &model.Topic{
			SubjectID:   subjectID,
			Name:        name,
			Description: fmt.Sprintf("%s past questions and drills.", name),
			Position:    pos,
		}
		if err := topicService.Create(ctx, topic); err != nil {
			fmt.Printf("Error creating topic %s: %v\n", name, err)
			continue
		}

		for i := 0; i < 20; i++ {
			year := 2015 + i%10
			question := &model.Question{
				TopicID: topic.ID,
				Prompt:  fmt.Sprintf("%s drill question %d: pick option A.", name, i+1),
				Options: map[string]string{
					"A": "Correct answer",
					"B": "Close distractor",
					"C": "Common misconception",
					"D": "Unrelated value",
				},
				CorrectOption: "A",
				Explanation:   "Option A follows directly from the definition used in the prompt.",
				Hint:          "Re-read the first clause of the prompt.",
				Difficulty:    model.DifficultyMedium,
				ExamBoard:     boards[i%len(boards)],
				ExamYear:      &year,
				Status:        model.QuestionStatusPublished,
			}
			if err := questionRepo.Create(ctx, question); err != nil {
				fmt.Printf("Error creating question %d in %s: %v\n", i+1, name, err)
				continue
			}
			totalQuestions++
		}
		fmt.Printf("Seeded topic %s with questions\n", name)
	}

	fmt.Printf("\nSeed completed! %d published questions across %d topics.\n", totalQuestions, len(topicNames))
}
