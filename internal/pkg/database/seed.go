package database

import (
	"log"
	"time"

	"github.com/elaralabs/elara/app/models"
	"github.com/elaralabs/elara/app/repository"
	"github.com/elaralabs/elara/internal/pkg/env"
)

// SeedDemoData creates a demo account with sample rows when running in dev
// mode against an empty users table. Safe to call on every startup.
func SeedDemoData() {
	if !env.IsDev() || DB == nil {
		return
	}

	count, err := repository.NewUserRepository(DB).Count()
	if err != nil || count > 0 {
		return
	}

	user, err := models.CreateUser("demo@elarago.com", "demo123")
	if err != nil {
		log.Printf("seed: could not build demo user: %v", err)
		return
	}
	if err := DB.Create(user).Error; err != nil {
		log.Printf("seed: could not create demo user: %v", err)
		return
	}

	today := time.Now().Format("2006-01-02")

	DB.Create(&[]models.Task{
		{UserID: user.ID, Task: "Define weekly goals", Project: "Elara", Priority: models.TaskPriorityHigh, DueDate: today, Status: models.TaskStatusNotStarted},
		{UserID: user.ID, Task: "Review project milestones", Project: "Client Work", Priority: models.TaskPriorityMedium, DueDate: today, Status: models.TaskStatusInProgress},
		{UserID: user.ID, Task: "Plan for next week", Project: "Personal", Priority: models.TaskPriorityLow, DueDate: today, Status: models.TaskStatusCompleted},
	})
	DB.Create(&[]models.Habit{
		{UserID: user.ID, Habit: "Meditate", Mon: 1, Tue: 1, Thu: 1, Fri: 1, Sun: 1},
		{UserID: user.ID, Habit: "Exercise", Mon: 1, Wed: 1, Thu: 1, Sun: 1},
		{UserID: user.ID, Habit: "Plan Tomorrow", Tue: 1, Wed: 1, Fri: 1, Sat: 1, Sun: 1},
	})
	DB.Create(&[]models.Goal{
		{UserID: user.ID, Goal: "Launch Elara", ActionSteps: "Complete MVP, Setup billing, Launch", Progress: 60},
		{UserID: user.ID, Goal: "Improve Health", ActionSteps: "Workout 3x/week, Track meals, Sleep 8 hrs", Progress: 40},
		{UserID: user.ID, Goal: "Read 12 Books", ActionSteps: "Read 1 book/month, Review notes", Progress: 25},
	})
	DB.Create(&models.JournalEntry{
		UserID: user.ID, JDate: today, Mood: "Calm", Stress: 3,
		Gratitude: "Good sleep, finished project milestone",
		Highlight: "Walk in the park",
		Notes:     "Feeling productive and calm overall.",
	})

	log.Printf("seed: created demo account demo@elarago.com")
}
