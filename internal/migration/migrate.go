package migration

import (
	"fmt"
	"time"

	"github.com/tourvista/tourism-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for the searchable content tables.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Tour{}, &domain.BlogPost{}, &domain.Project{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Seed inserts demo content into every table that is still empty.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedIfEmpty(tx, &domain.Tour{}, demoTours()); err != nil {
			return fmt.Errorf("seed tours: %w", err)
		}
		if err := seedIfEmpty(tx, &domain.BlogPost{}, demoBlogPosts()); err != nil {
			return fmt.Errorf("seed blog posts: %w", err)
		}
		if err := seedIfEmpty(tx, &domain.Project{}, demoProjects()); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
		return nil
	})
}

func seedIfEmpty[T any](tx *gorm.DB, model *T, rows []T) error {
	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func strPtr(s string) *string { return &s }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func demoTours() []domain.Tour {
	return []domain.Tour{
		{Title: "Shahdag Day Hike", Slug: "shahdag-day-hike", Description: "A guided day hike on the slopes of Shahdag with lunch in Laza village.", Category: strPtr("hiking"), ImageURL: strPtr("/images/tours/shahdag.jpg"), DurationDays: 1, Price: 79, IsActive: true, CreatedAt: day(2024, time.May, 12)},
		{Title: "Old City Walking Tour", Slug: "old-city-walking-tour", Description: "Caravanserais, the Maiden Tower and the Palace of the Shirvanshahs.", Category: strPtr("culture"), ImageURL: strPtr("/images/tours/old-city.jpg"), DurationDays: 1, Price: 35, IsActive: true, CreatedAt: day(2024, time.March, 2)},
		{Title: "Caucasus Highlands Trek", Slug: "caucasus-highlands-trek", Description: "Five days across the highlands from Quba to Khinalug, with a night under Shahdag.", Category: strPtr("hiking"), DurationDays: 5, Price: 640, IsActive: true, CreatedAt: day(2024, time.June, 20)},
		{Title: "Gobustan and Mud Volcanoes", Slug: "gobustan-mud-volcanoes", Description: "Rock carvings and the bubbling mud volcanoes south of the capital.", Category: strPtr("nature"), DurationDays: 1, Price: 55, IsActive: true, CreatedAt: day(2023, time.October, 8)},
		{Title: "Winter Ski Weekend", Slug: "winter-ski-weekend", Description: "Two days at a mountain resort. Currently not offered.", Category: strPtr("ski"), DurationDays: 2, Price: 310, IsActive: false, CreatedAt: day(2023, time.December, 1)},
	}
}

func demoBlogPosts() []domain.BlogPost {
	return []domain.BlogPost{
		{Title: "What to pack for a mountain day", Slug: "what-to-pack-mountain-day", Content: "<p>Layers matter more than you think. On our <strong>Shahdag</strong> hikes the weather turns in an hour.</p>", CoverImageURL: strPtr("/images/blog/packing.jpg"), Author: "Leyla", Status: domain.BlogPostStatusPublished, CreatedAt: day(2024, time.July, 1)},
		{Title: "Five dishes to try in Sheki", Slug: "five-dishes-sheki", Content: "<p>Piti, halva and more from the silk road town.</p>", Author: "Murad", Status: domain.BlogPostStatusPublished, CreatedAt: day(2024, time.April, 18)},
		{Title: "Behind the scenes: route scouting", Slug: "route-scouting", Content: "<p>Draft notes from the scouting trip.</p>", Author: "Leyla", Status: domain.BlogPostStatusDraft, CreatedAt: day(2024, time.August, 3)},
	}
}

func demoProjects() []domain.Project {
	return []domain.Project{
		{Title: "Trail Restoration in Laza", Description: "Volunteers rebuild eroded sections of the trail below Shahdag each autumn.", ImageURL: strPtr("/images/projects/laza-trail.jpg"), Location: "Laza, Qusar", IsActive: true, CreatedAt: day(2023, time.September, 15)},
		{Title: "Village Guesthouse Network", Description: "Training host families to welcome hikers in remote villages.", Location: "Khinalug", IsActive: true, CreatedAt: day(2024, time.February, 10)},
	}
}
