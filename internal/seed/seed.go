// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"prolink/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var skillNames = []string{
	"Go", "Python", "TypeScript", "SQL", "PostgreSQL", "Redis", "Docker",
	"Kubernetes", "Terraform", "React", "GraphQL", "gRPC", "Kafka",
	"Observability", "System Design", "Technical Writing", "Public Speaking",
	"Project Management", "Data Analysis", "Machine Learning",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := createComments(db, users, posts); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	if err := createReactions(db, users, posts); err != nil {
		return fmt.Errorf("failed to create reactions: %w", err)
	}

	skills, err := createSkills(db)
	if err != nil {
		return fmt.Errorf("failed to create skills: %w", err)
	}
	if err := createProfiles(db, users, skills); err != nil {
		return fmt.Errorf("failed to create profiles: %w", err)
	}

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	// Order matters: children before parents.
	tables := []string{"user_skills", "reactions", "comments", "experiences", "posts", "skills", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, n int) ([]*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username:   fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:      fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password:   string(hash),
			Name:       gofakeit.Name(),
			Bio:        gofakeit.Sentence(10),
			PictureURL: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
		}
		if err := db.Create(user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		user := users[rand.Intn(len(users))]
		post := &models.Post{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(1, 3, 5, "\n"),
			UserID:  user.ID,
			// spread created_at over the last 90 days
			CreatedAt: time.Now().Add(-time.Duration(rand.Intn(90*24)) * time.Hour),
		}
		if err := db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createComments(db *gorm.DB, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		for i := 0; i < rand.Intn(6); i++ {
			comment := &models.Comment{
				Text:   gofakeit.Sentence(12),
				UserID: users[rand.Intn(len(users))].ID,
				PostID: post.ID,
			}
			if err := db.Create(comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createReactions(db *gorm.DB, users []*models.User, posts []*models.Post) error {
	statuses := []string{models.ReactionLike, models.ReactionLike, models.ReactionLike, models.ReactionDislike, models.ReactionNeutral}
	for _, post := range posts {
		// each post gets reactions from a random prefix of users, at most one each
		for _, user := range users[:rand.Intn(len(users))] {
			reaction := &models.Reaction{
				UserID: user.ID,
				PostID: post.ID,
				Status: statuses[rand.Intn(len(statuses))],
			}
			if err := db.Create(reaction).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createSkills(db *gorm.DB) ([]*models.Skill, error) {
	skills := make([]*models.Skill, 0, len(skillNames))
	for _, name := range skillNames {
		skill := &models.Skill{Name: name}
		if err := db.Create(skill).Error; err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func createProfiles(db *gorm.DB, users []*models.User, skills []*models.Skill) error {
	for _, user := range users {
		for i := 0; i < 1+rand.Intn(3); i++ {
			start := gofakeit.DateRange(time.Now().AddDate(-10, 0, 0), time.Now().AddDate(-1, 0, 0))
			end := start.AddDate(0, 6+rand.Intn(36), 0)
			experience := &models.Experience{
				Title:       gofakeit.JobTitle(),
				Company:     gofakeit.Company(),
				Description: gofakeit.Sentence(15),
				StartDate:   &start,
				EndDate:     &end,
				UserID:      user.ID,
			}
			if err := db.Create(experience).Error; err != nil {
				return err
			}
		}

		seen := map[uint]struct{}{}
		for i := 0; i < 2+rand.Intn(4); i++ {
			skill := skills[rand.Intn(len(skills))]
			if _, ok := seen[skill.ID]; ok {
				continue
			}
			seen[skill.ID] = struct{}{}
			userSkill := &models.UserSkill{UserID: user.ID, SkillID: skill.ID}
			if err := db.Create(userSkill).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
