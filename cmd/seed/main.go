// Command seed loads development fixtures: two demo users with favorites and
// progress rows. Safe to run repeatedly; existing users are left untouched.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"recipebox/internal/config"
	"recipebox/internal/db"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

type seedUser struct {
	Name      string
	Email     string
	Password  string
	Favorites []string
	Progress  []seedProgress
}

type seedProgress struct {
	RecipeID string
	Status   string
	Position int
}

var fixtures = []seedUser{
	{
		Name:      "Demo User",
		Email:     "demo@recipebox.dev",
		Password:  "demo-password",
		Favorites: []string{"pasta-carbonara", "shakshuka"},
		Progress: []seedProgress{
			{RecipeID: "pasta-carbonara", Status: "in_progress", Position: 2},
			{RecipeID: "shakshuka", Status: "done", Position: 8},
		},
	},
	{
		Name:     "Test Cook",
		Email:    "cook@recipebox.dev",
		Password: "cook-password",
		Favorites: []string{
			"beef-rendang",
		},
	},
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Info().Msg("seeding development fixtures")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer db.Close(gormDB)

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Favorite{},
		&model.Progress{},
		&model.Activity{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	txManager := repository.NewTxManager(gormDB)

	for _, fixture := range fixtures {
		if existing, err := users.FindByEmail(ctx, fixture.Email); err == nil && existing != nil {
			log.Info().Str("email", fixture.Email).Msg("user exists, skipping")
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(fixture.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Str("email", fixture.Email).Msg("hash password")
		}

		now := time.Now().UnixMilli()
		err = txManager.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
			if err := repos.Users.Create(ctx, &model.User{
				Email:        fixture.Email,
				Name:         fixture.Name,
				PasswordHash: string(hashed),
			}); err != nil {
				return err
			}
			for _, recipeID := range fixture.Favorites {
				if err := repos.Favorites.Create(ctx, &model.Favorite{
					UserEmail: fixture.Email,
					RecipeID:  recipeID,
				}); err != nil {
					return err
				}
			}
			for _, p := range fixture.Progress {
				if err := repos.Progress.Create(ctx, &model.Progress{
					UserEmail: fixture.Email,
					RecipeID:  p.RecipeID,
					Status:    p.Status,
					Position:  p.Position,
					Timestamp: now,
				}); err != nil {
					return err
				}
			}
			return repos.Activities.Create(ctx, &model.Activity{
				UserEmail: fixture.Email,
				Activity:  "signup",
				Timestamp: now,
			})
		})
		if err != nil {
			log.Fatal().Err(err).Str("email", fixture.Email).Msg("seed user")
		}
		log.Info().Str("email", fixture.Email).Msg("seeded user")
	}

	log.Info().Msg("seed complete")
}
