package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/employee"
	employeePostgres "github.com/frahmantamala/employee-directory/internal/employee/postgres"
	"github.com/frahmantamala/employee-directory/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample employees",
	Long:  `Seed the database with sample employees for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		repo := employeePostgres.NewEmployeeRepository(gormDB)
		svc := employee.NewService(repo, cfg.Security.BCryptCost, logger.L())

		samples := []employee.RegisterDTO{
			{
				FirstName:       "Fadhil",
				LastName:        "Rahman",
				DateOfBirth:     "1993-04-21",
				Email:           "fadhil@mail.com",
				PhoneNumber:     "555-0101",
				Password:        "password",
				ConfirmPassword: "password",
			},
			{
				FirstName:       "Padil",
				LastName:        "Admin",
				DateOfBirth:     "1988-11-02",
				Email:           "padil@mail.com",
				PhoneNumber:     "555-0102",
				Password:        "password",
				ConfirmPassword: "password",
			},
		}

		ctx := context.Background()
		for _, dto := range samples {
			emp, err := svc.Register(ctx, dto)
			if err != nil {
				if errors.Is(err, internal.ErrEmailRegistered) {
					fmt.Printf("employee %s already exists, skipping\n", dto.Email)
					continue
				}
				log.Fatalf("failed to seed employee %s: %v", dto.Email, err)
			}
			fmt.Printf("Seeded employee %s (%s)\n", emp.Email, emp.EmployeeCode)
		}
	},
}
