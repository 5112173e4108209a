package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dayflow/hr-service/internal/auth"
	"github.com/dayflow/hr-service/internal/domain"
	"github.com/dayflow/hr-service/internal/repository"
)

type accountsFile struct {
	Accounts []struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Role     string `yaml:"role"`
		Status   string `yaml:"status"`
	} `yaml:"accounts"`
}

// SeedAccounts creates the accounts listed in a YAML file, skipping emails that
// already exist. Accounts default to role employee and status APPROVED.
func SeedAccounts(ctx context.Context, employees repository.EmployeeRepository, path string, bcryptCost int, logger *zap.Logger) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}
	var file accountsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	created := 0
	for _, acc := range file.Accounts {
		email := auth.NormalizeEmail(acc.Email)
		if email == "" || acc.Password == "" {
			logger.Warn("skipping seed account without email or password")
			continue
		}
		if _, err := employees.GetByEmail(ctx, email); err == nil {
			continue
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return created, err
		}

		status := domain.EmployeeStatus(strings.ToUpper(strings.TrimSpace(acc.Status)))
		switch status {
		case "":
			status = domain.EmployeeStatusApproved
		case domain.EmployeeStatusPending, domain.EmployeeStatusApproved, domain.EmployeeStatusRejected:
		default:
			return created, fmt.Errorf("seed account %s: unknown status %q", email, acc.Status)
		}
		role := domain.Role(acc.Role).Normalize()
		if role == "" {
			role = domain.RoleEmployee
		}

		hash, err := auth.HashPassword(acc.Password, bcryptCost)
		if err != nil {
			return created, err
		}
		if err := employees.Create(ctx, &domain.Employee{
			Name:         acc.Name,
			Email:        email,
			PasswordHash: hash,
			Role:         role,
			Status:       status,
		}); err != nil {
			return created, fmt.Errorf("create seed account %s: %w", email, err)
		}
		created++
	}

	logger.Info("seeded accounts", zap.Int("created", created), zap.String("file", path))
	return created, nil
}
