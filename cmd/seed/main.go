// Command seed creates an owner, one branch's staff and a customer, then
// prints a bearer token for each so the API can be tried by hand.
package main

import (
	"context"
	"fmt"
	"os"

	"storefront/cmd"
	"storefront/internal/adapters/out/postgres/actorrepo"
	"storefront/internal/adapters/out/postgres/migrations"
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/auth"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var demoBranch = kernel.MustUUID("6f1c2a7e-3b7d-4c1e-9a55-0d1f4c8b2e10")

func main() {
	if err := seed(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seed(ctx context.Context) error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}
	if err = migrations.Up(configs.DSN()); err != nil {
		return err
	}

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return err
	}
	tokens, err := auth.NewTokens(configs.JWTSecret, configs.TokenTTL)
	if err != nil {
		return err
	}

	repo := actorrepo.NewGormActorRepository(db)
	people := []struct {
		name   string
		role   actor.Role
		branch *kernel.UUID
	}{
		{"Owner", actor.Owner, nil},
		{"Branch Admin", actor.BranchAdmin, &demoBranch},
		{"Cashier", actor.Cashier, &demoBranch},
		{"Driver", actor.Delivery, &demoBranch},
		{"Customer", actor.User, nil},
	}

	fmt.Printf("branch %s\n", demoBranch)
	for _, p := range people {
		a, err := actor.NewActor(kernel.NewUUID(), p.name, p.role, p.branch)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, a); err != nil {
			return err
		}
		token, err := tokens.Issue(a.ID())
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %s %s\n", a.Role(), a.ID(), token)
	}
	return nil
}
