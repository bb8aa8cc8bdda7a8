// Command promote adds a user to a role group (Admin by default).
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --username=alice [--role=Operator]
//
// Database settings are read the same way as the server reads them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/labsample-backend/internal/adapter/postgres"
	"github.com/heartmarshall/labsample-backend/internal/config"
	"github.com/heartmarshall/labsample-backend/internal/domain"
)

func main() {
	username := flag.String("username", "", "username of user to promote")
	roleName := flag.String("role", domain.RoleAdmin.String(), "group to add the user to: Admin, Operator or Viewer")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --username=alice [--role=Admin]")
		os.Exit(1)
	}
	role, ok := domain.ParseRole(*roleName)
	if !ok {
		log.Fatalf("unknown role %q", *roleName)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx,
		`INSERT INTO user_groups (user_id, group_id)
		 SELECT u.id, g.id FROM users u, groups g
		 WHERE u.username = $1 AND g.name = $2
		 ON CONFLICT DO NOTHING`,
		*username, role.String(),
	)
	if err != nil {
		log.Fatalf("add user to group: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("No user found with username %q, or already in %s.\n", *username, role)
		os.Exit(1)
	}

	fmt.Printf("User %q added to %s.\n", *username, role)
}
