// Command tokengen prints a signed access token for local testing.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Wyydra/ya-relay/internal/adapter/driven/identity/jwt"
	"github.com/Wyydra/ya-relay/internal/config"
	"github.com/Wyydra/ya-relay/internal/core/domain"
)

func main() {
	user := flag.String("user", "", "user id to embed in the token")
	name := flag.String("name", "", "display name")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "tokengen: -user is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}

	token, err := jwt.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer).Issue(domain.Identity{
		UserID:      domain.UserID(*user),
		DisplayName: *name,
	}, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
