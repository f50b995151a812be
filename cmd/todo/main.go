package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"todoapp/internal/client"
	"todoapp/internal/ui"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "server address")
	username := flag.String("user", "", "username")
	password := flag.String("pass", "", "password")
	signup := flag.Bool("signup", false, "create the account before logging in")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: todo -user <username> -pass <password> [-signup] [-addr <url>]")
		os.Exit(2)
	}

	cache := client.NewMemoryCache(30 * time.Second)
	c, err := client.New(*addr, cache)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	if *signup {
		if err := c.Signup(ctx, *username, *password); err != nil {
			log.Fatalf("Signup failed: %v", err)
		}
	}

	if err := c.Login(ctx, *username, *password); err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	if err := ui.Run(ctx, c); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}
