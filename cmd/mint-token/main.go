package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/coletaops/coleta/api/pkg/token"
)

func main() {
	// Flags for customization
	secret := flag.String("secret", os.Getenv("AUTH_SECRET"), "Token signing secret (defaults to AUTH_SECRET)")
	userID := flag.Int64("user", 1, "User ID for the token")
	expMins := flag.Int("exp", 60, "Token expiration in minutes")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	tokenService, err := token.NewService(token.Config{
		Secret:       *secret,
		ValidityMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating token service: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nSet AUTH_SECRET or pass -secret.\n")
		os.Exit(1)
	}

	signed, err := tokenService.Issue(*userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"token":      signed,
			"expires_in": *expMins * 60,
			"user_id":    *userID,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
		fmt.Println("Token Generated")
		fmt.Println("===============")
		fmt.Printf("User ID:  %d\n", *userID)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(signed)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: %s' http://localhost:8080/users\n", signed)
	}
}
