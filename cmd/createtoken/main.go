package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"dmfengineering.com/timesheet/security"
)

func main() {
	userID := flag.String("user", "", "identity provider user id")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "email address")
	ttl := flag.Int64("ttl", 3600, "token lifetime in seconds")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	secret := os.Getenv("TIMESHEET_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("TIMESHEET_SIGNING_SECRET is not set")
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		UserID: *userID,
		Name:   *name,
		Email:  *email,
	}, secret, *ttl)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
