package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"dmfengineering.com/timesheet/console"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  console list
  console create -user <provider id> -name <name> -email <email> [-rate <hourly>]
  console set-role -email <email> -role <employee|admin>
  console deactivate -email <email>
  console activate -email <email>`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	ctx := context.Background()
	db, err := console.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	switch os.Args[1] {
	case "list":
		employees, err := console.GetEmployees(db)
		if err != nil {
			log.Fatal(err)
		}
		for _, emp := range employees {
			state := "active"
			if !emp.Active {
				state = "inactive"
			}
			fmt.Printf("%-36s %-30s %-10s %s\n", emp.Email, emp.Name, emp.Role, state)
		}

	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		userID := fs.String("user", "", "identity provider user id")
		name := fs.String("name", "", "display name")
		email := fs.String("email", "", "email address")
		rate := fs.Float64("rate", 0, "default hourly billing rate")
		fs.Parse(os.Args[2:])
		if *userID == "" || *email == "" {
			usage()
		}

		existing, err := console.FindEmployeeByEmail(db, *email)
		if err != nil {
			log.Fatal(err)
		}
		if existing != nil {
			log.Fatalf("employee with email %s already exists (%s)", *email, existing.ID)
		}

		emp, err := console.CreateEmployee(db, *userID, *name, *email, *rate)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("created employee %s (%s)\n", emp.Email, emp.ID)

	case "set-role":
		fs := flag.NewFlagSet("set-role", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		role := fs.String("role", "", "employee or admin")
		fs.Parse(os.Args[2:])
		if err := console.SetRole(db, *email, *role); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s is now %s\n", *email, *role)

	case "deactivate", "activate":
		fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
		email := fs.String("email", "", "email address")
		fs.Parse(os.Args[2:])
		if err := console.SetActive(db, *email, os.Args[1] == "activate"); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s %sd\n", *email, os.Args[1])

	default:
		usage()
	}
}
