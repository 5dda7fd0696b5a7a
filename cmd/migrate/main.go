package main

import (
	"context"
	"log"
	"os"

	"luxhome/config"
	"luxhome/helper"
)

const (
	argLength       = 2
	superAdminArgs  = 4
	superAdminCmd   = "create-superadmin"
	usageDirections = "Use 'up', 'down', 'drop', 'step-up' or 'create-superadmin <email> <password>'"
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Migration direction is required. " + usageDirections)
	}

	cfg := config.Get()

	if os.Args[1] == superAdminCmd {
		if len(os.Args) < superAdminArgs {
			log.Fatal("create-superadmin needs an email and a password")
		}

		if err := helper.CreateSuperAdmin(context.Background(), cfg, os.Args[2], os.Args[3]); err != nil {
			log.Fatal(err)
		}

		return
	}

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal(err, ". ", usageDirections)
	}
}
