// cmd/api/command.go
package main

import "github.com/urfave/cli/v2"

// newCLI builds the command tree. Running without a command starts the API.
func newCLI() *cli.App {
	app := cli.NewApp()
	app.Name = "userservice"
	app.Usage = "User Management API"
	app.Version = "1.0.0"
	app.Action = serve
	app.Commands = []*cli.Command{
		{
			Action:      serve,
			Name:        "serve",
			Usage:       "Start the HTTP API",
			Category:    "Api",
			Description: `Connects to PostgreSQL, applies migrations when DB_AUTO_MIGRATE is set, and serves /api/v1/users.`,
		},
		{
			Name:     "migrate",
			Usage:    "Manage the database schema",
			Category: "Database",
			Subcommands: []*cli.Command{
				{
					Action: withMigrator(migrateUp),
					Name:   "up",
					Usage:  "Apply all pending migrations",
				},
				{
					Action: withMigrator(migrateDown),
					Name:   "down",
					Usage:  "Revert all applied migrations",
				},
				{
					Action: withMigrator(migrateVersion),
					Name:   "version",
					Usage:  "Print the current schema version",
				},
			},
		},
	}
	return app
}
