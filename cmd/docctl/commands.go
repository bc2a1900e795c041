// Package main is the entry point of docctl, the command line client of the document database.
package main

import (
	"os"

	"github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"arangodoc/internal/config"
	"arangodoc/internal/connection"
	"arangodoc/internal/database"
	"arangodoc/internal/logging"
)

var (
	arangoConfig = config.Load().Arango
	output       string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:           "docctl",
	Short:         "Command line client of the document database",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			return logging.SetLogLevel("debug")
		}
		return nil
	},
}

// Run executes CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		return 1
	}

	return 0
}

// newTransport connects to the database selected by the global flags.
func newTransport() (connection.Transport, error) {
	if err := arangoConfig.Validate(); err != nil {
		return nil, err
	}
	opts := []connection.Option{
		connection.WithTimeout(arangoConfig.Timeout()),
		connection.WithLogger(logging.New("docctl")),
	}
	if auth := database.Authentication(arangoConfig); auth != nil {
		opts = append(opts, connection.WithAuthentication(auth))
	}
	return connection.NewHTTPTransport(arangoConfig.Endpoint, arangoConfig.Database, opts...)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&arangoConfig.Endpoint, "endpoint", arangoConfig.Endpoint, "Endpoint of the database server")
	flags.StringVar(&arangoConfig.Database, "database", arangoConfig.Database, "Name of the database")
	flags.StringVar(&arangoConfig.User, "user", arangoConfig.User, "User name for basic authentication")
	flags.StringVar(&arangoConfig.Password, "password", arangoConfig.Password, "Password for basic authentication")
	flags.IntVar(&arangoConfig.TimeoutSec, "timeout", arangoConfig.TimeoutSec, "Request timeout in seconds")
	flags.StringVarP(&output, "output", "o", "json", "One of 'json', 'yaml', 'table'")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every request")

	rootCmd.AddCommand(newCollectionsCmd())
	rootCmd.AddCommand(newDocCmd())
}
