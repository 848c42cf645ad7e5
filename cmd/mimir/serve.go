package main

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/mimir/internal/config"
	"github.com/3-lines-studio/mimir/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the example components over HTTP for inspection",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		reg := registry("World")
		names := make([]string, 0, len(reg))
		for name := range reg {
			names = append(names, name)
		}
		sort.Strings(names)

		var routes []server.Route
		for _, name := range names {
			if cfg.Excluded(name) {
				continue
			}
			routes = append(routes, server.Route{Pattern: "/" + name, Name: name, Component: reg[name]})
		}

		router := chi.NewRouter()
		server.Mount(router, routes, cfg.Title)

		output.PrintHeader(cfg.Title)
		for _, route := range routes {
			output.PrintFile(route.Pattern)
		}
		output.PrintSuccess("listening on %s", cfg.Addr)

		return http.ListenAndServe(cfg.Addr, router)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
