package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print version information in JSON",
		Run: func(cmd *cobra.Command, args []string) {
			type Response struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			}

			resp := Response{
				Name:    "heatgrid",
				Version: version,
			}

			jsonData, err := json.Marshal(resp)
			if err != nil {
				fmt.Println("Error generating JSON")
				os.Exit(1)
			}

			fmt.Println(string(jsonData))
		},
	}
}
