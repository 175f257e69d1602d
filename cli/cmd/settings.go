package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/solidground/facade/internal/ezhttp"
)

func NewSettingsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "settings",
		GroupID: "actions",
		Short:   "Reads and writes the design settings document",
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Prints the design settings",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindServerFlag(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ezhttp.Get("/api/settings")
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}
			defer rs.Body.Close()

			var data json.RawMessage
			if err = ezhttp.ProcessBody("get settings", rs, &data); err != nil {
				return err
			}
			return printJSON(cmd, data)
		},
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Replaces the design settings with JSON from a file, stdin or an argument",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindServerFlag(cmd); err != nil {
				return err
			}
			return viper.BindPFlag("file", cmd.Flags().Lookup("file"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := readDocumentArg(cmd, args)
			if err != nil {
				return err
			}
			token, err := storedToken()
			if err != nil {
				return err
			}

			rs, err := ezhttp.Put("/api/settings", token, bytes.NewReader(settings))
			if err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}
			defer rs.Body.Close()

			var updateRs struct {
				Message string `json:"message"`
			}
			if err = ezhttp.ProcessBody("update settings", rs, &updateRs); err != nil {
				return err
			}
			cmd.Println(updateRs.Message)
			return nil
		},
	}
	setCmd.Flags().StringP("file", "f", "", "file to read the settings from")

	cmd.AddCommand(getCmd, setCmd)
	parent.AddCommand(cmd)
}
