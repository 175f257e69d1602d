package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/solidground/facade/internal/cfg"
	"github.com/solidground/facade/internal/ezhttp"
)

func NewLoginCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "login",
		GroupID: "actions",
		Short:   "Logs in to the facade server and stores the token",
		Example: `facade login --username admin

Will prompt for the password and store the token in the config file`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindServerFlag(cmd); err != nil {
				return err
			}
			if err := viper.BindPFlag("username", cmd.Flags().Lookup("username")); err != nil {
				return err
			}
			return viper.BindPFlag("password", cmd.Flags().Lookup("password"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			username := viper.GetString("username")
			if username == "" {
				return fmt.Errorf("no username provided")
			}
			password := viper.GetString("password")
			if password == "" {
				cmd.Print("Password: ")
				raw, err := term.ReadPassword(int(syscall.Stdin))
				cmd.Println()
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = string(raw)
			}

			body, err := json.Marshal(map[string]string{
				"username": username,
				"password": password,
			})
			if err != nil {
				return err
			}

			rs, err := ezhttp.Post("/api/admin/login", "", bytes.NewReader(body))
			if err != nil {
				return fmt.Errorf("failed to log in: %w", err)
			}
			defer rs.Body.Close()

			var loginRs struct {
				Token   string `json:"token"`
				Message string `json:"message"`
			}
			if err = ezhttp.ProcessBody("log in", rs, &loginRs); err != nil {
				return err
			}

			path, err := cfg.Update(func(m map[string]string) {
				m["TOKEN"] = loginRs.Token
			})
			if err != nil {
				return fmt.Errorf("failed to store token: %w", err)
			}

			cmd.Printf("Logged in as %s, token stored in %s\n", username, path)
			return nil
		},
	}

	cmd.Flags().StringP("username", "u", "", "admin username")
	cmd.Flags().StringP("password", "p", "", "admin password (prompted when omitted)")

	parent.AddCommand(cmd)
}

func storedToken() (string, error) {
	token := viper.GetString("token")
	if token != "" {
		return token, nil
	}
	entries, err := cfg.GetKeyValue()
	if err != nil {
		return "", err
	}
	token = entries["TOKEN"]
	if token == "" {
		return "", fmt.Errorf("not logged in, run `facade login` first")
	}
	return token, nil
}
