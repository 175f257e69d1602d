package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/solidground/facade/internal/ezhttp"
)

func NewContentCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "content",
		GroupID: "actions",
		Short:   "Reads and writes site content sections",
	}

	getCmd := &cobra.Command{
		Use:   "get [section]",
		Short: "Prints a content section, or the whole content document",
		Example: `facade content get hero

Will print the hero section as JSON`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindServerFlag(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/content"
			if len(args) == 1 {
				path += "/" + args[0]
			}
			rs, err := ezhttp.Get(path)
			if err != nil {
				return fmt.Errorf("failed to get content: %w", err)
			}
			defer rs.Body.Close()

			var data json.RawMessage
			if err = ezhttp.ProcessBody("get content", rs, &data); err != nil {
				return err
			}
			return printJSON(cmd, data)
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <section>",
		Short: "Replaces a content section with JSON from a file, stdin or an argument",
		Example: `facade content set hero --file hero.json

Will replace the hero section with the contents of hero.json`,
		Args: cobra.RangeArgs(1, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindServerFlag(cmd); err != nil {
				return err
			}
			return viper.BindPFlag("file", cmd.Flags().Lookup("file"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := readDocumentArg(cmd, args[1:])
			if err != nil {
				return err
			}
			token, err := storedToken()
			if err != nil {
				return err
			}

			rs, err := ezhttp.Put("/api/content/"+args[0], token, bytes.NewReader(record))
			if err != nil {
				return fmt.Errorf("failed to update content: %w", err)
			}
			defer rs.Body.Close()

			var updateRs struct {
				Message string `json:"message"`
			}
			if err = ezhttp.ProcessBody("update content", rs, &updateRs); err != nil {
				return err
			}
			cmd.Println(updateRs.Message)
			return nil
		},
	}
	setCmd.Flags().StringP("file", "f", "", "file to read the record from")

	cmd.AddCommand(getCmd, setCmd)
	parent.AddCommand(cmd)
}

// readDocumentArg resolves the JSON payload for a write command: the --file
// flag wins, then a piped stdin, then a trailing argument.
func readDocumentArg(cmd *cobra.Command, args []string) ([]byte, error) {
	if file := viper.GetString("file"); file != "" {
		data, err := os.ReadFile(strings.TrimSpace(file))
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return data, nil
	}

	info, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get stdin info: %w", err)
	}
	if info.Mode()&os.ModeNamedPipe != 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("no document provided")
	}
	return []byte(args[0]), nil
}

func printJSON(cmd *cobra.Command, data json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	cmd.Println(buf.String())
	return nil
}
