package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/solidground/facade/internal/ezhttp"
)

type blogPost struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func NewBlogCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "blog",
		GroupID: "actions",
		Short:   "Manages blog posts",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists all blog posts",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindServerFlag(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ezhttp.Get("/api/blog")
			if err != nil {
				return fmt.Errorf("failed to get blog: %w", err)
			}
			defer rs.Body.Close()

			var blogRs struct {
				Posts []blogPost `json:"posts"`
			}
			if err = ezhttp.ProcessBody("get blog", rs, &blogRs); err != nil {
				return err
			}

			if len(blogRs.Posts) == 0 {
				cmd.Println("no posts")
				return nil
			}
			for _, post := range blogRs.Posts {
				created := post.CreatedAt
				if t, parseErr := time.Parse("2006-01-02T15:04:05.000Z07:00", post.CreatedAt); parseErr == nil {
					created = humanize.Time(t)
				}
				cmd.Printf("%s  %s (%s, created %s)\n", post.ID, post.Title, post.Slug, created)
			}
			return nil
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <slug>",
		Short: "Prints a blog post by slug",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindServerFlag(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ezhttp.Get("/api/blog/" + args[0])
			if err != nil {
				return fmt.Errorf("failed to get post: %w", err)
			}
			defer rs.Body.Close()

			var data json.RawMessage
			if err = ezhttp.ProcessBody("get post", rs, &data); err != nil {
				return err
			}
			return printJSON(cmd, data)
		},
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Creates a blog post from JSON via a file, stdin or an argument",
		Example: `facade blog create '{"title": "Hello World", "content": "..."}'

Will create the post and print its generated id and slug`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindServerFlag(cmd); err != nil {
				return err
			}
			return viper.BindPFlag("file", cmd.Flags().Lookup("file"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := readDocumentArg(cmd, args)
			if err != nil {
				return err
			}
			token, err := storedToken()
			if err != nil {
				return err
			}

			rs, err := ezhttp.Post("/api/blog", token, bytes.NewReader(post))
			if err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}
			defer rs.Body.Close()

			var createRs struct {
				Message string   `json:"message"`
				Data    blogPost `json:"data"`
			}
			if err = ezhttp.ProcessBody("create post", rs, &createRs); err != nil {
				return err
			}
			cmd.Printf("%s: id=%s slug=%s\n", createRs.Message, createRs.Data.ID, createRs.Data.Slug)
			return nil
		},
	}
	createCmd.Flags().StringP("file", "f", "", "file to read the post from")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Updates fields of an existing blog post",
		Args:  cobra.RangeArgs(1, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindServerFlag(cmd); err != nil {
				return err
			}
			return viper.BindPFlag("file", cmd.Flags().Lookup("file"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := readDocumentArg(cmd, args[1:])
			if err != nil {
				return err
			}
			token, err := storedToken()
			if err != nil {
				return err
			}

			rs, err := ezhttp.Put("/api/blog/"+args[0], token, bytes.NewReader(fields))
			if err != nil {
				return fmt.Errorf("failed to update post: %w", err)
			}
			defer rs.Body.Close()

			var updateRs struct {
				Message string          `json:"message"`
				Data    json.RawMessage `json:"data"`
			}
			if err = ezhttp.ProcessBody("update post", rs, &updateRs); err != nil {
				return err
			}
			cmd.Println(updateRs.Message)
			return nil
		},
	}
	updateCmd.Flags().StringP("file", "f", "", "file to read the fields from")

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Deletes a blog post",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindServerFlag(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := storedToken()
			if err != nil {
				return err
			}

			rs, err := ezhttp.Delete("/api/blog/"+args[0], token)
			if err != nil {
				return fmt.Errorf("failed to delete post: %w", err)
			}
			defer rs.Body.Close()

			var deleteRs struct {
				Message string `json:"message"`
			}
			if err = ezhttp.ProcessBody("delete post", rs, &deleteRs); err != nil {
				return err
			}
			cmd.Println(deleteRs.Message)
			return nil
		},
	}

	cmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, rmCmd)
	parent.AddCommand(cmd)
}
