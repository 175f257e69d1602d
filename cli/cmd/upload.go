package cmd

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/solidground/facade/internal/ezhttp"
)

func NewUploadCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "upload <file>",
		GroupID: "actions",
		Short:   "Uploads an image to the facade server",
		Example: `facade upload ./team.png

Will upload team.png and print its public URL`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindServerFlag(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := storedToken()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer file.Close()

			mimeType := mime.TypeByExtension(filepath.Ext(args[0]))
			if mimeType == "" {
				return fmt.Errorf("unknown image type: %s", args[0])
			}

			buff := new(bytes.Buffer)
			mpw := multipart.NewWriter(buff)
			partHeader := textproto.MIMEHeader{}
			partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filepath.Base(args[0])))
			partHeader.Set(ezhttp.HeaderContentType, mimeType)
			part, err := mpw.CreatePart(partHeader)
			if err != nil {
				return err
			}
			if _, err = io.Copy(part, file); err != nil {
				return err
			}
			if err = mpw.Close(); err != nil {
				return err
			}

			rs, err := ezhttp.Do("POST", "/api/upload", token, mpw.FormDataContentType(), buff)
			if err != nil {
				return fmt.Errorf("failed to upload image: %w", err)
			}
			defer rs.Body.Close()

			var uploadRs struct {
				URL      string `json:"url"`
				Filename string `json:"filename"`
			}
			if err = ezhttp.ProcessBody("upload image", rs, &uploadRs); err != nil {
				return err
			}
			cmd.Println(uploadRs.URL)
			return nil
		},
	}

	parent.AddCommand(cmd)
}
