package main

import (
	"github.com/solidground/facade/cli/cmd"
	"github.com/solidground/facade/internal/ver"
)

func main() {
	version := ver.Load()

	rootCmd := cmd.NewRootCmd()
	cmd.NewLoginCmd(rootCmd)
	cmd.NewContentCmd(rootCmd)
	cmd.NewSettingsCmd(rootCmd)
	cmd.NewBlogCmd(rootCmd)
	cmd.NewUploadCmd(rootCmd)
	cmd.NewVersionCmd(rootCmd, version)
	cmd.Execute(rootCmd)
}
