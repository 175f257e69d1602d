package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "facade",
		Short:        "facade lets you manage the content, settings and blog of a facade server",
		Long:         "",
		SilenceUsage: true,
	}
	cmd.AddGroup(&cobra.Group{
		ID:    "actions",
		Title: "Actions",
	})

	var cfgFile string
	cmd.PersistentFlags().StringVar(&cfgFile, "config", os.Getenv("FACADE_CONFIG"), "config file (default is $HOME/.facade)")
	cmd.PersistentFlags().String("server", "", "facade server address")
	cmd.PersistentFlags().BoolP("help", "h", false, "help for facade")
	cmd.CompletionOptions.DisableDescriptions = true
	cobra.OnInitialize(initConfig(cfgFile))

	return cmd
}

func Execute(command *cobra.Command) {
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(cfgFile string) func() {
	return func() {
		viper.SetDefault("server", "http://localhost:80")
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			home, err := os.UserHomeDir()
			cobra.CheckErr(err)

			viper.SetConfigName(".facade")
			viper.SetConfigType("env")
			viper.AddConfigPath(home)
		}
		viper.SetEnvPrefix("facade")
		viper.AutomaticEnv()

		_ = viper.ReadInConfig()
	}
}

func bindServerFlag(cmd *cobra.Command) error {
	return viper.BindPFlag("server", cmd.Root().PersistentFlags().Lookup("server"))
}
