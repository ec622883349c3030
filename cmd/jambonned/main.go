package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jambonne/site/internal/logger"
	"github.com/jambonne/site/internal/posts"
	"github.com/jambonne/site/internal/reading"
	"github.com/jambonne/site/internal/server"
	"github.com/jambonne/site/internal/site"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "jambonned",
	Short:         "jambonned serves the personal site",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./jambonne.yaml)")
	rootCmd.Flags().String("listen", "", "listen address (overrides config)")
}

func initConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("listen", ":3000")
	v.SetDefault("posts.dirs", []string{"posts", "/app/posts"})
	v.SetDefault("site.config", "site.yaml")
	v.SetDefault("reading.source", "file")
	v.SetDefault("reading.file", reading.DefaultFilePath)
	v.SetDefault("reading.bookmarks", "")
	v.SetDefault("reading.url", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("jambonne")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("JAMBONNE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicitly named file must exist; the default one is optional.
			if cfgFile != "" || !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := v.BindPFlag("listen", cmd.Flags().Lookup("listen")); err != nil {
		return nil, err
	}

	return v, nil
}

func run(cmd *cobra.Command, args []string) error {
	v, err := initConfig(cmd)
	if err != nil {
		return err
	}

	if err := logger.Init(v.GetString("log.level"), v.GetString("log.format")); err != nil {
		return err
	}
	defer logger.Sync()

	meta, err := site.Load(v.GetString("site.config"))
	if err != nil {
		return err
	}

	catalog := posts.New(v.GetStringSlice("posts.dirs")...)

	// The reading list is loaded exactly once, before the server starts.
	// A broken source degrades to an empty list and is only logged.
	list := reading.Load(readingSource(v))

	addr := v.GetString("listen")
	srv := server.New(server.Config{ListenAddr: addr}, catalog, list, meta)

	logger.Info("jambonned listening on %s", addr)
	return srv.ListenAndServe()
}

func readingSource(v *viper.Viper) reading.Source {
	switch src := v.GetString("reading.source"); src {
	case "file":
		return reading.FileSource{Path: v.GetString("reading.file")}
	case "safari":
		path := v.GetString("reading.bookmarks")
		if path == "" {
			path = reading.DefaultBookmarksPath()
		}
		return reading.SafariSource{Path: path}
	case "remote":
		return reading.RemoteSource{URL: v.GetString("reading.url")}
	case "none", "":
		return nil
	default:
		logger.Warn("unknown reading source %q, reading list disabled", src)
		return nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
