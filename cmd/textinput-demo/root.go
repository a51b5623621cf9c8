package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/textinput"
	"github.com/iw2rmb/textinput/channel"
	"github.com/iw2rmb/textinput/editor"
	"github.com/iw2rmb/textinput/internal/config"
	"github.com/iw2rmb/textinput/internal/log"
)

func init() {
	// Query the background color before the program owns stdin.
	_ = lipgloss.HasDarkBackground()
}

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "textinput-demo",
	Short: "Drive a text input session from the terminal",
	Long: `textinput-demo plays the host side of the text input channel. It opens a
client, pushes an initial editing state and shows every message the plugin
sends back.`,
	RunE: runDemo,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/textinput/config.yaml)")
	rootCmd.Flags().String("text", "", "initial text")
	rootCmd.Flags().String("decode", "", `UTF-8 decode policy: "strict" or "replace"`)
	rootCmd.Flags().Bool("single-line", false, "use a single line input type")
	rootCmd.Flags().String("log", "", "write debug log to this file")
	rootCmd.Flags().Bool("write-config", false, "write the default config file and exit")

	_ = viper.BindPFlag("text", rootCmd.Flags().Lookup("text"))
	_ = viper.BindPFlag("decode", rootCmd.Flags().Lookup("decode"))
	_ = viper.BindPFlag("log.path", rootCmd.Flags().Lookup("log"))
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".textinput", "config.yaml")
	}
	return filepath.Join(home, ".config", "textinput", "config.yaml")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("client", defaults.Client)
	viper.SetDefault("input_action", defaults.InputAction)
	viper.SetDefault("input_type", defaults.InputType)
	viper.SetDefault("text", defaults.Text)
	viper.SetDefault("decode", defaults.Decode)
	viper.SetDefault("ui.show_line_nums", defaults.UI.ShowLineNums)
	viper.SetDefault("ui.tab_width", defaults.UI.TabWidth)
	viper.SetDefault("ui.read_only", defaults.UI.ReadOnly)
	viper.SetDefault("log.level", defaults.Log.Level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(filepath.Dir(defaultConfigPath()))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if write, _ := cmd.Flags().GetBool("write-config"); write {
		path := cfgFile
		if path == "" {
			path = defaultConfigPath()
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	if single, _ := cmd.Flags().GetBool("single-line"); single {
		cfg.InputType = "TextInputType.text"
		cfg.InputAction = "TextInputAction.done"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Log.Path != "" {
		cleanup, err := log.InitWithTeaLog(cfg.Log.Path, "textinput")
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		defer cleanup()
		level, _ := log.ParseLevel(cfg.Log.Level)
		log.SetMinLevel(level)
	}
	log.Info(log.CatApp, "starting", "version", textinput.Version(), "config", viper.ConfigFileUsed())

	h := newHost(cfg)
	plugin := channel.New(channel.Options{
		Sender:    h,
		Clipboard: editor.SystemClipboard{},
		Decode:    cfg.DecodePolicy(),
	})
	if err := h.open(cmd.Context(), plugin); err != nil {
		return fmt.Errorf("opening session: %w", err)
	}

	ed := editor.New(editor.Config{
		Plugin:       plugin,
		Style:        editor.DefaultStyle(),
		ShowLineNums: cfg.UI.ShowLineNums,
		TabWidth:     cfg.UI.TabWidth,
		ReadOnly:     cfg.UI.ReadOnly,
		OnChange:     h.recordChange,
	})

	p := tea.NewProgram(newApp(h, ed), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
