package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/stratalake/queryd/lib/config"
	"github.com/stratalake/queryd/lib/util"
	"github.com/stratalake/queryd/lib/util/logger"
)

var log = logger.GetQuerydLogger()

var etcDir string

const querydBaseDir = ".queryd"

func buildQuerydDirPath() string {
	return filepath.Join(util.UserHome(), querydBaseDir)
}

// initCLIConfig wires viper for the CLI's own settings: an optional
// $HOME/.queryd/queryd.yaml plus QUERYD_* environment overrides. The
// property files the worker itself loads stay with the config package.
func initCLIConfig() {
	viper.SetConfigName("queryd")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(buildQuerydDirPath())
	viper.SetDefault("etc_dir", filepath.Join(buildQuerydDirPath(), "etc"))
	viper.SetEnvPrefix("QUERYD")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warnf("error reading CLI config file: %s", err)
		}
	} else {
		log.Debugf("using CLI config file: %s", viper.ConfigFileUsed())
	}
}

func systemPropertiesPath() string {
	return filepath.Join(etcDir, "config.properties")
}

func nodePropertiesPath() string {
	return filepath.Join(etcDir, "node.properties")
}

func loadConfigs() error {
	if err := config.GetSystemConfig().Initialize(systemPropertiesPath()); err != nil {
		return err
	}
	return config.GetNodeConfig().Initialize(nodePropertiesPath())
}

var rootCmd = &cobra.Command{
	Use:          "queryd",
	Short:        "queryd distributed query worker",
	SilenceUsage: true,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "load the worker configuration and report unsupported keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfigs(); err != nil {
			return err
		}
		fmt.Printf("loaded %s\n", config.GetSystemConfig().FilePath())
		fmt.Printf("loaded %s\n", config.GetNodeConfig().FilePath())
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfigs(); err != nil {
			return err
		}
		out, err := yaml.Marshal(map[string]map[string]string{
			"system": config.GetSystemConfig().Properties(),
			"node":   config.GetNodeConfig().Properties(),
		})
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "write starter property files into the etc directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(etcDir, 0o755); err != nil {
			return err
		}
		if err := writeIfAbsent(systemPropertiesPath(), starterSystemProperties()); err != nil {
			return err
		}
		return writeIfAbsent(nodePropertiesPath(), starterNodeProperties())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the worker until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfigs(); err != nil {
			return err
		}

		// Startup-critical identity and capacity. No fallback producers
		// here: a missing node IP or memory size is fatal for a worker.
		node := config.GetNodeConfig()
		ip, err := node.NodeIP(nil)
		if err != nil {
			return exitOnFatal(err)
		}
		memGb, err := node.NodeMemoryGb(nil)
		if err != nil {
			return exitOnFatal(err)
		}
		port, err := config.GetSystemConfig().HTTPServerHTTPPort()
		if err != nil {
			return err
		}

		log.Debugf("worker configuration resolved: ip=%s port=%d memory_gb=%d", ip, port, memGb)
		fmt.Printf("queryd worker %s:%d (%d GB)\n", ip, port, memGb)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		return nil
	},
}

// exitOnFatal terminates the process for ErrFatal configuration errors and
// passes everything else back to cobra.
func exitOnFatal(err error) error {
	if errors.Is(err, config.ErrFatal) {
		log.Errorf("fatal configuration error: %s", err)
		fmt.Fprintf(os.Stderr, "queryd: %s\n", err)
		os.Exit(1)
	}
	return err
}

func writeIfAbsent(path, content string) error {
	if util.CheckFileExists(path) {
		fmt.Printf("%s already exists, leaving it alone\n", path)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func starterSystemProperties() string {
	return "" +
		config.KeyMutableConfig + "=false\n" +
		config.KeyQuerydVersion + "=0.1.0\n" +
		config.KeyHTTPServerHTTPPort + "=8080\n" +
		config.KeyDiscoveryURI + "=http://localhost:8081\n"
}

func starterNodeProperties() string {
	return "" +
		config.KeyNodeEnvironment + "=production\n" +
		config.KeyNodeID + "=" + uuid.NewString() + "\n" +
		config.KeyNodeLocation + "=default-rack\n"
}

func main() {
	initCLIConfig()
	rootCmd.PersistentFlags().StringVar(&etcDir, "etc-dir", viper.GetString("etc_dir"),
		"directory holding config.properties and node.properties")
	rootCmd.AddCommand(validateCmd, dumpCmd, initCmd, serveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
