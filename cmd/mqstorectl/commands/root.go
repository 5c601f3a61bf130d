package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mqstore/internal/app"
	"mqstore/internal/domain"
)

// EnvPassphrase supplies the record passphrase when prompting is not wanted.
const EnvPassphrase = "MQSTORECTL_PASSPHRASE"

var (
	cfgDir     string
	rootDir    string
	clientID   string
	serverURI  string
	passphrase string
	promptPass bool

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "mqstorectl",
		Short:         "Inspect and edit mqstore session persistence",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgDir == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfgDir = dir
			}
			cfg, err := app.Load(cfgDir)
			if err != nil {
				return err
			}
			if rootDir != "" {
				cfg.Root = rootDir
			}
			if clientID != "" {
				cfg.ClientID = clientID
			}
			if serverURI != "" {
				cfg.ServerURI = serverURI
			}
			if cfg.ClientID == "" || cfg.ServerURI == "" {
				return fmt.Errorf("session identity required: set --client-id and --server-uri or put them in %s", app.ConfigFilename)
			}

			if passphrase == "" {
				passphrase = os.Getenv(EnvPassphrase)
			}
			if passphrase == "" && promptPass {
				passphrase, err = readPassphrase()
				if err != nil {
					return err
				}
			}

			wire = app.NewWire(cfg, passphrase)
			return wire.Store.Open(domain.ClientID(cfg.ClientID), domain.ServerURI(cfg.ServerURI))
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire != nil {
				return wire.Store.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgDir, "config-dir", "", "directory holding "+app.ConfigFilename+" (default $HOME)")
	root.PersistentFlags().StringVar(&rootDir, "root", "", "store root directory (default ~/.mqstore)")
	root.PersistentFlags().StringVar(&clientID, "client-id", "", "session client id")
	root.PersistentFlags().StringVar(&serverURI, "server-uri", "", "session server URI (e.g. tcp://host:1883)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "record passphrase (or "+EnvPassphrase+")")
	root.PersistentFlags().BoolVar(&promptPass, "prompt", false, "prompt for the passphrase on the terminal")

	root.AddCommand(lsCmd(), catCmd(), putCmd(), rmCmd(), clearCmd())
	return root.Execute()
}

// readPassphrase reads the passphrase from the controlling terminal without
// echo.
func readPassphrase() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--prompt needs an interactive terminal; use -p or %s", EnvPassphrase)
	}
	fmt.Fprint(os.Stderr, "Passphrase: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
