package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/justinpbarnett/modal/internal/dialog"
	"github.com/justinpbarnett/modal/internal/netxfer"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Receive a document over a websocket with a progress dialog",
	Long: `Connect to a websocket URL (network.url by default) and show a cancel-only
dialog with transfer progress until one YAML document has arrived. The
document is printed as YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := cfg.Network.URL
		if len(args) > 0 {
			url = args[0]
		}
		if url == "" {
			return errors.New("no url given and network.url is not set")
		}
		timeout := time.Duration(cfg.Network.PollTimeoutMS) * time.Millisecond

		return runSession(cmd.Context(), func(ctx context.Context, e *dialog.Engine) ([]string, error) {
			conn, err := netxfer.Dial(ctx, url)
			if err != nil {
				return nil, err
			}
			defer conn.Close()

			doc, err := netxfer.DataDialog(e, e.Strings().Get("receiving"), conn, timeout)
			if errors.Is(err, netxfer.ErrCanceled) {
				return []string{"-1"}, nil
			}
			if err != nil {
				return nil, err
			}
			out, err := yaml.Marshal(doc)
			if err != nil {
				return nil, fmt.Errorf("encoding document: %w", err)
			}
			return []string{strings.TrimSuffix(string(out), "\n")}, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
