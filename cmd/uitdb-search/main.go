package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/uitdb-mcp/internal/config"
	"github.com/roivaz/uitdb-mcp/internal/logging"
	"github.com/roivaz/uitdb-mcp/internal/mcp"
	"github.com/roivaz/uitdb-mcp/internal/uitdb"
)

type searchFlags struct {
	endpoint string
	params   uitdb.Params
	extra    map[string]string
	summary  bool
	output   string
}

func main() {
	root := &cobra.Command{Use: "uitdb-search", SilenceUsage: true}
	root.PersistentFlags().String("uitdb-client-id", "", "UiTdatabank client id")
	root.PersistentFlags().String("uitdb-base-url", "", "UiTdatabank Search API base URL")
	root.PersistentFlags().String("uitdb-timeout", "", "Outbound request timeout (e.g. 20s)")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(newRunCommand(os.Stdout))

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("uitdb-search: %v", err)
	}
}

func newRunCommand(out io.Writer) *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single search against the UiTdatabank Search API",
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, err := uitdb.ParseEndpoint(f.endpoint)
			if err != nil {
				return err
			}
			if f.output != "json" && f.output != "yaml" {
				return fmt.Errorf("--output must be json or yaml")
			}
			if len(f.extra) > 0 {
				f.params.Extra = map[string][]string{}
				for k, v := range f.extra {
					f.params.Extra[k] = []string{v}
				}
			}

			logger := logging.New(logging.NewLogger(config.LogLevel())).WithName("uitdb-search")
			client, err := mcp.NewClient(logger)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			raw, err := client.Search(ctx, endpoint, f.params.Query())
			if err != nil {
				return err
			}
			return writeResult(out, endpoint, f, raw)
		},
	}

	cmd.Flags().StringVar(&f.endpoint, "endpoint", "events", "Collection to search (events, places, organizers)")
	cmd.Flags().StringVar(&f.params.Q, "q", "", "Free text query")
	cmd.Flags().StringVar(&f.params.Start, "start", "", "ISO-8601 start date")
	cmd.Flags().StringVar(&f.params.End, "end", "", "ISO-8601 end date")
	cmd.Flags().StringVar(&f.params.City, "city", "", "City filter")
	cmd.Flags().IntVar(&f.params.Limit, "limit", uitdb.DefaultLimit, "Items per page")
	cmd.Flags().IntVar(&f.params.Page, "page", uitdb.DefaultPage, "1-based page number")
	cmd.Flags().StringToStringVar(&f.extra, "param", nil, "Extra query parameter passed verbatim (key=value, repeatable)")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "Print a compact summary instead of the raw response")
	cmd.Flags().StringVarP(&f.output, "output", "o", "json", "Output format (json or yaml)")
	return cmd
}

func writeResult(out io.Writer, endpoint uitdb.Endpoint, f searchFlags, raw json.RawMessage) error {
	payload := raw
	if f.summary {
		summary, err := uitdb.Summarize(endpoint, f.params.Page, raw)
		if err != nil {
			return err
		}
		if payload, err = json.MarshalIndent(summary, "", "  "); err != nil {
			return err
		}
	}

	if f.output == "yaml" {
		y, err := yaml.JSONToYAML(payload)
		if err != nil {
			return fmt.Errorf("convert to yaml: %w", err)
		}
		_, err = out.Write(y)
		return err
	}
	_, err := fmt.Fprintln(out, string(payload))
	return err
}
