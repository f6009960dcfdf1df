package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ougirez/milkdigit/internal/pkg/blob"
	"github.com/ougirez/milkdigit/internal/pkg/tabular"
	"github.com/ougirez/milkdigit/internal/service/exchange"
	"github.com/ougirez/milkdigit/internal/service/process"
	"github.com/spf13/cobra"
)

func (a *app) stepsCmd() *cobra.Command {
	var name, source string

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Print the process steps derived for a product",
		Example: `  milkdigit steps --name "Айран" --source коровье
  milkdigit steps --name "Сары ірімшік (козье)" --source козье`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := a.newRegistry(cmd.Context())
			class := process.Classify(name, source)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s", name, class.Archetype)
			if class.Goat {
				fmt.Fprint(out, ", goat")
			}
			fmt.Fprintln(out)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for i, step := range process.DeriveSteps(name, source, registry) {
				keys := make([]string, 0, len(step.Fields))
				for _, f := range step.Fields {
					keys = append(keys, f.Key)
				}
				fmt.Fprintf(tw, "%d.\t%s\t%s\t%s\n", i+1, step.ID, step.Label, strings.Join(keys, ","))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&source, "source", "", "milk source, e.g. козье")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "parse <value>...",
		Short:   "Show how laboratory values are read as numbers",
		Example: `  milkdigit parse "1,2×10^5" "<0.5" "не обнаружено"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, raw := range args {
				value := "absent"
				if v, ok := tabular.ParseNumericString(raw); ok {
					value = strconv.FormatFloat(v, 'g', -1, 64)
				}
				fmt.Fprintf(tw, "%s\t%s\n", raw, value)
			}
			return tw.Flush()
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var (
		out     string
		format  string
		publish bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all stores into a ZIP archive or an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			format = strings.ToLower(format)

			var sink blob.Store
			if publish {
				s, err := a.newSink(ctx)
				if err != nil {
					return err
				}
				sink = s
			}
			svc := exchange.NewExchangeService(a.newStore(nil), sink)

			var (
				buf bytes.Buffer
				err error
			)
			switch format {
			case "zip":
				err = svc.WriteZIP(ctx, &buf)
			case "xlsx":
				err = svc.WriteXLSX(ctx, &buf)
			default:
				return fmt.Errorf("unknown format %q, want zip or xlsx", format)
			}
			if err != nil {
				return err
			}

			if out == "" {
				out = exchange.ArchiveName
				if format == "xlsx" {
					out = exchange.WorkbookName
				}
			}
			if err = tabular.WriteFileAtomic(out, buf.Bytes()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", filepath.Clean(out), buf.Len())

			if publish {
				info, err := svc.Publish(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "published %s\n", info.Key)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "zip", "zip or xlsx")
	cmd.Flags().BoolVar(&publish, "publish", false, "also upload the ZIP archive to the export sink")
	return cmd
}

func (a *app) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo stores that do not exist yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seeded, err := a.newStore(nil).Seed(cmd.Context(), time.Now())
			if err != nil {
				return err
			}

			if len(seeded) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "all stores exist, nothing to seed")
				return nil
			}
			for _, r := range seeded {
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", r.FileName())
			}
			return nil
		},
	}
}
