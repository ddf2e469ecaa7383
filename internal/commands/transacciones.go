package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/contable-dev/contable/internal/api"
	"github.com/contable-dev/contable/internal/catalog"
	"github.com/contable-dev/contable/internal/draft"
	"github.com/contable-dev/contable/internal/filter"
	"github.com/contable-dev/contable/internal/importer"
	"github.com/contable-dev/contable/internal/model"
	"github.com/contable-dev/contable/internal/render"
)

func newTransaccionesCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transacciones",
		Short: "Manage double-entry transactions",
	}
	cmd.AddCommand(newTransaccionesListCommand(opts))
	cmd.AddCommand(newTransaccionesShowCommand(opts))
	cmd.AddCommand(newTransaccionesCreateCommand(opts))
	cmd.AddCommand(newTransaccionesDeleteCommand(opts))
	cmd.AddCommand(newTransaccionesImportCommand(opts))
	return cmd
}

func newTransaccionesListCommand(opts *options) *cobra.Command {
	var (
		desde, hasta string
		terceroID    int
		local        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, format, err := opts.setup()
			if err != nil {
				return err
			}

			var txs []model.Transaction
			if local {
				// Fetch everything and filter in memory, like the
				// original console view.
				txs, err = client.ListTransacciones(cmd.Context(), api.TransactionQuery{})
				if err == nil {
					txs = filter.Apply(txs, filter.Spec{
						FechaDesde: desde,
						FechaHasta: hasta,
						TerceroID:  terceroID,
					})
				}
			} else {
				txs, err = client.ListTransacciones(cmd.Context(), api.TransactionQuery{
					FechaDesde: desde,
					FechaHasta: hasta,
					TerceroID:  terceroID,
				})
			}
			if err != nil {
				return describeBackendError(err)
			}

			parties, err := loadParties(cmd.Context(), client)
			if err != nil {
				return err
			}
			return render.Transactions(cmd.OutOrStdout(), format, txs, parties)
		},
	}

	cmd.Flags().StringVar(&desde, "desde", "", "start date (inclusive, YYYY-MM-DD)")
	cmd.Flags().StringVar(&hasta, "hasta", "", "end date (inclusive, YYYY-MM-DD)")
	cmd.Flags().IntVar(&terceroID, "tercero", 0, "filter by party id")
	cmd.Flags().BoolVar(&local, "local", false, "filter client-side instead of via query params")
	return cmd
}

func newTransaccionesShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one transaction with its entry lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			client, format, err := opts.setup()
			if err != nil {
				return err
			}
			tx, err := client.GetTransaccion(cmd.Context(), id)
			if err != nil {
				return describeBackendError(err)
			}
			parties, err := loadParties(cmd.Context(), client)
			if err != nil {
				return err
			}
			return render.TransactionDetail(cmd.OutOrStdout(), format, tx, parties)
		},
	}
}

// parsePartidaFlag parses one --partida value, "cuentaId:TIPO:valor".
// The pieces stay raw strings; the validator decides what is usable.
func parsePartidaFlag(s string) (draft.EntryRow, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return draft.EntryRow{}, fmt.Errorf("invalid partida %q (expected cuentaId:TIPO:valor)", s)
	}
	tipo := model.EntryRole(strings.ToUpper(strings.TrimSpace(parts[1])))
	if tipo != model.RoleDebit && tipo != model.RoleCredit {
		return draft.EntryRow{}, fmt.Errorf("invalid partida tipo %q (expected DEBITO or CREDITO)", parts[1])
	}
	return draft.EntryRow{CuentaID: parts[0], Tipo: tipo, Valor: parts[2]}, nil
}

// loadCatalogs fetches the active-account and party sets the validator
// needs. Failures are explicit: a create cannot proceed without them.
func loadCatalogs(ctx context.Context, client *api.Client) (*catalog.Accounts, *catalog.Parties, error) {
	accounts, err := client.ListCuentasActivas(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading active accounts: %w", describeBackendError(err))
	}
	parties, err := client.ListTerceros(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading parties: %w", describeBackendError(err))
	}
	return catalog.NewAccounts(accounts), catalog.NewParties(parties), nil
}

// loadParties fetches the party set for name resolution in listings.
func loadParties(ctx context.Context, client *api.Client) (*catalog.Parties, error) {
	parties, err := client.ListTerceros(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading parties: %w", describeBackendError(err))
	}
	return catalog.NewParties(parties), nil
}

func newTransaccionesCreateCommand(opts *options) *cobra.Command {
	var (
		terceroID, fecha, descripcion string
		partidaFlags                  []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate and submit a new transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := draft.Draft{
				TerceroID:   terceroID,
				Fecha:       fecha,
				Descripcion: descripcion,
			}
			for _, s := range partidaFlags {
				row, err := parsePartidaFlag(s)
				if err != nil {
					return err
				}
				d.Partidas = append(d.Partidas, row)
			}

			client, format, err := opts.setup()
			if err != nil {
				return err
			}
			accounts, parties, err := loadCatalogs(cmd.Context(), client)
			if err != nil {
				return err
			}

			if v := draft.Validate(d, accounts, parties); v != nil {
				return v
			}
			payload, err := draft.BuildPayload(d)
			if err != nil {
				return err
			}

			created, err := client.CreateTransaccion(cmd.Context(), payload)
			if err != nil {
				return describeBackendError(err)
			}
			return render.TransactionDetail(cmd.OutOrStdout(), format, created, parties)
		},
	}

	cmd.Flags().StringVar(&terceroID, "tercero", "", "party id (required)")
	cmd.Flags().StringVar(&fecha, "fecha", "", "transaction date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&descripcion, "descripcion", "", "description (required)")
	cmd.Flags().StringArrayVar(&partidaFlags, "partida", nil, "entry line as cuentaId:TIPO:valor (repeatable)")
	return cmd
}

func newTransaccionesDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			client, _, err := opts.setup()
			if err != nil {
				return err
			}
			if err := client.DeleteTransaccion(cmd.Context(), id); err != nil {
				return describeBackendError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaccion %d eliminada\n", id)
			return nil
		},
	}
}

func newTransaccionesImportCommand(opts *options) *cobra.Command {
	var (
		formatName string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate and submit transactions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.DefaultRegistry().Get(formatName)
			if parser == nil {
				return fmt.Errorf("unknown import format %q", formatName)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			drafts, err := parser.Parse(f)
			if err != nil {
				return err
			}
			if len(drafts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import")
				return nil
			}

			client, _, err := opts.setup()
			if err != nil {
				return err
			}
			accounts, parties, err := loadCatalogs(cmd.Context(), client)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for i, d := range drafts {
				label := fmt.Sprintf("draft %d (%s)", i+1, d.Descripcion)

				if v := draft.Validate(d, accounts, parties); v != nil {
					failed++
					fmt.Fprintf(out, "%s: rejected: %s\n", label, v.Message)
					continue
				}
				if dryRun {
					fmt.Fprintf(out, "%s: valid (dry run, not submitted)\n", label)
					continue
				}

				payload, err := draft.BuildPayload(d)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s: %v\n", label, err)
					continue
				}
				created, err := client.CreateTransaccion(cmd.Context(), payload)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s: %v\n", label, describeBackendError(err))
					continue
				}
				fmt.Fprintf(out, "%s: created with id %d\n", label, created.ID)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d drafts failed", failed, len(drafts))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "partidas", "import file format")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate without submitting")
	return cmd
}
