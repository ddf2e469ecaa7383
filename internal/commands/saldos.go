package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/contable-dev/contable/internal/balance"
	"github.com/contable-dev/contable/internal/model"
	"github.com/contable-dev/contable/internal/render"
)

func newSaldosCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saldos",
		Short: "View backend-computed account balances",
	}
	cmd.AddCommand(newSaldosListCommand(opts))
	cmd.AddCommand(newSaldosGetCommand(opts))
	cmd.AddCommand(newSaldosSummaryCommand(opts))
	return cmd
}

func newSaldosListCommand(opts *options) *cobra.Command {
	var tipo string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List balances, optionally by account type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, format, err := opts.setup()
			if err != nil {
				return err
			}
			records, err := client.ListSaldos(cmd.Context())
			if err != nil {
				return describeBackendError(err)
			}
			records = balance.FilterByType(records, tipo)
			return render.Balances(cmd.OutOrStdout(), format, records)
		},
	}

	cmd.Flags().StringVar(&tipo, "tipo", "", "filter by account type (ACTIVO, PASIVO, ...)")
	return cmd
}

func newSaldosGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <cuentaId>",
		Short: "Show the balance of one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid account id %q", args[0])
			}
			client, format, err := opts.setup()
			if err != nil {
				return err
			}
			record, err := client.GetSaldoPorCuenta(cmd.Context(), id)
			if err != nil {
				return describeBackendError(err)
			}
			return render.Balances(cmd.OutOrStdout(), format, []model.BalanceRecord{record})
		},
	}
}

func newSaldosSummaryCommand(opts *options) *cobra.Command {
	var tipo string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate balances: total, per type, and sign counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := opts.setup()
			if err != nil {
				return err
			}
			records, err := client.ListSaldos(cmd.Context())
			if err != nil {
				return describeBackendError(err)
			}
			records = balance.FilterByType(records, tipo)
			return render.Summary(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().StringVar(&tipo, "tipo", "", "restrict the summary to one account type")
	return cmd
}
