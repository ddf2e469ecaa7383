package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/contable-dev/contable/internal/model"
	"github.com/contable-dev/contable/internal/render"
)

func newCuentasCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cuentas",
		Short: "Manage the chart of accounts",
	}
	cmd.AddCommand(newCuentasListCommand(opts))
	cmd.AddCommand(newCuentasGetCommand(opts))
	cmd.AddCommand(newCuentasCreateCommand(opts))
	cmd.AddCommand(newCuentasUpdateCommand(opts))
	cmd.AddCommand(newCuentasDeleteCommand(opts))
	cmd.AddCommand(newCuentasToggleCommand(opts))
	return cmd
}

func newCuentasListCommand(opts *options) *cobra.Command {
	var activas bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, format, err := opts.setup()
			if err != nil {
				return err
			}
			var (
				accounts []model.Account
				listErr  error
			)
			if activas {
				accounts, listErr = client.ListCuentasActivas(cmd.Context())
			} else {
				accounts, listErr = client.ListCuentas(cmd.Context())
			}
			if listErr != nil {
				return describeBackendError(listErr)
			}
			return render.Accounts(cmd.OutOrStdout(), format, accounts)
		},
	}

	cmd.Flags().BoolVar(&activas, "activas", false, "only active accounts")
	return cmd
}

func newCuentasGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one account",
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
			a, err := client.GetCuenta(cmd.Context(), id)
			if err != nil {
				return describeBackendError(err)
			}
			return render.Accounts(cmd.OutOrStdout(), format, []model.Account{a})
		},
	}
}

// accountFromFlags validates the account type and builds the payload.
func accountFromFlags(codigo, nombre, tipo string, permiteNegativo, activa bool) (model.Account, error) {
	t := model.NormalizeAccountType(tipo)
	valid := false
	for _, known := range model.AccountTypes {
		if t == known {
			valid = true
			break
		}
	}
	if !valid {
		return model.Account{}, fmt.Errorf("unknown account type %q (valid: ACTIVO, PASIVO, PATRIMONIO, INGRESO, GASTO)", tipo)
	}
	return model.Account{
		Codigo:               codigo,
		Nombre:               nombre,
		Tipo:                 t,
		PermiteSaldoNegativo: permiteNegativo,
		Activo:               activa,
	}, nil
}

func newCuentasCreateCommand(opts *options) *cobra.Command {
	var (
		codigo, nombre, tipo    string
		permiteNegativo, activa bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := accountFromFlags(codigo, nombre, tipo, permiteNegativo, activa)
			if err != nil {
				return err
			}
			client, format, err := opts.setup()
			if err != nil {
				return err
			}
			created, err := client.CreateCuenta(cmd.Context(), a)
			if err != nil {
				return describeBackendError(err)
			}
			return render.Accounts(cmd.OutOrStdout(), format, []model.Account{created})
		},
	}

	cmd.Flags().StringVar(&codigo, "codigo", "", "account code (required)")
	cmd.Flags().StringVar(&nombre, "nombre", "", "account name (required)")
	cmd.Flags().StringVar(&tipo, "tipo", string(model.AccountTypeAsset), "account type")
	cmd.Flags().BoolVar(&permiteNegativo, "permite-saldo-negativo", false, "allow a negative balance")
	cmd.Flags().BoolVar(&activa, "activa", true, "account is active")
	_ = cmd.MarkFlagRequired("codigo")
	_ = cmd.MarkFlagRequired("nombre")

	return cmd
}

func newCuentasUpdateCommand(opts *options) *cobra.Command {
	var (
		codigo, nombre, tipo    string
		permiteNegativo, activa bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			a, err := accountFromFlags(codigo, nombre, tipo, permiteNegativo, activa)
			if err != nil {
				return err
			}
			client, format, err := opts.setup()
			if err != nil {
				return err
			}
			updated, err := client.UpdateCuenta(cmd.Context(), id, a)
			if err != nil {
				return describeBackendError(err)
			}
			return render.Accounts(cmd.OutOrStdout(), format, []model.Account{updated})
		},
	}

	cmd.Flags().StringVar(&codigo, "codigo", "", "account code (required)")
	cmd.Flags().StringVar(&nombre, "nombre", "", "account name (required)")
	cmd.Flags().StringVar(&tipo, "tipo", string(model.AccountTypeAsset), "account type")
	cmd.Flags().BoolVar(&permiteNegativo, "permite-saldo-negativo", false, "allow a negative balance")
	cmd.Flags().BoolVar(&activa, "activa", true, "account is active")
	_ = cmd.MarkFlagRequired("codigo")
	_ = cmd.MarkFlagRequired("nombre")

	return cmd
}

func newCuentasDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
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
			if err := client.DeleteCuenta(cmd.Context(), id); err != nil {
				return describeBackendError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cuenta %d eliminada\n", id)
			return nil
		},
	}
}

func newCuentasToggleCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle an account's active flag",
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
			toggled, err := client.ToggleCuentaActiva(cmd.Context(), id)
			if err != nil {
				return describeBackendError(err)
			}
			return render.Accounts(cmd.OutOrStdout(), format, []model.Account{toggled})
		},
	}
}
