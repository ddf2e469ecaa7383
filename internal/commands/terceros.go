package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/contable-dev/contable/internal/docid"
	"github.com/contable-dev/contable/internal/model"
	"github.com/contable-dev/contable/internal/render"
)

func newTercerosCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terceros",
		Short: "Manage third parties",
	}
	cmd.AddCommand(newTercerosListCommand(opts))
	cmd.AddCommand(newTercerosGetCommand(opts))
	cmd.AddCommand(newTercerosCreateCommand(opts))
	cmd.AddCommand(newTercerosUpdateCommand(opts))
	cmd.AddCommand(newTercerosDeleteCommand(opts))
	return cmd
}

func newTercerosListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all third parties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, format, err := opts.setup()
			if err != nil {
				return err
			}
			parties, err := client.ListTerceros(cmd.Context())
			if err != nil {
				return describeBackendError(err)
			}
			return render.Parties(cmd.OutOrStdout(), format, parties)
		},
	}
}

func newTercerosGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one third party",
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
			p, err := client.GetTercero(cmd.Context(), id)
			if err != nil {
				return describeBackendError(err)
			}
			return render.Parties(cmd.OutOrStdout(), format, []model.Party{p})
		},
	}
}

// partyFromFlags validates the document fields and builds the payload.
func partyFromFlags(nombre, tipoDoc, numeroDoc string) (model.Party, error) {
	t, err := docid.Normalize(tipoDoc)
	if err != nil {
		return model.Party{}, err
	}
	if err := docid.ValidNumber(t, numeroDoc); err != nil {
		return model.Party{}, err
	}
	return model.Party{Nombre: nombre, TipoDocumento: string(t), NumeroDocumento: numeroDoc}, nil
}

func newTercerosCreateCommand(opts *options) *cobra.Command {
	var nombre, tipoDoc, numeroDoc string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a third party",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := partyFromFlags(nombre, tipoDoc, numeroDoc)
			if err != nil {
				return err
			}
			client, format, err := opts.setup()
			if err != nil {
				return err
			}
			created, err := client.CreateTercero(cmd.Context(), p)
			if err != nil {
				return describeBackendError(err)
			}
			return render.Parties(cmd.OutOrStdout(), format, []model.Party{created})
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "display name (required)")
	cmd.Flags().StringVar(&tipoDoc, "tipo-documento", string(docid.TypeCedula), "document type (CC, CE, NIT, PASAPORTE)")
	cmd.Flags().StringVar(&numeroDoc, "numero-documento", "", "document number (required)")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("numero-documento")

	return cmd
}

func newTercerosUpdateCommand(opts *options) *cobra.Command {
	var nombre, tipoDoc, numeroDoc string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a third party",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			p, err := partyFromFlags(nombre, tipoDoc, numeroDoc)
			if err != nil {
				return err
			}
			client, format, err := opts.setup()
			if err != nil {
				return err
			}
			updated, err := client.UpdateTercero(cmd.Context(), id, p)
			if err != nil {
				return describeBackendError(err)
			}
			return render.Parties(cmd.OutOrStdout(), format, []model.Party{updated})
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "display name (required)")
	cmd.Flags().StringVar(&tipoDoc, "tipo-documento", string(docid.TypeCedula), "document type (CC, CE, NIT, PASAPORTE)")
	cmd.Flags().StringVar(&numeroDoc, "numero-documento", "", "document number (required)")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("numero-documento")

	return cmd
}

func newTercerosDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a third party",
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
			if err := client.DeleteTercero(cmd.Context(), id); err != nil {
				return describeBackendError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tercero %d eliminado\n", id)
			return nil
		},
	}
}
