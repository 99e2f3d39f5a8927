package handlers

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewTrendingCmd creates the trending command family for managing the
// product pool scheduled jobs draw from.
func NewTrendingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Manage trending products per niche",
	}

	cmd.AddCommand(newTrendingAddCmd())
	cmd.AddCommand(newTrendingListCmd())

	return cmd
}

func newTrendingAddCmd() *cobra.Command {
	var (
		niche  string
		source string
	)

	cmd := &cobra.Command{
		Use:   "add <product title>",
		Short: "Add a product to a niche's trending pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			product, err := st.AddProduct(args[0], niche, source)
			if err != nil {
				return err
			}

			fmt.Printf("Added %q to %s (%s)\n", product.Title, product.Niche, product.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&niche, "niche", "", "niche the product belongs to (required)")
	cmd.Flags().StringVar(&source, "source", "manual", "where the product was discovered")
	_ = cmd.MarkFlagRequired("niche")

	return cmd
}

func newTrendingListCmd() *cobra.Command {
	var niche string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the trending products for a niche",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			products, err := st.ListTrendingProducts(niche)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNICHE\tTITLE\tSOURCE")
			for _, p := range products {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Niche, p.Title, p.Source)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&niche, "niche", "", "niche to list (required)")
	_ = cmd.MarkFlagRequired("niche")

	return cmd
}
