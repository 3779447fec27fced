package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	storefrontv1 "github.com/fekuna/shopwave-storefront/api/storefront/v1"
	"github.com/fekuna/shopwave-storefront/internal/middleware"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := callContext(cmd)
		defer cancel()

		resp, err := client.ListCategories(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderCategories(resp.Categories, ""))
		return nil
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products, optionally filtered by category and search text",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")

		ctx, cancel := callContext(cmd)
		defer cancel()

		resp, err := client.ListProducts(ctx, &storefrontv1.ListProductsRequest{
			Category: category,
			Search:   search,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderProducts(resp.Products))
		return nil
	},
}

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show a single product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := callContext(cmd)
		defer cancel()

		resp, err := client.GetProduct(ctx, &storefrontv1.GetProductRequest{Id: id})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderProductCard(resp.Product))
		return nil
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start or end a shopping session",
}

var sessionNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a session and print its id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := callContext(cmd)
		defer cancel()

		resp, err := client.CreateSession(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, renderView(resp.View, installSlot.Available()))
		fmt.Fprintln(out, mutedStyle.Render("export STOREFRONT_SESSION="+resp.View.SessionId))
		return nil
	},
}

var sessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the current session and drop its cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel, err := sessionContext(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		if _, err := client.EndSession(ctx, &storefrontv1.SessionRequest{}); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("session "+sessionID+" ended"))
		return nil
	},
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the storefront as the session currently sees it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel, err := sessionContext(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		resp, err := client.GetView(ctx, &storefrontv1.SessionRequest{})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderView(resp.View, installSlot.Available()))
		return nil
	},
}

var selectCmd = &cobra.Command{
	Use:   "select <category>",
	Short: `Select a category ("All" clears the filter)`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel, err := sessionContext(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		resp, err := client.SelectCategory(ctx, &storefrontv1.SelectCategoryRequest{Category: args[0]})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderView(resp.View, installSlot.Available()))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [text...]",
	Short: "Set the search text (no arguments clears it)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel, err := sessionContext(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		resp, err := client.SetSearch(ctx, &storefrontv1.SetSearchRequest{SearchText: strings.Join(args, " ")})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderView(resp.View, installSlot.Available()))
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel, err := sessionContext(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		resp, err := client.AddToCart(ctx, &storefrontv1.AddToCartRequest{ProductId: id})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderHeader(resp.View.Cart, installSlot.Available()))
		return nil
	},
}

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show cart lines and totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel, err := sessionContext(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		resp, err := client.GetCart(ctx, &storefrontv1.SessionRequest{})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderCart(resp.Cart))
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Redraw the session's view on every change until the session ends",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sessionID == "" {
			return errNoSession
		}
		// No --timeout here: the stream lives as long as the session.
		ctx := metadata.AppendToOutgoingContext(cmd.Context(), middleware.SessionMetadataKey, sessionID)

		stream, err := client.WatchView(ctx, &storefrontv1.SessionRequest{})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out, mutedStyle.Render("session "+sessionID+" ended"))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, renderView(resp.View, installSlot.Available()))
			fmt.Fprintln(out)
		}
	},
}

func parseProductID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}
