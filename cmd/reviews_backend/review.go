package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
	"github.com/spf13/cobra"
)

// cliActor is recorded as the moderator for changes made from the command line.
const cliActor = "cli"

var (
	listState string
	listLimit int
	listToken string
	listJSON  bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Moderate reviews from the command line",
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews in a moderation state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			params := dto.ListReviewsParams{State: listState, Limit: listLimit}
			if listToken != "" {
				params.NextToken = &listToken
			}
			reviews, next, err := a.services.Moderation.ListReviews(ctx, params)
			if err != nil {
				return err
			}

			resp := dto.ToListReviewsResponse(reviews, next)
			if listJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(resp)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATE\tDATE\tNAME\tTITLE")
			for _, r := range resp.Reviews {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.ModerationState, r.Date, r.Name, r.Title)
			}
			if resp.NextToken != nil {
				fmt.Fprintf(w, "\nnext page: --token %s\n", *resp.NextToken)
			}
			return w.Flush()
		})
	},
}

func transitionCmd(action domain.ModerationAction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(action) + " <review-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
				review, err := a.services.Moderation.Transition(ctx, args[0], action, cliActor)
				if err != nil {
					return err
				}
				fmt.Printf("%s is now %s\n", review.ReviewID, review.ModerationState)
				return nil
			})
		},
	}
}

// withApp runs fn against a freshly wired app and closes it afterwards.
func withApp(ctx context.Context, fn func(context.Context, *app) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close(logger)
	return fn(ctx, a)
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.AddCommand(
		reviewListCmd,
		transitionCmd(domain.ActionPublish, "Publish a draft review"),
		transitionCmd(domain.ActionReject, "Reject a draft or published review"),
		transitionCmd(domain.ActionRestore, "Move a rejected review back to draft"),
		transitionCmd(domain.ActionUnpublish, "Take a published review back to draft"),
	)

	reviewListCmd.Flags().StringVar(&listState, "state", string(domain.StateDraft), "Moderation state to list")
	reviewListCmd.Flags().IntVar(&listLimit, "limit", 20, "Page size")
	reviewListCmd.Flags().StringVar(&listToken, "token", "", "Pagination token from a previous page")
	reviewListCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
