package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wrapads/internal/models"
)

func campaignCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "act on campaigns through a running console",
	}
	cmd.AddCommand(campaignStatusCommand())
	return cmd
}

func campaignStatusCommand() *cobra.Command {
	var apiURL, token string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "status <campaign-id> <action>",
		Short: "apply an offered action (activate, pause, complete, resume, cancel)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = os.Getenv("WRAPADS_TOKEN")
			}
			if token == "" {
				return errors.New("a session token is required (--token or WRAPADS_TOKEN)")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			resp, err := changeStatus(ctx, apiURL, token, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "http://localhost:8080", "console base URL")
	cmd.Flags().StringVar(&token, "token", "", "session token (defaults to $WRAPADS_TOKEN)")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "request timeout")
	return cmd
}

func changeStatus(ctx context.Context, apiURL, token, campaignID, action string) (*models.APIResponse, error) {
	body, err := json.Marshal(models.CampaignStatusRequest{Action: action})
	if err != nil {
		return nil, err
	}
	endpoint := strings.TrimRight(apiURL, "/") + "/api/v1/advertiser/campaigns/" + url.PathEscape(campaignID) + "/status"
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var out models.APIResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", res.StatusCode, err)
	}
	if res.StatusCode >= 300 || out.Status != models.ResponseStatusSuccess {
		if out.Code != "" {
			return nil, fmt.Errorf("%s: %s", out.Code, out.Message)
		}
		return nil, fmt.Errorf("status %d: %s", res.StatusCode, out.Message)
	}
	return &out, nil
}
