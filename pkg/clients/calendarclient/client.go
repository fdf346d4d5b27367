// Package calendarclient wraps the Google Calendar API as an event
// source for the importCalendar command. The core never talks to it
// directly: services depend on the EventSource interface, so this
// package stays an integration point at the edge.
package calendarclient

import (
	"context"
	"fmt"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/awayboard/awayboard/internal/config"
	"github.com/awayboard/awayboard/pkg/utils"
)

// Client wraps the Google Calendar API client
type Client struct {
	service    *calendar.Service
	calendarID string
	ctx        context.Context
}

// NewClient creates a new Calendar client using OAuth credentials and
// performs the OAuth flow if needed. Tokens are persisted to disk.
func NewClient(ctx context.Context, oauthCfg *config.OAuthClientConfig, calendarID string) (*Client, error) {
	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth config: %w", err)
	}

	token, err := utils.GetTokenWithFlow(ctx, oauthConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get oauth token: %w", err)
	}

	httpClient := oauthConfig.Client(ctx, token)

	service, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}

	return &Client{
		service:    service,
		calendarID: calendarID,
		ctx:        ctx,
	}, nil
}

// Service returns the underlying calendar service for direct API access
func (c *Client) Service() *calendar.Service {
	return c.service
}
