package line

import (
	"context"
	"fmt"
	"net/http"

	"carcare/internal/pkg/logger"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Client wraps the linebot.Client.
type Client struct {
	*linebot.Client
	log logger.Logger
}

// NewClient creates a LINE Bot client from the channel credentials.
func NewClient(channelSecret, channelToken string, log logger.Logger) (*Client, error) {
	if channelSecret == "" || channelToken == "" {
		return nil, fmt.Errorf("CHANNEL_SECRET and CHANNEL_ACCESS_TOKEN must be set")
	}
	bot, err := linebot.New(channelSecret, channelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE Bot client: %w", err)
	}
	log.Info("Successfully created LINE Bot client.")
	return &Client{
		Client: bot,
		log:    log,
	}, nil
}

// SendMessages sends one or more messages using the ReplyMessage API.
func (c *Client) SendMessages(ctx context.Context, replyToken string, messages ...linebot.SendingMessage) error {
	if _, err := c.ReplyMessage(replyToken, messages...).WithContext(ctx).Do(); err != nil {
		return err
	}
	c.log.Debug("Successfully sent reply message.")
	return nil
}

// PushText pushes a text message to a user.
func (c *Client) PushText(ctx context.Context, to, text string) error {
	if _, err := c.PushMessage(to, linebot.NewTextMessage(text)).WithContext(ctx).Do(); err != nil {
		return err
	}
	c.log.Debug("Successfully sent push message.")
	return nil
}

// ParseRequest parses and verifies incoming webhook requests.
func (c *Client) ParseRequest(r *http.Request) ([]*linebot.Event, error) {
	return c.Client.ParseRequest(r)
}
