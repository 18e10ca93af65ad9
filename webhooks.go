package fraudclient

import (
	"context"
	"fmt"
	"net/url"
)

// WebhookService binds the /webhooks routes.
type WebhookService struct {
	client *Client
}

func (s *WebhookService) List(ctx context.Context) ([]Webhook, error) {
	var webhooks []Webhook
	if err := s.client.getJSON(ctx, "/webhooks", nil, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

func (s *WebhookService) Create(ctx context.Context, input WebhookInput) (Webhook, error) {
	var webhook Webhook
	if err := s.client.postJSON(ctx, "/webhooks", input, &webhook); err != nil {
		return Webhook{}, err
	}
	return webhook, nil
}

// Events lists the event types a webhook may subscribe to.
func (s *WebhookService) Events(ctx context.Context) ([]string, error) {
	var events []string
	if err := s.client.getJSON(ctx, "/webhooks/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *WebhookService) Get(ctx context.Context, webhookID string) (Webhook, error) {
	var webhook Webhook
	if err := s.client.getJSON(ctx, webhookPath(webhookID), nil, &webhook); err != nil {
		return Webhook{}, err
	}
	return webhook, nil
}

func (s *WebhookService) Update(ctx context.Context, webhookID string, input WebhookInput) (Webhook, error) {
	var webhook Webhook
	if err := s.client.patchJSON(ctx, webhookPath(webhookID), input, &webhook); err != nil {
		return Webhook{}, err
	}
	return webhook, nil
}

func (s *WebhookService) Delete(ctx context.Context, webhookID string) error {
	return s.client.deleteJSON(ctx, webhookPath(webhookID), nil)
}

// Test asks the backend to deliver a synthetic event to the endpoint.
func (s *WebhookService) Test(ctx context.Context, webhookID string) (map[string]any, error) {
	var result map[string]any
	path := fmt.Sprintf("%s/test", webhookPath(webhookID))
	if err := s.client.postJSON(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *WebhookService) Toggle(ctx context.Context, webhookID string) (Webhook, error) {
	var webhook Webhook
	path := fmt.Sprintf("%s/toggle", webhookPath(webhookID))
	if err := s.client.postJSON(ctx, path, nil, &webhook); err != nil {
		return Webhook{}, err
	}
	return webhook, nil
}

func webhookPath(webhookID string) string {
	return fmt.Sprintf("/webhooks/%s", url.PathEscape(webhookID))
}
