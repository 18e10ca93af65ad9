package fraudclient

import (
	"context"
	"fmt"
	"net/url"
)

// AlertService binds the /alerts routes (email alert rules).
type AlertService struct {
	client *Client
}

func (s *AlertService) List(ctx context.Context) ([]Alert, error) {
	var alerts []Alert
	if err := s.client.getJSON(ctx, "/alerts", nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (s *AlertService) Create(ctx context.Context, input AlertInput) (Alert, error) {
	var alert Alert
	if err := s.client.postJSON(ctx, "/alerts", input, &alert); err != nil {
		return Alert{}, err
	}
	return alert, nil
}

func (s *AlertService) Update(ctx context.Context, alertID string, input AlertInput) (Alert, error) {
	var alert Alert
	if err := s.client.patchJSON(ctx, alertPath(alertID), input, &alert); err != nil {
		return Alert{}, err
	}
	return alert, nil
}

func (s *AlertService) Delete(ctx context.Context, alertID string) error {
	return s.client.deleteJSON(ctx, alertPath(alertID), nil)
}

// Test fires a test notification for the rule without a real fraud event.
func (s *AlertService) Test(ctx context.Context, alertID string) error {
	path := fmt.Sprintf("/alerts/test/%s", url.PathEscape(alertID))
	return s.client.postJSON(ctx, path, nil, nil)
}

func alertPath(alertID string) string {
	return fmt.Sprintf("/alerts/%s", url.PathEscape(alertID))
}
