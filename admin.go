package fraudclient

import (
	"context"
	"fmt"
	"net/url"
)

// AdminService binds the /admin routes. All of them require an operator
// role server-side; the client adds nothing beyond the shared bearer
// injection.
type AdminService struct {
	client *Client
}

func (s *AdminService) Models(ctx context.Context) ([]map[string]any, error) {
	var models []map[string]any
	if err := s.client.getJSON(ctx, "/admin/models", nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}

func (s *AdminService) ActiveModel(ctx context.Context) (map[string]any, error) {
	var model map[string]any
	if err := s.client.getJSON(ctx, "/admin/models/active", nil, &model); err != nil {
		return nil, err
	}
	return model, nil
}

// ActivateModel promotes a model version and flushes the cached model
// metadata so the next read reflects it.
func (s *AdminService) ActivateModel(ctx context.Context, modelID string) error {
	path := fmt.Sprintf("/admin/models/%s/activate", url.PathEscape(modelID))
	if err := s.client.postJSON(ctx, path, nil, nil); err != nil {
		return err
	}
	s.client.cache.Clear("analytics::model")
	return nil
}

func (s *AdminService) Users(ctx context.Context, limit int, offset int, role string) ([]User, error) {
	var users []User
	params := query(
		"limit", intParam(limit),
		"offset", intParam(offset),
		"role", role,
	)
	if err := s.client.getJSON(ctx, "/admin/users", params, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AdminService) UpdateUserRole(ctx context.Context, userID string, role string) (User, error) {
	path := fmt.Sprintf("/admin/users/%s/role", url.PathEscape(userID))
	var user User
	if err := s.client.patchJSON(ctx, path, map[string]string{"role": role}, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *AdminService) UpdateUserStatus(ctx context.Context, userID string, active bool) (User, error) {
	path := fmt.Sprintf("/admin/users/%s/status", url.PathEscape(userID))
	var user User
	if err := s.client.patchJSON(ctx, path, map[string]bool{"is_active": active}, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, userID string) error {
	path := fmt.Sprintf("/admin/users/%s", url.PathEscape(userID))
	return s.client.deleteJSON(ctx, path, nil)
}

func (s *AdminService) AuditLogs(ctx context.Context, limit int, offset int, action string) ([]AuditLog, error) {
	var logs []AuditLog
	params := query(
		"limit", intParam(limit),
		"offset", intParam(offset),
		"action", action,
	)
	if err := s.client.getJSON(ctx, "/admin/audit-logs", params, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *AdminService) Stats(ctx context.Context) (map[string]any, error) {
	var stats map[string]any
	if err := s.client.getJSON(ctx, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
