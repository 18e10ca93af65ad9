package fraudclient

import (
	"context"
	"fmt"
	"net/url"
)

// TeamService binds the /teams routes.
type TeamService struct {
	client *Client
}

func (s *TeamService) List(ctx context.Context) ([]Team, error) {
	var teams []Team
	if err := s.client.getJSON(ctx, "/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *TeamService) Create(ctx context.Context, input TeamInput) (Team, error) {
	var team Team
	if err := s.client.postJSON(ctx, "/teams", input, &team); err != nil {
		return Team{}, err
	}
	return team, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (Team, error) {
	var team Team
	if err := s.client.getJSON(ctx, teamPath(teamID), nil, &team); err != nil {
		return Team{}, err
	}
	return team, nil
}

func (s *TeamService) Update(ctx context.Context, teamID string, input TeamInput) (Team, error) {
	var team Team
	if err := s.client.patchJSON(ctx, teamPath(teamID), input, &team); err != nil {
		return Team{}, err
	}
	return team, nil
}

func (s *TeamService) AddMember(ctx context.Context, teamID string, userID string) error {
	path := fmt.Sprintf("%s/members/%s", teamPath(teamID), url.PathEscape(userID))
	return s.client.postJSON(ctx, path, nil, nil)
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID string, userID string) error {
	path := fmt.Sprintf("%s/members/%s", teamPath(teamID), url.PathEscape(userID))
	return s.client.deleteJSON(ctx, path, nil)
}

func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	return s.client.deleteJSON(ctx, teamPath(teamID), nil)
}

func teamPath(teamID string) string {
	return fmt.Sprintf("/teams/%s", url.PathEscape(teamID))
}
