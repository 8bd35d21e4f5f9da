package rest

import (
	"context"
	"net/http"
	"net/url"

	"jobtrack/internal/models"
	"jobtrack/internal/storage"
)

const usersPath = "/users"

// UserGateway implements storage.UserRepository over the remote user
// collection.
type UserGateway struct {
	client *Client
}

// NewUserGateway returns a user repository backed by the remote store.
func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

var _ storage.UserRepository = (*UserGateway)(nil)

func (g *UserGateway) GetAll(ctx context.Context) ([]models.UserAccount, error) {
	var users []models.UserAccount
	if err := g.client.doJSON(ctx, http.MethodGet, usersPath, nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.UserAccount{}
	}
	return users, nil
}

func (g *UserGateway) GetByID(ctx context.Context, id string) (*models.UserAccount, error) {
	var user models.UserAccount
	if err := g.client.doJSON(ctx, http.MethodGet, usersPath+"/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *UserGateway) Create(ctx context.Context, user *models.UserAccount) (*models.UserAccount, error) {
	var created models.UserAccount
	if err := g.client.doJSON(ctx, http.MethodPost, usersPath, user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *UserGateway) Update(ctx context.Context, id string, user *models.UserAccount) (*models.UserAccount, error) {
	var updated models.UserAccount
	if err := g.client.doJSON(ctx, http.MethodPut, usersPath+"/"+url.PathEscape(id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *UserGateway) Delete(ctx context.Context, id string) error {
	return g.client.doJSON(ctx, http.MethodDelete, usersPath+"/"+url.PathEscape(id), nil, nil)
}
