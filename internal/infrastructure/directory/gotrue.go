package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cowryhub/cowry-backend/internal/domain/contract"
	"github.com/cowryhub/cowry-backend/internal/domain/entity"
)

// defaultPerPage is the admin list page size. The resolver scans the whole
// directory, so listing pages through everything.
const defaultPerPage = 1000

// Client is the thin adapter over a GoTrue-compatible identity provider.
// The provider owns credentials, password hashing, and token issuance;
// user-facing fields (nickname, role, balances, profile) live in its
// per-user metadata blob. Every call carries a bounded deadline so a slow
// provider degrades to an upstream error instead of a hung request.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	timeout    time.Duration
}

var _ contract.IIdentityDirectory = (*Client)(nil)

func NewClient(baseURL, serviceKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

// gotrueUser is the provider's wire representation of an identity.
type gotrueUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	CreatedAt    time.Time      `json:"created_at"`
	LastSignInAt *time.Time     `json:"last_sign_in_at"`
	UserMetadata gotrueMetadata `json:"user_metadata"`
}

// gotrueMetadata mirrors the free-form metadata blob. Pointer fields
// distinguish "absent" from zero so translation can apply defaults.
type gotrueMetadata struct {
	Nickname             string   `json:"nickname,omitempty"`
	Role                 string   `json:"role,omitempty"`
	CWT                  *float64 `json:"cwt,omitempty"`
	CWS                  *int64   `json:"cws,omitempty"`
	Phone                string   `json:"phone,omitempty"`
	Province             string   `json:"province,omitempty"`
	WalletAddress        string   `json:"wallet_address,omitempty"`
	NotificationsEnabled *bool    `json:"notifications_enabled,omitempty"`
}

// toEntity translates a wire user, defaulting each metadata field that is
// absent.
func (u gotrueUser) toEntity() *entity.Identity {
	ident := &entity.Identity{
		ID:                   u.ID,
		Email:                u.Email,
		Nickname:             u.UserMetadata.Nickname,
		Role:                 entity.DefaultRole(),
		NotificationsEnabled: true,
		CreatedAt:            u.CreatedAt,
		LastSignInAt:         u.LastSignInAt,
		Phone:                u.UserMetadata.Phone,
		Province:             u.UserMetadata.Province,
		WalletAddress:        u.UserMetadata.WalletAddress,
	}
	if u.UserMetadata.Role != "" {
		ident.Role = entity.Role(u.UserMetadata.Role)
	}
	if u.UserMetadata.CWT != nil {
		ident.Balance.CWT = *u.UserMetadata.CWT
	}
	if u.UserMetadata.CWS != nil {
		ident.Balance.CWS = *u.UserMetadata.CWS
	}
	if u.UserMetadata.NotificationsEnabled != nil {
		ident.NotificationsEnabled = *u.UserMetadata.NotificationsEnabled
	}
	return ident
}

func (c *Client) ListIdentities(ctx context.Context) (out []*entity.Identity, err error) {
	defer func() { observe("list", err) }()

	for page := 1; ; page++ {
		var resp struct {
			Users []gotrueUser `json:"users"`
		}
		path := fmt.Sprintf("/admin/users?page=%d&per_page=%d", page, defaultPerPage)
		if err = c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
			return nil, err
		}
		for _, u := range resp.Users {
			out = append(out, u.toEntity())
		}
		if len(resp.Users) < defaultPerPage {
			return out, nil
		}
	}
}

func (c *Client) GetIdentityByID(ctx context.Context, id string) (ident *entity.Identity, err error) {
	defer func() { observe("get", err) }()

	var u gotrueUser
	if err = c.do(ctx, http.MethodGet, "/admin/users/"+id, "", nil, &u); err != nil {
		if status, ok := apiStatus(err); ok && status == http.StatusNotFound {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return u.toEntity(), nil
}

func (c *Client) CreateIdentity(ctx context.Context, ident *entity.Identity, password string) (created *entity.Identity, err error) {
	defer func() { observe("create", err) }()

	notifications := ident.NotificationsEnabled
	body := map[string]interface{}{
		"email":         ident.Email,
		"password":      password,
		"email_confirm": true,
		"user_metadata": gotrueMetadata{
			Nickname:             ident.Nickname,
			Role:                 string(ident.Role),
			CWT:                  &ident.Balance.CWT,
			CWS:                  &ident.Balance.CWS,
			NotificationsEnabled: &notifications,
		},
	}

	var u gotrueUser
	if err = c.do(ctx, http.MethodPost, "/admin/users", "", body, &u); err != nil {
		return nil, err
	}
	return u.toEntity(), nil
}

func (c *Client) VerifyPassword(ctx context.Context, email, password string) (session *contract.Session, err error) {
	defer func() { observe("verify_password", err) }()

	body := map[string]string{"email": email, "password": password}
	var resp struct {
		AccessToken string     `json:"access_token"`
		User        gotrueUser `json:"user"`
	}
	if err = c.do(ctx, http.MethodPost, "/token?grant_type=password", "", body, &resp); err != nil {
		if status, ok := apiStatus(err); ok && (status == http.StatusBadRequest || status == http.StatusUnauthorized) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}
	return &contract.Session{Token: resp.AccessToken, Identity: resp.User.toEntity()}, nil
}

func (c *Client) VerifyToken(ctx context.Context, token string) (ident *entity.Identity, err error) {
	defer func() { observe("verify_token", err) }()

	var u gotrueUser
	if err = c.do(ctx, http.MethodGet, "/user", token, nil, &u); err != nil {
		if status, ok := apiStatus(err); ok && (status == http.StatusUnauthorized || status == http.StatusForbidden) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}
	return u.toEntity(), nil
}

func (c *Client) UpdateIdentity(ctx context.Context, id string, patch contract.IdentityPatch) (ident *entity.Identity, err error) {
	defer func() { observe("update", err) }()

	// The provider merges user_metadata keys on update, which matches the
	// patch semantics: only set what changed.
	meta := map[string]interface{}{}
	if patch.Nickname != nil {
		meta["nickname"] = *patch.Nickname
	}
	if patch.Role != nil {
		meta["role"] = string(*patch.Role)
	}
	if patch.CWT != nil {
		meta["cwt"] = *patch.CWT
	}
	if patch.CWS != nil {
		meta["cws"] = *patch.CWS
	}
	if patch.Phone != nil {
		meta["phone"] = *patch.Phone
	}
	if patch.Province != nil {
		meta["province"] = *patch.Province
	}
	if patch.WalletAddress != nil {
		meta["wallet_address"] = *patch.WalletAddress
	}
	if patch.NotificationsEnabled != nil {
		meta["notifications_enabled"] = *patch.NotificationsEnabled
	}

	var u gotrueUser
	err = c.do(ctx, http.MethodPut, "/admin/users/"+id, "", map[string]interface{}{"user_metadata": meta}, &u)
	if err != nil {
		if status, ok := apiStatus(err); ok && status == http.StatusNotFound {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return u.toEntity(), nil
}

func (c *Client) UpdatePassword(ctx context.Context, id, newPassword string) (err error) {
	defer func() { observe("update_password", err) }()

	err = c.do(ctx, http.MethodPut, "/admin/users/"+id, "", map[string]string{"password": newPassword}, nil)
	if status, ok := apiStatus(err); ok && status == http.StatusNotFound {
		return entity.ErrNotFound
	}
	return err
}

func (c *Client) RevokeSession(ctx context.Context, token string) (err error) {
	defer func() { observe("revoke_session", err) }()
	return c.do(ctx, http.MethodPost, "/logout", token, nil, nil)
}

// apiError carries a non-2xx provider response.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("directory responded %d: %s", e.Status, e.Message)
}

func apiStatus(err error) (int, bool) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr.Status, true
	}
	return 0, false
}

// do performs one provider call. bearer overrides the service key for the
// user-scoped endpoints. Transport failures and 5xx responses wrap
// entity.ErrUpstream; other non-2xx statuses surface as *apiError for the
// caller to map.
func (c *Client) do(ctx context.Context, method, path, bearer string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: directory responded %d", entity.ErrUpstream, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Message string `json:"msg"`
			Error   string `json:"error_description"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		message := errBody.Message
		if message == "" {
			message = errBody.Error
		}
		return &apiError{Status: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", entity.ErrUpstream, err)
		}
	}
	return nil
}
