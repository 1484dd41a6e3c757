package pos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"rei_do_lanche_backend/internal/models"
)

// Remote is the durable store as the terminal sees it. Every call is scoped
// to one account. Implementations must be safe for sequential use from the
// store's single writer.
type Remote interface {
	FetchAll(ctx context.Context, accountID string) (*models.Snapshot, error)
	Upsert(ctx context.Context, accountID, collection string, record interface{}) error
	Delete(ctx context.Context, accountID, collection, id string) error
	Migrate(ctx context.Context, accountID string, snapshot *models.Snapshot) error
}

// HTTPRemote talks to the durable store server over its REST surface.
type HTTPRemote struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPRemote creates a client for the store server at baseURL. token may
// be empty, in which case requests authenticate with the legacy
// X-Account-ID header only.
func NewHTTPRemote(baseURL, token string) *HTTPRemote {
	return &HTTPRemote{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *HTTPRemote) do(ctx context.Context, method, path, accountID string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Account-ID", accountID)
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: remote returned %d: %s", method, path, resp.StatusCode, payload)
	}
	return payload, nil
}

func fetchCollection[T any](ctx context.Context, r *HTTPRemote, accountID, collection string) ([]T, error) {
	payload, err := r.do(ctx, http.MethodGet, "/api/"+collection, accountID, nil)
	if err != nil {
		return nil, err
	}
	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", collection, err)
	}
	return records, nil
}

// FetchAll pulls every collection for the account, one request each.
func (r *HTTPRemote) FetchAll(ctx context.Context, accountID string) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{AccountID: accountID}
	var err error

	if snapshot.Ingredients, err = fetchCollection[models.Ingredient](ctx, r, accountID, models.CollectionIngredients); err != nil {
		return nil, err
	}
	if snapshot.Products, err = fetchCollection[models.Product](ctx, r, accountID, models.CollectionProducts); err != nil {
		return nil, err
	}
	if snapshot.Revenues, err = fetchCollection[models.Revenue](ctx, r, accountID, models.CollectionRevenues); err != nil {
		return nil, err
	}
	if snapshot.Expenses, err = fetchCollection[models.Expense](ctx, r, accountID, models.CollectionExpenses); err != nil {
		return nil, err
	}
	if snapshot.StockMovements, err = fetchCollection[models.StockMovement](ctx, r, accountID, models.CollectionStockMovements); err != nil {
		return nil, err
	}
	if snapshot.Employees, err = fetchCollection[models.Employee](ctx, r, accountID, models.CollectionEmployees); err != nil {
		return nil, err
	}
	if snapshot.Customers, err = fetchCollection[models.Customer](ctx, r, accountID, models.CollectionCustomers); err != nil {
		return nil, err
	}
	if snapshot.Orders, err = fetchCollection[models.Order](ctx, r, accountID, models.CollectionOrders); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Upsert pushes one whole record to the durable store.
func (r *HTTPRemote) Upsert(ctx context.Context, accountID, collection string, record interface{}) error {
	_, err := r.do(ctx, http.MethodPost, "/api/"+collection, accountID, record)
	return err
}

// Delete removes one record from the durable store.
func (r *HTTPRemote) Delete(ctx context.Context, accountID, collection, id string) error {
	_, err := r.do(ctx, http.MethodDelete, "/api/"+collection+"/"+id, accountID, nil)
	return err
}

// Migrate submits the full snapshot to the bulk import endpoint.
func (r *HTTPRemote) Migrate(ctx context.Context, accountID string, snapshot *models.Snapshot) error {
	snapshot.AccountID = accountID
	_, err := r.do(ctx, http.MethodPost, "/api/migrate", accountID, snapshot)
	return err
}

// Login exchanges credentials for a bearer token and remembers it for
// subsequent calls.
func (r *HTTPRemote) Login(ctx context.Context, email, password string) (accountID string, err error) {
	payload, err := r.do(ctx, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	var resp struct {
		AccountID   string `json:"accountId"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	r.token = resp.AccessToken
	return resp.AccountID, nil
}
