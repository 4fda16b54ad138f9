package recordapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Client talks to the hosted record-store API. Each call is a single
// request/response round trip; there is no retry, no transaction, no
// client-side cache.
type Client struct {
	baseURL   string
	projectID string
	publicKey string
	httpc     *http.Client
}

func NewClient(baseURL, projectID, publicKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		projectID: projectID,
		publicKey: publicKey,
		httpc:     http.DefaultClient,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Results []Result        `json:"results,omitempty"`
}

type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  []FieldError    `json:"errors,omitempty"`
}

type FieldError struct {
	FieldLabel string `json:"fieldLabel"`
	Message    string `json:"message"`
}

// FetchRecords lists records from table and decodes response.data into out.
func (c *Client) FetchRecords(ctx context.Context, table string, params FetchParams, out any) error {
	env, err := c.post(ctx, fmt.Sprintf("/tables/%s/fetch", table), params)
	if err != nil {
		return err
	}
	if !env.Success {
		return &StoreError{Op: "fetch", Table: table, Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s records: %w", table, err)
	}
	return nil
}

// GetRecordByID fetches a single record. A miss is not an error: it returns
// (false, nil) and leaves out untouched.
func (c *Client) GetRecordByID(ctx context.Context, table string, id int, params FetchParams, out any) (bool, error) {
	env, err := c.post(ctx, fmt.Sprintf("/tables/%s/records/%d", table, id), params)
	if err != nil {
		return false, err
	}
	if !env.Success || len(env.Data) == 0 || string(env.Data) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return false, fmt.Errorf("decode %s record %d: %w", table, id, err)
	}
	return true, nil
}

// CreateRecord submits a single-record batch and decodes the first successful
// result into out. A batch with zero successes is a failure carrying the
// first failed result's message.
func (c *Client) CreateRecord(ctx context.Context, table string, record any, out any) error {
	return c.writeRecord(ctx, "create", http.MethodPost, table, record, out)
}

// UpdateRecord submits a single-record update batch; the record must carry
// its Id. Semantics match CreateRecord.
func (c *Client) UpdateRecord(ctx context.Context, table string, record any, out any) error {
	return c.writeRecord(ctx, "update", http.MethodPut, table, record, out)
}

func (c *Client) writeRecord(ctx context.Context, op, method, table string, record any, out any) error {
	payload := struct {
		Records []any `json:"records"`
	}{Records: []any{record}}

	env, err := c.do(ctx, method, fmt.Sprintf("/tables/%s/records", table), payload)
	if err != nil {
		return err
	}
	if !env.Success {
		return &StoreError{Op: op, Table: table, Message: env.Message}
	}

	data, err := firstSuccess(op, table, env.Results)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s result: %w", op, table, err)
	}
	return nil
}

// DeleteRecord deletes one record by id. A failed deletion surfaces the
// backend's message.
func (c *Client) DeleteRecord(ctx context.Context, table string, id int) error {
	payload := struct {
		RecordIDs []int `json:"RecordIds"`
	}{RecordIDs: []int{id}}

	env, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tables/%s/records/delete", table), payload)
	if err != nil {
		return err
	}
	if !env.Success {
		return &StoreError{Op: "delete", Table: table, Message: env.Message}
	}
	if _, err := firstSuccess("delete", table, env.Results); err != nil {
		return err
	}
	return nil
}

// firstSuccess applies the partial-failure batch contract: at least one
// success wins and returns its data; otherwise the first failure's message
// (field-level when present) becomes the error.
func firstSuccess(op, table string, results []Result) (json.RawMessage, error) {
	var firstFailure *StoreError
	for i := range results {
		res := results[i]
		if res.Success {
			return res.Data, nil
		}
		if firstFailure != nil {
			continue
		}
		msg := res.Message
		if len(res.Errors) > 0 {
			msg = res.Errors[0].FieldLabel + ": " + res.Errors[0].Message
		}
		firstFailure = &StoreError{Op: op, Table: table, Message: msg}
	}
	if firstFailure != nil {
		return nil, firstFailure
	}
	return nil, &StoreError{Op: op, Table: table, Message: "empty result batch"}
}

func (c *Client) post(ctx context.Context, path string, payload any) (*envelope, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Project-Id", c.projectID)
	req.Header.Set("X-Public-Key", c.publicKey)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &StoreError{Op: method, Message: err.Error()}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &env, nil
}
