package remote

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"flatacuties/feature/characters/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const collectionPath = "/characters"

var errEmptyRecord = errors.New("empty record")

// Created is the outcome of a create request.
type Created struct {
	// Character is the server's record when Confirmed, otherwise the submitted data without an id.
	Character models.Character
	// Confirmed is true when the server accepted the write.
	Confirmed bool
	// Status is the HTTP status the server answered with.
	Status int
}

// Client performs the remote operations against one API base.
type Client struct {
	base    string
	http    *fiber.Client
	timeout time.Duration
	logger  *zap.Logger
	group   singleflight.Group
}

// NewClient creates a client for base (e.g. http://localhost:3000).
func NewClient(base string, cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &Client{
		base:    strings.TrimSuffix(base, "/"),
		http:    &fiber.Client{UserAgent: "flatacuties"},
		timeout: time.Duration(timeout) * time.Second,
		logger:  logger,
	}
}

// Base returns the API base address.
func (c *Client) Base() string {
	return c.base
}

func (c *Client) collectionURL() string {
	return c.base + collectionPath
}

func (c *Client) itemURL(id int) string {
	return c.collectionURL() + "/" + strconv.Itoa(id)
}

// FetchAll returns every character in the collection.
func (c *Client) FetchAll(ctx context.Context) ([]models.Character, error) {
	url := c.collectionURL()
	status, body, err := c.do(ctx, fiber.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, &ServerError{Method: fiber.MethodGet, URL: url, Status: status}
	}

	var records []models.Character
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &DecodeError{Method: fiber.MethodGet, URL: url, Err: err}
	}
	return records, nil
}

// FetchByID returns one character. Concurrent calls for the same id share one request.
func (c *Client) FetchByID(ctx context.Context, id int) (models.Character, error) {
	ch := c.group.DoChan(strconv.Itoa(id), func() (interface{}, error) {
		return c.fetchByID(context.WithoutCancel(ctx), id)
	})

	select {
	case <-ctx.Done():
		return models.Character{}, &NetworkError{Method: fiber.MethodGet, URL: c.itemURL(id), Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return models.Character{}, res.Err
		}
		return res.Val.(models.Character), nil
	}
}

func (c *Client) fetchByID(ctx context.Context, id int) (models.Character, error) {
	url := c.itemURL(id)
	status, body, err := c.do(ctx, fiber.MethodGet, url, nil)
	if err != nil {
		return models.Character{}, err
	}
	if !isSuccess(status) {
		return models.Character{}, &ServerError{Method: fiber.MethodGet, URL: url, Status: status}
	}
	return decodeOne(fiber.MethodGet, url, body)
}

// PersistVotes sends the vote count for id and returns the server's canonical record.
func (c *Client) PersistVotes(ctx context.Context, id, votes int) (models.Character, error) {
	url := c.itemURL(id)
	status, body, err := c.do(ctx, fiber.MethodPatch, url, models.VotesBody{Votes: votes})
	if err != nil {
		return models.Character{}, err
	}
	if !isSuccess(status) {
		return models.Character{}, &RejectedError{Method: fiber.MethodPatch, URL: url, Status: status}
	}
	return decodeOne(fiber.MethodPatch, url, body)
}

// CreateRecord asks the server to create candidate. A non-success status is
// reported as an unconfirmed Created with a nil error.
func (c *Client) CreateRecord(ctx context.Context, candidate models.Candidate) (Created, error) {
	url := c.collectionURL()
	payload := models.CreateBody{Name: candidate.Name, Image: candidate.Image, Votes: 0}
	status, body, err := c.do(ctx, fiber.MethodPost, url, payload)
	if err != nil {
		return Created{}, err
	}
	if !isSuccess(status) {
		c.logger.Debug("Create rejected by server", zap.String("url", url), zap.Int("status", status))
		return Created{Character: candidate.Record(0), Status: status}, nil
	}

	rec, err := decodeOne(fiber.MethodPost, url, body)
	if err != nil {
		return Created{}, err
	}
	return Created{Character: rec, Confirmed: true, Status: status}, nil
}

type response struct {
	status int
	body   []byte
	errs   []error
}

// do sends one request and waits for the response or ctx, whichever comes first.
func (c *Client) do(ctx context.Context, method, url string, payload any) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, &NetworkError{Method: method, URL: url, Err: err}
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	var agent *fiber.Agent
	switch method {
	case fiber.MethodPatch:
		agent = c.http.Patch(url)
	case fiber.MethodPost:
		agent = c.http.Post(url)
	default:
		agent = c.http.Get(url)
	}
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if payload != nil {
		agent.JSON(payload)
	}
	agent.Timeout(timeout)

	done := make(chan response, 1)
	go func() {
		status, body, errs := agent.Bytes()
		done <- response{status: status, body: body, errs: errs}
	}()

	select {
	case <-ctx.Done():
		return 0, nil, &NetworkError{Method: method, URL: url, Err: ctx.Err()}
	case res := <-done:
		if len(res.errs) > 0 {
			return 0, nil, &NetworkError{Method: method, URL: url, Err: errors.Join(res.errs...)}
		}
		c.logger.Debug("Remote call finished",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status", res.status),
		)
		return res.status, res.body, nil
	}
}

func decodeOne(method, url string, body []byte) (models.Character, error) {
	var rec models.Character
	if err := json.Unmarshal(body, &rec); err != nil {
		return models.Character{}, &DecodeError{Method: method, URL: url, Err: err}
	}
	if rec.ID == 0 && rec.Name == "" {
		return models.Character{}, &DecodeError{Method: method, URL: url, Err: errEmptyRecord}
	}
	return rec, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
