package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/izebair/Rezepte/internal/worker"
)

// notebook and section mirror the Graph OneNote resources we touch
type notebook struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type section struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type listResponse[T any] struct {
	Value []T `json:"value"`
}

type page struct {
	ID string `json:"id"`
}

type graphError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type user struct {
	UserPrincipalName string `json:"userPrincipalName"`
}

// Client talks to the Microsoft Graph OneNote API. Section IDs are cached
// per display name so a batch resolves every target section once, and all
// calls run through the rate limiter to stay below Graph throttling.
type Client struct {
	http     *resty.Client
	tokens   TokenProvider
	limiter  *worker.Limiter
	sections *gocache.Cache
	log      *zap.Logger
}

// NewClient creates a Graph client against baseURL
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, limiter *worker.Limiter, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &Client{
		http:     httpClient,
		tokens:   tokens,
		limiter:  limiter,
		sections: gocache.New(gocache.NoExpiration, gocache.NoExpiration),
		log:      log,
	}
}

// request prepares an authenticated request with a correlation ID
func (c *Client) request(ctx context.Context) (*resty.Request, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	return c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("client-request-id", uuid.NewString()), nil
}

func apiError(op string, resp *resty.Response) error {
	var ge graphError
	msg := resp.Status()
	if err := json.Unmarshal(resp.Body(), &ge); err == nil && ge.Error.Message != "" {
		msg = fmt.Sprintf("%s (%s)", ge.Error.Message, ge.Error.Code)
	}
	return fmt.Errorf("%s: %s", op, msg)
}

// Me validates the token by fetching the signed-in user's profile
func (c *Client) Me(ctx context.Context) (string, error) {
	req, err := c.request(ctx)
	if err != nil {
		return "", err
	}
	var u user
	resp, err := req.SetResult(&u).Get("/me")
	if err != nil {
		return "", fmt.Errorf("fetch profile: %w", err)
	}
	if resp.IsError() {
		return "", apiError("fetch profile", resp)
	}
	return u.UserPrincipalName, nil
}

// ResolveSection finds the ID of the section with the given display name,
// creating the section (and, when named but absent, the notebook) if
// necessary. Name matching is case-insensitive. Results are cached.
func (c *Client) ResolveSection(ctx context.Context, sectionName, notebookName string) (string, error) {
	key := strings.ToLower(notebookName) + "/" + strings.ToLower(sectionName)
	if id, ok := c.sections.Get(key); ok {
		return id.(string), nil
	}

	notebooks, err := c.listNotebooks(ctx)
	if err != nil {
		return "", err
	}
	if len(notebooks) == 0 && notebookName == "" {
		return "", fmt.Errorf("no notebooks found for the signed-in user")
	}

	wantNotebook := strings.ToLower(strings.TrimSpace(notebookName))
	wantSection := strings.ToLower(strings.TrimSpace(sectionName))

	for _, nb := range notebooks {
		if wantNotebook != "" && strings.ToLower(nb.DisplayName) != wantNotebook {
			continue
		}
		sections, err := c.listSections(ctx, nb.ID)
		if err != nil {
			return "", err
		}
		for _, sec := range sections {
			if strings.ToLower(sec.DisplayName) == wantSection {
				c.sections.Set(key, sec.ID, gocache.NoExpiration)
				return sec.ID, nil
			}
		}
	}

	// Section missing: create it in the target notebook
	var target *notebook
	if wantNotebook != "" {
		for i := range notebooks {
			if strings.ToLower(notebooks[i].DisplayName) == wantNotebook {
				target = &notebooks[i]
				break
			}
		}
		if target == nil {
			created, err := c.createNotebook(ctx, notebookName)
			if err != nil {
				return "", fmt.Errorf("notebook %q not found and could not be created: %w", notebookName, err)
			}
			c.log.Info("notebook created", zap.String("notebook", created.DisplayName))
			target = created
		}
	} else {
		target = &notebooks[0]
	}

	created, err := c.createSection(ctx, target.ID, sectionName)
	if err != nil {
		return "", err
	}
	c.log.Info("section created",
		zap.String("section", sectionName),
		zap.String("notebook", target.DisplayName))
	c.sections.Set(key, created.ID, gocache.NoExpiration)
	return created.ID, nil
}

// CreatePage creates a OneNote page with XHTML content in the given
// section. A 429 answer is retried once after the server's Retry-After.
func (c *Client) CreatePage(ctx context.Context, sectionID, html string) (string, error) {
	for attempt := 0; ; attempt++ {
		req, err := c.request(ctx)
		if err != nil {
			return "", err
		}
		var p page
		resp, err := req.
			SetHeader("Content-Type", "application/xhtml+xml").
			SetBody(html).
			SetResult(&p).
			Post("/me/onenote/sections/" + sectionID + "/pages")
		if err != nil {
			return "", fmt.Errorf("create page: %w", err)
		}
		if resp.StatusCode() == 429 && attempt == 0 {
			delay := retryAfter(resp)
			c.log.Warn("throttled by Graph, backing off", zap.Duration("delay", delay))
			if c.limiter != nil {
				if err := c.limiter.WaitWithDelay(ctx, delay); err != nil {
					return "", err
				}
			} else {
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				case <-time.After(delay):
				}
			}
			continue
		}
		if resp.IsError() {
			return "", apiError("create page", resp)
		}
		return p.ID, nil
	}
}

func (c *Client) listNotebooks(ctx context.Context) ([]notebook, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	var list listResponse[notebook]
	resp, err := req.SetResult(&list).Get("/me/onenote/notebooks")
	if err != nil {
		return nil, fmt.Errorf("list notebooks: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("list notebooks", resp)
	}
	return list.Value, nil
}

func (c *Client) listSections(ctx context.Context, notebookID string) ([]section, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	var list listResponse[section]
	resp, err := req.SetResult(&list).Get("/me/onenote/notebooks/" + notebookID + "/sections")
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("list sections", resp)
	}
	return list.Value, nil
}

func (c *Client) createNotebook(ctx context.Context, name string) (*notebook, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	var nb notebook
	resp, err := req.
		SetBody(map[string]string{"displayName": name}).
		SetResult(&nb).
		Post("/me/onenote/notebooks")
	if err != nil {
		return nil, fmt.Errorf("create notebook: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("create notebook", resp)
	}
	return &nb, nil
}

func (c *Client) createSection(ctx context.Context, notebookID, name string) (*section, error) {
	req, err := c.request(ctx)
	if err != nil {
		return nil, err
	}
	var sec section
	resp, err := req.
		SetBody(map[string]string{"displayName": name}).
		SetResult(&sec).
		Post("/me/onenote/notebooks/" + notebookID + "/sections")
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	if resp.IsError() {
		return nil, apiError("create section", resp)
	}
	return &sec, nil
}

func retryAfter(resp *resty.Response) time.Duration {
	if v := resp.Header().Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 2 * time.Second
}
