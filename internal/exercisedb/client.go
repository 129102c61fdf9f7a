// Package exercisedb is a read-only client of the wger exercise catalog.
package exercisedb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

const (
	oneHour          = 60 * 60
	catalogCacheTTL  = oneHour
	defaultMaxPages  = 10
	defaultLanguage  = 2
	exercisesLimit   = 200
	imagesLimit      = 1000
	defaultCacheSize = 20
)

var ErrUnexpectedStatus = errors.New("unexpected exercise db status")

type NewClientParams struct {
	BaseURL     string // https://wger.de/api/v2
	Language    int
	MaxPages    int
	CacheSizeMB int
	HTTPClient  *http.Client
}

type Client struct {
	baseURL    string
	language   int
	maxPages   int
	cache      *freecache.Cache
	httpClient *http.Client
}

func NewClient(params NewClientParams) *Client {
	language := params.Language
	if language <= 0 {
		language = defaultLanguage
	}
	maxPages := params.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	cacheSizeMB := params.CacheSizeMB
	if cacheSizeMB <= 0 {
		cacheSizeMB = defaultCacheSize
	}
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(params.BaseURL, "/"),
		language:   language,
		maxPages:   maxPages,
		cache:      freecache.NewCache(cacheSizeMB * 1024 * 1024),
		httpClient: httpClient,
	}
}

type page[T any] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}

func (c *Client) Exercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercisedb.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u := fmt.Sprintf("%s/exercise/?language=%d&limit=%d", c.baseURL, c.language, exercisesLimit)
	return fetchAll[Exercise](ctx, c, fmt.Sprintf("exercises::%d", c.language), u)
}

func (c *Client) Images(ctx context.Context) (_ []Image, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercisedb.images")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u := fmt.Sprintf("%s/exerciseimage/?limit=%d", c.baseURL, imagesLimit)
	return fetchAll[Image](ctx, c, "images", u)
}

func (c *Client) Categories(ctx context.Context) (_ []Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exercisedb.categories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return fetchAll[Category](ctx, c, "categories", c.baseURL+"/exercisecategory/")
}

// Catalog loads exercises, images and categories into one lookup snapshot.
func (c *Client) Catalog(ctx context.Context) (*Catalog, error) {
	exercises, err := c.Exercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("exercises: %w", err)
	}
	images, err := c.Images(ctx)
	if err != nil {
		return nil, fmt.Errorf("images: %w", err)
	}
	categories, err := c.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return NewCatalog(exercises, images, categories), nil
}

// fetchAll follows the next links until the last page or the page cap and
// caches the combined results.
func fetchAll[T any](ctx context.Context, c *Client, cacheKey, firstURL string) ([]T, error) {
	if cached, err := c.cache.Get([]byte(cacheKey)); err == nil {
		var results []T
		if err := json.Unmarshal(cached, &results); err == nil {
			log.Tracef("exercisedb: %s found in cache", cacheKey)
			return results, nil
		} else {
			log.Errorf("exercisedb: unmarshal cached %s: %s", cacheKey, err)
		}
	}

	var (
		results = []T{}
		next    = firstURL
	)
	for pages := 0; next != "" && pages < c.maxPages; pages++ {
		p, err := fetchPage[T](ctx, c, next)
		if err != nil {
			return nil, err
		}
		results = append(results, p.Results...)

		next = ""
		if p.Next != nil && *p.Next != "" {
			next, err = c.resolve(*p.Next)
			if err != nil {
				return nil, err
			}
		}
	}
	if next != "" {
		log.Warnf("exercisedb: %s truncated after %d pages", cacheKey, c.maxPages)
	}

	resultsBytes, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", cacheKey, err)
	}
	if err := c.cache.Set([]byte(cacheKey), resultsBytes, catalogCacheTTL); err != nil {
		log.Errorf("exercisedb: failed to cache %s: %s", cacheKey, err)
	} else {
		log.Debugf("exercisedb: %s cache set with %d entries", cacheKey, len(results))
	}

	return results, nil
}

func fetchPage[T any](ctx context.Context, c *Client, pageURL string) (*page[T], error) {
	log.Debugf("calling exercise db: %s", pageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read exercise db response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	p := &page[T]{}
	if err := json.Unmarshal(respBytes, p); err != nil {
		return nil, fmt.Errorf("unmarshal exercise db response: %w", err)
	}
	return p, nil
}

// resolve keeps relative next links on the configured host.
func (c *Client) resolve(next string) (string, error) {
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(next)
	if err != nil {
		return "", fmt.Errorf("parse next page url: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}
