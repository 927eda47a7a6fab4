package musicbrainz

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tsieber/go-musicbrainz/internal/api"
	"github.com/tsieber/go-musicbrainz/internal/mbxml"
)

// Result is a decoded web service response: nested maps and slices keyed by
// element name, with a singular entity key for lookups ("artist", ...) and
// an "<entity>-list" key for collections. The caller owns the value; the
// library keeps no reference to it.
type Result map[string]any

// LookupOptions configures a lookup by MBID.
type LookupOptions struct {
	// Includes requests related data to be embedded in the response.
	// Each entity accepts its own set of includes.
	Includes []string

	// ReleaseStatus and ReleaseType narrow embedded release results. They
	// are only valid when the lookup pulls releases (or release groups,
	// for ReleaseType) into the response.
	ReleaseStatus []string
	ReleaseType   []string
}

// SearchOptions configures a search operation.
type SearchOptions struct {
	Limit  int
	Offset int

	// Strict requires every field clause to match exactly instead of
	// fuzzily.
	Strict bool
}

// BrowseOptions configures a browse operation.
type BrowseOptions struct {
	Includes []string
	Limit    int
	Offset   int

	// Release filters, valid only for release and release-group browses.
	ReleaseStatus []string
	ReleaseType   []string
}

const defaultBrowseLimit = 100

// lookup performs a single-entity lookup: validate, build, fetch.
func (c *Client) lookup(ctx context.Context, entity, mbid string, opts *LookupOptions) (Result, error) {
	if opts == nil {
		opts = &LookupOptions{}
	}
	if err := checkMBID(entity, mbid); err != nil {
		return nil, err
	}
	if err := checkIncludes(entity, opts.Includes, entities[entity].lookupIncludes); err != nil {
		return nil, err
	}

	query, err := filterParams(entity, opts.Includes, opts.ReleaseStatus, opts.ReleaseType)
	if err != nil {
		return nil, err
	}
	addIncludes(query, opts.Includes)

	result, err := c.do(ctx, &api.Request{
		Method: http.MethodGet,
		Path:   entity + "/" + url.PathEscape(mbid),
		Query:  query,
	})

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		notFound.Entity = entity
		notFound.MBID = mbid
	}
	return result, err
}

// search performs a free-text/field search against the entity's index.
func (c *Client) search(ctx context.Context, entity, query string, fields Fields, opts *SearchOptions) (Result, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}

	full, err := buildSearchQuery(query, fields, opts.Strict)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", full)
	addPagination(params, opts.Limit, opts.Offset)

	return c.do(ctx, &api.Request{
		Method: http.MethodGet,
		Path:   entity,
		Query:  params,
	})
}

// browse lists all entities linked to the single reference entity named in
// links.
func (c *Client) browse(ctx context.Context, entity string, links map[string]string, opts *BrowseOptions) (Result, error) {
	if opts == nil {
		opts = &BrowseOptions{}
	}
	if err := checkIncludes(entity, opts.Includes, entities[entity].browseIncludes); err != nil {
		return nil, err
	}

	params, err := linkParams(links)
	if err != nil {
		return nil, err
	}
	filters, err := filterParams(entity, opts.Includes, opts.ReleaseStatus, opts.ReleaseType)
	if err != nil {
		return nil, err
	}
	for k, vs := range filters {
		params[k] = vs
	}
	addIncludes(params, opts.Includes)
	addPagination(params, opts.Limit, opts.Offset)

	return c.do(ctx, &api.Request{
		Method: http.MethodGet,
		Path:   entity,
		Query:  params,
	})
}

// browseSeq returns an iterator over successive browse pages, advancing the
// offset until the total advertised by the list wrapper is reached. Pages
// are fetched lazily as you iterate.
func (c *Client) browseSeq(ctx context.Context, entity string, links map[string]string, opts *BrowseOptions) iter.Seq2[Result, error] {
	return func(yield func(Result, error) bool) {
		var o BrowseOptions
		if opts != nil {
			o = *opts
		}
		if o.Limit <= 0 {
			o.Limit = defaultBrowseLimit
		}

		for {
			page, err := c.browse(ctx, entity, links, &o)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(page, nil) {
				return
			}

			n, total := pageExtent(page, entity)
			if n == 0 || o.Offset+n >= total {
				return
			}
			o.Offset += n
		}
	}
}

// pageExtent reports how many entries a browse page holds and the total
// count advertised by its list wrapper.
func pageExtent(page Result, entity string) (n, total int) {
	list, ok := page[entity+"-list"].(map[string]any)
	if !ok {
		return 0, 0
	}
	switch items := list[entity].(type) {
	case nil:
	case []any:
		n = len(items)
	default:
		n = 1
	}
	if count, ok := list["count"].(string); ok {
		total, _ = strconv.Atoi(count)
	}
	return n, total
}

func addIncludes(query url.Values, includes []string) {
	if len(includes) > 0 {
		query.Set("inc", strings.Join(includes, ","))
	}
}

func addPagination(query url.Values, limit, offset int) {
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}
}

// do is the single outbound path: configuration checks, rate limit gate,
// transport, status handling, XML decoding. Configuration failures are
// reported before the limiter or any network I/O.
func (c *Client) do(ctx context.Context, req *api.Request) (Result, error) {
	if c.transport.UserAgent == "" {
		return nil, ErrNoUserAgent
	}
	if req.Auth && !c.transport.Credentials.Valid() {
		return nil, ErrNoCredentials
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Msg("musicbrainz request")

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	c.log.Debug().
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Msg("musicbrainz response")

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseError(resp.StatusCode, resp.Body)
	}

	if len(resp.Body) == 0 {
		return Result{}, nil
	}
	doc, err := mbxml.Parse(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("musicbrainz: decoding response: %w", err)
	}
	return Result(doc), nil
}
