package openalexsvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gradmap/gradmap/core"
	"github.com/gradmap/gradmap/core/faculty"
)

const maxConcepts = 5

// Client talks to the OpenAlex REST API (https://api.openalex.org).
type Client struct {
	baseURL string
	http    *http.Client
}

var _ faculty.Research = (*Client)(nil)

func NewClient(conf *core.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.OpenAlex.BaseURL, "/"),
		http:    &http.Client{Timeout: conf.OpenAlex.Timeout},
	}
}

type (
	conceptPayload struct {
		DisplayName string `json:"display_name"`
	}

	authorPayload struct {
		ID           string           `json:"id"`
		DisplayName  string           `json:"display_name"`
		WorksCount   int              `json:"works_count"`
		CitedByCount int              `json:"cited_by_count"`
		XConcepts    []conceptPayload `json:"x_concepts"`
	}

	authorshipPayload struct {
		Author struct {
			ID          string `json:"id"`
			DisplayName string `json:"display_name"`
		} `json:"author"`
	}

	workPayload struct {
		Title           string              `json:"title"`
		PublicationYear int                 `json:"publication_year"`
		DOI             string              `json:"doi"`
		CitedByCount    int                 `json:"cited_by_count"`
		Authorships     []authorshipPayload `json:"authorships"`
	}

	worksResponse struct {
		Results []workPayload `json:"results"`
	}
)

func (c *Client) GetAuthor(ctx context.Context, openAlexID string) (faculty.Author, error) {
	var payload authorPayload
	if err := c.get(ctx, "/authors/"+url.PathEscape(normalizeID(openAlexID)), nil, &payload); err != nil {
		return faculty.Author{}, err
	}

	concepts := make([]string, 0, maxConcepts)
	for _, con := range payload.XConcepts {
		if len(concepts) == maxConcepts {
			break
		}
		concepts = append(concepts, con.DisplayName)
	}
	return faculty.Author{
		ID:           normalizeID(payload.ID),
		DisplayName:  payload.DisplayName,
		WorksCount:   payload.WorksCount,
		CitedByCount: payload.CitedByCount,
		Concepts:     concepts,
	}, nil
}

func (c *Client) GetAuthorWorks(ctx context.Context, openAlexID string, limit int) ([]faculty.Work, error) {
	params := make(url.Values)
	params.Set("filter", "author.id:"+normalizeID(openAlexID))
	params.Set("sort", "publication_date:desc")
	params.Set("per-page", strconv.Itoa(limit))

	var res worksResponse
	if err := c.get(ctx, "/works", params, &res); err != nil {
		return nil, err
	}

	works := make([]faculty.Work, len(res.Results))
	for i, w := range res.Results {
		authors := make([]faculty.WorkAuthor, len(w.Authorships))
		for j, a := range w.Authorships {
			authors[j] = faculty.WorkAuthor{ID: normalizeID(a.Author.ID), Name: a.Author.DisplayName}
		}
		works[i] = faculty.Work{
			Title:        w.Title,
			Year:         w.PublicationYear,
			DOI:          w.DOI,
			CitedByCount: w.CitedByCount,
			Authors:      authors,
		}
	}
	return works, nil
}

// normalizeID strips the full-URL form ("https://openalex.org/A5023147820")
// down to the bare id.
func normalizeID(id string) string {
	if strings.Contains(id, "openalex.org") {
		parts := strings.Split(id, "/")
		return parts[len(parts)-1]
	}
	return id
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrapf(err, "openalex: building request %s", path)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "openalex: GET %s", path)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("openalex: GET %s returned %d", path, res.StatusCode)
	}
	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "openalex: decoding %s", path)
	}
	return nil
}
