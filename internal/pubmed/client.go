// Package pubmed implements the literature searcher against the NCBI
// E-utilities API: esearch resolves a query to article IDs, efetch
// retrieves titles and abstracts for them.
package pubmed

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/agrovista/agridiag/pkg/agridiag/query"
)

const defaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// DefaultEmail is sent to NCBI when the caller provides no contact
// address; E-utilities asks for one on every request.
const DefaultEmail = "demo@example.com"

// Client queries PubMed via E-utilities. It retries with exponential
// backoff when the API rate-limits (HTTP 429).
type Client struct {
	httpClient *http.Client
	baseURL    string
	email      string
	apiKey     string
	retryDelay time.Duration
}

// New constructs a PubMed client. An empty email falls back to
// DefaultEmail; the API key is optional.
func New(email, apiKey string) *Client {
	return NewWithClient(email, apiKey, &http.Client{Timeout: 15 * time.Second})
}

// NewWithClient constructs a client using the supplied HTTP client,
// useful for overriding the default timeout.
func NewWithClient(email, apiKey string, httpClient *http.Client) *Client {
	if email == "" {
		email = DefaultEmail
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		email:      email,
		apiKey:     apiKey,
		retryDelay: 1 * time.Second,
	}
}

// SetBaseURL overrides the E-utilities endpoint. Intended for tests.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = strings.TrimRight(base, "/")
}

// Search resolves the query to article IDs and fetches their titles
// and abstracts, sorted by the API's relevance ranking. Zero matches
// returns (nil, nil); any transport or decode failure returns the
// error untouched so the caller can treat it as an empty level.
func (c *Client) Search(ctx context.Context, q string, maxResults int) ([]query.Article, error) {
	ids, err := c.esearch(ctx, q, maxResults)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return c.efetch(ctx, ids)
}

func (c *Client) esearch(ctx context.Context, q string, maxResults int) ([]string, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", q)
	params.Set("retmax", fmt.Sprintf("%d", maxResults))
	params.Set("sort", "relevance")
	params.Set("retmode", "json")

	body, err := c.get(ctx, c.baseURL+"/esearch.fcgi", params)
	if err != nil {
		return nil, fmt.Errorf("esearch: %w", err)
	}

	var result struct {
		ESearchResult struct {
			IDList []string `json:"idlist"`
		} `json:"esearchresult"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("esearch decode: %w", err)
	}
	return result.ESearchResult.IDList, nil
}

// articleSet mirrors the efetch XML layout. Title and abstract
// fragments are captured as inner XML because PubMed embeds markup
// (<i>, <sup>, ...) inside them.
type articleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Title     xmlFragment   `xml:"MedlineCitation>Article>ArticleTitle"`
	Abstracts []xmlFragment `xml:"MedlineCitation>Article>Abstract>AbstractText"`
}

type xmlFragment struct {
	Inner string `xml:",innerxml"`
}

func (c *Client) efetch(ctx context.Context, ids []string) ([]query.Article, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(ids, ","))
	params.Set("rettype", "abstract")
	params.Set("retmode", "xml")

	body, err := c.get(ctx, c.baseURL+"/efetch.fcgi", params)
	if err != nil {
		return nil, fmt.Errorf("efetch: %w", err)
	}

	var set articleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("efetch decode: %w", err)
	}

	articles := make([]query.Article, 0, len(set.Articles))
	for _, a := range set.Articles {
		fragments := make([]string, 0, len(a.Abstracts))
		for _, f := range a.Abstracts {
			fragments = append(fragments, flatten(f.Inner))
		}
		articles = append(articles, query.Article{
			Title:    flatten(a.Title.Inner),
			Abstract: strings.Join(fragments, " "),
		})
	}
	return articles, nil
}

// get issues one request with 429 backoff, doubling the delay up to
// 30s until the API stops rate-limiting or the context ends.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	params.Set("email", c.email)
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}
	fullURL := endpoint + "?" + params.Encode()

	var resp *http.Response
	delay := c.retryDelay
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err = c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// flatten strips embedded markup from an XML fragment and collapses
// whitespace. Falls back to the raw fragment if parsing fails.
func flatten(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.Join(strings.Fields(fragment), " ")
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return strings.Join(strings.Fields(buf.String()), " ")
}
