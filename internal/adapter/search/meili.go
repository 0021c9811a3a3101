package search

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"
)

const (
	healthInterval = 10 * time.Second
	requestTimeout = 5 * time.Second
)

// PageDocument is the shape of a page inside the Meilisearch index.
type PageDocument struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Section   string `json:"section"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// Meili indexes and searches pages through Meilisearch.
type Meili struct {
	client  meili.ServiceManager
	index   string
	log     *slog.Logger
	healthy atomic.Bool
	done    chan struct{}
}

// NewMeili creates a Meilisearch client, configures the page index and starts
// a background health monitor. An unreachable server is not an error: the
// client reports itself unhealthy until it recovers.
func NewMeili(url, apiKey, index string, logger *slog.Logger) *Meili {
	m := &Meili{
		client: meili.New(url,
			meili.WithAPIKey(apiKey),
			meili.WithCustomClient(&http.Client{Timeout: requestTimeout}),
		),
		index: index,
		log:   logger.With("component", "meilisearch"),
		done:  make(chan struct{}),
	}

	if _, err := m.client.Health(); err != nil {
		m.log.Warn("meilisearch unavailable", slog.String("url", url), slog.String("error", err.Error()))
	} else {
		m.healthy.Store(true)
		m.configureIndex()
	}

	go m.healthLoop()
	return m
}

func (m *Meili) configureIndex() {
	if _, err := m.client.CreateIndex(&meili.IndexConfig{Uid: m.index, PrimaryKey: "id"}); err != nil {
		m.log.Debug("create index (may already exist)", slog.String("error", err.Error()))
	}

	idx := m.client.Index(m.index)
	filterable := []interface{}{"projectId", "published"}
	if _, err := idx.UpdateFilterableAttributes(&filterable); err != nil {
		m.log.Warn("update filterable attributes", slog.String("error", err.Error()))
	}
	searchable := []string{"title", "section", "content"}
	if _, err := idx.UpdateSearchableAttributes(&searchable); err != nil {
		m.log.Warn("update searchable attributes", slog.String("error", err.Error()))
	}
}

func (m *Meili) healthLoop() {
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			_, err := m.client.Health()
			wasHealthy := m.healthy.Load()
			m.healthy.Store(err == nil)
			if err == nil && !wasHealthy {
				m.log.Info("meilisearch recovered, reconfiguring index")
				m.configureIndex()
			}
		}
	}
}

// Close stops the background health monitor.
func (m *Meili) Close() {
	close(m.done)
}

// Healthy reports whether Meilisearch is reachable.
func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

// Search returns published pages of a project matching text.
func (m *Meili) Search(projectID, text string, limit int) ([]Hit, error) {
	if !m.healthy.Load() {
		return nil, fmt.Errorf("meilisearch unhealthy")
	}

	resp, err := m.client.MultiSearch(&meili.MultiSearchRequest{
		Queries: []*meili.SearchRequest{{
			IndexUID: m.index,
			Query:    text,
			Limit:    int64(limit),
			Filter:   []string{fmt.Sprintf("projectId = %q", projectID), "published = true"},
		}},
	})
	if err != nil {
		m.healthy.Store(false)
		return nil, fmt.Errorf("meilisearch search: %w", err)
	}

	hits := []Hit{}
	for _, sr := range resp.Results {
		for _, h := range sr.Hits {
			hits = append(hits, Hit{
				PageID:  decodeString(h, "id"),
				Title:   decodeString(h, "title"),
				Slug:    decodeString(h, "slug"),
				Section: decodeString(h, "section"),
				Snippet: Snippet(decodeString(h, "content"), text),
			})
		}
	}

	return hits, nil
}

// IndexPage adds or replaces a page document.
func (m *Meili) IndexPage(doc PageDocument) error {
	_, err := m.client.Index(m.index).AddDocuments([]PageDocument{doc}, nil)
	return err
}

// DeletePage removes a page document.
func (m *Meili) DeletePage(id string) error {
	_, err := m.client.Index(m.index).DeleteDocument(id, nil)
	return err
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
