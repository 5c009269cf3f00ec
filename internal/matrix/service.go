package matrix

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/restdb"
)

// Service owns every store interaction for the matrix domain. It is
// stateless; each call is one pass through the document-store client.
type Service struct {
	log   *logger.Logger
	store restdb.Client
	now   func() time.Time
}

func NewService(log *logger.Logger, store restdb.Client) *Service {
	return &Service{
		log:   log.With("service", "MatrixService"),
		store: store,
		now:   time.Now,
	}
}

// List returns records newest-first, filtered by exact customer name and/or
// category when those arguments are non-empty.
func (s *Service) List(ctx context.Context, customerName, category string) ([]Record, error) {
	filter := restdb.Filter{}
	if name := strings.TrimSpace(customerName); name != "" {
		filter["customerName"] = name
	}
	if cat := strings.TrimSpace(category); cat != "" {
		filter["category"] = cat
	}

	docs, err := s.store.List(ctx, restdb.Query{
		Filter: filter,
		Sort:   &restdb.Sort{Field: "createdAt", Direction: restdb.Descending},
	})
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		var record Record
		if err := json.Unmarshal(doc, &record); err != nil {
			s.log.Warn("skipping undecodable record", "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// Create validates the input, derives the quadrant and timestamps, persists
// the record, and returns it as stored (identifier included).
func (s *Service) Create(ctx context.Context, input CreateInput) (Record, error) {
	record, err := ParseCreate(input, s.now())
	if err != nil {
		return Record{}, err
	}

	created, err := s.store.Create(ctx, record)
	if err != nil {
		return Record{}, err
	}

	var stored Record
	if err := json.Unmarshal(created, &stored); err != nil {
		// The store echoed something unexpected; the write itself succeeded,
		// so fall back to what we sent.
		s.log.Warn("decode created record failed", "error", err)
		return record, nil
	}
	return stored, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// CustomerSummaries scans a customerName-only projection of the whole
// collection and counts records per distinct non-empty name, ascending
// alphabetically (case-insensitive).
func (s *Service) CustomerSummaries(ctx context.Context) ([]CustomerSummary, error) {
	docs, err := s.store.List(ctx, restdb.Query{
		Fields: []string{"customerName"},
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(docs))
	for _, doc := range docs {
		var projected struct {
			CustomerName string `json:"customerName"`
		}
		if err := json.Unmarshal(doc, &projected); err != nil {
			continue
		}
		name := strings.TrimSpace(projected.CustomerName)
		if name == "" {
			continue
		}
		counts[name]++
	}

	summaries := make([]CustomerSummary, 0, len(counts))
	for name, count := range counts {
		summaries = append(summaries, CustomerSummary{CustomerName: name, Count: count})
	}
	sort.Slice(summaries, func(i, j int) bool {
		a := strings.ToLower(summaries[i].CustomerName)
		b := strings.ToLower(summaries[j].CustomerName)
		if a == b {
			return summaries[i].CustomerName < summaries[j].CustomerName
		}
		return a < b
	})
	return summaries, nil
}
