package matrix

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rdyla/pfi-technologymatrix/internal/platform/logger"
	"github.com/rdyla/pfi-technologymatrix/internal/platform/restdb"
)

type fakeStore struct {
	listResult  []json.RawMessage
	listErr     error
	listQueries []restdb.Query

	createResult json.RawMessage
	createErr    error
	createdDocs  []any

	deleteErr error
	deletedID string
}

func (f *fakeStore) List(ctx context.Context, q restdb.Query) ([]json.RawMessage, error) {
	f.listQueries = append(f.listQueries, q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeStore) Create(ctx context.Context, doc any) (json.RawMessage, error) {
	f.createdDocs = append(f.createdDocs, doc)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

func newTestService(t *testing.T, store *fakeStore) *Service {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() {
		log.Sync()
	})
	svc := NewService(log, store)
	svc.now = func() time.Time { return testNow }
	return svc
}

func rawRecords(t *testing.T, records ...Record) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, 0, len(records))
	for _, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			t.Fatalf("marshal record: %v", err)
		}
		out = append(out, raw)
	}
	return out
}

func TestServiceListBuildsFilterAndSort(t *testing.T) {
	store := &fakeStore{listResult: rawRecords(t,
		Record{ID: "rec-1", CustomerName: "Initech"},
	)}
	svc := newTestService(t, store)

	records, err := svc.List(context.Background(), " Initech ", "CRM")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 || records[0].ID != "rec-1" {
		t.Fatalf("records: got=%+v", records)
	}

	if len(store.listQueries) != 1 {
		t.Fatalf("queries: want=1 got=%d", len(store.listQueries))
	}
	q := store.listQueries[0]
	if q.Filter["customerName"] != "Initech" {
		t.Fatalf("customerName filter: got=%q", q.Filter["customerName"])
	}
	if q.Filter["category"] != "CRM" {
		t.Fatalf("category filter: got=%q", q.Filter["category"])
	}
	if q.Sort == nil || q.Sort.Field != "createdAt" || q.Sort.Direction != restdb.Descending {
		t.Fatalf("sort: got=%+v", q.Sort)
	}
}

func TestServiceListNoFiltersOmitsFilter(t *testing.T) {
	store := &fakeStore{listResult: []json.RawMessage{}}
	svc := newTestService(t, store)

	if _, err := svc.List(context.Background(), "", ""); err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(store.listQueries[0].Filter) != 0 {
		t.Fatalf("filter: want empty got=%v", store.listQueries[0].Filter)
	}
}

func TestServiceCreatePersistsDerivedRecord(t *testing.T) {
	stored := Record{
		ID:            "rec-5",
		CustomerName:  "Initech",
		Category:      "CRM",
		Solution:      "Salesforce",
		TechnicalFit:  5,
		FunctionalFit: 5,
		TimeCode:      "I",
		TimeLabel:     "Invest",
	}
	raw, _ := json.Marshal(stored)
	store := &fakeStore{createResult: raw}
	svc := newTestService(t, store)

	record, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if record.ID != "rec-5" {
		t.Fatalf("id: want=rec-5 got=%q", record.ID)
	}

	if len(store.createdDocs) != 1 {
		t.Fatalf("created docs: want=1 got=%d", len(store.createdDocs))
	}
	posted, ok := store.createdDocs[0].(Record)
	if !ok {
		t.Fatalf("posted doc type: got=%T", store.createdDocs[0])
	}
	if posted.TimeCode != "I" {
		t.Fatalf("posted timeCode: want=I got=%q", posted.TimeCode)
	}
	if posted.CreatedAt != "2024-06-01T12:00:00Z" {
		t.Fatalf("posted createdAt: got=%q", posted.CreatedAt)
	}
}

func TestServiceCreateValidationStopsBeforeStore(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)

	input := validInput()
	input.TechnicalFit = Rating{Value: 6, Present: true, Numeric: true}
	_, err := svc.Create(context.Background(), input)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got=%T", err)
	}
	if len(store.createdDocs) != 0 {
		t.Fatalf("store should not be called on invalid input")
	}
}

func TestServiceDeletePassesThrough(t *testing.T) {
	wantErr := &restdb.OperationError{Code: restdb.OperationErrorUpstream, StatusCode: 404}
	store := &fakeStore{deleteErr: wantErr}
	svc := newTestService(t, store)

	err := svc.Delete(context.Background(), "rec-404")
	if !errors.Is(err, wantErr) {
		t.Fatalf("error: want=%v got=%v", wantErr, err)
	}
	if store.deletedID != "rec-404" {
		t.Fatalf("deleted id: want=rec-404 got=%q", store.deletedID)
	}
}

func TestServiceCustomerSummaries(t *testing.T) {
	store := &fakeStore{listResult: []json.RawMessage{
		json.RawMessage(`{"customerName":"initech"}`),
		json.RawMessage(`{"customerName":"Acme"}`),
		json.RawMessage(`{"customerName":" Acme "}`),
		json.RawMessage(`{"customerName":""}`),
		json.RawMessage(`{"customerName":"Bluth Co"}`),
	}}
	svc := newTestService(t, store)

	summaries, err := svc.CustomerSummaries(context.Background())
	if err != nil {
		t.Fatalf("CustomerSummaries: %v", err)
	}

	want := []CustomerSummary{
		{CustomerName: "Acme", Count: 2},
		{CustomerName: "Bluth Co", Count: 1},
		{CustomerName: "initech", Count: 1},
	}
	if len(summaries) != len(want) {
		t.Fatalf("summaries length: want=%d got=%d (%+v)", len(want), len(summaries), summaries)
	}
	for i := range want {
		if summaries[i] != want[i] {
			t.Fatalf("summary[%d]: want=%+v got=%+v", i, want[i], summaries[i])
		}
	}

	q := store.listQueries[0]
	if len(q.Fields) != 1 || q.Fields[0] != "customerName" {
		t.Fatalf("projection: want=[customerName] got=%v", q.Fields)
	}
}
