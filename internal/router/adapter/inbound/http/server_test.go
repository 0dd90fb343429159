package http_handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anthanhphan/go-stream-router/internal/router/config"
	"github.com/anthanhphan/go-stream-router/internal/router/domain"
	"github.com/anthanhphan/go-stream-router/internal/router/port"
	"github.com/anthanhphan/go-stream-router/pkg/hashkey"
	"lukechampine.com/uint128"
)

type stubRouterService struct {
	shardID     domain.PartitionID
	shardOK     bool
	descriptor  domain.PartitionDescriptor
	getOK       bool
	updates     int
	invalidates int

	lastSeenAt    time.Time
	lastPredicted *domain.PartitionID
}

func (s *stubRouterService) ShardID(uint128.Uint128) (domain.PartitionID, bool) {
	return s.shardID, s.shardOK
}

func (s *stubRouterService) GetShard(domain.PartitionID) (domain.PartitionDescriptor, bool) {
	return s.descriptor, s.getOK
}

func (s *stubRouterService) Invalidate(seenAt time.Time, predicted *domain.PartitionID) {
	s.invalidates++
	s.lastSeenAt = seenAt
	s.lastPredicted = predicted
}

func (s *stubRouterService) Update() {
	s.updates++
}

func (s *stubRouterService) Stats() port.RouterStats {
	return port.RouterStats{State: "ready", OpenShards: 2, CachedShards: 3}
}

func newTestServer(t *testing.T, svc port.RouterService) *Server {
	t.Helper()
	hasher, err := hashkey.New(hashkey.AlgorithmMD5)
	if err != nil {
		t.Fatalf("hasher: %v", err)
	}
	cfg := config.DefaultConfig()
	cfg.Stream.Name = "orders"
	return NewServer(cfg, svc, hasher)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestRouteByHash(t *testing.T) {
	svc := &stubRouterService{shardID: 7, shardOK: true}
	s := newTestServer(t, svc)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/route?hash=12345", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["shard_id"] != "shardId-000000000007" {
		t.Errorf("shard_id = %v", body["shard_id"])
	}
	if body["hash_key"] != "12345" {
		t.Errorf("hash_key = %v", body["hash_key"])
	}
}

func TestRouteByKey(t *testing.T) {
	svc := &stubRouterService{shardID: 1, shardOK: true}
	s := newTestServer(t, svc)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/route?key=partition-key-1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["hash_key"] != "33365116028791453877729010807000998774" {
		t.Errorf("hash_key = %v, want md5 mapping of the key", body["hash_key"])
	}
}

func TestRouteMissingParams(t *testing.T) {
	s := newTestServer(t, &stubRouterService{})

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/route", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRouteBadHash(t *testing.T) {
	s := newTestServer(t, &stubRouterService{})

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/route?hash=zzz", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRouteNoMapping(t *testing.T) {
	s := newTestServer(t, &stubRouterService{shardOK: false})

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/route?hash=1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetShard(t *testing.T) {
	svc := &stubRouterService{
		getOK: true,
		descriptor: domain.PartitionDescriptor{
			ID: 3,
			Range: domain.HashRange{
				Start: uint128.From64(0),
				End:   uint128.From64(99),
			},
			SequenceRange: domain.SequenceNumberRange{Start: "100", End: "200"},
		},
	}
	s := newTestServer(t, svc)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/shards/shardId-000000000003", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["shard_id"] != "shardId-000000000003" {
		t.Errorf("shard_id = %v", body["shard_id"])
	}
	if body["ending_hash_key"] != "99" {
		t.Errorf("ending_hash_key = %v", body["ending_hash_key"])
	}
	if body["closed"] != true {
		t.Errorf("closed = %v, want true", body["closed"])
	}
}

func TestGetShardNotFound(t *testing.T) {
	s := newTestServer(t, &stubRouterService{})

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/shards/shardId-000000000009", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetShardBadID(t *testing.T) {
	s := newTestServer(t, &stubRouterService{})

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/shards/bogus", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestInvalidate(t *testing.T) {
	svc := &stubRouterService{}
	s := newTestServer(t, svc)

	payload := `{"seen_at_ms": 1700000000000, "predicted_shard": "shardId-000000000005"}`
	req := httptest.NewRequest(http.MethodPost, "/invalidate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", resp.StatusCode)
	}

	if svc.invalidates != 1 {
		t.Fatalf("invalidates = %d, want 1", svc.invalidates)
	}
	if svc.lastSeenAt.UnixMilli() != 1700000000000 {
		t.Errorf("seenAt = %v", svc.lastSeenAt)
	}
	if svc.lastPredicted == nil || *svc.lastPredicted != 5 {
		t.Errorf("predicted = %v, want 5", svc.lastPredicted)
	}
}

func TestInvalidateEmptyBodyDefaultsToNow(t *testing.T) {
	svc := &stubRouterService{}
	s := newTestServer(t, svc)

	before := time.Now()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodPost, "/invalidate", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", resp.StatusCode)
	}
	if svc.lastSeenAt.Before(before) {
		t.Errorf("seenAt = %v, want defaulted to now", svc.lastSeenAt)
	}
	if svc.lastPredicted != nil {
		t.Errorf("predicted = %v, want nil", svc.lastPredicted)
	}
}

func TestInvalidateBadPredictedShard(t *testing.T) {
	svc := &stubRouterService{}
	s := newTestServer(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/invalidate", strings.NewReader(`{"predicted_shard": "bogus"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if svc.invalidates != 0 {
		t.Errorf("invalidates = %d, want 0", svc.invalidates)
	}
}

func TestRefresh(t *testing.T) {
	svc := &stubRouterService{}
	s := newTestServer(t, svc)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodPost, "/refresh", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", resp.StatusCode)
	}
	if svc.updates != 1 {
		t.Errorf("updates = %d, want 1", svc.updates)
	}
}

func TestStatus(t *testing.T) {
	s := newTestServer(t, &stubRouterService{})

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/status", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["state"] != "ready" {
		t.Errorf("state = %v, want ready", body["state"])
	}
	if body["open_shards"] != float64(2) {
		t.Errorf("open_shards = %v", body["open_shards"])
	}
}
