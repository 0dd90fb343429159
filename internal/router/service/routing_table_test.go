package service

import (
	"testing"

	"lukechampine.com/uint128"
)

func TestRoutingTableLookup(t *testing.T) {
	table := routingTable{
		{endingHashKey: uint128.From64(9), id: 1},
		{endingHashKey: uint128.From64(19), id: 2},
		{endingHashKey: uint128.From64(29), id: 3},
	}

	tests := []struct {
		hash   uint64
		wantID uint64
		wantOK bool
	}{
		{hash: 0, wantID: 1, wantOK: true},
		{hash: 9, wantID: 1, wantOK: true},
		{hash: 10, wantID: 2, wantOK: true},
		{hash: 19, wantID: 2, wantOK: true},
		{hash: 20, wantID: 3, wantOK: true},
		{hash: 29, wantID: 3, wantOK: true},
		{hash: 30, wantOK: false},
	}

	for _, tt := range tests {
		id, ok := table.lookup(uint128.From64(tt.hash))
		if ok != tt.wantOK {
			t.Errorf("lookup(%d) ok = %v, want %v", tt.hash, ok, tt.wantOK)
			continue
		}
		if ok && uint64(id) != tt.wantID {
			t.Errorf("lookup(%d) = %d, want %d", tt.hash, id, tt.wantID)
		}
	}
}

func TestRoutingTableLookupEmpty(t *testing.T) {
	var table routingTable
	if _, ok := table.lookup(uint128.Zero); ok {
		t.Error("empty table must not resolve any hash key")
	}
}

func TestRoutingTableLookupMax(t *testing.T) {
	table := routingTable{
		{endingHashKey: uint128.Max, id: 7},
	}
	id, ok := table.lookup(uint128.Max)
	if !ok || id != 7 {
		t.Errorf("lookup(max) = %d, %v; want 7, true", id, ok)
	}
}
