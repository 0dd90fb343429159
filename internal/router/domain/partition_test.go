package domain

import (
	"testing"

	"lukechampine.com/uint128"
)

func TestParsePartitionID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PartitionID
		wantErr bool
	}{
		{name: "canonical", input: "shardId-000000000042", want: 42},
		{name: "zero", input: "shardId-000000000000", want: 0},
		{name: "large", input: "shardId-001234567890", want: 1234567890},
		{name: "no separator", input: "shardId000000000042", wantErr: true},
		{name: "non numeric suffix", input: "shardId-abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePartitionID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePartitionID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePartitionID(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestPartitionIDString(t *testing.T) {
	if got := PartitionID(42).String(); got != "shardId-000000000042" {
		t.Errorf("String() = %q, want %q", got, "shardId-000000000042")
	}

	// Round trip through the canonical rendering.
	id := PartitionID(987654321)
	parsed, err := ParsePartitionID(id.String())
	if err != nil {
		t.Fatalf("round trip parse failed: %v", err)
	}
	if parsed != id {
		t.Errorf("round trip = %d, want %d", parsed, id)
	}
}

func TestParseHashKey(t *testing.T) {
	h, err := ParseHashKey("340282366920938463463374607431768211455")
	if err != nil {
		t.Fatalf("ParseHashKey(max) failed: %v", err)
	}
	if !h.Equals(uint128.Max) {
		t.Errorf("ParseHashKey(max) = %s", h.String())
	}

	h, err = ParseHashKey("0")
	if err != nil {
		t.Fatalf("ParseHashKey(0) failed: %v", err)
	}
	if !h.IsZero() {
		t.Errorf("ParseHashKey(0) = %s", h.String())
	}

	if _, err := ParseHashKey("340282366920938463463374607431768211456"); err == nil {
		t.Error("expected error for value beyond 128 bits")
	}
	if _, err := ParseHashKey("-1"); err == nil {
		t.Error("expected error for negative value")
	}
	if _, err := ParseHashKey("not-a-number"); err == nil {
		t.Error("expected error for non-numeric input")
	}
}

func TestHashKeyFormatRoundTrip(t *testing.T) {
	h := uint128.From64(12345).Lsh(64).Add64(678)
	parsed, err := ParseHashKey(FormatHashKey(h))
	if err != nil {
		t.Fatalf("round trip parse failed: %v", err)
	}
	if !parsed.Equals(h) {
		t.Errorf("round trip = %s, want %s", parsed.String(), h.String())
	}
}

func TestPartitionDescriptorIsClosed(t *testing.T) {
	d := PartitionDescriptor{SequenceRange: SequenceNumberRange{Start: "100"}}
	if d.IsClosed() {
		t.Error("descriptor without ending sequence number must be open")
	}
	d.SequenceRange.End = "200"
	if !d.IsClosed() {
		t.Error("descriptor with ending sequence number must be closed")
	}
}
