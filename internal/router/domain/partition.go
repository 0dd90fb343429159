package domain

import (
	"fmt"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

// PartitionIDPrefix is the fixed prefix every directory-issued partition
// identifier carries; the numeric suffix is zero-padded to 12 digits.
const PartitionIDPrefix = "shardId"

// PartitionID is the numeric identity of a stream partition.
type PartitionID uint64

// ParsePartitionID converts a directory identifier string such as
// "shardId-000000000042" into its numeric form.
func ParsePartitionID(s string) (PartitionID, error) {
	_, suffix, found := strings.Cut(s, "-")
	if !found {
		return 0, fmt.Errorf("malformed partition id %q: missing separator", s)
	}
	n, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed partition id %q: %w", s, err)
	}
	return PartitionID(n), nil
}

// String renders the canonical directory form of the id.
func (id PartitionID) String() string {
	return fmt.Sprintf("%s-%012d", PartitionIDPrefix, uint64(id))
}

// HashRange is the inclusive [Start, End] interval of 128-bit hash-key
// values a partition accepts. Start <= End always holds for directory
// descriptors.
type HashRange struct {
	Start uint128.Uint128
	End   uint128.Uint128
}

// SequenceNumberRange is the open or closed sequence-number interval of a
// partition. End is empty while the partition still accepts records.
type SequenceNumberRange struct {
	Start string
	End   string
}

// PartitionDescriptor is one partition as reported by the directory
// service.
type PartitionDescriptor struct {
	ID            PartitionID
	Range         HashRange
	SequenceRange SequenceNumberRange
}

// IsClosed reports whether the partition has stopped accepting records.
// The directory filters for open partitions server-side, but a partition
// can close between query and response, in which case the descriptor
// carries a closing sequence number.
func (d PartitionDescriptor) IsClosed() bool {
	return d.SequenceRange.End != ""
}
