// Copyright 2021 The FuseQuery Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine is the boundary to data sources. A relation splits its
// rows into independently producible partitions, one reader each; a
// reader yields batches in ascending row order and nil at exhaustion.
package engine

import (
	"github.com/datafusedev/fuse-query/pkg/container/batch"
	"github.com/datafusedev/fuse-query/pkg/vm/metadata"
	"github.com/datafusedev/fuse-query/pkg/vm/process"
)

type Statistics interface {
	Rows() int64
}

type Reader interface {
	// Read produces the next batch of the partition, or nil when the
	// partition is exhausted. cs carries the reference count to place on
	// each produced vector. Re-reading requires a fresh reader.
	Read(proc *process.Process, cs []uint64, attrs []string) (*batch.Batch, error)
}

type Relation interface {
	Statistics

	ID() string
	Attributes() []metadata.Attribute
	// NewReaders splits the relation into n disjoint partitions covering
	// every row exactly once. Readers are independent and deterministic:
	// identical inputs yield identical batch sequences.
	NewReaders(n int) ([]Reader, error)
}

type Engine interface {
	Relation(name string, args ...uint64) (Relation, error)
}
