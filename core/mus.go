// Copyright 2026 FinSolve Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the types persisted in the metadata store.
// Timestamps are encoded as Unix microseconds.

var stringSliceMUS = ord.NewSliceSer[string](ord.String)

// IDMUS serializes store-assigned IDs.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

// ChunkRecordMUS serializes chunk provenance records.
var ChunkRecordMUS = chunkRecordMUS{}

type chunkRecordMUS struct{}

func (chunkRecordMUS) Marshal(v ChunkRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.ChunkID, bs)
	n += ord.String.Marshal(v.FileName, bs[n:])
	n += ord.String.Marshal(v.RoleScope, bs[n:])
	n += ord.String.Marshal(v.Department, bs[n:])
	n += ord.String.Marshal(v.Source, bs[n:])
	n += varint.Int64.Marshal(v.CreatedAt.UnixMicro(), bs[n:])
	return n
}

func (chunkRecordMUS) Unmarshal(bs []byte) (v ChunkRecord, n int, err error) {
	var n1 int
	if v.ChunkID, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if v.FileName, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.RoleScope, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Department, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Source, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var micros int64
	if micros, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	v.CreatedAt = time.UnixMicro(micros).UTC()
	return
}

func (chunkRecordMUS) Size(v ChunkRecord) (size int) {
	size = ord.String.Size(v.ChunkID)
	size += ord.String.Size(v.FileName)
	size += ord.String.Size(v.RoleScope)
	size += ord.String.Size(v.Department)
	size += ord.String.Size(v.Source)
	size += varint.Int64.Size(v.CreatedAt.UnixMicro())
	return size
}

// ChatLogEntryMUS serializes audit log entries.
var ChatLogEntryMUS = chatLogEntryMUS{}

type chatLogEntryMUS struct{}

func (chatLogEntryMUS) Marshal(v ChatLogEntry, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Username, bs[n:])
	n += ord.String.Marshal(v.Role, bs[n:])
	n += ord.String.Marshal(v.Query, bs[n:])
	n += stringSliceMUS.Marshal(v.ChunkIDs, bs[n:])
	n += ord.String.Marshal(v.AnswerPreview, bs[n:])
	n += varint.Int64.Marshal(v.CreatedAt.UnixMicro(), bs[n:])
	return n
}

func (chatLogEntryMUS) Unmarshal(bs []byte) (v ChatLogEntry, n int, err error) {
	var n1 int
	if v.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if v.Username, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Role, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Query, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.ChunkIDs, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.AnswerPreview, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var micros int64
	if micros, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	v.CreatedAt = time.UnixMicro(micros).UTC()
	return
}

func (chatLogEntryMUS) Size(v ChatLogEntry) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Username)
	size += ord.String.Size(v.Role)
	size += ord.String.Size(v.Query)
	size += stringSliceMUS.Size(v.ChunkIDs)
	size += ord.String.Size(v.AnswerPreview)
	size += varint.Int64.Size(v.CreatedAt.UnixMicro())
	return size
}
