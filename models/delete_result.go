// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownDeleteShape is returned when a delete payload matches none of the
// shapes the content API is known to produce.
var ErrUnknownDeleteShape = errors.New("unknown delete response shape")

// DeleteResult is the decoded payload of a delete mutation.
//
// The content API answers deletes in three shapes depending on the entity:
//   - an array of the deleted records, e.g. [{"id":"1","title":"A"}];
//   - an object listing the ids, e.g. {"deletedIds":["1","2"]};
//   - a bare acknowledgement, e.g. {"success":true}.
//
// HasIDs distinguishes "the server listed what it deleted" from a bare
// acknowledgement, where the caller has to fall back on the ids it requested.
type DeleteResult struct {
	IDs     []ID
	HasIDs  bool
	Success bool
}

type deletedRecord struct {
	ID ID `json:"id"`
}

type deleteObject struct {
	DeletedIDs []ID  `json:"deletedIds"`
	Success    *bool `json:"success"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DeleteResult) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*d = DeleteResult{}

	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	switch b[0] {
	case '[':
		var records []deletedRecord
		if err := json.Unmarshal(b, &records); err != nil {
			return fmt.Errorf("decode deleted records: %w", err)
		}
		d.HasIDs = true
		d.Success = true
		for _, r := range records {
			if !r.ID.IsZero() {
				d.IDs = append(d.IDs, r.ID)
			}
		}
		return nil

	case '{':
		var obj deleteObject
		if err := json.Unmarshal(b, &obj); err != nil {
			return fmt.Errorf("decode delete object: %w", err)
		}
		switch {
		case obj.DeletedIDs != nil:
			d.HasIDs = true
			d.Success = true
			d.IDs = obj.DeletedIDs
		case obj.Success != nil:
			d.Success = *obj.Success
		default:
			return ErrUnknownDeleteShape
		}
		return nil
	}

	return ErrUnknownDeleteShape
}
