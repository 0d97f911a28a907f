/* Copyright 2024 the cspkit authors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package historydb appends one record per CLI invocation to an
// embedded-KV audit log. It persists invocation history only, never any
// part of a term store: a later run cannot skip reconstructing a
// process graph just because an earlier run is recorded here.
package historydb

import (
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"
)

// Record is one logged invocation.
type Record struct {
	Command string `json:"command"`
	Input   string `json:"input"`
	Verdict string `json:"verdict"`
	At      string `json:"at"` // RFC3339
}

var bucketName = []byte("invocations")

// DB is a run-history log backed by a bbolt file.
type DB struct {
	db *bbolt.DB
}

// Open opens (creating if absent) the bbolt file at path.
func Open(path string) (*DB, error) {
	db, err := bbolt.Open(path, 0644, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	if d == nil {
		return nil
	}
	return d.db.Close()
}

// Log appends a Record under a key derived from the current time, so
// that a later Cursor scan returns records in invocation order.
func (d *DB) Log(now time.Time, command, input, verdict string) error {
	rec := Record{Command: command, Input: input, Verdict: verdict, At: now.Format(time.RFC3339Nano)}
	js, err := json.Marshal(&rec)
	if err != nil {
		return err
	}
	key := []byte(now.UTC().Format("20060102T150405.000000000"))
	return d.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		return b.Put(key, js)
	})
}

// Recent returns the last n logged records, most recent last.
func (d *DB) Recent(n int) ([]Record, error) {
	var out []Record
	err := d.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		c := b.Cursor()
		var all []Record
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			all = append(all, rec)
		}
		if n > 0 && len(all) > n {
			all = all[len(all)-n:]
		}
		out = all
		return nil
	})
	return out, err
}
