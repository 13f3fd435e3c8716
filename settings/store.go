// seehuhn.de/go/dotclock - a dot-matrix watchface renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package settings

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ugorji/go/codec"
	bolt "go.etcd.io/bbolt"

	"seehuhn.de/go/dotclock/weather"
)

var (
	bucketName  = []byte("settings")
	settingsKey = []byte{0, 0, 0, 1}
	weatherKey  = []byte{0, 0, 0, 2}
)

var msgpackHandle = &codec.MsgpackHandle{}

// Store keeps the settings and the last weather report in a bbolt
// database file.
type Store struct {
	db *bolt.DB
}

// Open opens the database at path, creating it if necessary.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("settings: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (st *Store) Close() error {
	return st.db.Close()
}

// Load returns the stored settings, or the defaults if none have been
// saved yet.
func (st *Store) Load() (Settings, error) {
	s := Defaults()
	found, err := st.get(settingsKey, &s)
	if err != nil {
		return Defaults(), err
	}
	if !found {
		return Defaults(), nil
	}
	return s, nil
}

// Save replaces the stored settings.
func (st *Store) Save(s Settings) error {
	return st.put(settingsKey, s)
}

// LoadWeather returns the last stored weather report.  If none has been
// stored, the condition is [weather.Loading].
func (st *Store) LoadWeather() (weather.Report, error) {
	r := weather.Report{Condition: weather.Loading}
	_, err := st.get(weatherKey, &r)
	return r, err
}

// SaveWeather stores a weather report.
func (st *Store) SaveWeather(r weather.Report) error {
	return st.put(weatherKey, r)
}

// Update applies m to the stored settings.  The settings are written back
// if they changed, and a weather report carried by m is stored as well.
// The new settings are returned together with the result of
// [Settings.Apply].
func (st *Store) Update(m *Message) (Settings, bool, *weather.Report, error) {
	s, err := st.Load()
	if err != nil {
		return s, false, nil, err
	}
	changed, w := s.Apply(m)
	if changed {
		if err := st.Save(s); err != nil {
			return s, changed, w, err
		}
	}
	if w != nil {
		if err := st.SaveWeather(*w); err != nil {
			return s, changed, w, err
		}
	}
	return s, changed, w, nil
}

func (st *Store) get(key []byte, v any) (bool, error) {
	var data []byte
	err := st.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		if val := b.Get(key); val != nil {
			data = bytes.Clone(val)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("settings: %w", err)
	}
	if data == nil {
		return false, nil
	}
	if err := codec.NewDecoderBytes(data, msgpackHandle).Decode(v); err != nil {
		return false, fmt.Errorf("settings: decode: %w", err)
	}
	return true, nil
}

func (st *Store) put(key []byte, v any) error {
	var data []byte
	if err := codec.NewEncoderBytes(&data, msgpackHandle).Encode(v); err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	err := st.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}
