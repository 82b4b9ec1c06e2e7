// ascii-flyers - generate invitation flyers for hackerspace events
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

package fontfile

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestCacheDownload(t *testing.T) {
	fontData := []byte("pretend this is a TrueType font")
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write(fontData)
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "ttf")
	c := &Cache{
		Dir:    dir,
		File:   "test.ttf",
		URL:    srv.URL + "/test.ttf",
		Client: srv.Client(),
	}

	for i := 0; i < 3; i++ {
		data, err := c.Load(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, fontData) {
			t.Errorf("load %d: wrong data %q", i, data)
		}
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("font downloaded %d times", n)
	}

	onDisk, err := os.ReadFile(c.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(onDisk, fontData) {
		t.Errorf("cache file contains %q", onDisk)
	}
}

func TestCacheNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := &Cache{
		Dir:    t.TempDir(),
		File:   "missing.ttf",
		URL:    srv.URL,
		Client: srv.Client(),
	}
	_, err := c.Load(context.Background())
	var dlErr *DownloadError
	if !errors.As(err, &dlErr) {
		t.Fatalf("expected DownloadError, got %v", err)
	}
	if _, err := os.Stat(c.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("failed download left a cache file: %v", err)
	}
}

func TestCacheNoURL(t *testing.T) {
	c := &Cache{Dir: t.TempDir(), File: "x.ttf"}
	_, err := c.Load(context.Background())
	if err == nil {
		t.Error("expected error")
	}
}

func TestFirst(t *testing.T) {
	broken := &Cache{Dir: t.TempDir(), File: "x.ttf"}
	p := First(broken, GoMono{})
	data, err := p.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, gomono.TTF) {
		t.Error("expected Go Mono font data")
	}

	_, err = First(broken).Load(context.Background())
	if err == nil {
		t.Error("expected error")
	}
	_, err = First().Load(context.Background())
	if err == nil {
		t.Error("expected error")
	}
}
