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

// Package fontfile locates the font used for the flyer text.
//
// The font is normally kept in a local cache directory.  If the font file
// is missing, it is downloaded once and stored in the cache.  The Go Mono
// font, which is compiled into the program, can be used when no network
// access is available.
package fontfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/gomono"
)

// A Provider returns the data of a TrueType font file.
type Provider interface {
	Load(ctx context.Context) ([]byte, error)
}

// Cache is a Provider which keeps a downloaded font file on disk.
type Cache struct {
	Dir  string // cache directory, created on demand
	File string // file name inside Dir
	URL  string // download location

	// Client is used for the download.
	// If this is nil, a client with a one minute timeout is used.
	Client *http.Client

	// Logger, if not nil, receives progress messages.
	Logger *zerolog.Logger
}

// Path returns the location of the cached font file.
func (c *Cache) Path() string {
	return filepath.Join(c.Dir, c.File)
}

// Load implements the [Provider] interface.
//
// If the font file is present in the cache, its contents are returned.
// Otherwise the font is downloaded from c.URL and stored in the cache.
func (c *Cache) Load(ctx context.Context) ([]byte, error) {
	log := c.Logger
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	path := c.Path()
	data, err := os.ReadFile(path)
	if err == nil {
		log.Debug().Str("path", path).Msg("using cached font")
		return data, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if c.URL == "" {
		return nil, fmt.Errorf("font %q not found and no download URL given", path)
	}

	err = os.MkdirAll(c.Dir, 0o755)
	if err != nil {
		return nil, err
	}

	log.Info().Str("url", c.URL).Str("path", path).Msg("downloading font")
	data, err = c.download(ctx)
	if err != nil {
		return nil, err
	}

	err = writeAtomic(path, data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Cache) download(ctx context.Context) ([]byte, error) {
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: time.Minute}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &DownloadError{URL: c.URL, Status: resp.Status}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", c.URL, err)
	}
	return data, nil
}

// writeAtomic stores data in a temporary file and renames it to path.
// The file at path is either absent or complete.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".font-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err == nil {
		err = os.Chmod(tmpName, 0o644)
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// DownloadError is returned when the font server does not return the font.
type DownloadError struct {
	URL    string
	Status string
}

func (err *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %s", err.URL, err.Status)
}

// GoMono is a Provider for the Go Mono font.
type GoMono struct{}

// Load implements the [Provider] interface.
func (GoMono) Load(context.Context) ([]byte, error) {
	return gomono.TTF, nil
}

// First returns a Provider which tries the given providers in order, and
// returns the font from the first one which succeeds.
func First(providers ...Provider) Provider {
	return first(providers)
}

type first []Provider

func (pp first) Load(ctx context.Context) ([]byte, error) {
	var errs []error
	for _, p := range pp {
		data, err := p.Load(ctx)
		if err == nil {
			return data, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, errors.New("no font providers")
	}
	return nil, errors.Join(errs...)
}
