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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	flyer "github.com/flipdot/ascii-flyers"
	"github.com/flipdot/ascii-flyers/fontfile"
	"github.com/flipdot/ascii-flyers/ics"
	"github.com/flipdot/ascii-flyers/internal/buildinfo"
	"github.com/flipdot/ascii-flyers/internal/logging"
	"github.com/flipdot/ascii-flyers/pdfcanvas"
)

type options struct {
	title       string
	description string
	datetime    string
	eventType   string
	pages       int
	preview     bool
	noCropMarks bool
	verbose     bool

	configFile string
	outDir     string
	fontDir    string
	offline    bool
	writeICS   bool

	now func() time.Time
}

func rootCmd() *cobra.Command {
	opt := &options{now: time.Now}

	cmd := &cobra.Command{
		Use:   "ascii-flyer",
		Short: "Generate ASCII art flyers for hackerspace events",
		Long: `Generate a PDF with a grid of double-sided flyers.
Odd pages carry the invitation, even pages carry the event description.
Print the file double-sided and cut along the crop marks.`,
		Version:       buildinfo.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opt.run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opt.title, "title", "", "the event's title")
	flags.StringVar(&opt.description, "description", "",
		`description shown on the back (use "\n" for line breaks)`)
	flags.StringVar(&opt.datetime, "datetime", "", "date and time of the event")
	flags.StringVar(&opt.eventType, "type", flyer.DefaultType, "kind of event")
	flags.IntVar(&opt.pages, "pages", 1, "number of sheets to generate")
	flags.BoolVar(&opt.preview, "preview", false, "use the accent colour instead of white")
	flags.BoolVar(&opt.noCropMarks, "no-cropmarks", false, "omit the crop marks")
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "show debug output")
	flags.StringVar(&opt.configFile, "config", "", "read layout settings from this YAML file")
	flags.StringVar(&opt.outDir, "out", "out", "output directory")
	flags.StringVar(&opt.fontDir, "font-dir", "ttf", "directory for the downloaded font")
	flags.BoolVar(&opt.offline, "offline", false, "do not download the font, fall back to Go Mono")
	flags.BoolVar(&opt.writeICS, "ics", false, "also write an iCalendar file")

	for _, name := range []string{"title", "description", "datetime"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	cmd.AddCommand(defaultsCmd())
	return cmd
}

func defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default layout settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flyer.WriteConfig(cmd.OutOrStdout(), flyer.DefaultConfig())
		},
	}
}

// run generates the flyer and returns the name of the PDF file.
func (opt *options) run(ctx context.Context) (string, error) {
	log := logging.Setup(opt.verbose)

	cfg := flyer.DefaultConfig()
	if opt.configFile != "" {
		var err error
		cfg, err = flyer.LoadConfig(opt.configFile)
		if err != nil {
			return "", err
		}
	}

	ev := &flyer.Event{
		Title:       opt.title,
		Description: opt.description,
		DateTime:    opt.datetime,
		Type:        opt.eventType,
	}
	drawOpt := &flyer.Options{
		Sheets:    opt.pages,
		CropMarks: !opt.noCropMarks,
		Preview:   opt.preview,
		Logger:    &log,
	}
	if drawOpt.Sheets < 1 {
		return "", fmt.Errorf("invalid --pages %d: %w", opt.pages, flyer.ErrNoSheets)
	}

	// Check all inputs before anything is written to disk.
	layout, err := flyer.NewLayout(cfg, ev, nil)
	if err != nil {
		return "", err
	}

	ttf, err := opt.fonts(cfg, &log).Load(ctx)
	if err != nil {
		return "", fmt.Errorf("font %q: %w", cfg.FontName, err)
	}

	err = os.MkdirAll(opt.outDir, 0o755)
	if err != nil {
		return "", err
	}
	today := opt.now()
	pdfName := filepath.Join(opt.outDir, flyer.OutputName(today, ".pdf"))
	err = writePDF(pdfName, layout, drawOpt, ttf)
	if err != nil {
		return "", err
	}
	log.Info().Str("file", pdfName).Int("pages", 2*opt.pages).Msg("flyer written")

	if opt.writeICS {
		icsName := filepath.Join(opt.outDir, flyer.OutputName(today, ".ics"))
		err = writeICS(icsName, ev, today)
		if err != nil {
			return "", err
		}
		log.Info().Str("file", icsName).Msg("calendar entry written")
	}

	return pdfName, nil
}

func (opt *options) fonts(cfg *flyer.Config, log *zerolog.Logger) fontfile.Provider {
	cache := &fontfile.Cache{
		Dir:    opt.fontDir,
		File:   cfg.FontFile,
		URL:    cfg.FontURL,
		Logger: log,
	}
	if opt.offline {
		cache.URL = ""
		return fontfile.First(cache, fontfile.GoMono{})
	}
	return cache
}

func writePDF(fileName string, layout *flyer.Layout, opt *flyer.Options, ttf []byte) error {
	c, err := pdfcanvas.Create(fileName, layout.Config.PageWidth, layout.Config.PageHeight, ttf)
	if err != nil {
		return err
	}
	err = layout.Draw(c, opt)
	err = errors.Join(err, c.Close())
	if err != nil {
		os.Remove(fileName)
		return err
	}
	return nil
}

func writeICS(fileName string, ev *flyer.Event, stamp time.Time) error {
	out, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = ics.Write(out, ev, &ics.Options{Stamp: stamp})
	err = errors.Join(err, out.Close())
	if err != nil {
		os.Remove(fileName)
		return err
	}
	return nil
}
