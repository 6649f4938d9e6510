package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/gifasm"
	"github.com/bodgit/gifasm/asm"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var (
	errNotFile      = errors.New("input needs to be a file")
	errNoExtension  = errors.New("input file does not have a file extension")
	errNotGIF       = errors.New("input file needs to have the gif extension")
	errNoInputGiven = errors.New("no input file given")
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func checkFilename(file string) error {
	info, err := os.Stat(file)
	if err != nil || !info.Mode().IsRegular() {
		return errNotFile
	}

	ext := filepath.Ext(file)
	switch {
	case ext == "", ext == filepath.Base(file):
		// A dotfile such as ".gif" has a name but no extension
		return errNoExtension
	case !strings.EqualFold(ext, ".gif"):
		return errNotGIF
	}

	return nil
}

// outputs works out which files to write, defaulting to a listing when
// neither mode is chosen
func outputs(input, outfile, paletteFile string, listing, bin bool) (string, gifasm.Files) {
	base := input
	if outfile != "" {
		base = outfile
	}

	paths := gifasm.Paths(base)
	if paletteFile != "" {
		paths.CLUT = paletteFile
	}

	if !bin && !listing {
		listing = true
	}

	var files gifasm.Files
	if listing {
		files.ASM = paths.ASM
	}
	if bin {
		files.CLUT, files.IMG = paths.CLUT, paths.IMG
	}

	return gifasm.Label(paths.IMG), files
}

func exitError(err error) error {
	return cli.NewExitError(color.RedString("%v", err), 1)
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "gifasm"
	app.Usage = "Convert indexed GIF images to assembler listings and raw CLUT/IMG files"
	app.Version = "1.0.0"
	app.ArgsUsage = "FILE"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "asm",
			Aliases: []string{"a"},
			Usage:   "write an assembler listing (default)",
		},
		&cli.BoolFlag{
			Name:    "bin",
			Aliases: []string{"b"},
			Usage:   "write raw palette and image files",
		},
		&cli.StringFlag{
			Name:    "outfile",
			Aliases: []string{"o"},
			Usage:   "base path for the output files and labels",
		},
		&cli.StringFlag{
			Name:    "palette-file",
			Aliases: []string{"p"},
			Usage:   "path for the raw palette file",
		},
		&cli.StringFlag{
			Name:    "assembler",
			EnvVars: []string{"GIFASM_ASSEMBLER"},
			Value:   asm.Default.Name,
			Usage:   fmt.Sprintf("listing syntax, one of %s", strings.Join(asm.Names(), ", ")),
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowAppHelp(c)
			return exitError(errNoInputGiven)
		}

		if err := checkFilename(c.Args().First()); err != nil {
			return exitError(err)
		}

		dialect, err := asm.Lookup(c.String("assembler"))
		if err != nil {
			return exitError(err)
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		label, files := outputs(c.Args().First(), c.String("outfile"), c.String("palette-file"), c.Bool("asm"), c.Bool("bin"))
		logger.Printf("Using label \"%s\"\n", label)

		conv := gifasm.New(gifasm.Options{Dialect: dialect}, logger)
		if err := conv.ConvertFile(c.Args().First(), label, files); err != nil {
			return exitError(err)
		}

		return nil
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
