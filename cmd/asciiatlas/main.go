// Command asciiatlas builds the character atlas and grid for an ASCII
// shader setup, and can preview the effect on an image without a GPU.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"

	"github.com/gogpu/ascii"
	"github.com/gogpu/ascii/atlas"
	"github.com/gogpu/ascii/glyph"
	"github.com/gogpu/ascii/preset"
	"github.com/gogpu/ascii/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	font      string
	fontFile  string
	fontDir   string
	listFonts bool

	chars    string
	size     int
	viewport string
	cols     int
	rows     int
	align    string

	charColor string
	bgColor   string
	charMode  string
	bgMode    string
	invert    bool

	output    string
	scene     string
	preview   string
	text      bool
	textWidth int
	uniforms  bool
	presetIn  string
	presetOut string

	envFile string
	verbose bool
	help    bool
}

// envPrefix prefixes the --env-file keys: ASCIIATLAS_FONT_DIR sets
// --font-dir.
const envPrefix = "ASCIIATLAS_"

// defaultTextWidth is the --text width when stdout is not a terminal.
const defaultTextWidth = 80

func run(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := pflag.NewFlagSet("asciiatlas", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	def := ascii.DefaultConfig()
	fs.StringVarP(&o.font, "font", "f", def.Font, "Registered font name")
	fs.StringVar(&o.fontFile, "font-file", "", "TTF/OTF file to load and use")
	fs.StringVar(&o.fontDir, "font-dir", "", "Directory of TTF/OTF files to register")
	fs.BoolVar(&o.listFonts, "list-fonts", false, "List registered fonts and exit")
	fs.StringVarP(&o.chars, "chars", "c", def.Characters, "Character set, darkest first")
	fs.IntVarP(&o.size, "size", "s", def.FontSize, "Font size that sets the grid cell size")
	fs.StringVar(&o.viewport, "viewport", "800x600", "Viewport size as WIDTHxHEIGHT")
	fs.IntVar(&o.cols, "cols", 0, "Override grid columns (0 = derive)")
	fs.IntVar(&o.rows, "rows", 0, "Override grid rows (0 = derive)")
	fs.StringVar(&o.align, "align", "center", "Glyph placement in atlas cells: center or top-left")
	fs.StringVar(&o.charColor, "char-color", def.Parameters.CharacterColor, "Fixed character color (#rrggbb)")
	fs.StringVar(&o.bgColor, "bg-color", def.Parameters.BackgroundColor, "Fixed background color (#rrggbb)")
	fs.StringVar(&o.charMode, "char-mode", def.Parameters.CharacterColorMode.String(), "Character color mode: sampled or fixed")
	fs.StringVar(&o.bgMode, "bg-mode", def.Parameters.BackgroundColorMode.String(), "Background color mode: sampled or fixed")
	fs.BoolVar(&o.invert, "invert", false, "Invert glyph coverage")
	fs.StringVarP(&o.output, "output", "o", "", "Write the atlas image to this PNG file")
	fs.StringVar(&o.scene, "scene", "", "Input image for --preview")
	fs.StringVar(&o.preview, "preview", "", "Write a CPU-rendered preview of --scene (PNG, GIF or JPEG by extension)")
	fs.BoolVar(&o.text, "text", false, "Print --scene as text using the character set")
	fs.IntVar(&o.textWidth, "text-width", 0, "Columns for --text (0 = terminal width)")
	fs.BoolVarP(&o.uniforms, "uniforms", "u", false, "Print the shader uniforms")
	fs.StringVar(&o.presetIn, "preset-in", "", "Apply a JSON or YAML preset")
	fs.StringVar(&o.presetOut, "preset-out", "", "Export the settings as a JSON or YAML preset")
	fs.StringVar(&o.envFile, "env-file", "", "Read ASCIIATLAS_* flag defaults from this .env file")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Log debug output to stderr")
	fs.BoolVarP(&o.help, "help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if o.envFile != "" {
		if err := applyEnvFile(fs, o.envFile); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
	}
	if o.help {
		fmt.Fprintln(stdout, "Usage: asciiatlas [options]")
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, fs.FlagUsages())
		return 0
	}

	if o.verbose {
		ascii.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer ascii.SetLogger(nil)
	}

	if err := execute(o, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func execute(o options, stdout io.Writer) error {
	reg, err := loadFonts(&o)
	if err != nil {
		return err
	}
	if o.listFonts {
		for _, name := range reg.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	cfg, err := buildConfig(o)
	if err != nil {
		return err
	}
	s, err := ascii.NewSession(cfg, reg)
	if err != nil {
		return err
	}

	if o.presetIn != "" {
		if err := applyPreset(s, o.presetIn); err != nil {
			return err
		}
	}

	printSummary(stdout, s)

	cs := s.CharacterSet()
	if missing := cs.MissingGlyphs(); len(missing) > 0 {
		fmt.Fprintf(stdout, "missing: %q\n", string(missing))
	}
	if o.output != "" {
		if err := writePNG(o.output, cs.Image()); err != nil {
			return err
		}
	}

	u, err := s.Bind(nil)
	if err != nil {
		return err
	}
	if o.uniforms {
		printUniforms(stdout, u)
	}
	if o.preview != "" {
		if err := writePreview(o, s, u); err != nil {
			return err
		}
	}
	if o.text {
		if err := printText(stdout, o, s); err != nil {
			return err
		}
	}
	if o.presetOut != "" {
		if err := savePreset(s, o.presetOut); err != nil {
			return err
		}
	}
	return nil
}

// loadFonts registers the built-in fonts plus any from --font-dir and
// --font-file. A --font-file becomes the selected font.
func loadFonts(o *options) (*glyph.Registry, error) {
	reg := glyph.NewRegistry()
	if err := glyph.RegisterBuiltins(reg); err != nil {
		return nil, err
	}
	if o.fontDir != "" {
		if err := reg.LoadDir(o.fontDir); err != nil {
			return nil, err
		}
	}
	if o.fontFile != "" {
		name := strings.TrimSuffix(filepath.Base(o.fontFile), filepath.Ext(o.fontFile))
		if _, err := reg.Load(name, o.fontFile); err != nil {
			return nil, err
		}
		o.font = name
	}
	return reg, nil
}

func buildConfig(o options) (ascii.Config, error) {
	cfg := ascii.DefaultConfig()
	w, h, err := parseViewport(o.viewport)
	if err != nil {
		return cfg, err
	}
	align, err := parseAlignment(o.align)
	if err != nil {
		return cfg, err
	}
	charMode, err := render.ParseColorMode(o.charMode)
	if err != nil {
		return cfg, err
	}
	bgMode, err := render.ParseColorMode(o.bgMode)
	if err != nil {
		return cfg, err
	}

	cfg.Font = o.font
	cfg.Characters = o.chars
	cfg.FontSize = o.size
	cfg.ViewportWidth, cfg.ViewportHeight = w, h
	cfg.GridCols, cfg.GridRows = o.cols, o.rows
	cfg.Alignment = align
	cfg.Parameters.CharacterColor = o.charColor
	cfg.Parameters.BackgroundColor = o.bgColor
	cfg.Parameters.CharacterColorMode = charMode
	cfg.Parameters.BackgroundColorMode = bgMode
	cfg.Parameters.Invert = o.invert
	return cfg, nil
}

// parseViewport parses "WIDTHxHEIGHT".
func parseViewport(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid viewport %q: want WIDTHxHEIGHT", s)
	}
	width, err = strconv.Atoi(ws)
	if err != nil || width < 0 {
		return 0, 0, fmt.Errorf("invalid viewport width %q", ws)
	}
	height, err = strconv.Atoi(hs)
	if err != nil || height < 0 {
		return 0, 0, fmt.Errorf("invalid viewport height %q", hs)
	}
	return width, height, nil
}

func parseAlignment(s string) (atlas.Alignment, error) {
	switch s {
	case "center":
		return atlas.AlignCenter, nil
	case "top-left", "topleft":
		return atlas.AlignTopLeft, nil
	}
	return 0, fmt.Errorf("invalid alignment %q: want center or top-left", s)
}

func printSummary(w io.Writer, s *ascii.Session) {
	cs := s.CharacterSet()
	cell := cs.MaxGlyphDimensions()
	ref := cs.ReferenceDimensions()
	b := cs.Image().Bounds()
	g := s.Grid()
	ox, oy := g.Offset()

	fmt.Fprintf(w, "font: %s\n", s.FontName())
	fmt.Fprintf(w, "atlas: %d characters in %dx%d cells of %dx%d px (%dx%d image)\n",
		cs.Len(), cs.Cols(), cs.Rows(), ref.Width, ref.Height, b.Dx(), b.Dy())
	fmt.Fprintf(w, "cell: %dx%d px at size %d\n", cell.Width, cell.Height, cs.FontSize())
	fmt.Fprintf(w, "grid: %dx%d cells, offset (%d,%d)", g.Cols(), g.Rows(), ox, oy)
	if g.Overridden() {
		fmt.Fprint(w, " [override]")
	}
	if g.IsEmpty() {
		fmt.Fprint(w, " [empty]")
	}
	fmt.Fprintln(w)
}

func printUniforms(w io.Writer, u render.Uniforms) {
	values := u.Values()
	for _, name := range render.UniformNames {
		if name == render.NameCharacterTexture {
			continue
		}
		fmt.Fprintf(w, "%s = %v\n", name, values[name])
	}
}

func writePreview(o options, s *ascii.Session, u render.Uniforms) error {
	if o.scene == "" {
		return errors.New("--preview needs --scene")
	}
	scene, err := readImage(o.scene)
	if err != nil {
		return err
	}

	vw, vh := s.Grid().Viewport()
	if vw == 0 || vh == 0 {
		return errors.New("--preview needs a non-empty viewport")
	}
	fitted := image.NewRGBA(image.Rect(0, 0, vw, vh))
	draw.BiLinear.Scale(fitted, fitted.Bounds(), scene, scene.Bounds(), draw.Src, nil)

	r := render.NewRenderer(0)
	defer r.Close()
	dst := image.NewRGBA(fitted.Bounds())
	if err := r.Render(dst, fitted, s.CharacterSet().Image(), u); err != nil {
		return err
	}
	return writeImage(o.preview, dst)
}

// printText writes --scene as lines of characters, darkest character
// for the darkest cells.
func printText(w io.Writer, o options, s *ascii.Session) error {
	if o.scene == "" {
		return errors.New("--text needs --scene")
	}
	if o.textWidth < 0 {
		return fmt.Errorf("invalid --text-width %d", o.textWidth)
	}
	scene, err := readImage(o.scene)
	if err != nil {
		return err
	}

	cols := o.textWidth
	if cols == 0 {
		cols = terminalWidth(w)
	}
	cell := s.CharacterSet().MaxGlyphDimensions()
	rows := render.TextRows(scene.Bounds(), cols, cell.Width, cell.Height)
	for _, line := range render.Text(scene, s.CharacterSet().Characters(), cols, rows, s.Parameters().Invert) {
		fmt.Fprintln(w, line)
	}
	return nil
}

// terminalWidth returns the column count of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultTextWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return defaultTextWidth
	}
	return cols
}

// applyEnvFile sets every flag not given on the command line from the
// matching ASCIIATLAS_* key of the .env file at path.
func applyEnvFile(fs *pflag.FlagSet, path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("env file: %w", err)
	}
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "env-file" || f.Name == "help" {
			return
		}
		v, ok := env[envKey(f.Name)]
		if !ok {
			return
		}
		if err := fs.Set(f.Name, v); err != nil {
			errs = append(errs, fmt.Errorf("env file: %s: %w", envKey(f.Name), err))
		}
	})
	return errors.Join(errs...)
}

func envKey(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

func applyPreset(s *ascii.Session, path string) error {
	format, err := preset.FormatFromPath(path)
	if err != nil {
		return err
	}
	// #nosec G304 -- preset path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := preset.Decode(f, format)
	if err != nil {
		return err
	}
	return p.Apply(s)
}

func savePreset(s *ascii.Session, path string) error {
	format, err := preset.FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := preset.Encode(f, preset.FromSession(s), format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func readImage(path string) (image.Image, error) {
	// #nosec G304 -- image path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// writeImage encodes img by the extension of path: GIF with a
// median-cut palette, JPEG, or PNG for anything else.
func writeImage(path string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return writeGIF(path, img)
	case ".jpg", ".jpeg":
		return encodeFile(path, func(w io.Writer) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
		})
	}
	return writePNG(path, img)
}

func writeGIF(path string, img image.Image) error {
	q := quantize.MedianCutQuantizer{}
	palette := q.Quantize(make(color.Palette, 0, 256), img)
	dst := image.NewPaletted(img.Bounds(), palette)
	draw.FloydSteinberg.Draw(dst, dst.Bounds(), img, img.Bounds().Min)
	return encodeFile(path, func(w io.Writer) error {
		return gif.Encode(w, dst, nil)
	})
}

func writePNG(path string, img image.Image) error {
	return encodeFile(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

func encodeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
