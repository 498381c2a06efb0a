package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ErrEncode is returned when an image cannot be encoded or written.
var ErrEncode = errors.New("encode failure")

// Encode writes img to w as format ("jpeg" or "png", any case) at the given
// quality fraction in [0, 1].
//
// JPEG quality is round(quality * 100); the standard encoder raises 0 to 1.
// PNG output is always lossless, so the fraction only picks the compression
// effort: 0.9 and above compresses hardest, 0.5 and above uses the default
// level, anything lower favors speed.
func Encode(w io.Writer, img image.Image, format string, quality float64) error {
	f, err := outputFormat(format)
	if err != nil {
		return err
	}

	var opts []imaging.EncodeOption
	switch f {
	case imaging.JPEG:
		opts = append(opts, imaging.JPEGQuality(jpegQuality(quality)))
	case imaging.PNG:
		opts = append(opts, imaging.PNGCompressionLevel(pngCompression(quality)))
	}

	if err := imaging.Encode(w, img, f, opts...); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, format, err)
	}
	return nil
}

// WriteFile encodes img and stores it at path.
//
// The bytes are written to a temporary file in the destination directory and
// renamed into place only after encoding succeeded, so a failed call never
// leaves a partial file at path. A new file is created with mode 0644; an
// existing file keeps its mode.
func WriteFile(path string, img image.Image, format string, quality float64) (err error) {
	if _, err := outputFormat(format); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrEncode, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, img, format, quality); err != nil {
		return err
	}
	if err = tmp.Chmod(outputMode(path)); err != nil {
		return fmt.Errorf("%w: chmod temp file: %v", ErrEncode, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %v", ErrEncode, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: rename into place: %v", ErrEncode, err)
	}
	return nil
}

// outputMode keeps the permissions of an existing destination file; new files
// get 0644.
func outputMode(path string) os.FileMode {
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		return fi.Mode().Perm()
	}
	return 0o644
}

func outputFormat(format string) (imaging.Format, error) {
	f, err := imaging.FormatFromExtension(format)
	if err != nil || (f != imaging.JPEG && f != imaging.PNG) {
		return 0, fmt.Errorf("%w: unsupported output format %q", ErrEncode, format)
	}
	return f, nil
}

func jpegQuality(quality float64) int {
	q := int(math.Round(quality * 100))
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

func pngCompression(quality float64) png.CompressionLevel {
	switch {
	case quality >= 0.9:
		return png.BestCompression
	case quality >= 0.5:
		return png.DefaultCompression
	default:
		return png.BestSpeed
	}
}
