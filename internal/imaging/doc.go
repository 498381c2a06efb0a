// Package imaging provides the raster capabilities used by the transform pipeline.
//
// This package wraps third-party imaging libraries behind small, swappable
// capabilities: decoding, smoothing, cropping, resizing, encoding, and a
// perceptual difference measure. All operations work with standard Go
// image.Image types and use a coordinate system where (0,0) is at the top-left
// corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, Min is inclusive (top-left) and Max is exclusive (bottom-right)
//
// # Backends
//
// Smoothing and resizing are available from several libraries. Each backend is
// registered under a short name so callers can pick one from configuration:
//
//	Smoothers: "gaussian" (bild), "sigma" (disintegration/imaging)
//	Resizers:  "imaging", "bild", "xdraw", "nfnt" (all bilinear)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Every other operation is
// stateless and returns a new image, so it may be called concurrently on
// different images.
//
// # Error Handling
//
// Decoder and encoder failures wrap ErrDecode and ErrEncode. A crop rectangle
// that is not fully contained in the source image fails with ErrOutOfBounds.
package imaging
