// Package transform validates image transformation requests and runs them.
//
// A request is a flat bundle of optional operations (blur, crop, resize) plus
// an output format and quality. Validate checks the bundle as a whole and
// either returns an immutable Request or an error matching
// ErrInvalidParameters. A Pipeline then applies the requested operations to a
// decoded image in a fixed order:
//
//	blur -> crop -> resize -> encode directive
//
// Blurring first keeps the kernel's edge artifacts inside the region that a
// later crop discards. Cropping before resizing makes the resize target apply
// to the framed content.
//
// Every step either succeeds or aborts the whole request; a Result is only
// returned once all requested steps have run.
package transform
