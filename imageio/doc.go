// Package imageio moves pixel buffers between files and the segmentation
// packages. It decodes PPM (P3/P6) and PNG into row-major RGB pixels, encodes
// pixels back as binary PPM or PNG, and paints segmentations with a palette
// of one color per segment.
//
// Failures to open or create a file wrap ErrResourceUnavailable; unreadable
// headers wrap ErrFormat. Neither belongs to the pixelgraph.ErrInvalidInput
// family.
package imageio
