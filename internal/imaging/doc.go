// Package imaging implements the two figure transformations: cropping a
// bounding box out of an image file, and composing four images into a
// captioned 2x2 grid.
//
// Decoding and encoding go through github.com/disintegration/imaging, so
// PNG, JPEG, GIF, TIFF and BMP are read, and the output format follows the
// output file's extension.
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner, X increasing
// rightward and Y downward. A BoundingBox is a top-left corner plus a
// width and height; the pixels it selects are [X, X+Width) x [Y, Y+Height).
//
// # Cropping
//
// CropFile never rejects a box for being out of range. It clamps the box
// to the image instead:
//
//	x      = clamp(x, 0, imageWidth)
//	y      = clamp(y, 0, imageHeight)
//	width  = clamp(width, 0, imageWidth-x)
//	height = clamp(height, 0, imageHeight-y)
//
// The result is written beside the input with a "_cropped" suffix before
// the extension. A box that clamps to zero area returns ErrEmptyRegion.
//
// # Composing
//
// Compose stretches each image to Layout.CellWidth x Layout.CellHeight and
// paints it at its cell, then renders the caption in the band below:
//
//	+----------+ +----------+
//	|  cell 0  | |  cell 1  |
//	+----------+ +----------+
//	 caption 0    caption 1
//
//	+----------+ +----------+
//	|  cell 2  | |  cell 3  |
//	+----------+ +----------+
//	 caption 2    caption 3
//
// Captions use the preferred TrueType font when it can be loaded and fall
// back to a built-in 7x13 bitmap face otherwise.
//
// # Error Handling
//
// Images that cannot be read or decoded are reported as *LoadError, which
// carries the offending path. Use errors.As to inspect it.
package imaging
