// SPDX-License-Identifier: MIT

// Package surface is the pixel surface the rasterizer draws into.
//
// Canvas implements raster.PixelSetter over an image.RGBA with a current
// draw color, an overwrite/XOR mode and silent clipping. Device
// coordinates have the origin at the bottom-left; Image and Save return
// the usual top-left orientation. Save picks the encoder from the file
// extension and can upscale with nearest-neighbour sampling.
//
// Color is a packed 0xRRGGBB value with the classic palette (Black, White,
// Red, ...). ParseColor reads names, hex and decimal forms.
package surface
