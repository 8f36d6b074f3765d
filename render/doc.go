// Package render rasterizes sampled signals into line plots.
//
// Plots are drawn onto an [image.RGBA] with a frame, a zero line, tick
// marks, a title and a legend, and can be encoded as PNG with [EncodePNG].
package render
