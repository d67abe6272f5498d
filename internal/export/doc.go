// Package export plays one press cycle headlessly at a fixed frame rate and
// writes every frame as a PNG image.
package export
