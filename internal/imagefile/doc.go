// Package imagefile resolves user-supplied paths into the set of image
// files to process and manages the sibling output directory.
package imagefile
