// Package media stores restaurant logos and dish images in object storage
// and serves them back by key.
package media
