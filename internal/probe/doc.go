// Package probe provides ffprobe-based media inspection. A single JSON
// call per file yields the container format, the primary video stream and
// the audio streams; the renderer uses it to open the source, preserve its
// frame rate and decide whether there is audio to copy.
package probe
