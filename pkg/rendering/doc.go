// Package rendering holds the platform-independent value types that preview
// payloads are built from: colors, geometry and vector paths.
package rendering
