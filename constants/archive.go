package constants

import "time"

// Rasterization and upload budgets.
const (
	// ThumbDPI is the fixed resolution for page thumbnails.
	ThumbDPI = 140

	// MaxImageWidth is the downscale ceiling before an extraction upload.
	MaxImageWidth = 1400

	// MaxUploadBytes is the hard ceiling for one compressed page image.
	MaxUploadBytes = 900_000

	// JPEG quality sweep: start high, step down until the encoded image
	// fits MaxUploadBytes or the floor is reached.
	JPEGStartQuality = 70
	JPEGMinQuality   = 35
	JPEGQualityStep  = 7
)

// Extraction retry budget. Delay grows linearly per attempt.
const (
	MaxExtractAttempts = 6
	ExtractBaseDelay   = 2 * time.Second
)

// Label normalization caps.
const (
	MaxTitleLen = 90
	MaxTitles   = 5
)

// Search tuning.
const (
	// SearchLimit caps both the full-text and the substring result sets.
	SearchLimit = 200

	// FallbackThreshold: the substring scan only runs when the full-text
	// pass produced fewer distinct hits than this.
	FallbackThreshold = 30
)
