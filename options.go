package imgexport

import "log/slog"

// SaveOptions holds configuration options for saving images to disk.
type SaveOptions struct {
	// SaveCharts saves chart images (default: true)
	SaveCharts bool

	// SaveTables saves table images (default: true)
	SaveTables bool

	// SaveInfographics saves infographic images (default: true)
	SaveInfographics bool

	// SavePageImages saves full-page renderings (default: false)
	SavePageImages bool

	// SaveRawImages saves raw/natural images that carry none of the
	// named subtypes (default: false)
	SaveRawImages bool

	// LogSummary emits summary log lines with per-category counts after
	// a save pass (default: true)
	LogSummary bool

	// OrganizeByType places images in per-category subdirectories of the
	// output directory instead of a flat layout (default: true)
	OrganizeByType bool

	// RecognizeText runs OCR over each saved image and writes the
	// recognized text to a ".txt" sidecar next to the image file.
	// Requires building with the "ocr" tag; without it the feature is
	// logged as unavailable and skipped (default: false)
	RecognizeText bool

	// OCRLanguage sets the Tesseract language(s) for RecognizeText,
	// "+"-separated for multiple (default: "eng")
	OCRLanguage string

	// Logger receives warning, error, and summary lines. Defaults to
	// slog.Default() when nil.
	Logger *slog.Logger
}

// DefaultSaveOptions returns sensible defaults for saving images:
// charts, tables, and infographics are saved into per-category
// subdirectories, page and raw images are skipped, and a summary is logged.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{
		SaveCharts:       true,
		SaveTables:       true,
		SaveInfographics: true,
		SavePageImages:   false,
		SaveRawImages:    false,
		LogSummary:       true,
		OrganizeByType:   true,
		RecognizeText:    false,
		OCRLanguage:      "eng",
		Logger:           nil,
	}
}

// AllImagesOptions returns options that save every image category,
// including page renderings and raw images.
func AllImagesOptions() SaveOptions {
	opts := DefaultSaveOptions()
	opts.SavePageImages = true
	opts.SaveRawImages = true
	return opts
}

// logger returns the configured logger, falling back to slog.Default().
func (o SaveOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
