package imgexport

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/imgexport/ocr"
)

// SaveImagesToDisk extracts the base64-encoded images carried by records
// and writes them to outputDir as actual image files, filtered by the
// category flags in opts. Filenames are descriptive, combining the
// sanitized source name, page number, and record index:
//
//	<outputDir>/<category>/<source>_p<page>_<index>.<ext>   (OrganizeByType)
//	<outputDir>/<source>_<category>_p<page>_<index>.<ext>   (flat)
//
// Records without content, records whose category is not enabled, and
// records that fail to decode or write are skipped; failures are logged
// through opts.Logger and never abort the pass. The returned Counts maps
// each category to the number of images saved, plus a "total" key.
//
// An empty records slice logs a warning and returns an empty Counts
// without creating outputDir.
//
// Example:
//
//	opts := imgexport.DefaultSaveOptions()
//	opts.SavePageImages = true
//	counts := imgexport.SaveImagesToDisk(records, "./output/images", opts)
//	fmt.Printf("saved %d images\n", counts[imgexport.CategoryTotal])
func SaveImagesToDisk(records []DocumentResult, outputDir string, opts SaveOptions) Counts {
	log := opts.logger()

	if len(records) == 0 {
		log.Warn("no response data provided")
		return Counts{}
	}

	counts := newCounts()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Error("failed to create output directory", "dir", outputDir, "error", err)
		return counts
	}

	var (
		ocrClient   *ocr.Client
		ocrDisabled bool
	)

	for idx, doc := range records {
		content := doc.Metadata.Content
		if content == "" {
			continue
		}

		baseName := recordBasename(doc.Metadata.SourceMetadata.SourceID, idx)
		pageNumber := doc.Metadata.ContentMetadata.PageNumber

		subtype := doc.Metadata.ContentMetadata.Subtype
		if subtype == "" {
			subtype = CategoryImage
		}

		category, enabled := resolveCategory(doc.DocumentType, subtype, opts)
		if !enabled {
			continue
		}

		format := imageFormat(doc)

		var imagePath string
		if opts.OrganizeByType {
			typeDir := filepath.Join(outputDir, category)
			if err := os.MkdirAll(typeDir, 0755); err != nil {
				log.Error("failed to create category directory", "dir", typeDir, "index", idx, "error", err)
				continue
			}
			imagePath = filepath.Join(typeDir,
				fmt.Sprintf("%s_p%d_%d.%s", baseName, pageNumber, idx, extensionForFormat(format)))
		} else {
			imagePath = filepath.Join(outputDir,
				fmt.Sprintf("%s_%s_p%d_%d.%s", baseName, category, pageNumber, idx, extensionForFormat(format)))
		}

		encoded, err := writeImage(imagePath, content, format)
		if err != nil {
			log.Error("failed to save image",
				"category", category, "source", baseName, "index", idx, "error", err)
			continue
		}

		counts[category]++
		counts[CategoryTotal]++
		log.Debug("saved image", "category", category, "path", imagePath)

		if opts.RecognizeText && !ocrDisabled {
			if ocrClient == nil {
				ocrClient, err = newOCRClient(opts)
				if err != nil {
					log.Warn("text recognition unavailable", "error", err)
					ocrDisabled = true
					continue
				}
			}
			if err := writeTextSidecar(ocrClient, imagePath, encoded); err != nil {
				log.Error("failed to write text sidecar", "path", imagePath, "error", err)
			}
		}
	}

	if ocrClient != nil {
		if err := ocrClient.Close(); err != nil {
			log.Warn("failed to close OCR client", "error", err)
		}
	}

	if opts.LogSummary {
		logSummary(log, counts, outputDir)
	}

	return counts
}

// resolveCategory decides whether a record should be saved and under which
// category. A record with one of the four named subtypes is gated by that
// subtype's flag. A record of document type "image" whose subtype is none
// of the named categories is gated by SaveRawImages and normalized to the
// "image" category. Everything else is excluded.
func resolveCategory(documentType, subtype string, opts SaveOptions) (string, bool) {
	switch subtype {
	case CategoryChart:
		return CategoryChart, opts.SaveCharts
	case CategoryTable:
		return CategoryTable, opts.SaveTables
	case CategoryInfographic:
		return CategoryInfographic, opts.SaveInfographics
	case CategoryPageImage:
		return CategoryPageImage, opts.SavePageImages
	}
	if documentType == DocumentTypeImage && opts.SaveRawImages {
		return CategoryImage, true
	}
	return "", false
}

// imageFormat determines the output encoding for a record: "png" unless
// the record is a raw image, in which case its image metadata names the
// format (lower-cased, default "png").
func imageFormat(doc DocumentResult) string {
	if doc.DocumentType != DocumentTypeImage {
		return "png"
	}
	if doc.Metadata.ImageMetadata == nil || doc.Metadata.ImageMetadata.ImageType == "" {
		return "png"
	}
	return strings.ToLower(doc.Metadata.ImageMetadata.ImageType)
}

// recordBasename derives a filesystem-safe stem from a record's source
// identifier: the final path component with its extension stripped, run
// through ValidFilename. A missing source_id, or one that sanitizes to
// nothing, falls back to "document_<index>".
func recordBasename(sourceID string, idx int) string {
	if sourceID == "" {
		return fmt.Sprintf("document_%d", idx)
	}
	base := filepath.Base(sourceID)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if name := ValidFilename(base); name != "" {
		return name
	}
	return fmt.Sprintf("document_%d", idx)
}

// writeImage decodes the base64 payload, interprets it as a raster image,
// re-encodes it in the target format, and writes it to path. The encoded
// bytes are returned so callers can post-process them without re-reading
// the file. The target format is validated before the file is created, so
// a failure leaves nothing on disk.
func writeImage(path, content, format string) ([]byte, error) {
	data, err := decodeContent(content)
	if err != nil {
		return nil, err
	}

	img, err := decodeImage(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := encodeImage(&buf, img, format); err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

// newOCRClient opens an OCR client configured with the requested language.
func newOCRClient(opts SaveOptions) (*ocr.Client, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	if opts.OCRLanguage != "" {
		if err := client.SetLanguage(opts.OCRLanguage); err != nil {
			closeErr := client.Close()
			return nil, errors.Join(err, closeErr)
		}
	}
	return client, nil
}

// writeTextSidecar runs OCR over encoded image bytes and writes the
// recognized text next to the image file. Images that yield no text
// produce no sidecar.
func writeTextSidecar(client *ocr.Client, imagePath string, encoded []byte) error {
	text, err := client.RecognizeImage(encoded)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	return os.WriteFile(imagePath+".txt", []byte(text+"\n"), 0644)
}

// logSummary emits one line with the total count and one line per nonzero
// category, or a single "nothing saved" line when the pass saved nothing.
func logSummary(log *slog.Logger, counts Counts, outputDir string) {
	if counts[CategoryTotal] == 0 {
		log.Info("no images were saved")
		return
	}
	log.Info("saved images", "total", counts[CategoryTotal], "dir", outputDir)
	for _, category := range categories {
		if counts[category] > 0 {
			log.Info("saved category", "category", category, "count", counts[category])
		}
	}
}
