package imgexport

import "encoding/json"

// Document type tags carried by ingestion results.
const (
	// DocumentTypeImage marks a result whose payload is a raw raster image
	// extracted from the source document.
	DocumentTypeImage = "image"

	// DocumentTypeStructured marks a result produced by structured-content
	// extraction (charts, tables, infographics rendered as images).
	DocumentTypeStructured = "structured"
)

// Category names used for filtering, counting, and on-disk organization.
// The first five are the keys of a Counts map; CategoryTotal is the
// aggregate key.
const (
	CategoryChart       = "chart"
	CategoryTable       = "table"
	CategoryInfographic = "infographic"
	CategoryPageImage   = "page_image"
	CategoryImage       = "image"
	CategoryTotal       = "total"
)

// categories lists the per-type counter keys in reporting order.
var categories = []string{
	CategoryChart,
	CategoryTable,
	CategoryInfographic,
	CategoryPageImage,
	CategoryImage,
}

// DocumentResult is one entry of ingestion output describing a single
// extracted content unit (page image, chart, table, etc.) and its metadata.
type DocumentResult struct {
	// DocumentType tags the kind of extraction that produced this result,
	// e.g. "image" or "structured".
	DocumentType string `json:"document_type,omitempty"`

	// Metadata carries the payload and its descriptive fields.
	Metadata Metadata `json:"metadata"`
}

// Metadata holds the optional base64 payload of a DocumentResult along with
// source, content, and image descriptors. All fields are optional; a result
// without Content is the normal "nothing to export" case.
type Metadata struct {
	// Content is the base64-encoded image payload, if any.
	Content string `json:"content,omitempty"`

	// SourceMetadata identifies the originating file.
	SourceMetadata SourceMetadata `json:"source_metadata,omitempty"`

	// ContentMetadata classifies the extracted content.
	ContentMetadata ContentMetadata `json:"content_metadata,omitempty"`

	// ImageMetadata describes the encoded raster, present only for
	// results with DocumentType "image".
	ImageMetadata *ImageMetadata `json:"image_metadata,omitempty"`
}

// SourceMetadata identifies the file a result was extracted from.
type SourceMetadata struct {
	SourceID string `json:"source_id,omitempty"`
}

// ContentMetadata classifies an extracted image and locates it in the
// source document.
type ContentMetadata struct {
	// Subtype is one of "chart", "table", "infographic", "page_image",
	// or empty/other for generic images.
	Subtype string `json:"subtype,omitempty"`

	// PageNumber is the page the content was extracted from (0-based
	// as produced by the ingestion service).
	PageNumber int `json:"page_number,omitempty"`
}

// ImageMetadata names the encoded raster format of an image result.
type ImageMetadata struct {
	// ImageType is the encoding name, e.g. "png" or "jpeg".
	// Defaults to "png" when empty.
	ImageType string `json:"image_type,omitempty"`
}

// Response is the envelope returned by the ingestion service, holding the
// document results under its "data" field.
type Response struct {
	Data []DocumentResult `json:"data"`
}

// ParseResponse decodes a raw JSON response body into a Response.
//
// Example:
//
//	resp, err := imgexport.ParseResponse(body)
//	if err != nil {
//	    // handle error
//	}
//	counts := imgexport.SaveImagesFromResponse(resp, "./images", imgexport.DefaultSaveOptions())
func ParseResponse(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Counts maps category names (chart, table, infographic, page_image, image,
// total) to the number of images saved under each. The "total" key always
// equals the sum of the five category keys.
type Counts map[string]int

// newCounts returns a Counts with every key present and zero.
func newCounts() Counts {
	counts := make(Counts, len(categories)+1)
	for _, category := range categories {
		counts[category] = 0
	}
	counts[CategoryTotal] = 0
	return counts
}
