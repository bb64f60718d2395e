// Package imgexport saves base64-encoded images embedded in
// document-ingestion results to disk as actual image files, with
// configurable filtering by image type and descriptive naming.
//
// Basic usage:
//
//	counts := imgexport.SaveImagesToDisk(records, "./output/images", imgexport.DefaultSaveOptions())
//	fmt.Printf("saved %d charts and %d tables\n",
//	    counts[imgexport.CategoryChart], counts[imgexport.CategoryTable])
//
// With a full response envelope:
//
//	resp, err := imgexport.ParseResponse(body)
//	if err != nil {
//	    // handle error
//	}
//	counts := imgexport.SaveImagesFromResponse(resp, "./output/images", imgexport.DefaultSaveOptions())
//
// Saving never fails as a whole: records that cannot be decoded or
// written are logged and skipped, and every call returns a Counts map.
package imgexport

// SaveImagesFromResponse saves images from a full API response. When the
// response is nil or carries no data, it logs a warning and returns an
// empty Counts without touching the filesystem; otherwise it delegates to
// SaveImagesToDisk with identical options.
//
// Example:
//
//	counts := imgexport.SaveImagesFromResponse(resp, "./images", imgexport.DefaultSaveOptions())
func SaveImagesFromResponse(resp *Response, outputDir string, opts SaveOptions) Counts {
	if resp == nil || len(resp.Data) == 0 {
		opts.logger().Warn("no data found in response")
		return Counts{}
	}
	return SaveImagesToDisk(resp.Data, outputDir, opts)
}

// SaveImagesFromIngestResults saves images from batch ingestion results,
// where each inner slice holds the document results for one source file.
// The sublists are flattened into a single pass preserving their relative
// order, so record indices in filenames run across the whole batch.
//
// Example:
//
//	counts := imgexport.SaveImagesFromIngestResults(results, "./images", imgexport.DefaultSaveOptions())
func SaveImagesFromIngestResults(results [][]DocumentResult, outputDir string, opts SaveOptions) Counts {
	var all []DocumentResult
	for _, docs := range results {
		all = append(all, docs...)
	}
	return SaveImagesToDisk(all, outputDir, opts)
}
