// Package file2json converts tabular and text files (spreadsheet,
// delimited-text, JSON, plain text) into a normalized JSON representation.
package file2json

// DefaultSampleRows is the number of rows sampled during content sniffing.
const DefaultSampleRows = 5

// Options configures a conversion.
type Options struct {
	// Format forces the parsing branch, bypassing detection. Empty means
	// auto-detect. A forced format is used as-is: forcing one that does not
	// match the content surfaces as the chosen codec's parse error.
	Format Format
	// OutputPath, when set, makes Convert write the JSON there and return a
	// confirmation message instead of the JSON string.
	OutputPath string
	// MaxFileSize rejects inputs larger than this many bytes before parsing.
	// 0 means unlimited.
	MaxFileSize int64
	// SampleRows bounds the content-sniffing sample. 0 means
	// DefaultSampleRows.
	SampleRows int
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		SampleRows: DefaultSampleRows,
	}
}

func (o Options) sampleRows() int {
	if o.SampleRows > 0 {
		return o.SampleRows
	}
	return DefaultSampleRows
}
