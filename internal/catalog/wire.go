package catalog

// Fetcher metadata-dump wire types. Only the fields Grabarr reads are
// declared; the real document carries far more.

type dumpDoc struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Channel    string       `json:"channel"`
	Uploader   string       `json:"uploader"`
	Duration   float64      `json:"duration"`
	UploadDate string       `json:"upload_date"`
	WebpageURL string       `json:"webpage_url"`
	Formats    []dumpFormat `json:"formats"`

	// Entries is set for playlist documents. Grabarr probes the first
	// entry since per-video renditions vary across a playlist anyway.
	Entries []dumpDoc `json:"entries"`
}

type dumpFormat struct {
	FormatID       string  `json:"format_id"`
	Ext            string  `json:"ext"`
	VCodec         string  `json:"vcodec"`
	ACodec         string  `json:"acodec"`
	Height         int     `json:"height"`
	ABR            float64 `json:"abr"`
	TBR            float64 `json:"tbr"`
	Filesize       int64   `json:"filesize"`
	FilesizeApprox int64   `json:"filesize_approx"`
	FormatNote     string  `json:"format_note"`
}
