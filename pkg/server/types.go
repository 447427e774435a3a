package server

// CompressRequest is the JSON body of POST /compress-pdf. Field names match
// what the frontend sends.
type CompressRequest struct {
	PDFFileBase64    string `json:"pdfFileBase64"`
	FileName         string `json:"fileName"`
	CompressionLevel string `json:"compressionLevel"`
}

type CompressResponse struct {
	Body            string `json:"body"`
	IsBase64Encoded bool   `json:"isBase64Encoded"`
	FileName        string `json:"fileName"`
	OriginalSize    int    `json:"originalSize"`
	CompressedSize  int    `json:"compressedSize"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
