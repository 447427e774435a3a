package server

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdfpress/pdfpress/pkg/compress"
	"github.com/pdfpress/pdfpress/pkg/util/console"
)

// CompressPDF handles POST /compress-pdf: a base64 PDF in, a compressed
// base64 PDF out.
func (s *Server) CompressPDF(w http.ResponseWriter, r *http.Request) {
	req := new(CompressRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil || req.PDFFileBase64 == "" {
		writeError(w, http.StatusBadRequest, "No PDF file data provided")
		return
	}

	pdf, err := base64.StdEncoding.DecodeString(req.PDFFileBase64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "PDF file data is not valid base64")
		return
	}

	level, err := compress.ParseLevel(req.CompressionLevel)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fileName := req.FileName
	if fileName == "" {
		fileName = "document.pdf"
	}

	result, err := s.compressCached(pdf, level)
	if err != nil {
		console.Errorf("Error compressing PDF: %s", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to compress PDF: %s", err))
		return
	}

	writeJSON(w, http.StatusOK, &CompressResponse{
		Body:            base64.StdEncoding.EncodeToString(result.Data),
		IsBase64Encoded: true,
		FileName:        compress.CompressedFilename(fileName),
		OriginalSize:    result.OriginalSize,
		CompressedSize:  result.CompressedSize,
	})
}

func (s *Server) compressCached(pdf []byte, level compress.Level) (*compress.Result, error) {
	digest := sha256.Sum256(pdf)
	key := hex.EncodeToString(digest[:]) + ":" + string(level)

	if cached, ok := s.results.Get(key); ok {
		console.Debugf("Cache hit for %s", key)
		return cached.(*compress.Result), nil
	}

	result, err := s.compressor.Compress(pdf, level)
	if err != nil {
		return nil, err
	}
	s.results.SetDefault(key, result)
	return result, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		console.Errorf("Failed to encode response: %s", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &ErrorResponse{Error: msg})
}
