package server

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/sirupsen/logrus"
)

const (
	// formFileField is the multipart field holding the résumé.
	formFileField = "file"
	// multipartOverhead allows for boundaries and headers around the file part.
	multipartOverhead = 64 << 10
	// maxMemory is the in-memory threshold for multipart parsing.
	maxMemory = 1 << 20
)

// analyzeUpload describes the uploaded file.
type analyzeUpload struct {
	Filename string `validate:"required,max=255"`
	Size     int64  `validate:"gt=0"`
}

var validate = validator.New()

// handleIndex serves the upload form
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderHTML(w, r, http.StatusOK, indexTemplate, indexPage{Accept: s.acceptAttr()})
}

// handleAnalyze extracts text from a multipart upload and reports on it.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	doc, err := s.readUpload(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	format, err := ingestion.DetectFormat(doc.Name, doc.MIME, doc.Data)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !s.allowed[format] {
		s.fail(w, r, &ingestion.InvalidInputError{Name: doc.Name, Message: "file type not accepted: " + string(format)})
		return
	}

	extracted, err := ingestion.ExtractFormat(doc.Name, format, doc.Data)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	report, err := s.analyzer.Run(extracted.Text, ingestion.NewMetadata(doc, extracted))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"request_id": RequestID(r.Context()),
		"report_id":  report.ID,
		"file":       doc.Name,
		"format":     format,
		"mentions":   report.TotalMentions,
		"score":      report.CoverageScore,
	}).Info("analysis complete")

	if wantsJSON(r) {
		s.jsonResponse(w, http.StatusOK, report)
		return
	}
	s.renderHTML(w, r, http.StatusOK, reportTemplate, newReportPage(report))
}

// readUpload reads the "file" part of a multipart form, enforcing the size limit.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*ingestion.Document, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, &ErrUploadTooLarge{Limit: s.maxUploadBytes}
		}
		return nil, &ErrValidation{Field: formFileField, Message: "expected a multipart/form-data upload"}
	}

	file, header, err := r.FormFile(formFileField)
	if err != nil {
		return nil, &ErrValidation{Field: formFileField, Message: "is required"}
	}
	defer file.Close()

	upload := analyzeUpload{Filename: header.Filename, Size: header.Size}
	if err := validate.Struct(upload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].Field() == "Size" {
			return nil, &ErrValidation{Field: formFileField, Message: "is empty"}
		}
		return nil, &ErrValidation{Field: formFileField, Message: "has an invalid name"}
	}
	if header.Size > s.maxUploadBytes {
		return nil, &ErrUploadTooLarge{Limit: s.maxUploadBytes}
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, &ErrUploadTooLarge{Limit: s.maxUploadBytes}
	}

	return &ingestion.Document{
		Name: header.Filename,
		MIME: header.Header.Get("Content-Type"),
		Data: data,
	}, nil
}

// fail logs err and writes it in the format the client asked for.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	entry := s.logger.WithFields(logrus.Fields{
		"request_id": RequestID(r.Context()),
		"status":     status,
	}).WithError(err)
	if status >= http.StatusInternalServerError {
		entry.Error("analysis failed")
	} else {
		entry.Warn("analysis rejected")
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "internal error"
	}

	if wantsJSON(r) {
		s.errorResponse(w, status, message)
		return
	}
	s.renderHTML(w, r, status, errorTemplate, errorPage{Status: status, Message: message})
}

// handleTaxonomy lists the active taxonomy and the fixed keyword lists.
func (s *Server) handleTaxonomy(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.analyzer.Taxonomy().Listing())
}

// wantsJSON reports whether the Accept header asks for application/json.
func wantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == "application/json" {
			return true
		}
	}
	return false
}

// acceptAttr builds the file input's accept attribute from the allowed formats.
func (s *Server) acceptAttr() string {
	var exts []string
	for _, f := range ingestion.AllFormats {
		if !s.allowed[f] {
			continue
		}
		switch f {
		case ingestion.FormatPDF:
			exts = append(exts, ".pdf")
		case ingestion.FormatDOCX:
			exts = append(exts, ".docx")
		case ingestion.FormatHTML:
			exts = append(exts, ".html", ".htm")
		case ingestion.FormatText:
			exts = append(exts, ".txt", ".md")
		}
	}
	return strings.Join(exts, ",")
}

// reportPage is the view model for the HTML report.
type reportPage struct {
	Report        *types.Report
	Score         string
	Categories    []categoryView
	NoSkills      string
	NoSuggestions string
}

type categoryView struct {
	Name     string
	Keywords []keywordView
}

type keywordView struct {
	Title    string
	Mentions string
}
