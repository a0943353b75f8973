package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/videogenius/internal/client/models"
	"github.com/dmitrijs2005/videogenius/internal/common"
)

// TextEncoding selects how text-mode submissions are encoded.
type TextEncoding string

const (
	TextEncodingForm TextEncoding = "form"
	TextEncodingJSON TextEncoding = "json"
)

// Valid reports whether e is a known encoding.
func (e TextEncoding) Valid() bool {
	return e == TextEncodingForm || e == TextEncodingJSON
}

// Multipart field names expected by /generate-video.
const (
	fieldImage          = "image"
	fieldPrompt         = "prompt"
	fieldStyle          = "style"
	fieldPositivePrompt = "positive_prompt"
	fieldNegativePrompt = "negative_prompt"
	fieldWidth          = "width"
	fieldHeight         = "height"
	fieldLength         = "length"
	fieldFPS            = "fps"
)

type textJSONBody struct {
	Prompt   string `json:"prompt"`
	Style    string `json:"style"`
	Duration int    `json:"duration"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FPS      int    `json:"fps"`
}

// encodeGeneration builds the request body and its content type. The
// variant alone decides the encoding.
func encodeGeneration(req models.GenerationRequest, textEnc TextEncoding) (io.Reader, string, error) {
	switch r := req.(type) {
	case models.TextRequest:
		return encodeText(r, textEnc)
	case *models.TextRequest:
		if r == nil {
			return nil, "", Validationf("missing generation request")
		}
		return encodeText(*r, textEnc)
	case models.ImageRequest:
		return encodeImage(r)
	case *models.ImageRequest:
		if r == nil {
			return nil, "", Validationf("missing generation request")
		}
		return encodeImage(*r)
	case nil:
		return nil, "", Validationf("missing generation request")
	default:
		return nil, "", Validationf("unsupported generation request %T", req)
	}
}

func encodeText(r models.TextRequest, enc TextEncoding) (io.Reader, string, error) {
	if enc == TextEncodingJSON {
		b, err := json.Marshal(textJSONBody{
			Prompt:   r.Prompt,
			Style:    r.Style,
			Duration: r.Length,
			Width:    r.Width,
			Height:   r.Height,
			FPS:      r.FPS,
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request: %w", err)
		}
		return bytes.NewReader(b), common.ContentTypeJSON, nil
	}

	return encodeForm(nil, [][2]string{
		{fieldPrompt, r.Prompt},
		{fieldStyle, r.Style},
		{fieldLength, strconv.Itoa(r.Length)},
		{fieldWidth, strconv.Itoa(r.Width)},
		{fieldHeight, strconv.Itoa(r.Height)},
		{fieldFPS, strconv.Itoa(r.FPS)},
	})
}

func encodeImage(r models.ImageRequest) (io.Reader, string, error) {
	mimeType, ext, err := models.DetectImage(r.Image)
	if err != nil {
		return nil, "", Validationf("%s", err.Error())
	}

	filename := filepath.Base(r.Filename)
	if r.Filename == "" || filename == "." || filename == string(filepath.Separator) {
		filename = "image" + ext
	}

	return encodeForm(&filePart{name: fieldImage, filename: filename, contentType: mimeType, data: r.Image},
		[][2]string{
			{fieldPositivePrompt, r.PositivePrompt},
			{fieldNegativePrompt, r.NegativePrompt},
			{fieldWidth, strconv.Itoa(r.Width)},
			{fieldHeight, strconv.Itoa(r.Height)},
			{fieldLength, strconv.Itoa(r.Length)},
			{fieldFPS, strconv.Itoa(r.FPS)},
		})
}

type filePart struct {
	name        string
	filename    string
	contentType string
	data        []byte
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeForm writes an optional binary part followed by the text fields, in
// order, into a multipart/form-data body.
func encodeForm(file *filePart, fields [][2]string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(file.name), quoteEscaper.Replace(file.filename)))
		h.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create %s part: %w", file.name, err)
		}
		if _, err := part.Write(file.data); err != nil {
			return nil, "", fmt.Errorf("failed to write %s part: %w", file.name, err)
		}
	}

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", f[0], err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
