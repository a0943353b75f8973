package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/videogenius/internal/client/client"
	"github.com/dmitrijs2005/videogenius/internal/client/models"
	"github.com/dmitrijs2005/videogenius/internal/filex"
)

// Values offered when the user leaves a numeric prompt empty.
const (
	defaultWidth  = 640
	defaultHeight = 640
	defaultLength = 81
	defaultFPS    = 16

	maxImageSize = 20 << 20
)

// getInt and readFile are test seams.
var (
	getInt   = GetInt
	readFile = filex.ReadFile
)

// requireLogin fails before any prompt when there is no credential.
func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return client.Unauthorized("log in to generate videos")
	}
	return nil
}

// TextToVideo prompts for a text request and submits it.
func (a *App) TextToVideo(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	prompt, err := getSimpleText(a.reader, "Describe the video", a.out)
	if err != nil {
		return err
	}
	style, err := getSimpleText(a.reader, "Style", a.out)
	if err != nil {
		return err
	}

	req := models.TextRequest{Prompt: prompt, Style: style}
	if err := a.readDimensions(&req.Width, &req.Height, &req.Length, &req.FPS); err != nil {
		return err
	}

	return a.submit(ctx, req)
}

// ImageToVideo prompts for an image file and its prompts and submits them.
func (a *App) ImageToVideo(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Image file (jpeg, png or webp)", a.out)
	if err != nil {
		return err
	}
	image, err := readFile(path, maxImageSize)
	if err != nil {
		return err
	}
	positive, err := getSimpleText(a.reader, "Positive prompt (optional)", a.out)
	if err != nil {
		return err
	}
	negative, err := getSimpleText(a.reader, "Negative prompt (optional)", a.out)
	if err != nil {
		return err
	}

	req := models.ImageRequest{Image: image, Filename: path, PositivePrompt: positive, NegativePrompt: negative}
	if err := a.readDimensions(&req.Width, &req.Height, &req.Length, &req.FPS); err != nil {
		return err
	}

	return a.submit(ctx, req)
}

func (a *App) readDimensions(width, height, length, fps *int) error {
	for _, f := range []struct {
		prompt string
		def    int
		dst    *int
	}{
		{"Width", defaultWidth, width},
		{"Height", defaultHeight, height},
		{"Length (frames)", defaultLength, length},
		{"FPS", defaultFPS, fps},
	} {
		v, err := getInt(a.reader, f.prompt, f.def, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

// submit sends req with the current credential. A credential that went
// away while prompting is passed through as empty and rejected by the
// service.
func (a *App) submit(ctx context.Context, req models.GenerationRequest) error {
	token, _ := a.authService.CurrentCredential()

	printlnFn("Submitting...")
	res, err := a.genService.Submit(ctx, token, req)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Job %s accepted. Charged %d points, %d left.",
		res.JobID, res.PointsConsumed, res.RemainingPoints))
	return nil
}
