package models

// Mode discriminates the two generation request variants.
type Mode string

const (
	ModeText  Mode = "text"
	ModeImage Mode = "image"
)

// GenerationRequest is implemented only by TextRequest and ImageRequest.
// The wire encoding is chosen by Mode alone.
type GenerationRequest interface {
	Mode() Mode
	sealed()
}

// TextRequest asks for a video conditioned on a text prompt.
type TextRequest struct {
	Prompt string
	Style  string
	Width  int
	Height int
	// Length is the requested clip length (the original UI calls it duration).
	Length int
	FPS    int
}

func (TextRequest) Mode() Mode { return ModeText }
func (TextRequest) sealed()    {}

// ImageRequest asks for a video conditioned on a source image.
type ImageRequest struct {
	Image []byte
	// Filename is sent with the binary part; a name is derived from the
	// detected image type when empty.
	Filename       string
	PositivePrompt string
	NegativePrompt string
	Width          int
	Height         int
	Length         int
	FPS            int
}

func (ImageRequest) Mode() Mode { return ModeImage }
func (ImageRequest) sealed()    {}

// GenerationResult is the normalized outcome of a submission. The balance
// figures are copied verbatim from the server.
type GenerationResult struct {
	JobID           string
	PointsConsumed  int64
	RemainingPoints int64
}
