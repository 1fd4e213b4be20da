package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os/exec"
)

var execCommand = exec.Command

var _ Strategy = (*VideoFrameRenderer)(nil)

// VideoFrameRenderer grabs the first decodable frame via ffmpeg and then
// treats it exactly as an image. The degraded path re-attempts the grab so a
// transient failure still gets a chance at glyph art.
type VideoFrameRenderer struct{}

func (r VideoFrameRenderer) RenderRich(path string, viewport Viewport) (Content, error) {
	frame, err := grabFrame(path)
	if err != nil {
		return Content{}, err
	}
	return renderPixels(frame, viewport), nil
}

func (r VideoFrameRenderer) RenderDegraded(path string, viewport Viewport) Content {
	frame, err := grabFrame(path)
	if err != nil {
		return NoPreview()
	}
	return renderASCII(frame, viewport)
}

// grabFrame extracts frame 0 as PNG bytes on stdout.
func grabFrame(path string) (image.Image, error) {
	cmd := execCommand(
		"ffmpeg", "-v", "error",
		"-ss", "0", "-i", path,
		"-frames:v", "1",
		"-f", "image2pipe", "-vcodec", "png", "pipe:1",
	)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: ffmpeg", ErrToolUnavailable)
		}
		return nil, fmt.Errorf("%w: ffmpeg: %s", ErrDecodeFailure, err)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%w: empty frame stream", ErrDecodeFailure)
	}
	frame, _, err := image.Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodeFailure, err)
	}
	return frame, nil
}
