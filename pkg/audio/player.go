package audio

import (
	"errors"
	"fmt"
	"os/exec"
	"sync"

	"github.com/datatug/filescope/pkg/media"
	"github.com/datatug/filescope/pkg/render"
	"github.com/sirupsen/logrus"
)

// Player drives an external audio player binary, one process at a time.
// Starting a new file stops whatever is currently playing; toggling the
// same path stops it.
type Player struct {
	mu      sync.Mutex
	current string
	cmd     *exec.Cmd
	Volume  int // 0..100, applied where the player supports it
}

var execCommand = exec.Command

func NewPlayer() *Player {
	return &Player{Volume: 100}
}

// Playing returns the path currently being played, or "".
func (p *Player) Playing() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Toggle plays the path, or stops it if it is already playing.
func (p *Player) Toggle(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == path {
		p.stopLocked()
		return nil
	}
	return p.playLocked(path)
}

// Play starts the path, stopping any previous playback first.
func (p *Player) Play(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playLocked(path)
}

// Stop kills the current playback process, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) playLocked(path string) error {
	p.stopLocked()

	name, args := p.playerCommand(path)
	cmd := execCommand(name, args...)
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%s: %w", name, render.ErrToolUnavailable)
		}
		return err
	}
	p.cmd = cmd
	p.current = path
	logrus.WithField("path", path).WithField("player", name).Debug("audio playback started")

	go func() {
		err := cmd.Wait()
		p.mu.Lock()
		if p.cmd == cmd {
			p.cmd = nil
			p.current = ""
		}
		p.mu.Unlock()
		if err != nil {
			logrus.WithError(err).WithField("path", path).Debug("audio playback ended")
		}
	}()
	return nil
}

func (p *Player) stopLocked() {
	if p.cmd != nil && p.cmd.Process != nil {
		if err := p.cmd.Process.Kill(); err != nil {
			logrus.WithError(err).Warn("audio: failed to kill player process")
		}
	}
	p.cmd = nil
	p.current = ""
}

// playerCommand routes by extension: aplay handles wav, mpg123 the common
// compressed formats with a scaled volume factor, ffplay everything else.
func (p *Player) playerCommand(path string) (string, []string) {
	switch media.Ext(path) {
	case ".wav":
		return "aplay", []string{"-q", path}
	case ".mp3", ".flac", ".ogg":
		factor := p.Volume * 32768 / 100
		return "mpg123", []string{"-q", "-f", fmt.Sprint(factor), path}
	default:
		return "ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
	}
}
