package audio

import (
	"fmt"
	"os/exec"
	"sync"
)

// Players tried in order when none is configured.
var knownPlayers = [][]string{
	{"afplay"},
	{"paplay"},
	{"aplay", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// Player plays artifacts through a system audio player. Only one playback
// runs at a time; starting a new one stops the previous.
type Player struct {
	command []string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewPlayer resolves the player to use. An empty name picks the first known
// player found on PATH.
func NewPlayer(name string) (*Player, error) {
	if name != "" {
		path, err := exec.LookPath(name)
		if err != nil {
			return nil, fmt.Errorf("audio player %q not found in PATH", name)
		}
		return &Player{command: []string{path}}, nil
	}

	for _, candidate := range knownPlayers {
		if path, err := exec.LookPath(candidate[0]); err == nil {
			return &Player{command: append([]string{path}, candidate[1:]...)}, nil
		}
	}
	return nil, fmt.Errorf("no audio player found in PATH (tried afplay, paplay, aplay, ffplay)")
}

// Play starts playback in the background and returns immediately.
func (p *Player) Play(a *Artifact) error {
	p.Stop()

	args := append(append([]string{}, p.command[1:]...), a.Path)
	cmd := exec.Command(p.command[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start audio player: %w", err)
	}

	p.mu.Lock()
	p.cmd = cmd
	p.mu.Unlock()

	go func() {
		_ = cmd.Wait()
		p.mu.Lock()
		if p.cmd == cmd {
			p.cmd = nil
		}
		p.mu.Unlock()
	}()
	return nil
}

// Playing reports whether a playback process is still running.
func (p *Player) Playing() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cmd != nil
}

// Stop kills the current playback, if any. A nil player is a no-op.
func (p *Player) Stop() {
	if p == nil {
		return
	}
	p.mu.Lock()
	cmd := p.cmd
	p.cmd = nil
	p.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
}
