package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Raviisinghh-stack/Fico-implementation/internal/audio"
)

var (
	speakOut  string
	speakPlay bool
)

var speakCmd = &cobra.Command{
	Use:   "speak [text]",
	Short: "Read text aloud and save it as a WAV file",
	Long: `Synthesize speech for the given text (or stdin when the only argument
is "-") and write it as a 24 kHz mono WAV file.`,
	Example: `  fico ask "OB52 posting periods" -o markdown | fico speak - --out periods.wav`,
	RunE: runSpeak,
}

func init() {
	speakCmd.Flags().StringVar(&speakOut, "out", "answer.wav", "Output WAV file")
	speakCmd.Flags().BoolVar(&speakPlay, "play", false, "Play the audio after writing it")
}

func runSpeak(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if text == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	wav, err := newService().Speak(ctx, text)
	if err != nil {
		return err
	}

	if err := os.WriteFile(speakOut, wav, 0644); err != nil {
		return fmt.Errorf("write %s: %w", speakOut, err)
	}

	h, err := audio.ParseHeader(wav)
	if err != nil {
		return err
	}
	seconds := h.Format.Duration(int(h.DataSize))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%.1fs)\n", speakOut, seconds)

	if !speakPlay {
		return nil
	}
	return playFile(speakOut, time.Duration(seconds*float64(time.Second)))
}

// playFile plays path and waits for it to finish.
func playFile(path string, length time.Duration) error {
	player, err := audio.NewPlayer(cfg.Audio.Player)
	if err != nil {
		return err
	}
	if err := player.Play(&audio.Artifact{Path: path}); err != nil {
		return err
	}
	deadline := time.Now().Add(length + 2*time.Second)
	for player.Playing() && time.Now().Before(deadline) {
		time.Sleep(100 * time.Millisecond)
	}
	player.Stop()
	return nil
}
