package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerOutput mixes cues into the system audio device.
type SpeakerOutput struct {
	mixer *beep.Mixer
}

// OpenSpeaker initializes the audio device. There is one device per
// process; call Close before opening another.
func OpenSpeaker() (*SpeakerOutput, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	out := &SpeakerOutput{mixer: &beep.Mixer{}}
	speaker.Play(out.mixer)
	return out, nil
}

func (s *SpeakerOutput) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *SpeakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}
