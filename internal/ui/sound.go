package ui

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

type SoundEffect int

const (
	SoundLap SoundEffect = iota
	SoundReset
)

// 全局变量用于音频初始化
var (
	audioOnce    sync.Once
	audioReady   bool
	soundBuffers map[SoundEffect]*beep.Buffer
	volume       float64 = 1.0
)

// 初始化音频系统
func initAudio() error {
	soundBuffers = make(map[SoundEffect]*beep.Buffer)

	sounds := map[SoundEffect]string{
		SoundLap:   "assets/sounds/lap.wav",
		SoundReset: "assets/sounds/reset.wav",
	}

	var format beep.Format
	for effect, path := range sounds {
		f, err := os.Open(path)
		if err != nil {
			return err
		}

		streamer, sformat, err := wav.Decode(f)
		if err != nil {
			f.Close()
			return err
		}

		if format.SampleRate == 0 {
			format = sformat
			if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
				return err
			}
		}

		buffer := beep.NewBuffer(sformat)
		buffer.Append(streamer)
		soundBuffers[effect] = buffer

		streamer.Close()
		f.Close()
	}

	return nil
}

// 懒初始化，失败只告警，不影响计时
func ensureAudio() bool {
	audioOnce.Do(func() {
		if err := initAudio(); err != nil {
			log.Warn("音效初始化失败", "err", err)
			return
		}
		audioReady = true
	})
	return audioReady
}

// 播放指定的音效
func playSound(effect SoundEffect) {
	if !ensureAudio() {
		return
	}
	if buffer, ok := soundBuffers[effect]; ok {
		streamer := buffer.Streamer(0, buffer.Len())

		// 创建音量控制器
		volumeCtrl := &effects.Volume{
			Streamer: streamer,
			Base:     2,
			Volume:   volume,
			Silent:   false,
		}

		speaker.Play(volumeCtrl)
	}
}

// 设置音量
func setVolume(v float64) {
	volume = v
}
