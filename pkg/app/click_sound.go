package app

import (
	"bytes"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 提示音参数
const (
	clickDuration  = 40 * time.Millisecond
	clickFrequency = 1800 // Hz
	clickDecay     = 90.0 // 指数衰减系数
	clickVolume    = 0.35
)

// ClickSound 合成的短促提示音
type ClickSound struct {
	player *audio.Player
}

// NewClickSound 合成提示音并创建播放器
func NewClickSound(ctx *audio.Context) *ClickSound {
	pcm := synthesizeClick(ctx.SampleRate())
	player := ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(clickVolume)
	return &ClickSound{player: player}
}

// Play 从头播放
func (c *ClickSound) Play() {
	if err := c.player.Rewind(); err != nil {
		log.Printf("[App] Warning: click sound rewind failed: %v", err)
		return
	}
	c.player.Play()
}

// clickTone 指数衰减的正弦波
func clickTone(rate beep.SampleRate) beep.Streamer {
	i := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			t := float64(i) / float64(rate)
			v := math.Sin(2*math.Pi*clickFrequency*t) * math.Exp(-clickDecay*t)
			samples[j] = [2]float64{v, v}
			i++
		}
		return len(samples), true
	})
	return beep.Take(rate.N(clickDuration), tone)
}

// synthesizeClick 把提示音编码为 Ebitengine 播放器使用的 16 位小端双声道 PCM
func synthesizeClick(rate int) []byte {
	format := beep.Format{SampleRate: beep.SampleRate(rate), NumChannels: 2, Precision: 2}
	tone := clickTone(format.SampleRate)

	var buf bytes.Buffer
	samples := make([][2]float64, 512)
	frame := make([]byte, format.Width())
	for {
		n, ok := tone.Stream(samples)
		for _, sample := range samples[:n] {
			buf.Write(frame[:format.EncodeSigned(frame, sample)])
		}
		if !ok {
			break
		}
	}
	return buf.Bytes()
}
