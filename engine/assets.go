package engine

import (
	"log"

	"github.com/lixenwraith/moonwalk/asset"
	"github.com/lixenwraith/moonwalk/audio"
	"github.com/lixenwraith/moonwalk/constants"
	"github.com/lixenwraith/moonwalk/scene"
)

// CharacterModelPath is the avatar model inside the asset root
const CharacterModelPath = "models/stickman.toml"

// Result tags for loads that do not belong to an emitter or texture path
const (
	TagCharacter = "character"
	TagAmbience  = "ambience"
)

// AttachVoices creates a voice for every emitter and the ambience track
func (ctx *GameContext) AttachVoices() {
	if ctx.Audio == nil {
		return
	}
	for _, e := range ctx.Scene.Emitters {
		switch e.Kind {
		case scene.EmitterOscillator:
			e.Voice = ctx.Audio.NewOscillatorVoice(e.Name, constants.OscillatorFrequency, audio.WaveSine, constants.OscillatorVolume)
		case scene.EmitterSample:
			e.Voice = ctx.Audio.NewSampleVoice(e.Name, 1)
		}
	}
	ctx.Ambience = ctx.Audio.NewAmbience(constants.AmbienceDefault)
}

// RequestAssets starts every load the scene needs; results arrive through DrainAssets
func (ctx *GameContext) RequestAssets() {
	if ctx.Assets == nil {
		return
	}
	reqs := ctx.Scene.TextureRequests()
	reqs = append(reqs, asset.Request{Kind: asset.KindModel, Path: CharacterModelPath, Tag: TagCharacter})
	for _, e := range ctx.Scene.Emitters {
		if e.Kind == scene.EmitterSample && e.SoundPath != "" {
			reqs = append(reqs, asset.Request{Kind: asset.KindSound, Path: e.SoundPath, Tag: e.Name})
		}
	}
	reqs = append(reqs, asset.Request{Kind: asset.KindSound, Path: scene.AmbiencePath, Tag: TagAmbience})

	for _, r := range reqs {
		ctx.Assets.Load(r)
		ctx.PendingLoads++
	}
}

// DrainAssets applies every completion event available without blocking
func (ctx *GameContext) DrainAssets() int {
	if ctx.Assets == nil {
		return 0
	}
	results := ctx.Assets.Results()
	n := 0
	for {
		select {
		case res, ok := <-results:
			if !ok {
				return n
			}
			ctx.ApplyResult(res)
			n++
		default:
			return n
		}
	}
}

// ApplyResult installs a loaded asset, or its placeholder when the load failed
func (ctx *GameContext) ApplyResult(res asset.Result) {
	if ctx.PendingLoads > 0 {
		ctx.PendingLoads--
	}
	if res.Err != nil {
		ctx.LoadFailures++
		log.Printf("%v, using placeholder", res.Err)
	}

	switch res.Kind {
	case asset.KindTexture:
		ctx.Scene.ApplyTexture(res.Path, res.Texture)

	case asset.KindModel:
		if ctx.Character != nil {
			return
		}
		model := res.Model
		if model == nil {
			model = asset.DefaultModel()
		}
		ctx.SetCharacter(NewCharacter(model))

	case asset.KindSound:
		if res.Tag == TagAmbience {
			if ctx.Ambience != nil {
				ctx.Ambience.SetSound(res.Sound)
			}
			return
		}
		if e := ctx.Scene.Emitter(res.Tag); e != nil && e.Ready() {
			e.Voice.SetSound(res.Sound)
		}
	}
}
