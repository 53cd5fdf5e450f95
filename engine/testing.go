package engine

import (
	"time"

	"github.com/lixenwraith/moonwalk/asset"
	"github.com/lixenwraith/moonwalk/scene"
	"github.com/lixenwraith/moonwalk/vmath"
)

// NewTestContext builds a context over a seeded scene with a mock clock and no audio or loader
// The character is loaded from the embedded model when withCharacter is set
func NewTestContext(seed uint64, withCharacter bool) (*GameContext, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := NewGameContext(scene.New(vmath.NewRand(seed)), nil, nil, mock, 80, 24)
	if withCharacter {
		ctx.SetCharacter(NewCharacter(asset.DefaultModel()))
	}
	return ctx, mock
}
