package asset

// DefaultCharacterModel is the embedded stick-figure model used when no model file resolves
// Frames are drawn bottom-aligned on the character's feet, facing right; the renderer mirrors them for left
const DefaultCharacterModel = `
name = "stickman"

[[clips]]
name = "idle"
frame_duration = 0.6
frames = [
  [" o ", "/|\\", "/ \\"],
  [" o ", "/|\\", "| |"],
]

[[clips]]
name = "run"
frame_duration = 0.15
frames = [
  [" o ", "/|_", "/ >"],
  [" o_", "/| ", " |\\"],
  [" o ", "_|\\", "< \\"],
  ["_o ", " |\\", "/| "],
]
`
