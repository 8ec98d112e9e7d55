package serialization

import "time"

// Format constants.
const (
	MagicBytes    = "BSCL"
	FormatVersion = 1

	// ChecksumSize is the length of the SHA-256 payload digest.
	ChecksumSize = 32
	// headerSize covers magic, version, payload size and checksum.
	headerSize = 4 + 4 + 8 + ChecksumSize

	// MaxPayloadSize is the upper bound accepted by Decode.
	MaxPayloadSize = 64 << 20
)

// Checkpoint is everything needed to resume training or run inference.
type Checkpoint struct {
	Model     ModelSpec          // Architecture
	Params    map[string]float64 // Parameter values keyed by nn.Parameter name
	Optimizer *OptimizerState    // Optional optimizer state
	Meta      Meta               // Training progress
}

// ModelSpec describes an MLP architecture.
type ModelSpec struct {
	InFeatures int    // Input width
	Sizes      []int  // Output width of each layer
	Activation string // Hidden activation name (nn.Activation.String)
}

// OptimizerState captures optimizer hyperparameters and buffers.
type OptimizerState struct {
	Type  string             // "sgd", "momentum", "adam"
	LR    float64            // Learning rate at save time
	State map[string]float64 // optim.Stateful.StateDict output
}

// Meta contains training state information.
type Meta struct {
	Epoch     int       // Training epoch number
	Step      int64     // Optimizer steps taken
	Loss      float64   // Loss value at checkpoint
	CreatedAt time.Time // When the checkpoint was created (UTC, second precision)
}
