// Package serialization saves and loads MLP checkpoints.
//
// A checkpoint holds the network architecture, every parameter value,
// optional optimizer state and training metadata.
//
//	Format Structure:
//	  [4 bytes: Magic "BSCL"]
//	  [4 bytes: Version (uint32 LE)]
//	  [8 bytes: Payload Size (uint64 LE)]
//	  [32 bytes: SHA-256 of the payload]
//	  [Payload: protobuf-encoded google.protobuf.Struct]
//
// The payload is marshaled deterministically, so saving the same checkpoint
// twice produces identical bytes.
//
// Example usage:
//
//	ckpt := serialization.FromMLP(mlp)
//	ckpt.Meta.Epoch = 100
//	if err := serialization.Save("xor.bscl", ckpt); err != nil {
//	    log.Fatal(err)
//	}
//
//	loaded, err := serialization.Load("xor.bscl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mlp, err := loaded.Restore()
package serialization
