package simulation

import (
	"bytes"
	"encoding/gob"
	"io"

	"github.com/katalvlaran/gocasinns/rng"
)

// persistedState is the on-wire gob envelope: parameters and
// engine-specific state are opaque to Base, so they are pre-encoded by
// the caller into byte strings and carried alongside the RNG's own state.
// The Configuration is never included, per this module's save/load
// contract.
type persistedState struct {
	Parameters  []byte
	RNGState    rng.PCG32
	EngineState []byte
}

// Save serializes (parameters, RNG state, engineState) to w. parameters
// and engineState may be any gob-encodable value (typically the calling
// engine's Parameters struct and its histogram/accumulator state).
// Returns ErrUnsupportedRNG if b's RNG is not a *rng.PCG32.
func (b *Base[C]) Save(w io.Writer, parameters, engineState any) error {
	pcg, ok := b.RNG.(*rng.PCG32)
	if !ok {
		return ErrUnsupportedRNG
	}

	var paramBuf, engineBuf bytes.Buffer
	if err := gob.NewEncoder(&paramBuf).Encode(parameters); err != nil {
		return err
	}
	if err := gob.NewEncoder(&engineBuf).Encode(engineState); err != nil {
		return err
	}

	return gob.NewEncoder(w).Encode(persistedState{
		Parameters:  paramBuf.Bytes(),
		RNGState:    *pcg,
		EngineState: engineBuf.Bytes(),
	})
}

// Load deserializes state written by Save from r, overwriting b's RNG
// state in place and decoding into the caller-supplied parameters and
// engineState pointers. Returns ErrUnsupportedRNG if b's RNG is not a
// *rng.PCG32. Round-tripping through Save/Load and resuming sampling
// against an identically-reconstructed Configuration reproduces the
// original run bit-identically, since the RNG state and every parameter
// influencing acceptance are restored exactly.
func (b *Base[C]) Load(r io.Reader, parameters, engineState any) error {
	pcg, ok := b.RNG.(*rng.PCG32)
	if !ok {
		return ErrUnsupportedRNG
	}

	var ps persistedState
	if err := gob.NewDecoder(r).Decode(&ps); err != nil {
		return err
	}

	*pcg = ps.RNGState
	if err := gob.NewDecoder(bytes.NewReader(ps.Parameters)).Decode(parameters); err != nil {
		return err
	}
	return gob.NewDecoder(bytes.NewReader(ps.EngineState)).Decode(engineState)
}
