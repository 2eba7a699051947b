package main

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/jcorbin/hullpaint/internal/robot"
)

// snapshot records the results of one run: the painted panels, the raw
// output stream, and how many instructions ran.
type snapshot struct {
	Painted int             `cbor:"painted"`
	Panels  []snapshotPanel `cbor:"panels"`
	Outputs []int64         `cbor:"outputs"`
	Steps   uint64          `cbor:"steps"`
}

type snapshotPanel struct {
	X     int   `cbor:"x"`
	Y     int   `cbor:"y"`
	Color int64 `cbor:"color"`
}

var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cbor canonical enc mode: %v", err))
	}
	snapshotEncMode = em
}

// takeSnapshot records rob's panels, if any, along with the output stream.
func takeSnapshot(rob *robot.Robot, outputs []int64, steps uint64) snapshot {
	snap := snapshot{
		Outputs: outputs,
		Steps:   steps,
	}
	if rob != nil {
		panels := rob.Panels()
		snap.Painted = rob.Painted()
		snap.Panels = make([]snapshotPanel, len(panels))
		for i, panel := range panels {
			snap.Panels[i] = snapshotPanel{panel.X, panel.Y, panel.Color}
		}
	}
	return snap
}

func (snap snapshot) marshal() ([]byte, error) {
	return snapshotEncMode.Marshal(snap)
}

func unmarshalSnapshot(data []byte) (snap snapshot, err error) {
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	return snap, nil
}

func (snap snapshot) writeFile(name string) error {
	data, err := snap.marshal()
	if err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return os.WriteFile(name, data, 0o644)
}
