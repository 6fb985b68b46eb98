package replay

import (
	"bytes"
	"fmt"
	"os"

	replayfb "github.com/cbodonnell/minigames/flatbuffers/replay"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// FileExtension is the extension used for recordings written to disk.
const FileExtension = ".replay"

// MaxDecodedSize bounds the decompressed size of a recording.
const MaxDecodedSize = 64 << 20

func SerializeRecording(r *Recording) ([]byte, error) {
	b, err := SerializeRecordingFlatbuffer(r)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize recording: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress recording: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func DeserializeRecording(data []byte) (*Recording, error) {
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxDecodedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer decoder.Close()
	b, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed recording: %v", err)
	}

	recording, err := DeserializeRecordingFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize recording: %v", err)
	}

	return recording, nil
}

func SerializeRecordingFlatbuffer(r *Recording) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("recording is nil")
	}
	builder := flatbuffers.NewBuilder(64 + len(r.Inputs)*24)

	inputOffsets := make([]flatbuffers.UOffsetT, len(r.Inputs))
	for i, input := range r.Inputs {
		replayfb.InputStart(builder)
		replayfb.InputAddKind(builder, byte(input.Kind))
		replayfb.InputAddTimestamp(builder, input.Timestamp)
		inputOffsets[i] = replayfb.InputEnd(builder)
	}

	replayfb.RecordingStartInputsVector(builder, len(inputOffsets))
	for i := len(inputOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(inputOffsets[i])
	}
	inputs := builder.EndVector(len(inputOffsets))

	id := builder.CreateString(r.ID.String())

	replayfb.RecordingStart(builder)
	replayfb.RecordingAddId(builder, id)
	replayfb.RecordingAddGame(builder, byte(r.Game))
	replayfb.RecordingAddSeed(builder, r.Seed)
	replayfb.RecordingAddInputs(builder, inputs)
	recordingOffset := replayfb.RecordingEnd(builder)
	builder.Finish(recordingOffset)

	return builder.FinishedBytes(), nil
}

func DeserializeRecordingFlatbuffer(b []byte) (recording *Recording, err error) {
	// the flatbuffers accessors index into b without bounds checks of their own
	defer func() {
		if r := recover(); r != nil {
			recording = nil
			err = fmt.Errorf("malformed recording buffer: %v", r)
		}
	}()
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("recording buffer too short: %d bytes", len(b))
	}

	recordingFlatbuffer := replayfb.GetRootAsRecording(b, 0)

	id, err := uuid.ParseBytes(recordingFlatbuffer.Id())
	if err != nil {
		return nil, fmt.Errorf("failed to parse recording id: %v", err)
	}
	game := Game(recordingFlatbuffer.Game())
	if game != GameZipRun && game != GameStackTower {
		return nil, fmt.Errorf("unknown game: %d", game)
	}

	// every element is at least a 4 byte offset, so a longer vector cannot fit in b
	n := recordingFlatbuffer.InputsLength()
	if n < 0 || n > len(b)/flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("inputs length %d exceeds a %d byte buffer", n, len(b))
	}

	recording = &Recording{
		ID:     id,
		Game:   game,
		Seed:   recordingFlatbuffer.Seed(),
		Inputs: make([]Input, n),
	}
	inputFlatbuffer := &replayfb.Input{}
	for i := range recording.Inputs {
		if !recordingFlatbuffer.Inputs(inputFlatbuffer, i) {
			return nil, fmt.Errorf("failed to read input %d", i)
		}
		recording.Inputs[i] = Input{
			Kind:      InputKind(inputFlatbuffer.Kind()),
			Timestamp: inputFlatbuffer.Timestamp(),
		}
	}

	return recording, nil
}

// WriteFile writes a serialized recording to path.
func WriteFile(path string, r *Recording) error {
	b, err := SerializeRecording(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write recording to %s: %v", path, err)
	}
	return nil
}

// ReadFile reads a serialized recording from path.
func ReadFile(path string) (*Recording, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording from %s: %v", path, err)
	}
	return DeserializeRecording(b)
}
