package infer

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/verdant-labs/paddydoc/internal/model"
)

// defaultInputSize is used when the model declares a dynamic spatial size.
const defaultInputSize = 224

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// initORT initializes the ONNX Runtime environment. Safe to call multiple
// times; only the first call has any effect.
func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// ONNXClassifier runs a CNN leaf-disease classifier through ONNX Runtime.
type ONNXClassifier struct {
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
	inputSize  int64 // square side length the model expects
	numClasses int64
}

// NewONNX loads the model at modelPath and creates an inference session.
// It validates that the model takes a single NCHW image tensor and that
// its output width matches the known label set; a width mismatch is a
// fatal configuration error. libPath locates the ONNX Runtime shared
// library; empty means alongside the model file.
func NewONNX(modelPath, libPath string) (*ONNXClassifier, error) {
	if libPath == "" {
		libPath = filepath.Join(filepath.Dir(modelPath), "libonnxruntime.so")
	}
	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	// Inspect model to discover tensor names and shapes.
	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}

	inputName, inputSize, err := validateInput(inputs)
	if err != nil {
		return nil, err
	}

	outputName, numClasses, err := validateOutput(outputs)
	if err != nil {
		return nil, err
	}
	if numClasses != model.NumClasses {
		return nil, fmt.Errorf("onnx: model emits %d classes, label set has %d: %w",
			numClasses, model.NumClasses, model.ErrLabelMismatch)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(4)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputName},
		[]string{outputName},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &ONNXClassifier{
		session:    session,
		inputName:  inputName,
		outputName: outputName,
		inputSize:  inputSize,
		numClasses: int64(numClasses),
	}, nil
}

// validateInput checks for a single 4D NCHW image input and returns its
// name and square side length.
func validateInput(inputs []ort.InputOutputInfo) (string, int64, error) {
	if len(inputs) != 1 {
		return "", 0, fmt.Errorf("onnx: expected 1 model input, got %d", len(inputs))
	}
	in := inputs[0]
	dims := in.Dimensions
	if len(dims) != 4 {
		return "", 0, fmt.Errorf("onnx: expected 4D input tensor [N,C,H,W], got %v", dims)
	}
	if dims[1] != 3 {
		return "", 0, fmt.Errorf("onnx: expected 3-channel input, got %d channels", dims[1])
	}
	h, w := dims[2], dims[3]
	if h > 0 && w > 0 && h != w {
		return "", 0, fmt.Errorf("onnx: expected square input, got %dx%d", h, w)
	}
	size := h
	if size <= 0 {
		size = defaultInputSize
	}
	return in.Name, size, nil
}

// validateOutput checks for a single [N, classes] output tensor and
// returns its name and class count.
func validateOutput(outputs []ort.InputOutputInfo) (string, int, error) {
	if len(outputs) == 0 {
		return "", 0, fmt.Errorf("onnx: model has no outputs")
	}
	out := outputs[0]
	dims := out.Dimensions
	if len(dims) != 2 {
		return "", 0, fmt.Errorf("onnx: expected 2D output tensor [N,classes], got %v", dims)
	}
	return out.Name, int(dims[1]), nil
}

// Classify preprocesses img and runs one inference call, returning the raw
// score vector.
func (c *ONNXClassifier) Classify(ctx context.Context, img image.Image) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := chwTensor(img, int(c.inputSize))

	shape := ort.NewShape(1, 3, c.inputSize, c.inputSize)
	tIn, err := ort.NewTensor(shape, data)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create input tensor: %w", err)
	}
	defer tIn.Destroy()

	outShape := ort.NewShape(1, c.numClasses)
	tOut, err := ort.NewEmptyTensor[float32](outShape)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	err = c.session.Run(
		[]ort.Value{tIn},
		[]ort.Value{tOut},
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: inference failed: %w", err)
	}

	// Copy data out before tensor is destroyed.
	src := tOut.GetData()
	scores := make([]float32, len(src))
	copy(scores, src)
	return scores, nil
}

// Close releases the ONNX session resources.
func (c *ONNXClassifier) Close() error {
	return c.session.Destroy()
}
