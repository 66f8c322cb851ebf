// Package paddydoc diagnoses rice leaf diseases from photos using an
// on-device ONNX image classifier.
//
// Quick start:
//
//	p, err := paddydoc.New(paddydoc.WithModelPath("models/rice_leaf.onnx"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	d, _ := p.Predict(ctx, "leaf.jpg")
//	fmt.Println(d.Label, d.Severity) // Brown Spot High
//
// When the model artifact is missing or fails to load, the predictor
// degrades to a synthetic mode instead of failing: Predict still returns a
// plausible Diagnosis, flagged with Synthetic=true. The Predictor is safe
// for concurrent use. Create once, reuse across requests.
package paddydoc
